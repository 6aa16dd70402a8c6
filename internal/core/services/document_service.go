package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SscSPs/sales_notes_service/internal/apperrors"
	"github.com/SscSPs/sales_notes_service/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_notes_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_notes_service/internal/core/ports/services"
	"github.com/SscSPs/sales_notes_service/internal/platform/pdf"
	"github.com/SscSPs/sales_notes_service/internal/platform/storage"
)

type documentService struct {
	BaseService
	salesNotes    portssvc.SalesNoteReaderSvc
	salesNoteRepo portsrepo.SalesNoteWriter
	customerRepo  portsrepo.CustomerReader
	productRepo   portsrepo.ProductReader
	artifacts     portsrepo.ArtifactStore
}

// DocumentServiceOption is a functional option for configuring the document service
type DocumentServiceOption func(*documentService)

// WithDocumentClock replaces the time source used for artifact file names
func WithDocumentClock(clock func() time.Time) DocumentServiceOption {
	return func(s *documentService) {
		s.Clock = clock
	}
}

// NewDocumentService creates the renderer. Notes are loaded through salesNotes so
// not-found handling matches the lifecycle service.
func NewDocumentService(
	salesNotes portssvc.SalesNoteReaderSvc,
	salesNoteRepo portsrepo.SalesNoteWriter,
	customerRepo portsrepo.CustomerReader,
	productRepo portsrepo.ProductReader,
	artifacts portsrepo.ArtifactStore,
	options ...DocumentServiceOption,
) portssvc.DocumentSvc {
	svc := &documentService{
		salesNotes:    salesNotes,
		salesNoteRepo: salesNoteRepo,
		customerRepo:  customerRepo,
		productRepo:   productRepo,
		artifacts:     artifacts,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DocumentSvc = (*documentService)(nil)

func artifactFileName(id int64, at time.Time) string {
	return fmt.Sprintf("sales_note_%d_%s.pdf", id, at.Format("20060102150405"))
}

func (s *documentService) RenderSalesNote(ctx context.Context, id int64) (string, error) {
	note, err := s.salesNotes.GetSalesNote(ctx, id)
	if err != nil {
		return "", err
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, note.CustomerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewReferenceNotFoundError(fmt.Sprintf("customer %d of sales note %d not found", note.CustomerID, id))
		}
		s.LogError(ctx, err, "Failed to look up customer for rendering", slog.Int64("sales_note_id", id))
		return "", fmt.Errorf("failed to look up customer: %w", err)
	}

	products := make(map[int64]domain.Product)
	if productIDs := note.DistinctProductIDs(); len(productIDs) > 0 {
		products, err = s.productRepo.FindProductsByIDs(ctx, productIDs)
		if err != nil {
			s.LogError(ctx, err, "Failed to look up products for rendering", slog.Int64("sales_note_id", id))
			return "", fmt.Errorf("failed to look up products: %w", err)
		}
		for _, productID := range productIDs {
			if _, ok := products[productID]; !ok {
				return "", apperrors.NewReferenceNotFoundError(fmt.Sprintf("product %d of sales note %d not found", productID, id))
			}
		}
	}

	layout, err := pdf.BuildSalesNoteLayout(*note, *customer, products)
	if err != nil {
		s.LogError(ctx, err, "Failed to lay out sales note", slog.Int64("sales_note_id", id))
		return "", fmt.Errorf("failed to lay out sales note %d: %w", id, err)
	}

	now := s.Now()
	path, err := s.artifacts.Save(artifactFileName(id, now), func(w io.Writer) error {
		return layout.Render(w)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to store rendered sales note", slog.Int64("sales_note_id", id))
		return "", fmt.Errorf("failed to store rendered sales note %d: %w", id, err)
	}

	if err := s.salesNoteRepo.UpdateSalesNoteDocumentPath(ctx, id, path, now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to record document path", slog.Int64("sales_note_id", id), slog.String("path", path))
		}
		return "", err
	}

	s.LogInfo(ctx, "Sales note rendered",
		slog.Int64("sales_note_id", id),
		slog.String("path", path),
		slog.Int("rows", len(layout.Rows)))
	return path, nil
}

func (s *documentService) FetchSalesNoteDocument(ctx context.Context, id int64) (*domain.Document, error) {
	note, err := s.salesNotes.GetSalesNote(ctx, id)
	if err != nil {
		return nil, err
	}
	if note.DocumentPath == nil || *note.DocumentPath == "" {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("sales note %d has not been rendered", id))
	}

	content, err := s.artifacts.Read(*note.DocumentPath)
	if err != nil {
		if errors.Is(err, storage.ErrArtifactNotFound) {
			s.LogWarn(ctx, "Recorded document is missing from storage",
				slog.Int64("sales_note_id", id),
				slog.String("path", *note.DocumentPath))
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("document of sales note %d not found", id))
		}
		s.LogError(ctx, err, "Failed to read document", slog.Int64("sales_note_id", id))
		return nil, fmt.Errorf("failed to read document of sales note %d: %w", id, err)
	}

	return &domain.Document{
		Path:     *note.DocumentPath,
		FileName: fmt.Sprintf("sales_note_%d.pdf", id),
		Content:  content,
	}, nil
}
