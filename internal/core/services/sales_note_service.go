package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/sales_notes_service/internal/apperrors"
	"github.com/SscSPs/sales_notes_service/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_notes_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_notes_service/internal/core/ports/services"
	"github.com/SscSPs/sales_notes_service/internal/dto"
)

type salesNoteService struct {
	BaseService
	salesNoteRepo portsrepo.SalesNoteRepositoryFacade
	customerRepo  portsrepo.CustomerReader
	productRepo   portsrepo.ProductReader
	noteNumber    func(time.Time) string
}

// SalesNoteServiceOption is a functional option for configuring the sales note service
type SalesNoteServiceOption func(*salesNoteService)

// WithSalesNoteClock replaces the time source
func WithSalesNoteClock(clock func() time.Time) SalesNoteServiceOption {
	return func(s *salesNoteService) {
		s.Clock = clock
	}
}

// WithNoteNumberGenerator replaces the note number generator
func WithNoteNumberGenerator(gen func(time.Time) string) SalesNoteServiceOption {
	return func(s *salesNoteService) {
		s.noteNumber = gen
	}
}

// NewSalesNoteService creates the sales note lifecycle service
func NewSalesNoteService(
	salesNoteRepo portsrepo.SalesNoteRepositoryFacade,
	customerRepo portsrepo.CustomerReader,
	productRepo portsrepo.ProductReader,
	options ...SalesNoteServiceOption,
) portssvc.SalesNoteSvcFacade {
	svc := &salesNoteService{
		salesNoteRepo: salesNoteRepo,
		customerRepo:  customerRepo,
		productRepo:   productRepo,
		noteNumber:    NewNoteNumber,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SalesNoteSvcFacade = (*salesNoteService)(nil)

func (s *salesNoteService) ListSalesNotes(ctx context.Context, params dto.ListSalesNotesParams) ([]domain.SalesNote, error) {
	filter := domain.SalesNoteFilter{
		CustomerID: params.CustomerID,
		Offset:     max(params.Offset, 0),
		Limit:      clampLimit(params.Limit),
	}

	notes, err := s.salesNoteRepo.ListSalesNotes(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales notes")
		return nil, fmt.Errorf("failed to list sales notes: %w", err)
	}
	if notes == nil {
		return []domain.SalesNote{}, nil
	}
	return notes, nil
}

// GetSalesNote is the single load-and-check path every other operation goes through.
func (s *salesNoteService) GetSalesNote(ctx context.Context, id int64) (*domain.SalesNote, error) {
	note, err := s.salesNoteRepo.FindSalesNoteByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find sales note", slog.Int64("sales_note_id", id))
		}
		return nil, err
	}

	items, err := s.salesNoteRepo.FindItemsBySalesNoteID(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to load sales note items", slog.Int64("sales_note_id", id))
		return nil, fmt.Errorf("failed to load items of sales note %d: %w", id, err)
	}
	if items == nil {
		items = []domain.SalesNoteItem{}
	}
	note.Items = items
	return note, nil
}

func (s *salesNoteService) GetSalesNoteByNumber(ctx context.Context, noteNumber string) (*domain.SalesNote, bool, error) {
	header, err := s.salesNoteRepo.FindSalesNoteByNumber(ctx, noteNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, false, nil
		}
		s.LogError(ctx, err, "Failed to find sales note by number", slog.String("note_number", noteNumber))
		return nil, false, err
	}

	note, err := s.GetSalesNote(ctx, header.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// deleted between the two reads
			return nil, false, nil
		}
		return nil, false, err
	}
	return note, true, nil
}

func (s *salesNoteService) ListSalesNoteItems(ctx context.Context, id int64) ([]domain.SalesNoteItem, error) {
	note, err := s.GetSalesNote(ctx, id)
	if err != nil {
		return nil, err
	}
	return note.Items, nil
}

func (s *salesNoteService) CreateSalesNote(ctx context.Context, req dto.CreateSalesNoteRequest) (*domain.SalesNote, error) {
	status, err := validateCreateRequest(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewReferenceNotFoundError(fmt.Sprintf("customer %d not found", req.CustomerID))
		}
		s.LogError(ctx, err, "Failed to look up customer", slog.Int64("customer_id", req.CustomerID))
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	now := s.Now()
	note := domain.SalesNote{
		CustomerID:  req.CustomerID,
		TotalAmount: req.TotalAmount,
		TaxAmount:   req.TaxAmount,
		NoteDate:    now,
		Status:      status,
		Items:       make([]domain.SalesNoteItem, 0, len(req.Items)),
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	for _, item := range req.Items {
		note.Items = append(note.Items, domain.SalesNoteItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Subtotal:   item.Subtotal,
			Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
		})
	}

	// every product must resolve before anything is written
	productIDs := note.DistinctProductIDs()
	if len(productIDs) > 0 {
		products, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
		if err != nil {
			s.LogError(ctx, err, "Failed to look up products")
			return nil, fmt.Errorf("failed to look up products: %w", err)
		}
		for _, id := range productIDs {
			if _, ok := products[id]; !ok {
				return nil, apperrors.NewReferenceNotFoundError(fmt.Sprintf("product %d not found", id))
			}
		}
	}

	for attempt := 1; attempt <= maxNoteNumberAttempts; attempt++ {
		note.NoteNumber = s.noteNumber(now)
		saved, err := s.salesNoteRepo.SaveSalesNote(ctx, note)
		if err == nil {
			s.LogInfo(ctx, "Sales note created",
				slog.Int64("sales_note_id", saved.ID),
				slog.String("note_number", saved.NoteNumber),
				slog.Int("items", len(saved.Items)))
			return s.GetSalesNote(ctx, saved.ID)
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Note number collision, regenerating",
				slog.String("note_number", note.NoteNumber),
				slog.Int("attempt", attempt))
			continue
		}
		if !errors.Is(err, apperrors.ErrReferenceNotFound) {
			s.LogError(ctx, err, "Failed to save sales note", slog.Int64("customer_id", note.CustomerID))
		}
		return nil, err
	}
	return nil, apperrors.NewDuplicateError(fmt.Sprintf("could not allocate a unique note number after %d attempts", maxNoteNumberAttempts))
}

// UpdateSalesNote sets status without the transition rules enforced by ChangeSalesNoteStatus.
// Only draft and issued notes reach that point, so the bypass is limited to those two.
func (s *salesNoteService) UpdateSalesNote(ctx context.Context, id int64, req dto.UpdateSalesNoteRequest) (*domain.SalesNote, error) {
	update, err := validateUpdateRequest(req)
	if err != nil {
		return nil, err
	}

	note, err := s.GetSalesNote(ctx, id)
	if err != nil {
		return nil, err
	}
	if !note.Status.AllowsUpdate() {
		return nil, apperrors.NewInvalidStateError(fmt.Sprintf("cannot update a sales note with status %s", note.Status))
	}

	if update.TotalAmount != nil || update.TaxAmount != nil || update.Status != nil {
		if err := s.salesNoteRepo.UpdateSalesNote(ctx, id, update, s.Now()); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				s.LogError(ctx, err, "Failed to update sales note", slog.Int64("sales_note_id", id))
			}
			return nil, err
		}
	}
	return s.GetSalesNote(ctx, id)
}

func (s *salesNoteService) DeleteSalesNote(ctx context.Context, id int64) error {
	note, err := s.GetSalesNote(ctx, id)
	if err != nil {
		return err
	}
	if !note.Status.AllowsDelete() {
		return apperrors.NewInvalidStateError("cannot delete a paid sales note")
	}

	if err := s.salesNoteRepo.DeleteSalesNote(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete sales note", slog.Int64("sales_note_id", id))
		}
		return err
	}
	s.LogInfo(ctx, "Sales note deleted", slog.Int64("sales_note_id", id), slog.String("note_number", note.NoteNumber))
	return nil
}

func (s *salesNoteService) ChangeSalesNoteStatus(ctx context.Context, id int64, rawStatus string) (*domain.SalesNote, error) {
	next, err := domain.ParseSalesNoteStatus(rawStatus)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	note, err := s.GetSalesNote(ctx, id)
	if err != nil {
		return nil, err
	}
	if !note.Status.CanTransitionTo(next) {
		return nil, apperrors.NewInvalidStateError(fmt.Sprintf("cannot change status from %s to %s", note.Status, next))
	}

	if err := s.salesNoteRepo.UpdateSalesNoteStatus(ctx, id, next, s.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to change sales note status", slog.Int64("sales_note_id", id))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Sales note status changed",
		slog.Int64("sales_note_id", id),
		slog.String("from", string(note.Status)),
		slog.String("to", string(next)))
	return s.GetSalesNote(ctx, id)
}
