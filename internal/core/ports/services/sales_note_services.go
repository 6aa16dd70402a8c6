package services

import (
	"context"

	"github.com/SscSPs/sales_notes_service/internal/core/domain"
	"github.com/SscSPs/sales_notes_service/internal/dto"
)

// SalesNoteReaderSvc defines read operations for sales notes
type SalesNoteReaderSvc interface {
	// ListSalesNotes retrieves notes most-recently-created first, optionally filtered by customer.
	ListSalesNotes(ctx context.Context, params dto.ListSalesNotesParams) ([]domain.SalesNote, error)

	// GetSalesNote retrieves a note and its items, or apperrors.ErrNotFound.
	GetSalesNote(ctx context.Context, id int64) (*domain.SalesNote, error)

	// GetSalesNoteByNumber looks a note up by number. A miss is reported through the bool, not an error.
	GetSalesNoteByNumber(ctx context.Context, noteNumber string) (*domain.SalesNote, bool, error)

	// ListSalesNoteItems retrieves the items of an existing note.
	ListSalesNoteItems(ctx context.Context, id int64) ([]domain.SalesNoteItem, error)
}

// SalesNoteWriterSvc defines write operations for sales notes
type SalesNoteWriterSvc interface {
	// CreateSalesNote creates a note together with all of its items.
	CreateSalesNote(ctx context.Context, req dto.CreateSalesNoteRequest) (*domain.SalesNote, error)

	// UpdateSalesNote applies a partial header update to a draft or issued note.
	UpdateSalesNote(ctx context.Context, id int64, req dto.UpdateSalesNoteRequest) (*domain.SalesNote, error)

	// DeleteSalesNote removes a note that is not paid, items first.
	DeleteSalesNote(ctx context.Context, id int64) error
}

// SalesNoteStatusSvc defines the guarded status transition
type SalesNoteStatusSvc interface {
	// ChangeSalesNoteStatus moves a note to a new status, refusing to leave paid or canceled.
	ChangeSalesNoteStatus(ctx context.Context, id int64, status string) (*domain.SalesNote, error)
}

// SalesNoteSvcFacade combines all sales-note service interfaces
type SalesNoteSvcFacade interface {
	SalesNoteReaderSvc
	SalesNoteWriterSvc
	SalesNoteStatusSvc
}
