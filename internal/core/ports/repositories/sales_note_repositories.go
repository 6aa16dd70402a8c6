package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/sales_notes_service/internal/core/domain"
)

// SalesNoteReader defines read operations for sales note data
type SalesNoteReader interface {
	// FindSalesNoteByID retrieves a sales note header by id. Returns apperrors.ErrNotFound when absent.
	FindSalesNoteByID(ctx context.Context, id int64) (*domain.SalesNote, error)

	// FindSalesNoteByNumber retrieves a sales note header by its note number. Returns apperrors.ErrNotFound when absent.
	FindSalesNoteByNumber(ctx context.Context, noteNumber string) (*domain.SalesNote, error)

	// ListSalesNotes retrieves headers most-recently-created first.
	ListSalesNotes(ctx context.Context, filter domain.SalesNoteFilter) ([]domain.SalesNote, error)

	// FindItemsBySalesNoteID retrieves the line items owned by a sales note.
	FindItemsBySalesNoteID(ctx context.Context, salesNoteID int64) ([]domain.SalesNoteItem, error)
}

// SalesNoteWriter defines write operations for sales note data
type SalesNoteWriter interface {
	// SaveSalesNote persists a header and all of its items in a single transaction and
	// returns the stored note with ids assigned. A note number conflict yields
	// apperrors.ErrDuplicate; a dangling customer/product reference yields apperrors.ErrReferenceNotFound.
	SaveSalesNote(ctx context.Context, note domain.SalesNote) (*domain.SalesNote, error)

	// UpdateSalesNote applies the non-nil fields of update to the header.
	UpdateSalesNote(ctx context.Context, id int64, update domain.SalesNoteUpdate, updatedAt time.Time) error

	// UpdateSalesNoteStatus sets the status column only.
	UpdateSalesNoteStatus(ctx context.Context, id int64, status domain.SalesNoteStatus, updatedAt time.Time) error

	// UpdateSalesNoteDocumentPath records the location of the latest rendered artifact.
	UpdateSalesNoteDocumentPath(ctx context.Context, id int64, path string, updatedAt time.Time) error

	// DeleteSalesNote removes the items and then the header in a single transaction.
	DeleteSalesNote(ctx context.Context, id int64) error
}

// SalesNoteRepositoryFacade combines all sales-note repository interfaces
type SalesNoteRepositoryFacade interface {
	SalesNoteReader
	SalesNoteWriter
}
