package services

import (
	"context"

	"github.com/SscSPs/sales_notes_service/internal/core/domain"
)

// DocumentSvc renders sales notes to printable artifacts and serves them back.
type DocumentSvc interface {
	// RenderSalesNote renders the note, stores the artifact and returns its storage location.
	RenderSalesNote(ctx context.Context, id int64) (string, error)

	// FetchSalesNoteDocument returns the most recently rendered artifact of a note.
	FetchSalesNoteDocument(ctx context.Context, id int64) (*domain.Document, error)
}
