package services_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/sales_notes_service/internal/apperrors"
	"github.com/SscSPs/sales_notes_service/internal/core/domain"
	portssvc "github.com/SscSPs/sales_notes_service/internal/core/ports/services"
	"github.com/SscSPs/sales_notes_service/internal/core/services"
	"github.com/SscSPs/sales_notes_service/internal/dto"
	"github.com/SscSPs/sales_notes_service/internal/platform/storage"
	"github.com/SscSPs/sales_notes_service/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lifecycleFixture struct {
	store     *memory.Store
	fs        afero.Fs
	container *portssvc.ServiceContainer
}

func newLifecycleFixture(t *testing.T) lifecycleFixture {
	t.Helper()
	store := memory.NewStore()
	store.PutCustomer(domain.Customer{ID: 1, Name: "Acme", Email: "billing@acme.test"})
	store.PutProduct(domain.Product{ID: 5, Name: "Widget", Price: decimal.RequireFromString("50.00")})
	store.PutProduct(domain.Product{ID: 6, Name: "Gadget", Price: decimal.RequireFromString("5.00")})

	fs := afero.NewMemMapFs()
	artifacts := storage.NewArtifactStore(fs, "/tmp/sales_notes_pdfs")
	container := services.NewServiceContainer(memory.NewRepositoryProvider(store), artifacts, fixedClock)
	return lifecycleFixture{store: store, fs: fs, container: container}
}

func TestLifecycle_CreateAndRenderExample(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	note, err := f.container.SalesNote.CreateSalesNote(ctx, exampleCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, note.Status)
	assert.Regexp(t, services.NoteNumberPattern, note.NoteNumber)
	require.Len(t, note.Items, 1)
	assert.Equal(t, int64(5), note.Items[0].ProductID)
	assert.Equal(t, "100.00", note.Subtotal().StringFixed(2))

	path, err := f.container.Document.RenderSalesNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/sales_notes_pdfs/sales_note_1_20260309103000.pdf", path)

	reloaded, err := f.container.SalesNote.GetSalesNote(ctx, note.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.DocumentPath)
	assert.Equal(t, path, *reloaded.DocumentPath)

	doc, err := f.container.Document.FetchSalesNoteDocument(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "sales_note_1.pdf", doc.FileName)
	assert.True(t, bytes.HasPrefix(doc.Content, []byte("%PDF-")))
}

func TestLifecycle_CreateWithMissingProductLeavesNoTrace(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	req := exampleCreateRequest()
	req.Items = append(req.Items, dto.CreateSalesNoteItemRequest{
		ProductID: 77, Quantity: 1, UnitPrice: decimal.NewFromInt(3), Subtotal: decimal.NewFromInt(3),
	})
	_, err := f.container.SalesNote.CreateSalesNote(ctx, req)
	require.ErrorIs(t, err, apperrors.ErrReferenceNotFound)

	notes, err := f.container.SalesNote.ListSalesNotes(ctx, dto.ListSalesNotesParams{Limit: 100})
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestLifecycle_CreateWithMissingCustomer(t *testing.T) {
	f := newLifecycleFixture(t)
	req := exampleCreateRequest()
	req.CustomerID = 404

	_, err := f.container.SalesNote.CreateSalesNote(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrReferenceNotFound)
}

func TestLifecycle_PaidNoteIsFinal(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	note, err := f.container.SalesNote.CreateSalesNote(ctx, exampleCreateRequest())
	require.NoError(t, err)

	_, err = f.container.SalesNote.ChangeSalesNoteStatus(ctx, note.ID, "paid")
	require.NoError(t, err)

	_, err = f.container.SalesNote.ChangeSalesNoteStatus(ctx, note.ID, "draft")
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	_, err = f.container.SalesNote.UpdateSalesNote(ctx, note.ID, dto.UpdateSalesNoteRequest{TaxAmount: decPtr("1")})
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	assert.ErrorIs(t, f.container.SalesNote.DeleteSalesNote(ctx, note.ID), apperrors.ErrInvalidState)

	current, err := f.container.SalesNote.GetSalesNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, current.Status)
	assert.Len(t, current.Items, 1)
}

func TestLifecycle_CanceledNoteCanBeDeleted(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	note, err := f.container.SalesNote.CreateSalesNote(ctx, exampleCreateRequest())
	require.NoError(t, err)
	_, err = f.container.SalesNote.ChangeSalesNoteStatus(ctx, note.ID, "canceled")
	require.NoError(t, err)

	require.NoError(t, f.container.SalesNote.DeleteSalesNote(ctx, note.ID))

	_, err = f.container.SalesNote.GetSalesNote(ctx, note.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = f.container.SalesNote.ListSalesNoteItems(ctx, note.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, found, err := f.container.SalesNote.GetSalesNoteByNumber(ctx, note.NoteNumber)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLifecycle_UpdateAndLookupByNumber(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	note, err := f.container.SalesNote.CreateSalesNote(ctx, exampleCreateRequest())
	require.NoError(t, err)

	updated, err := f.container.SalesNote.UpdateSalesNote(ctx, note.ID, dto.UpdateSalesNoteRequest{
		TotalAmount: decPtr("120.00"),
		Status:      strPtr("issued"),
	})
	require.NoError(t, err)
	assert.True(t, updated.TotalAmount.Equal(decimal.RequireFromString("120")))
	assert.True(t, updated.TaxAmount.Equal(decimal.RequireFromString("10")))
	assert.Equal(t, domain.StatusIssued, updated.Status)
	assert.Equal(t, note.NoteNumber, updated.NoteNumber)

	byNumber, found, err := f.container.SalesNote.GetSalesNoteByNumber(ctx, note.NoteNumber)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, note.ID, byNumber.ID)
	assert.Len(t, byNumber.Items, 1)
}

func TestLifecycle_RenderFailsWhenProductRemoved(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	note, err := f.container.SalesNote.CreateSalesNote(ctx, exampleCreateRequest())
	require.NoError(t, err)
	f.store.RemoveProduct(5)

	_, err = f.container.Document.RenderSalesNote(ctx, note.ID)
	assert.ErrorIs(t, err, apperrors.ErrReferenceNotFound)

	current, err := f.container.SalesNote.GetSalesNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Nil(t, current.DocumentPath)
}

func TestLifecycle_FetchDocumentMissing(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	note, err := f.container.SalesNote.CreateSalesNote(ctx, exampleCreateRequest())
	require.NoError(t, err)

	_, err = f.container.Document.FetchSalesNoteDocument(ctx, note.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "never rendered")

	path, err := f.container.Document.RenderSalesNote(ctx, note.ID)
	require.NoError(t, err)
	require.NoError(t, f.fs.Remove(path))

	_, err = f.container.Document.FetchSalesNoteDocument(ctx, note.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "file removed from storage")

	_, err = f.container.Document.RenderSalesNote(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLifecycle_ListNewestFirst(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	var numbers []string
	for i := 0; i < 3; i++ {
		note, err := f.container.SalesNote.CreateSalesNote(ctx, exampleCreateRequest())
		require.NoError(t, err)
		numbers = append(numbers, note.NoteNumber)
	}

	notes, err := f.container.SalesNote.ListSalesNotes(ctx, dto.ListSalesNotesParams{Limit: 2})
	require.NoError(t, err)
	require.Len(t, notes, 2)
	// same clock for all three, so id breaks the tie
	assert.Equal(t, numbers[2], notes[0].NoteNumber)
	assert.Equal(t, numbers[1], notes[1].NoteNumber)
	assert.True(t, strings.HasPrefix(notes[0].NoteNumber, "SN-2026-"))
}
