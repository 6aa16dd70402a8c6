package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/sales_notes_service/internal/apperrors"
	"github.com/SscSPs/sales_notes_service/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_notes_service/internal/core/ports/repositories"
	"github.com/SscSPs/sales_notes_service/internal/models"
	"github.com/SscSPs/sales_notes_service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const salesNoteColumns = `id, note_number, customer_id, total_amount, tax_amount, note_date, status, pdf_path, created_at, updated_at`

type PgxSalesNoteRepository struct {
	BaseRepository
}

// newPgxSalesNoteRepository creates a new repository for sales note headers and items.
func newPgxSalesNoteRepository(pool *pgxpool.Pool) portsrepo.SalesNoteRepositoryFacade {
	return &PgxSalesNoteRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxSalesNoteRepository implements portsrepo.SalesNoteRepositoryFacade
var _ portsrepo.SalesNoteRepositoryFacade = (*PgxSalesNoteRepository)(nil)

func scanSalesNote(row pgx.Row) (*domain.SalesNote, error) {
	var m models.SalesNote
	err := row.Scan(
		&m.ID,
		&m.NoteNumber,
		&m.CustomerID,
		&m.TotalAmount,
		&m.TaxAmount,
		&m.NoteDate,
		&m.Status,
		&m.PDFPath,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	note := mapping.ToDomainSalesNote(m)
	return &note, nil
}

// SaveSalesNote inserts the header and every item inside one transaction.
func (r *PgxSalesNoteRepository) SaveSalesNote(ctx context.Context, note domain.SalesNote) (*domain.SalesNote, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Will be ignored if transaction is committed successfully
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelSalesNote(note)
	headerQuery := `
		INSERT INTO sales_notes (note_number, customer_id, total_amount, tax_amount, note_date, status, pdf_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, headerQuery,
		m.NoteNumber,
		m.CustomerID,
		m.TotalAmount,
		m.TaxAmount,
		m.NoteDate,
		m.Status,
		m.PDFPath,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&m.ID)
	if err != nil {
		return nil, translateWriteError(err, "failed to insert sales note "+m.NoteNumber)
	}

	saved := mapping.ToDomainSalesNote(m)
	saved.Items = make([]domain.SalesNoteItem, 0, len(note.Items))

	itemQuery := `
		INSERT INTO sales_note_items (sales_note_id, product_id, quantity, unit_price, subtotal, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	for _, item := range note.Items {
		mi := mapping.ToModelSalesNoteItem(item)
		mi.SalesNoteID = m.ID
		err = tx.QueryRow(ctx, itemQuery,
			mi.SalesNoteID,
			mi.ProductID,
			mi.Quantity,
			mi.UnitPrice,
			mi.Subtotal,
			mi.CreatedAt,
			mi.UpdatedAt,
		).Scan(&mi.ID)
		if err != nil {
			return nil, translateWriteError(err, fmt.Sprintf("failed to insert item for product %d", mi.ProductID))
		}
		saved.Items = append(saved.Items, mapping.ToDomainSalesNoteItem(mi))
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &saved, nil
}

// FindSalesNoteByID retrieves a sales note header by id.
func (r *PgxSalesNoteRepository) FindSalesNoteByID(ctx context.Context, id int64) (*domain.SalesNote, error) {
	query := `SELECT ` + salesNoteColumns + ` FROM sales_notes WHERE id = $1;`
	note, err := scanSalesNote(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("sales note %d not found", id))
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find sales note", err)
	}
	return note, nil
}

// FindSalesNoteByNumber retrieves a sales note header by note number.
func (r *PgxSalesNoteRepository) FindSalesNoteByNumber(ctx context.Context, noteNumber string) (*domain.SalesNote, error) {
	query := `SELECT ` + salesNoteColumns + ` FROM sales_notes WHERE note_number = $1;`
	note, err := scanSalesNote(r.Pool.QueryRow(ctx, query, noteNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("sales note " + noteNumber + " not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find sales note by number", err)
	}
	return note, nil
}

// ListSalesNotes retrieves headers ordered newest first, optionally for one customer.
func (r *PgxSalesNoteRepository) ListSalesNotes(ctx context.Context, filter domain.SalesNoteFilter) ([]domain.SalesNote, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + salesNoteColumns + ` FROM sales_notes`)
	args := make([]any, 0, 3)
	if filter.CustomerID != nil {
		args = append(args, *filter.CustomerID)
		sb.WriteString(fmt.Sprintf(" WHERE customer_id = $%d", len(args)))
	}
	args = append(args, filter.Limit, filter.Offset)
	sb.WriteString(fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d;", len(args)-1, len(args)))

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list sales notes", err)
	}
	defer rows.Close()

	notes := make([]domain.SalesNote, 0)
	for rows.Next() {
		note, err := scanSalesNote(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan sales note", err)
		}
		notes = append(notes, *note)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to iterate sales notes", err)
	}
	return notes, nil
}

// FindItemsBySalesNoteID retrieves the items of a sales note in insertion order.
func (r *PgxSalesNoteRepository) FindItemsBySalesNoteID(ctx context.Context, salesNoteID int64) ([]domain.SalesNoteItem, error) {
	query := `
		SELECT id, sales_note_id, product_id, quantity, unit_price, subtotal, created_at, updated_at
		FROM sales_note_items
		WHERE sales_note_id = $1
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query, salesNoteID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query sales note items", err)
	}
	defer rows.Close()

	items := make([]models.SalesNoteItem, 0)
	for rows.Next() {
		var m models.SalesNoteItem
		if err := rows.Scan(&m.ID, &m.SalesNoteID, &m.ProductID, &m.Quantity, &m.UnitPrice, &m.Subtotal, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan sales note item", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to iterate sales note items", err)
	}
	return mapping.ToDomainSalesNoteItemSlice(items), nil
}

// UpdateSalesNote applies the supplied header fields.
func (r *PgxSalesNoteRepository) UpdateSalesNote(ctx context.Context, id int64, update domain.SalesNoteUpdate, updatedAt time.Time) error {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if update.TotalAmount != nil {
		add("total_amount", *update.TotalAmount)
	}
	if update.TaxAmount != nil {
		add("tax_amount", *update.TaxAmount)
	}
	if update.Status != nil {
		add("status", string(*update.Status))
	}
	add("updated_at", updatedAt)
	args = append(args, id)

	query := fmt.Sprintf("UPDATE sales_notes SET %s WHERE id = $%d;", strings.Join(sets, ", "), len(args))
	return r.execSingleRow(ctx, id, query, args...)
}

// UpdateSalesNoteStatus sets the status column only.
func (r *PgxSalesNoteRepository) UpdateSalesNoteStatus(ctx context.Context, id int64, status domain.SalesNoteStatus, updatedAt time.Time) error {
	query := `UPDATE sales_notes SET status = $1, updated_at = $2 WHERE id = $3;`
	return r.execSingleRow(ctx, id, query, string(status), updatedAt, id)
}

// UpdateSalesNoteDocumentPath records the location of the latest rendered artifact.
func (r *PgxSalesNoteRepository) UpdateSalesNoteDocumentPath(ctx context.Context, id int64, path string, updatedAt time.Time) error {
	query := `UPDATE sales_notes SET pdf_path = $1, updated_at = $2 WHERE id = $3;`
	return r.execSingleRow(ctx, id, query, path, updatedAt, id)
}

// DeleteSalesNote removes items then the header in one transaction.
func (r *PgxSalesNoteRepository) DeleteSalesNote(ctx context.Context, id int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM sales_note_items WHERE sales_note_id = $1;`, id); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete sales note items", err)
	}
	cmdTag, err := tx.Exec(ctx, `DELETE FROM sales_notes WHERE id = $1;`, id)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete sales note", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("sales note %d not found", id))
	}
	return r.Commit(ctx, tx)
}

func (r *PgxSalesNoteRepository) execSingleRow(ctx context.Context, id int64, query string, args ...any) error {
	cmdTag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return translateWriteError(err, fmt.Sprintf("failed to update sales note %d", id))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("sales note %d not found", id))
	}
	return nil
}

// translateWriteError maps constraint violations onto domain errors.
func translateWriteError(err error, message string) error {
	switch pgErrorCode(err) {
	case pgUniqueViolation:
		return apperrors.NewAppError(http.StatusConflict, message, fmt.Errorf("%w: %v", apperrors.ErrDuplicate, err))
	case pgForeignKeyViolation:
		return apperrors.NewAppError(http.StatusNotFound, message, fmt.Errorf("%w: %v", apperrors.ErrReferenceNotFound, err))
	case pgCheckViolation:
		return apperrors.NewAppError(http.StatusBadRequest, message, fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
	}
	return apperrors.NewAppError(http.StatusInternalServerError, message, err)
}
