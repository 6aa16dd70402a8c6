package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesNote mirrors a row of the sales_notes table.
type SalesNote struct {
	ID          int64           `db:"id"`
	NoteNumber  string          `db:"note_number"`
	CustomerID  int64           `db:"customer_id"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	TaxAmount   decimal.Decimal `db:"tax_amount"`
	NoteDate    time.Time       `db:"note_date"`
	Status      string          `db:"status"`
	PDFPath     *string         `db:"pdf_path"` // nullable until the note is rendered
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

// SalesNoteItem mirrors a row of the sales_note_items table.
type SalesNoteItem struct {
	ID          int64           `db:"id"`
	SalesNoteID int64           `db:"sales_note_id"`
	ProductID   int64           `db:"product_id"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Subtotal    decimal.Decimal `db:"subtotal"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}
