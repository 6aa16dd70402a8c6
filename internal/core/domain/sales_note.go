package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SalesNoteStatus is the lifecycle state of a sales note.
type SalesNoteStatus string

const (
	StatusDraft    SalesNoteStatus = "draft"
	StatusIssued   SalesNoteStatus = "issued"
	StatusPaid     SalesNoteStatus = "paid"
	StatusCanceled SalesNoteStatus = "canceled"
)

// SalesNoteStatuses lists every accepted status in lifecycle order.
var SalesNoteStatuses = []SalesNoteStatus{StatusDraft, StatusIssued, StatusPaid, StatusCanceled}

// IsValid reports whether s is one of the four known statuses.
func (s SalesNoteStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusIssued, StatusPaid, StatusCanceled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a note in status s may be moved to next.
// Paid and canceled are absorbing: the only allowed target is the same status.
func (s SalesNoteStatus) CanTransitionTo(next SalesNoteStatus) bool {
	switch s {
	case StatusPaid, StatusCanceled:
		return next == s
	}
	return next.IsValid()
}

// AllowsUpdate reports whether header fields may be changed through the generic update path.
func (s SalesNoteStatus) AllowsUpdate() bool {
	return s != StatusPaid && s != StatusCanceled
}

// AllowsDelete reports whether a note in this status may be deleted.
func (s SalesNoteStatus) AllowsDelete() bool {
	return s != StatusPaid
}

// ParseSalesNoteStatus converts a raw literal into a SalesNoteStatus.
func ParseSalesNoteStatus(raw string) (SalesNoteStatus, error) {
	s := SalesNoteStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid status %q, must be one of: draft, issued, paid, canceled", raw)
	}
	return s, nil
}

// SalesNote is the header of a sales note document.
type SalesNote struct {
	ID           int64           `json:"id"`
	NoteNumber   string          `json:"noteNumber"`
	CustomerID   int64           `json:"customerID"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	TaxAmount    decimal.Decimal `json:"taxAmount"`
	NoteDate     time.Time       `json:"noteDate"`
	Status       SalesNoteStatus `json:"status"`
	DocumentPath *string         `json:"documentPath,omitempty"`
	Items        []SalesNoteItem `json:"items,omitempty"`
	Timestamps
}

// Subtotal is the pre-tax amount of the note.
func (n SalesNote) Subtotal() decimal.Decimal {
	return n.TotalAmount.Sub(n.TaxAmount)
}

// DistinctProductIDs returns the product ids referenced by the items, in first-seen order.
func (n SalesNote) DistinctProductIDs() []int64 {
	seen := make(map[int64]struct{}, len(n.Items))
	ids := make([]int64, 0, len(n.Items))
	for _, item := range n.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}

// SalesNoteItem is a line item owned by exactly one sales note.
type SalesNoteItem struct {
	ID          int64           `json:"id"`
	SalesNoteID int64           `json:"salesNoteID"`
	ProductID   int64           `json:"productID"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Timestamps
}

// SalesNoteUpdate carries the header fields of a partial update. Nil fields are left untouched.
type SalesNoteUpdate struct {
	TotalAmount *decimal.Decimal
	TaxAmount   *decimal.Decimal
	Status      *SalesNoteStatus
}

// SalesNoteFilter narrows a listing of sales notes.
type SalesNoteFilter struct {
	CustomerID *int64
	Offset     int
	Limit      int
}
