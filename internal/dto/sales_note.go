package dto

import (
	"time"

	"github.com/SscSPs/sales_notes_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSalesNoteItemRequest defines one line item of a new sales note.
type CreateSalesNoteItemRequest struct {
	ProductID int64           `json:"productID" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice"` // must be > 0, checked by the service
	Subtotal  decimal.Decimal `json:"subtotal"`  // must be > 0, checked by the service
}

// CreateSalesNoteRequest defines the data needed to create a sales note with its items.
type CreateSalesNoteRequest struct {
	CustomerID  int64                        `json:"customerID" binding:"required"` // negative ids resolve to 404 in the service
	TotalAmount decimal.Decimal              `json:"totalAmount"`
	TaxAmount   decimal.Decimal              `json:"taxAmount"`
	Status      *string                      `json:"status" binding:"omitempty,salesnotestatus"` // Optional, defaults to draft
	Items       []CreateSalesNoteItemRequest `json:"items" binding:"dive"`
}

// UpdateSalesNoteRequest defines the header fields that may be changed.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateSalesNoteRequest struct {
	TotalAmount *decimal.Decimal `json:"totalAmount"`
	TaxAmount   *decimal.Decimal `json:"taxAmount"`
	Status      *string          `json:"status" binding:"omitempty,salesnotestatus"`
}

// ChangeSalesNoteStatusRequest is the body of the dedicated status endpoint.
type ChangeSalesNoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListSalesNotesParams defines query parameters for listing sales notes.
type ListSalesNotesParams struct {
	Offset     int    `form:"offset,default=0" binding:"min=0"`
	Limit      int    `form:"limit,default=100" binding:"min=1"` // capped to 1000 by the service
	CustomerID *int64 `form:"customerID" binding:"omitempty,gt=0"`
}

// SalesNoteItemResponse defines the data returned for a line item.
type SalesNoteItemResponse struct {
	ID          int64           `json:"id"`
	SalesNoteID int64           `json:"salesNoteID"`
	ProductID   int64           `json:"productID"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// SalesNoteSummaryResponse is the header of a sales note without its items, as listed.
type SalesNoteSummaryResponse struct {
	ID          int64                  `json:"id"`
	NoteNumber  string                 `json:"noteNumber"`
	CustomerID  int64                  `json:"customerID"`
	TotalAmount decimal.Decimal        `json:"totalAmount"`
	TaxAmount   decimal.Decimal        `json:"taxAmount"`
	Status      domain.SalesNoteStatus `json:"status"`
	NoteDate    time.Time              `json:"noteDate"`
	PDFPath     *string                `json:"pdfPath"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// SalesNoteResponse defines the data returned for a single sales note, items included.
type SalesNoteResponse struct {
	SalesNoteSummaryResponse
	Items []SalesNoteItemResponse `json:"items"`
}

// RenderSalesNoteResponse is returned after a successful render.
type RenderSalesNoteResponse struct {
	PDFPath string `json:"pdfPath"`
}

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToSalesNoteItemResponse converts a domain.SalesNoteItem to its DTO
func ToSalesNoteItemResponse(item domain.SalesNoteItem) SalesNoteItemResponse {
	return SalesNoteItemResponse{
		ID:          item.ID,
		SalesNoteID: item.SalesNoteID,
		ProductID:   item.ProductID,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Subtotal:    item.Subtotal,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// ToSalesNoteItemResponses converts a slice of items; never returns nil.
func ToSalesNoteItemResponses(items []domain.SalesNoteItem) []SalesNoteItemResponse {
	res := make([]SalesNoteItemResponse, len(items))
	for i, item := range items {
		res[i] = ToSalesNoteItemResponse(item)
	}
	return res
}

// ToSalesNoteSummaryResponse converts the header of a domain.SalesNote
func ToSalesNoteSummaryResponse(note *domain.SalesNote) SalesNoteSummaryResponse {
	return SalesNoteSummaryResponse{
		ID:          note.ID,
		NoteNumber:  note.NoteNumber,
		CustomerID:  note.CustomerID,
		TotalAmount: note.TotalAmount,
		TaxAmount:   note.TaxAmount,
		Status:      note.Status,
		NoteDate:    note.NoteDate,
		PDFPath:     note.DocumentPath,
		CreatedAt:   note.CreatedAt,
		UpdatedAt:   note.UpdatedAt,
	}
}

// ToSalesNoteResponse converts a domain.SalesNote to SalesNoteResponse DTO
func ToSalesNoteResponse(note *domain.SalesNote) SalesNoteResponse {
	return SalesNoteResponse{
		SalesNoteSummaryResponse: ToSalesNoteSummaryResponse(note),
		Items:                    ToSalesNoteItemResponses(note.Items),
	}
}

// ToListSalesNoteResponse converts a slice of domain.SalesNote to summaries; items are fetched per note.
func ToListSalesNoteResponse(notes []domain.SalesNote) []SalesNoteSummaryResponse {
	res := make([]SalesNoteSummaryResponse, len(notes))
	for i := range notes {
		res[i] = ToSalesNoteSummaryResponse(&notes[i])
	}
	return res
}
