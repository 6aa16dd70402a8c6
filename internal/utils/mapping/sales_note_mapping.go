package mapping

import (
	"github.com/SscSPs/sales_notes_service/internal/core/domain"
	"github.com/SscSPs/sales_notes_service/internal/models"
)

// ToModelSalesNote converts a domain SalesNote to a model SalesNote
func ToModelSalesNote(d domain.SalesNote) models.SalesNote {
	return models.SalesNote{
		ID:          d.ID,
		NoteNumber:  d.NoteNumber,
		CustomerID:  d.CustomerID,
		TotalAmount: d.TotalAmount,
		TaxAmount:   d.TaxAmount,
		NoteDate:    d.NoteDate,
		Status:      string(d.Status),
		PDFPath:     d.DocumentPath,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ToDomainSalesNote converts a model SalesNote to a domain SalesNote (items not populated)
func ToDomainSalesNote(m models.SalesNote) domain.SalesNote {
	return domain.SalesNote{
		ID:           m.ID,
		NoteNumber:   m.NoteNumber,
		CustomerID:   m.CustomerID,
		TotalAmount:  m.TotalAmount,
		TaxAmount:    m.TaxAmount,
		NoteDate:     m.NoteDate,
		Status:       domain.SalesNoteStatus(m.Status),
		DocumentPath: m.PDFPath,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToModelSalesNoteItem converts a domain SalesNoteItem to a model SalesNoteItem
func ToModelSalesNoteItem(d domain.SalesNoteItem) models.SalesNoteItem {
	return models.SalesNoteItem{
		ID:          d.ID,
		SalesNoteID: d.SalesNoteID,
		ProductID:   d.ProductID,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		Subtotal:    d.Subtotal,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ToDomainSalesNoteItem converts a model SalesNoteItem to a domain SalesNoteItem
func ToDomainSalesNoteItem(m models.SalesNoteItem) domain.SalesNoteItem {
	return domain.SalesNoteItem{
		ID:          m.ID,
		SalesNoteID: m.SalesNoteID,
		ProductID:   m.ProductID,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Subtotal:    m.Subtotal,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainSalesNoteItemSlice converts a slice of model items to domain items
func ToDomainSalesNoteItemSlice(ms []models.SalesNoteItem) []domain.SalesNoteItem {
	ds := make([]domain.SalesNoteItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSalesNoteItem(m)
	}
	return ds
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{ID: m.ID, Name: m.Name, Email: m.Email, Phone: m.Phone}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{ID: m.ID, Name: m.Name, Price: m.Price}
}
