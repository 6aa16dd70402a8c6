package services

import (
	"fmt"

	"github.com/SscSPs/sales_notes_service/internal/apperrors"
	"github.com/SscSPs/sales_notes_service/internal/core/domain"
	"github.com/SscSPs/sales_notes_service/internal/dto"
	"github.com/shopspring/decimal"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000

	// money columns are NUMERIC(14,2)
	moneyScale = 2
)

// exceedsMoneyScale reports whether d carries non-zero digits past the cent.
func exceedsMoneyScale(d decimal.Decimal) bool {
	return !d.Truncate(moneyScale).Equal(d)
}

// clampLimit treats zero as unset; the HTTP layer rejects an explicit limit below 1.
func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	}
	return limit
}

// validateCreateRequest checks the payload shape. Non-positive customer and product ids
// can never resolve, so they are reported as missing references.
func validateCreateRequest(req dto.CreateSalesNoteRequest) (domain.SalesNoteStatus, error) {
	switch {
	case !req.TotalAmount.IsPositive():
		return "", apperrors.NewValidationError("totalAmount must be greater than 0")
	case exceedsMoneyScale(req.TotalAmount):
		return "", apperrors.NewValidationError("totalAmount must have at most 2 decimal places")
	case req.TaxAmount.IsNegative():
		return "", apperrors.NewValidationError("taxAmount must not be negative")
	case exceedsMoneyScale(req.TaxAmount):
		return "", apperrors.NewValidationError("taxAmount must have at most 2 decimal places")
	}

	status := domain.StatusDraft
	if req.Status != nil {
		parsed, err := domain.ParseSalesNoteStatus(*req.Status)
		if err != nil {
			return "", apperrors.NewValidationError(err.Error())
		}
		status = parsed
	}

	for i, item := range req.Items {
		switch {
		case item.Quantity <= 0:
			return "", apperrors.NewValidationError(fmt.Sprintf("items[%d].quantity must be greater than 0", i))
		case !item.UnitPrice.IsPositive():
			return "", apperrors.NewValidationError(fmt.Sprintf("items[%d].unitPrice must be greater than 0", i))
		case exceedsMoneyScale(item.UnitPrice):
			return "", apperrors.NewValidationError(fmt.Sprintf("items[%d].unitPrice must have at most 2 decimal places", i))
		case !item.Subtotal.IsPositive():
			return "", apperrors.NewValidationError(fmt.Sprintf("items[%d].subtotal must be greater than 0", i))
		case exceedsMoneyScale(item.Subtotal):
			return "", apperrors.NewValidationError(fmt.Sprintf("items[%d].subtotal must have at most 2 decimal places", i))
		}
	}

	if req.CustomerID <= 0 {
		return "", apperrors.NewReferenceNotFoundError(fmt.Sprintf("customer %d not found", req.CustomerID))
	}
	for _, item := range req.Items {
		if item.ProductID <= 0 {
			return "", apperrors.NewReferenceNotFoundError(fmt.Sprintf("product %d not found", item.ProductID))
		}
	}
	return status, nil
}

func validateUpdateRequest(req dto.UpdateSalesNoteRequest) (domain.SalesNoteUpdate, error) {
	update := domain.SalesNoteUpdate{
		TotalAmount: req.TotalAmount,
		TaxAmount:   req.TaxAmount,
	}
	if req.TotalAmount != nil {
		switch {
		case !req.TotalAmount.IsPositive():
			return update, apperrors.NewValidationError("totalAmount must be greater than 0")
		case exceedsMoneyScale(*req.TotalAmount):
			return update, apperrors.NewValidationError("totalAmount must have at most 2 decimal places")
		}
	}
	if req.TaxAmount != nil {
		switch {
		case req.TaxAmount.IsNegative():
			return update, apperrors.NewValidationError("taxAmount must not be negative")
		case exceedsMoneyScale(*req.TaxAmount):
			return update, apperrors.NewValidationError("taxAmount must have at most 2 decimal places")
		}
	}
	if req.Status != nil {
		status, err := domain.ParseSalesNoteStatus(*req.Status)
		if err != nil {
			return update, apperrors.NewValidationError(err.Error())
		}
		update.Status = &status
	}
	return update, nil
}
