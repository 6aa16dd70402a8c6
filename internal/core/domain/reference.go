package domain

import "github.com/shopspring/decimal"

// Customer is a read-only view of a customer owned by the customer directory.
type Customer struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// Product is a read-only view of a product owned by the product catalog.
type Product struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
