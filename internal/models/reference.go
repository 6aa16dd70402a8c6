package models

import "github.com/shopspring/decimal"

// Customer mirrors the columns of the customers table this service reads.
type Customer struct {
	ID    int64   `db:"id"`
	Name  string  `db:"name"`
	Email string  `db:"email"`
	Phone *string `db:"phone"`
}

// Product mirrors the columns of the products table this service reads.
type Product struct {
	ID    int64           `db:"id"`
	Name  string          `db:"name"`
	Price decimal.Decimal `db:"price"`
}
