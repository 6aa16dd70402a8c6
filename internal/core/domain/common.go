package domain

import "time"

// Timestamps holds the bookkeeping timestamps shared by persisted entities.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
