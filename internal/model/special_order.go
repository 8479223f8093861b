package model

import (
	"time"

	"github.com/google/uuid"
)

// SpecialOrder is a customer request for a non-stocked product. Status is a
// free-form string (pending, ordered, received, cancelled by convention) —
// no state machine is enforced.
type SpecialOrder struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerName string    `gorm:"not null"`
	ProductName  string    `gorm:"not null"`
	ProductCode  *string
	Quantity     int    `gorm:"not null;default:1"`
	Status       string `gorm:"not null;default:'pending';index"`
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
