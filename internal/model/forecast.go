package model

import (
	"time"

	"github.com/google/uuid"
)

// Forecast holds one weekly demand projection, keyed by the week's start date.
type Forecast struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WeekStart      time.Time `gorm:"uniqueIndex;not null"`
	ProjectedUnits int       `gorm:"not null;default:0"`
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
