package model

import (
	"time"

	"github.com/google/uuid"
)

// SyncLog is the audit record of one import/scrape operation. Append-only:
// a row is written once when the batch finishes and never mutated afterwards.
type SyncLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Type        string    `gorm:"not null"` // price_list | spa
	Status      string    `gorm:"not null"` // success | failed
	Message     string
	StartedAt   time.Time `gorm:"not null;index"`
	CompletedAt *time.Time
}
