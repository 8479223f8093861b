package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TokenUsage logs the token counts and cost of one AI completion call.
// Append-only; the billing summary aggregates over all rows.
type TokenUsage struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Operation    string          `gorm:"not null"` // parse_products | parse_spas | analyze_page
	Model        string          `gorm:"not null"`
	InputTokens  int             `gorm:"not null"`
	OutputTokens int             `gorm:"not null"`
	Cost         decimal.Decimal `gorm:"type:decimal(12,6);not null"`
	CreatedAt    time.Time
}

func (TokenUsage) TableName() string { return "token_usage" }
