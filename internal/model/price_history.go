package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceHistory records each price a product has carried. Rows are immutable —
// never updated or deleted once written.
type PriceHistory struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CasePrice     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	EffectiveDate time.Time       `gorm:"not null;index"`
	CreatedAt     time.Time

	Product Product `gorm:"foreignKey:ProductID"`
}

func (PriceHistory) TableName() string { return "price_history" }
