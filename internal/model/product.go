package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is one catalog entry from the ABC price list. Code is the business
// key (unique across the catalog); the uuid is a surrogate used in URLs and
// foreign keys.
type Product struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code      string    `gorm:"uniqueIndex;not null"`
	Name      string    `gorm:"index;not null"`
	Category  *string
	Size      *string
	Proof     *decimal.Decimal `gorm:"type:decimal(5,1)"`
	UnitPrice decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	CasePrice decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	IsStocked bool             `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	PriceHistory []PriceHistory `gorm:"foreignKey:ProductID"`
	SPAs         []ProductSPA   `gorm:"foreignKey:ProductID"`
}
