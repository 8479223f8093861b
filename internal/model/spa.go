package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SPA is a Special Pricing Allowance — a time-bounded discount deal applied
// to one or more products. "Currently active" and "expiring soon" are derived
// from IsActive and EndDate at query time, never stored.
type SPA struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string          `gorm:"not null"`
	StartDate time.Time       `gorm:"not null"`
	EndDate   time.Time       `gorm:"not null;index"`
	Discount  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	IsActive  bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Products []ProductSPA `gorm:"foreignKey:SpaID"`
}

func (SPA) TableName() string { return "spas" }

// ProductSPA links a product into a deal with the discounted unit price that
// applies to that product for the deal's duration. Unique per (product, spa).
type ProductSPA struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_product_spa"`
	SpaID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_product_spa"`
	DiscountPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Product Product `gorm:"foreignKey:ProductID"`
	SPA     SPA     `gorm:"foreignKey:SpaID"`
}

func (ProductSPA) TableName() string { return "product_spas" }
