package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Filter / Pagination ─────────────────────────────────────────────────────

// ProductFilter binds the product listing query parameters. IsStocked is a
// tri-state string ("true" / "false" / empty) so that absence means no filter.
type ProductFilter struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	IsStocked string `form:"isStocked"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID        string           `json:"id"`
	Code      string           `json:"code"`
	Name      string           `json:"name"`
	Category  *string          `json:"category"`
	Size      *string          `json:"size"`
	Proof     *decimal.Decimal `json:"proof"`
	UnitPrice decimal.Decimal  `json:"unitPrice"`
	CasePrice decimal.Decimal  `json:"casePrice"`
	IsStocked bool             `json:"isStocked"`
	CreatedAt time.Time        `json:"createdAt"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

type PriceHistoryResponse struct {
	ID            string          `json:"id"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	CasePrice     decimal.Decimal `json:"casePrice"`
	EffectiveDate time.Time       `json:"effectiveDate"`
}

// DealMembership is one deal a product participates in, flattened from the
// product_spas join row plus its SPA.
type DealMembership struct {
	SpaID         string          `json:"spaId"`
	Name          string          `json:"name"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	Discount      decimal.Decimal `json:"discount"`
	DiscountPrice decimal.Decimal `json:"discountPrice"`
	IsActive      bool            `json:"isActive"`
}

// ProductDetailResponse is the single-product view: the product itself, its
// 10 most recent price-history entries, and its deal memberships.
type ProductDetailResponse struct {
	ProductResponse
	PriceHistory []PriceHistoryResponse `json:"priceHistory"`
	SPAs         []DealMembership       `json:"spas"`
}
