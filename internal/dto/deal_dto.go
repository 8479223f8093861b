package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DealsSummaryResponse aggregates the active deals at a glance.
// expiringThisWeek counts active SPAs whose end date falls within 7 days.
type DealsSummaryResponse struct {
	ActiveSPAs       int64           `json:"activeSPAs"`
	ExpiringThisWeek int64           `json:"expiringThisWeek"`
	TotalSavings     decimal.Decimal `json:"totalSavings"`
}

// SPAProductResponse is one member product inside a deal listing.
type SPAProductResponse struct {
	ProductID     string          `json:"productId"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	DiscountPrice decimal.Decimal `json:"discountPrice"`
}

type SPAResponse struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	StartDate time.Time            `json:"startDate"`
	EndDate   time.Time            `json:"endDate"`
	Discount  decimal.Decimal      `json:"discount"`
	IsActive  bool                 `json:"isActive"`
	Products  []SPAProductResponse `json:"products"`
}
