package dto

import "github.com/shopspring/decimal"

type BillingSummaryResponse struct {
	TotalInputTokens  int64           `json:"totalInputTokens"`
	TotalOutputTokens int64           `json:"totalOutputTokens"`
	TotalCost         decimal.Decimal `json:"totalCost"`
}
