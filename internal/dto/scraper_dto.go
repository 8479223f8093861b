package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AnalyzeRequest struct {
	URL         string `json:"url"`
	HTMLContent string `json:"htmlContent" validate:"required"`
}

type ParseRequest struct {
	HTMLContent string `json:"htmlContent" validate:"required"`
	Save        bool   `json:"save"`
}

// ─── Extraction results ──────────────────────────────────────────────────────

// ScrapedProduct is one product entry as returned by the model. Optional
// attributes stay nil when the source page did not carry them.
type ScrapedProduct struct {
	Code      string           `json:"code"`
	Name      string           `json:"name"`
	Category  *string          `json:"category,omitempty"`
	Size      *string          `json:"size,omitempty"`
	Proof     *decimal.Decimal `json:"proof,omitempty"`
	UnitPrice *decimal.Decimal `json:"unitPrice,omitempty"`
	CasePrice *decimal.Decimal `json:"casePrice,omitempty"`
}

// ScrapedSPA is one deal entry as returned by the model. Products holds the
// referenced product codes, which may or may not exist in the catalog yet.
type ScrapedSPA struct {
	Name      string          `json:"name"`
	StartDate string          `json:"startDate"` // YYYY-MM-DD
	EndDate   string          `json:"endDate"`   // YYYY-MM-DD
	Discount  decimal.Decimal `json:"discount"`
	Products  []string        `json:"products"`
}

// PageAnalysis is the classification result for a scraped page.
type PageAnalysis struct {
	Summary       string         `json:"summary"`
	DataType      string         `json:"dataType"` // price_list | spa | order_form | unknown
	ExtractedData map[string]any `json:"extractedData"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ParseProductsResponse struct {
	Products []ScrapedProduct `json:"products"`
	Count    int              `json:"count"`
	Saved    bool             `json:"saved"`
}

type ParseSPAsResponse struct {
	SPAs  []ScrapedSPA `json:"spas"`
	Count int          `json:"count"`
	Saved bool         `json:"saved"`
}

type SyncLogResponse struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Message     string     `json:"message"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt"`
}
