package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/Nirpat3/MSABC/internal/dto"
	"github.com/Nirpat3/MSABC/internal/infra"
	"github.com/Nirpat3/MSABC/internal/model"
	"github.com/Nirpat3/MSABC/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Input truncation limits — large price lists are cut before being sent
// upstream so a single page never blows the model's context window.
const (
	maxParseChars    = 50000
	maxAnalyzeChars  = 30000
	parseMaxTokens   = 4096
	analyzeMaxTokens = 2048
)

// Per-million-token rates used for the billing log.
var (
	inputTokenRate  = decimal.NewFromInt(3)
	outputTokenRate = decimal.NewFromInt(15)
	million         = decimal.NewFromInt(1_000_000)
)

// ScraperService turns pasted HTML into structured records via the model
// endpoint and persists accepted batches.
//
// Extraction calls are stateless and made at most once per invocation, with
// no retry. A malformed JSON reply degrades to an empty result (or an unknown
// classification) and is never surfaced as an error; a reply whose first
// content block is not text IS surfaced — that asymmetry is intentional.
type ScraperService interface {
	ParseProducts(ctx context.Context, html string) ([]dto.ScrapedProduct, error)
	ParseSPAs(ctx context.Context, html string) ([]dto.ScrapedSPA, error)
	AnalyzePage(ctx context.Context, url, html string) (*dto.PageAnalysis, error)

	SaveProducts(ctx context.Context, products []dto.ScrapedProduct) error
	SaveSPAs(ctx context.Context, spas []dto.ScrapedSPA) error
	RecentLogs(ctx context.Context) ([]dto.SyncLogResponse, error)
}

type scraperService struct {
	ai        infra.CompletionClient
	modelName string
	products  repository.ProductRepository
	spas      repository.SPARepository
	history   repository.PriceHistoryRepository
	syncLogs  repository.SyncLogRepository
	usage     repository.TokenUsageRepository
}

func NewScraperService(
	ai infra.CompletionClient,
	modelName string,
	products repository.ProductRepository,
	spas repository.SPARepository,
	history repository.PriceHistoryRepository,
	syncLogs repository.SyncLogRepository,
	usage repository.TokenUsageRepository,
) ScraperService {
	return &scraperService{
		ai:        ai,
		modelName: modelName,
		products:  products,
		spas:      spas,
		history:   history,
		syncLogs:  syncLogs,
		usage:     usage,
	}
}

// ─── Extraction ──────────────────────────────────────────────────────────────

const productPrompt = `Parse the following HTML content from an ABC price list and extract product information. Return a JSON array of products with the following structure:
{
  "products": [
    {
      "code": "product code",
      "name": "product name",
      "category": "category if available",
      "size": "bottle size",
      "proof": numeric proof value,
      "unitPrice": numeric unit price,
      "casePrice": numeric case price
    }
  ]
}

Only return valid JSON, no other text.

HTML Content:
`

const spaPrompt = `Parse the following HTML content from an ABC SPA (Special Pricing Allowance) document and extract deal information. Return a JSON array with the following structure:
{
  "spas": [
    {
      "name": "deal/promotion name",
      "startDate": "YYYY-MM-DD",
      "endDate": "YYYY-MM-DD",
      "discount": numeric discount percentage or amount,
      "products": ["product code 1", "product code 2"]
    }
  ]
}

Only return valid JSON, no other text.

HTML Content:
`

const analyzePromptFmt = `Analyze this web page from the Mississippi ABC website and determine what type of data it contains.

URL: %s

Classify the page as one of:
- price_list: Contains product pricing information
- spa: Contains Special Pricing Allowance deals
- order_form: Contains order form templates
- unknown: Cannot determine the content type

Provide a brief summary and extract any key data points.

Return JSON only:
{
  "summary": "brief description of the page",
  "dataType": "price_list|spa|order_form|unknown",
  "extractedData": {
    "key data points as key-value pairs"
  }
}

HTML Content (first 30000 chars):
%s`

// truncate cuts s to at most max bytes, backing up to a rune boundary so the
// prompt never ends in a split multibyte character.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// complete sends one prompt upstream, logs the billed tokens, and returns the
// first text block of the reply.
func (s *scraperService) complete(ctx context.Context, operation, prompt string, maxTokens int) (string, error) {
	resp, err := s.ai.Complete(ctx, infra.CompletionRequest{
		Model:     s.modelName,
		MaxTokens: maxTokens,
		Messages:  []infra.Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	s.recordUsage(ctx, operation, resp.Usage)

	return resp.FirstText()
}

// recordUsage appends one billing row. Best effort: a failed write must not
// fail the extraction that already succeeded.
func (s *scraperService) recordUsage(ctx context.Context, operation string, u infra.Usage) {
	in := decimal.NewFromInt(int64(u.InputTokens))
	out := decimal.NewFromInt(int64(u.OutputTokens))
	cost := in.Mul(inputTokenRate).Add(out.Mul(outputTokenRate)).Div(million)

	row := &model.TokenUsage{
		Operation:    operation,
		Model:        s.modelName,
		InputTokens:  u.InputTokens,
		OutputTokens: u.OutputTokens,
		Cost:         cost,
	}
	if err := s.usage.Create(ctx, row); err != nil {
		log.Warn().Err(err).Str("operation", operation).Msg("failed to record token usage")
	}
}

func (s *scraperService) ParseProducts(ctx context.Context, html string) ([]dto.ScrapedProduct, error) {
	text, err := s.complete(ctx, "parse_products", productPrompt+truncate(html, maxParseChars), parseMaxTokens)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Products []dto.ScrapedProduct `json:"products"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		log.Warn().Err(err).Msg("failed to parse model reply as product JSON")
		return []dto.ScrapedProduct{}, nil
	}
	if parsed.Products == nil {
		return []dto.ScrapedProduct{}, nil
	}
	return parsed.Products, nil
}

func (s *scraperService) ParseSPAs(ctx context.Context, html string) ([]dto.ScrapedSPA, error) {
	text, err := s.complete(ctx, "parse_spas", spaPrompt+truncate(html, maxParseChars), parseMaxTokens)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		SPAs []dto.ScrapedSPA `json:"spas"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		log.Warn().Err(err).Msg("failed to parse model reply as SPA JSON")
		return []dto.ScrapedSPA{}, nil
	}
	if parsed.SPAs == nil {
		return []dto.ScrapedSPA{}, nil
	}
	return parsed.SPAs, nil
}

func (s *scraperService) AnalyzePage(ctx context.Context, url, html string) (*dto.PageAnalysis, error) {
	if url == "" {
		url = "unknown"
	}
	prompt := fmt.Sprintf(analyzePromptFmt, url, truncate(html, maxAnalyzeChars))
	text, err := s.complete(ctx, "analyze_page", prompt, analyzeMaxTokens)
	if err != nil {
		return nil, err
	}

	var analysis dto.PageAnalysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		log.Warn().Err(err).Msg("failed to parse model reply as page analysis")
		return &dto.PageAnalysis{
			Summary:       "Failed to analyze page",
			DataType:      "unknown",
			ExtractedData: map[string]any{},
		}, nil
	}
	if analysis.ExtractedData == nil {
		analysis.ExtractedData = map[string]any{}
	}
	return &analysis, nil
}

// ─── Import persistence ──────────────────────────────────────────────────────

// SaveProducts upserts each entry keyed by code inside one transaction and
// appends a price-history row whenever a price changed (or the product is
// new). One SyncLog row summarizes the batch.
func (s *scraperService) SaveProducts(ctx context.Context, products []dto.ScrapedProduct) error {
	return s.products.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.saveProductsTx(tx, products, time.Now())
	})
}

func (s *scraperService) saveProductsTx(tx *gorm.DB, products []dto.ScrapedProduct, startedAt time.Time) error {
	for _, sp := range products {
		existing, err := s.products.FindByCodeTx(tx, sp.Code)
		isNew := errors.Is(err, gorm.ErrRecordNotFound)
		if err != nil && !isNew {
			return err
		}

		p := scrapedToProduct(sp)
		if !isNew {
			p.ID = existing.ID
			p.IsStocked = existing.IsStocked
		}
		if err := s.products.UpsertTx(tx, p); err != nil {
			return err
		}

		priceChanged := isNew ||
			!existing.UnitPrice.Equal(p.UnitPrice) ||
			!existing.CasePrice.Equal(p.CasePrice)
		if priceChanged {
			entry := &model.PriceHistory{
				ProductID:     p.ID,
				UnitPrice:     p.UnitPrice,
				CasePrice:     p.CasePrice,
				EffectiveDate: startedAt,
			}
			if err := s.history.CreateTx(tx, entry); err != nil {
				return err
			}
		}
	}

	return s.appendSyncLog(tx, "price_list", fmt.Sprintf("Imported %d products", len(products)), startedAt)
}

// SaveSPAs inserts every parsed deal as a new active SPA (no dedup) and
// upserts a product link for each referenced code that exists in the catalog.
func (s *scraperService) SaveSPAs(ctx context.Context, spas []dto.ScrapedSPA) error {
	return s.products.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.saveSPAsTx(tx, spas, time.Now())
	})
}

func (s *scraperService) saveSPAsTx(tx *gorm.DB, spas []dto.ScrapedSPA, startedAt time.Time) error {
	for _, sc := range spas {
		start, err1 := time.Parse("2006-01-02", sc.StartDate)
		end, err2 := time.Parse("2006-01-02", sc.EndDate)
		if err1 != nil || err2 != nil {
			log.Warn().Str("spa", sc.Name).Msg("skipping SPA with unparseable dates")
			continue
		}

		spa := &model.SPA{
			Name:      sc.Name,
			StartDate: start,
			EndDate:   end,
			Discount:  sc.Discount,
			IsActive:  true,
		}
		if err := s.spas.CreateTx(tx, spa); err != nil {
			return err
		}

		for _, code := range sc.Products {
			product, err := s.products.FindByCodeTx(tx, code)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			link := &model.ProductSPA{
				ProductID:     product.ID,
				SpaID:         spa.ID,
				DiscountPrice: discountedPrice(product.UnitPrice, sc.Discount),
			}
			if err := s.spas.UpsertLinkTx(tx, link); err != nil {
				return err
			}
		}
	}

	return s.appendSyncLog(tx, "spa", fmt.Sprintf("Imported %d SPAs", len(spas)), startedAt)
}

func (s *scraperService) appendSyncLog(tx *gorm.DB, logType, message string, startedAt time.Time) error {
	completed := time.Now()
	return s.syncLogs.CreateTx(tx, &model.SyncLog{
		Type:        logType,
		Status:      "success",
		Message:     message,
		StartedAt:   startedAt,
		CompletedAt: &completed,
	})
}

func (s *scraperService) RecentLogs(ctx context.Context) ([]dto.SyncLogResponse, error) {
	logs, err := s.syncLogs.ListRecent(ctx, 20)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SyncLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.SyncLogResponse{
			ID:          l.ID.String(),
			Type:        l.Type,
			Status:      l.Status,
			Message:     l.Message,
			StartedAt:   l.StartedAt,
			CompletedAt: l.CompletedAt,
		})
	}
	return out, nil
}

func scrapedToProduct(sp dto.ScrapedProduct) *model.Product {
	p := &model.Product{
		Code:      sp.Code,
		Name:      sp.Name,
		Category:  sp.Category,
		Size:      sp.Size,
		Proof:     sp.Proof,
		IsStocked: true,
	}
	if sp.UnitPrice != nil {
		p.UnitPrice = *sp.UnitPrice
	}
	if sp.CasePrice != nil {
		p.CasePrice = *sp.CasePrice
	}
	return p
}

// discountedPrice applies the deal discount to a unit price. Discounts up to
// 100 are read as percentages; larger values as absolute dollar amounts off.
// The result never goes below zero.
func discountedPrice(unitPrice, discount decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	var price decimal.Decimal
	if discount.LessThanOrEqual(hundred) {
		price = unitPrice.Mul(hundred.Sub(discount)).Div(hundred)
	} else {
		price = unitPrice.Sub(discount)
	}
	if price.IsNegative() {
		return decimal.Zero
	}
	return price.Round(2)
}
