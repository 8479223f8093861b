//go:build integration

package e2e

// e2e_test.go
// End-to-end integration tests using real Postgres via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// Covered flows:
//   - Catalog queries: category filter with name ordering, search, pagination
//   - AI import: parse-products with save persists products, price history, sync log
//   - Re-importing an existing code updates in place, never duplicates
//   - parse-spas with save creates the deal, links known codes, skips unknown ones
//   - Deals summary aggregates active SPA savings
//   - Login against the configured bcrypt hash
//   - Product detail 404 for an unknown id

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Nirpat3/MSABC/internal/config"
	"github.com/Nirpat3/MSABC/internal/dto"
	"github.com/Nirpat3/MSABC/internal/infra"
	"github.com/Nirpat3/MSABC/internal/model"
	"github.com/Nirpat3/MSABC/internal/repository"
	"github.com/Nirpat3/MSABC/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// fakeAI satisfies infra.CompletionClient with a canned text reply, so the
// import pipeline runs end to end without an upstream model.
type fakeAI struct {
	reply string
	usage infra.Usage
}

func (f *fakeAI) Complete(_ context.Context, _ infra.CompletionRequest) (*infra.CompletionResponse, error) {
	return &infra.CompletionResponse{
		Content: []infra.ContentBlock{{Type: "text", Text: f.reply}},
		Usage:   f.usage,
	}, nil
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
	ai     *fakeAI
}

type seedProduct struct {
	code, name, category string
	unitPrice, casePrice float64
}

var catalog = []seedProduct{
	{"JD001", "Jack Daniel's Old No. 7", "Whiskey", 29.99, 340.00},
	{"CC001", "Crown Royal", "Whiskey", 32.99, 375.00},
	{"MM001", "Maker's Mark", "Bourbon", 34.99, 395.00},
	{"BM001", "Bulleit Bourbon", "Bourbon", 31.99, 360.00},
	{"GG001", "Grey Goose", "Vodka", 36.99, 420.00},
	{"TA001", "Tito's Handmade Vodka", "Vodka", 22.99, 260.00},
	{"BB001", "Bombay Sapphire", "Gin", 28.99, 325.00},
	{"TQ001", "Tanqueray", "Gin", 26.99, 305.00},
	{"BC001", "Bacardi Superior", "Rum", 16.99, 190.00},
	{"CM001", "Captain Morgan Original Spiced", "Rum", 18.99, 215.00},
	{"PC001", "Patron Silver", "Tequila", 49.99, 570.00},
	{"DJ001", "Don Julio Blanco", "Tequila", 54.99, 625.00},
	{"JW001", "Johnnie Walker Black Label", "Scotch", 39.99, 455.00},
	{"GL001", "Glenfiddich 12 Year", "Scotch", 45.99, 520.00},
	{"HN001", "Hennessy VS", "Cognac", 42.99, 490.00},
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("msabc_test"),
		tcPostgres.WithUsername("msabc"),
		tcPostgres.WithPassword("msabc"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("store-password"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:              3001,
		Env:               "test",
		DatabaseURL:       pgURL,
		AIModel:           "claude-sonnet-4-5",
		AdminUsername:     "admin",
		AdminName:         "Administrator",
		AdminPasswordHash: string(hash),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	products := repository.NewProductRepository(db)
	for _, sp := range catalog {
		category := sp.category
		p := &model.Product{
			Code:      sp.code,
			Name:      sp.name,
			Category:  &category,
			UnitPrice: decimal.NewFromFloat(sp.unitPrice),
			CasePrice: decimal.NewFromFloat(sp.casePrice),
			IsStocked: true,
		}
		require.NoError(t, products.Upsert(ctx, p))
	}

	gin.SetMode(gin.TestMode)
	ai := &fakeAI{usage: infra.Usage{InputTokens: 1200, OutputTokens: 300}}
	r := router.New(cfg, db, ai)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testEnv{server: srv, db: db, ai: ai}
}

func seedDeal(t *testing.T, env *testEnv) {
	t.Helper()
	ctx := context.Background()
	products := repository.NewProductRepository(env.db)
	spas := repository.NewSPARepository(env.db)

	spa := &model.SPA{
		Name:      "Winter Whiskey Promotion",
		StartDate: time.Now().Add(-24 * time.Hour),
		EndDate:   time.Now().Add(30 * 24 * time.Hour),
		Discount:  decimal.NewFromInt(10),
		IsActive:  true,
	}
	require.NoError(t, spas.Create(ctx, spa))

	for code, price := range map[string]float64{"JD001": 26.99, "CC001": 29.69} {
		p, err := products.FindByCode(ctx, code)
		require.NoError(t, err)
		require.NoError(t, spas.UpsertLink(ctx, &model.ProductSPA{
			ProductID:     p.ID,
			SpaID:         spa.ID,
			DiscountPrice: decimal.NewFromFloat(price),
		}))
	}
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_CatalogQueries(t *testing.T) {
	env := setupTestEnv(t)

	// Category filter returns exactly the whiskeys, ordered by name ascending.
	resp := do(t, env.server, "GET", "/api/products?category=Whiskey", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.ProductListResponse
	decodeJSON(t, resp, &list)
	require.Equal(t, int64(2), list.Total)
	require.Len(t, list.Products, 2)
	assert.Equal(t, "Crown Royal", list.Products[0].Name)
	assert.Equal(t, "Jack Daniel's Old No. 7", list.Products[1].Name)

	// Search matches name or code, case-insensitively.
	resp = do(t, env.server, "GET", "/api/products?search=jack", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &list)
	require.Equal(t, int64(1), list.Total)
	assert.Equal(t, "JD001", list.Products[0].Code)

	// Pagination: 15 products at 5 per page, page 2 holds the middle slice.
	resp = do(t, env.server, "GET", "/api/products?page=2&limit=5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &list)
	assert.Equal(t, int64(15), list.Total)
	assert.Equal(t, 2, list.Page)
	require.Len(t, list.Products, 5)

	// Distinct categories, sorted.
	resp = do(t, env.server, "GET", "/api/products/meta/categories", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var categories []string
	decodeJSON(t, resp, &categories)
	assert.Equal(t, []string{"Bourbon", "Cognac", "Gin", "Rum", "Scotch", "Tequila", "Vodka", "Whiskey"}, categories)
}

func TestE2E_ImportPersistsProductsAndLogs(t *testing.T) {
	env := setupTestEnv(t)

	env.ai.reply = `{"products":[
		{"code":"WT001","name":"Woodford Reserve","category":"Bourbon","size":"750ml","unitPrice":38.99,"casePrice":440.00},
		{"code":"JD001","name":"Jack Daniel's Old No. 7","category":"Whiskey","size":"750ml","unitPrice":27.49,"casePrice":312.00}
	]}`

	resp := do(t, env.server, "POST", "/api/scraper/parse-products",
		jsonBody(t, map[string]any{"htmlContent": "<table>price list</table>", "save": true}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var parsed dto.ParseProductsResponse
	decodeJSON(t, resp, &parsed)
	assert.Equal(t, 2, parsed.Count)
	assert.True(t, parsed.Saved)

	// The new product is queryable and the existing one updated in place.
	var list dto.ProductListResponse
	resp = do(t, env.server, "GET", "/api/products?search=WT001", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &list)
	require.Equal(t, int64(1), list.Total)
	assert.Equal(t, "Woodford Reserve", list.Products[0].Name)

	resp = do(t, env.server, "GET", "/api/products?search=JD001", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &list)
	require.Equal(t, int64(1), list.Total) // upsert by code, no duplicate row
	assert.True(t, list.Products[0].UnitPrice.Equal(decimal.NewFromFloat(27.49)))

	// The price change appended a history row, visible on the detail view.
	resp = do(t, env.server, "GET", "/api/products/"+list.Products[0].ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var detail dto.ProductDetailResponse
	decodeJSON(t, resp, &detail)
	require.NotEmpty(t, detail.PriceHistory)
	assert.True(t, detail.PriceHistory[0].UnitPrice.Equal(decimal.NewFromFloat(27.49)))

	// The batch produced one sync log entry.
	resp = do(t, env.server, "GET", "/api/scraper/sync-logs", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var logs []dto.SyncLogResponse
	decodeJSON(t, resp, &logs)
	require.NotEmpty(t, logs)
	assert.Equal(t, "price_list", logs[0].Type)
	assert.Equal(t, "success", logs[0].Status)
	assert.Equal(t, "Imported 2 products", logs[0].Message)

	// Token usage from the model call shows up in the billing summary.
	resp = do(t, env.server, "GET", "/api/billing/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var billing dto.BillingSummaryResponse
	decodeJSON(t, resp, &billing)
	assert.Equal(t, int64(1200), billing.TotalInputTokens)
	assert.Equal(t, int64(300), billing.TotalOutputTokens)
}

func TestE2E_SPAImportAndLinkUpsert(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	start := time.Now().Add(-24 * time.Hour).Format("2006-01-02")
	end := time.Now().Add(30 * 24 * time.Hour).Format("2006-01-02")
	env.ai.reply = fmt.Sprintf(`{"spas":[
		{"name":"Spring Bourbon Deal","startDate":"%s","endDate":"%s",
		 "discount":10,"products":["MM001","ZZ999"]}
	]}`, start, end)

	resp := do(t, env.server, "POST", "/api/scraper/parse-spas",
		jsonBody(t, map[string]any{"htmlContent": "<div>spa circular</div>", "save": true}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var parsed dto.ParseSPAsResponse
	decodeJSON(t, resp, &parsed)
	assert.Equal(t, 1, parsed.Count)
	assert.True(t, parsed.Saved)

	// The deal is live with one linked product: the unknown code ZZ999 was
	// skipped, and MM001 (34.99) got 10% off.
	resp = do(t, env.server, "GET", "/api/deals/spas", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var deals []dto.SPAResponse
	decodeJSON(t, resp, &deals)
	require.Len(t, deals, 1)
	assert.Equal(t, "Spring Bourbon Deal", deals[0].Name)
	require.Len(t, deals[0].Products, 1)
	assert.Equal(t, "MM001", deals[0].Products[0].Code)
	assert.True(t, deals[0].Products[0].DiscountPrice.Equal(decimal.NewFromFloat(31.49)),
		"got %s", deals[0].Products[0].DiscountPrice)

	// The batch logged itself as an SPA import.
	resp = do(t, env.server, "GET", "/api/scraper/sync-logs", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var logs []dto.SyncLogResponse
	decodeJSON(t, resp, &logs)
	require.NotEmpty(t, logs)
	assert.Equal(t, "spa", logs[0].Type)
	assert.Equal(t, "Imported 1 SPAs", logs[0].Message)

	// Re-linking the same (product, spa) pair updates the price in place:
	// the composite unique index keeps exactly one row per pair.
	products := repository.NewProductRepository(env.db)
	spas := repository.NewSPARepository(env.db)
	mm, err := products.FindByCode(ctx, "MM001")
	require.NoError(t, err)
	spaID, err := uuid.Parse(deals[0].ID)
	require.NoError(t, err)
	require.NoError(t, spas.UpsertLink(ctx, &model.ProductSPA{
		ProductID:     mm.ID,
		SpaID:         spaID,
		DiscountPrice: decimal.NewFromFloat(29.99),
	}))

	resp = do(t, env.server, "GET", "/api/deals/spas", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &deals)
	require.Len(t, deals, 1)
	require.Len(t, deals[0].Products, 1)
	assert.True(t, deals[0].Products[0].DiscountPrice.Equal(decimal.NewFromFloat(29.99)))
}

func TestE2E_DealsSummary(t *testing.T) {
	env := setupTestEnv(t)
	seedDeal(t, env)

	resp := do(t, env.server, "GET", "/api/deals/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary dto.DealsSummaryResponse
	decodeJSON(t, resp, &summary)
	assert.Equal(t, int64(1), summary.ActiveSPAs)
	assert.Equal(t, int64(0), summary.ExpiringThisWeek)
	// (29.99 - 26.99) + (32.99 - 29.69)
	assert.True(t, summary.TotalSavings.Equal(decimal.NewFromFloat(6.30)),
		"got savings %s", summary.TotalSavings)

	resp = do(t, env.server, "GET", "/api/deals/spas", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var deals []dto.SPAResponse
	decodeJSON(t, resp, &deals)
	require.Len(t, deals, 1)
	assert.Equal(t, "Winter Whiskey Promotion", deals[0].Name)
	assert.Len(t, deals[0].Products, 2)
}

func TestE2E_Login(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "POST", "/api/auth/login",
		jsonBody(t, map[string]string{"username": "admin", "password": "store-password"}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login dto.LoginResponse
	decodeJSON(t, resp, &login)
	assert.Equal(t, "admin", login.Username)

	resp = do(t, env.server, "POST", "/api/auth/login",
		jsonBody(t, map[string]string{"username": "admin", "password": "wrong"}))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestE2E_ProductDetailNotFound(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "GET", fmt.Sprintf("/api/products/%s", uuid.New()), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
