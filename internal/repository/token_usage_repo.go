package repository

import (
	"context"

	"github.com/Nirpat3/MSABC/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TokenUsageSummary holds the aggregated totals for the billing endpoint.
type TokenUsageSummary struct {
	TotalInputTokens  int64
	TotalOutputTokens int64
	TotalCost         decimal.Decimal
}

type TokenUsageRepository interface {
	Create(ctx context.Context, u *model.TokenUsage) error
	Summary(ctx context.Context) (*TokenUsageSummary, error)
}

type tokenUsageRepo struct{ db *gorm.DB }

func NewTokenUsageRepository(db *gorm.DB) TokenUsageRepository {
	return &tokenUsageRepo{db: db}
}

func (r *tokenUsageRepo) Create(ctx context.Context, u *model.TokenUsage) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *tokenUsageRepo) Summary(ctx context.Context) (*TokenUsageSummary, error) {
	var s TokenUsageSummary
	err := r.db.WithContext(ctx).Model(&model.TokenUsage{}).
		Select("COALESCE(SUM(input_tokens), 0) AS total_input_tokens, " +
			"COALESCE(SUM(output_tokens), 0) AS total_output_tokens, " +
			"COALESCE(SUM(cost), 0) AS total_cost").
		Scan(&s).Error
	return &s, err
}
