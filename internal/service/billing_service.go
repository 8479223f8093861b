package service

import (
	"context"

	"github.com/Nirpat3/MSABC/internal/dto"
	"github.com/Nirpat3/MSABC/internal/repository"
)

type BillingService interface {
	Summary(ctx context.Context) (*dto.BillingSummaryResponse, error)
}

type billingService struct {
	repo repository.TokenUsageRepository
}

func NewBillingService(repo repository.TokenUsageRepository) BillingService {
	return &billingService{repo: repo}
}

func (s *billingService) Summary(ctx context.Context) (*dto.BillingSummaryResponse, error) {
	sum, err := s.repo.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.BillingSummaryResponse{
		TotalInputTokens:  sum.TotalInputTokens,
		TotalOutputTokens: sum.TotalOutputTokens,
		TotalCost:         sum.TotalCost,
	}, nil
}
