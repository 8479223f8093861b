package service

import (
	"context"
	"time"

	"github.com/Nirpat3/MSABC/internal/dto"
	"github.com/Nirpat3/MSABC/internal/repository"

	"github.com/shopspring/decimal"
)

// expiringWindow is the horizon for the "expiring this week" count.
const expiringWindow = 7 * 24 * time.Hour

// DealService aggregates SPA deals. Activity and expiry classifications are
// computed against the clock at query time, never persisted.
type DealService interface {
	Summary(ctx context.Context) (*dto.DealsSummaryResponse, error)
	ListActive(ctx context.Context) ([]dto.SPAResponse, error)
}

type dealService struct {
	repo repository.SPARepository
}

func NewDealService(repo repository.SPARepository) DealService {
	return &dealService{repo: repo}
}

func (s *dealService) Summary(ctx context.Context) (*dto.DealsSummaryResponse, error) {
	active, err := s.repo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	expiring, err := s.repo.CountExpiringBefore(ctx, time.Now().Add(expiringWindow))
	if err != nil {
		return nil, err
	}

	// Savings: per active deal link, the gap between the shelf price and the
	// deal price. Links priced above shelf contribute nothing.
	links, err := s.repo.ActiveLinks(ctx)
	if err != nil {
		return nil, err
	}
	savings := decimal.Zero
	for _, link := range links {
		gap := link.Product.UnitPrice.Sub(link.DiscountPrice)
		if gap.IsPositive() {
			savings = savings.Add(gap)
		}
	}

	return &dto.DealsSummaryResponse{
		ActiveSPAs:       active,
		ExpiringThisWeek: expiring,
		TotalSavings:     savings.Round(2),
	}, nil
}

func (s *dealService) ListActive(ctx context.Context) ([]dto.SPAResponse, error) {
	spas, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SPAResponse, 0, len(spas))
	for _, spa := range spas {
		resp := dto.SPAResponse{
			ID:        spa.ID.String(),
			Name:      spa.Name,
			StartDate: spa.StartDate,
			EndDate:   spa.EndDate,
			Discount:  spa.Discount,
			IsActive:  spa.IsActive,
			Products:  make([]dto.SPAProductResponse, 0, len(spa.Products)),
		}
		for _, link := range spa.Products {
			resp.Products = append(resp.Products, dto.SPAProductResponse{
				ProductID:     link.ProductID.String(),
				Code:          link.Product.Code,
				Name:          link.Product.Name,
				UnitPrice:     link.Product.UnitPrice,
				DiscountPrice: link.DiscountPrice,
			})
		}
		out = append(out, resp)
	}
	return out, nil
}
