package service

import (
	"context"

	"github.com/Nirpat3/MSABC/internal/dto"
	"github.com/Nirpat3/MSABC/internal/model"
	"github.com/Nirpat3/MSABC/internal/repository"

	"github.com/google/uuid"
)

// ProductService defines the business logic contract for the product catalog.
type ProductService interface {
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductDetailResponse, error)
	Categories(ctx context.Context) ([]string, error)
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductListResponse{
		Products: make([]dto.ProductResponse, 0, len(products)),
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}
	for _, p := range products {
		resp.Products = append(resp.Products, toProductResponse(&p))
	}
	return resp, nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductDetailResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.ProductDetailResponse{
		ProductResponse: toProductResponse(p),
		PriceHistory:    make([]dto.PriceHistoryResponse, 0, len(p.PriceHistory)),
		SPAs:            make([]dto.DealMembership, 0, len(p.SPAs)),
	}
	for _, h := range p.PriceHistory {
		detail.PriceHistory = append(detail.PriceHistory, dto.PriceHistoryResponse{
			ID:            h.ID.String(),
			UnitPrice:     h.UnitPrice,
			CasePrice:     h.CasePrice,
			EffectiveDate: h.EffectiveDate,
		})
	}
	for _, link := range p.SPAs {
		detail.SPAs = append(detail.SPAs, dto.DealMembership{
			SpaID:         link.SpaID.String(),
			Name:          link.SPA.Name,
			StartDate:     link.SPA.StartDate,
			EndDate:       link.SPA.EndDate,
			Discount:      link.SPA.Discount,
			DiscountPrice: link.DiscountPrice,
			IsActive:      link.SPA.IsActive,
		})
	}
	return detail, nil
}

func (s *productService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.DistinctCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

func toProductResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID.String(),
		Code:      p.Code,
		Name:      p.Name,
		Category:  p.Category,
		Size:      p.Size,
		Proof:     p.Proof,
		UnitPrice: p.UnitPrice,
		CasePrice: p.CasePrice,
		IsStocked: p.IsStocked,
		CreatedAt: p.CreatedAt,
	}
}
