package service

import (
	"context"

	"github.com/Nirpat3/MSABC/internal/dto"
	"github.com/Nirpat3/MSABC/internal/model"
	"github.com/Nirpat3/MSABC/internal/repository"
)

type SpecialOrderService interface {
	List(ctx context.Context, filter dto.SpecialOrderFilter) ([]dto.SpecialOrderResponse, error)
	Create(ctx context.Context, req dto.CreateSpecialOrderRequest) (*dto.SpecialOrderResponse, error)
}

type specialOrderService struct {
	repo repository.SpecialOrderRepository
}

func NewSpecialOrderService(repo repository.SpecialOrderRepository) SpecialOrderService {
	return &specialOrderService{repo: repo}
}

func (s *specialOrderService) List(ctx context.Context, filter dto.SpecialOrderFilter) ([]dto.SpecialOrderResponse, error) {
	orders, err := s.repo.List(ctx, filter.Status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SpecialOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toSpecialOrderResponse(&o))
	}
	return out, nil
}

func (s *specialOrderService) Create(ctx context.Context, req dto.CreateSpecialOrderRequest) (*dto.SpecialOrderResponse, error) {
	order := &model.SpecialOrder{
		CustomerName: req.CustomerName,
		ProductName:  req.ProductName,
		ProductCode:  req.ProductCode,
		Quantity:     req.Quantity,
		Status:       req.Status,
		Notes:        req.Notes,
	}
	if order.Quantity < 1 {
		order.Quantity = 1
	}
	if order.Status == "" {
		order.Status = "pending"
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	resp := toSpecialOrderResponse(order)
	return &resp, nil
}

func toSpecialOrderResponse(o *model.SpecialOrder) dto.SpecialOrderResponse {
	return dto.SpecialOrderResponse{
		ID:           o.ID.String(),
		CustomerName: o.CustomerName,
		ProductName:  o.ProductName,
		ProductCode:  o.ProductCode,
		Quantity:     o.Quantity,
		Status:       o.Status,
		Notes:        o.Notes,
		CreatedAt:    o.CreatedAt,
	}
}
