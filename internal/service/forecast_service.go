package service

import (
	"context"

	"github.com/Nirpat3/MSABC/internal/dto"
	"github.com/Nirpat3/MSABC/internal/repository"
)

type ForecastService interface {
	List(ctx context.Context) ([]dto.ForecastResponse, error)
}

type forecastService struct {
	repo repository.ForecastRepository
}

func NewForecastService(repo repository.ForecastRepository) ForecastService {
	return &forecastService{repo: repo}
}

func (s *forecastService) List(ctx context.Context) ([]dto.ForecastResponse, error) {
	forecasts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ForecastResponse, 0, len(forecasts))
	for _, f := range forecasts {
		out = append(out, dto.ForecastResponse{
			ID:             f.ID.String(),
			WeekStart:      f.WeekStart,
			ProjectedUnits: f.ProjectedUnits,
			Notes:          f.Notes,
		})
	}
	return out, nil
}
