package service

import (
	"context"
	"fmt"

	"liveCrime/internal/domain"
	"liveCrime/pkg/e"
	"liveCrime/pkg/validator"
)

type statsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.TicketStats, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), e.ErrInvalidInput)
	}
	return s.repo.TicketStats(ctx, req.Minutes)
}
