package service

import (
	"context"

	"blogapi/internal/models"
	"blogapi/internal/repository"
)

type StatsService interface {
	GetStats(ctx context.Context) (*models.Stats, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetStats(ctx context.Context) (*models.Stats, error) {
	count, err := s.statsRepo.CountPosts(ctx)
	if err != nil {
		return nil, &StoreError{Op: "count posts", Err: err}
	}

	now, err := s.statsRepo.DatabaseTime(ctx)
	if err != nil {
		return nil, &StoreError{Op: "database time", Err: err}
	}

	return &models.Stats{Posts: count, DatabaseTime: now}, nil
}
