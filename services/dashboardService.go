package services

import (
	"PulmoCare/repositories"
	"context"
)

type DashboardService struct {
	repository *repositories.DashboardRepository
}

func NewDashboardService(repository *repositories.DashboardRepository) *DashboardService {
	return &DashboardService{repository: repository}
}

func (s *DashboardService) GetStats(ctx context.Context) (*repositories.DashboardStats, error) {
	return s.repository.GetStats(ctx)
}
