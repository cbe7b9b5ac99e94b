package services

import (
	"fmt"

	"supreme_fitness_backend/internal/models"
	"supreme_fitness_backend/internal/repositories"
)

// AnalyticsService exposes the read-only admin dashboard.
type AnalyticsService interface {
	GetDashboardStats() (*models.DashboardStats, error)
}

type analyticsService struct {
	analyticsRepo repositories.AnalyticsRepository
}

// NewAnalyticsService creates a new instance of AnalyticsService.
func NewAnalyticsService(ar repositories.AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepo: ar}
}

func (s *analyticsService) GetDashboardStats() (*models.DashboardStats, error) {
	stats, err := s.analyticsRepo.GetDashboardStats()
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
	}
	return stats, nil
}
