package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wearecreatives/api/internal/model"
	"github.com/wearecreatives/api/internal/repository"
)

// CatalogService exposes the read-only studio service catalog. The catalog is
// populated by the seed; there is no write path through the API.
type CatalogService struct {
	repo   repository.ServiceRepository
	logger *slog.Logger
}

func NewCatalogService(repo repository.ServiceRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) List(ctx context.Context) ([]model.Service, error) {
	services, err := s.repo.ListServices(ctx)
	if err != nil {
		s.logger.Error("failed to list services", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing services: %w", err)
	}
	return services, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id int) (*model.Service, error) {
	return s.repo.GetServiceByID(ctx, id)
}
