package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wearecreatives/api/internal/model"
	"github.com/wearecreatives/api/internal/repository"
	"github.com/wearecreatives/api/internal/validation"
)

// PortfolioService handles portfolio submissions and their listings.
type PortfolioService struct {
	repo      repository.PortfolioRepository
	validator *validation.Validator
	logger    *slog.Logger
}

func NewPortfolioService(repo repository.PortfolioRepository, v *validation.Validator, logger *slog.Logger) *PortfolioService {
	return &PortfolioService{repo: repo, validator: v, logger: logger}
}

func (s *PortfolioService) Create(ctx context.Context, in model.InsertPortfolioItem) (*model.PortfolioItem, error) {
	if err := s.validator.Check("Invalid portfolio item data", in); err != nil {
		return nil, err
	}

	item, err := s.repo.CreatePortfolioItem(ctx, in)
	if err != nil {
		s.logger.Error("failed to create portfolio item",
			slog.String("title", in.Title),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating portfolio item: %w", err)
	}

	s.logger.Info("portfolio item created",
		slog.Int("id", item.ID),
		slog.String("title", item.Title),
	)
	return item, nil
}

func (s *PortfolioService) GetByID(ctx context.Context, id int) (*model.PortfolioItem, error) {
	return s.repo.GetPortfolioItemByID(ctx, id)
}

// ListApproved backs the public portfolio listing.
func (s *PortfolioService) ListApproved(ctx context.Context) ([]model.PortfolioItem, error) {
	return s.repo.ListApprovedPortfolioItems(ctx)
}

func (s *PortfolioService) ListFeatured(ctx context.Context) ([]model.PortfolioItem, error) {
	return s.repo.ListFeaturedPortfolioItems(ctx)
}

func (s *PortfolioService) ListPending(ctx context.Context) ([]model.PortfolioItem, error) {
	return s.repo.ListPendingPortfolioItems(ctx)
}

func (s *PortfolioService) ListByCreative(ctx context.Context, creativeID int) ([]model.PortfolioItem, error) {
	return s.repo.ListPortfolioItemsByCreative(ctx, creativeID)
}

func (s *PortfolioService) Approve(ctx context.Context, id int) (*model.PortfolioItem, error) {
	item, err := s.repo.ApprovePortfolioItem(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("portfolio item approved", slog.Int("id", item.ID))
	return item, nil
}
