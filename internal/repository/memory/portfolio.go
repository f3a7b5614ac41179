package memory

import (
	"context"
	"time"

	"github.com/wearecreatives/api/internal/apperror"
	"github.com/wearecreatives/api/internal/model"
)

func (s *Store) CreatePortfolioItem(_ context.Context, in model.InsertPortfolioItem) (*model.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextPortfolioID
	s.nextPortfolioID++

	item := model.NewPortfolioItem(in, id, time.Now())
	item.Tags = cloneStrings(item.Tags)
	s.portfolio[id] = item

	out := item
	out.Tags = cloneStrings(item.Tags)
	return &out, nil
}

func (s *Store) GetPortfolioItemByID(_ context.Context, id int) (*model.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.portfolio[id]
	if !ok {
		return nil, apperror.NotFound("portfolio item", id)
	}
	item.Tags = cloneStrings(item.Tags)
	return &item, nil
}

func (s *Store) ListPortfolioItems(_ context.Context) ([]model.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filterPortfolio(func(model.PortfolioItem) bool { return true }), nil
}

func (s *Store) ListFeaturedPortfolioItems(_ context.Context) ([]model.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filterPortfolio(func(item model.PortfolioItem) bool { return item.Featured }), nil
}

func (s *Store) ListApprovedPortfolioItems(_ context.Context) ([]model.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filterPortfolio(func(item model.PortfolioItem) bool { return item.IsApproved }), nil
}

func (s *Store) ListPendingPortfolioItems(_ context.Context) ([]model.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filterPortfolio(func(item model.PortfolioItem) bool { return !item.IsApproved }), nil
}

func (s *Store) ListPortfolioItemsByCreative(_ context.Context, creativeID int) ([]model.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filterPortfolio(func(item model.PortfolioItem) bool {
		return item.CreativeID != nil && *item.CreativeID == creativeID
	}), nil
}

func (s *Store) ApprovePortfolioItem(_ context.Context, id int) (*model.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.portfolio[id]
	if !ok {
		return nil, apperror.NotFound("portfolio item", id)
	}

	now := time.Now()
	item.IsApproved = true
	item.ApprovedAt = &now
	s.portfolio[id] = item

	out := item
	out.Tags = cloneStrings(item.Tags)
	return &out, nil
}

// filterPortfolio linearly scans the collection. Caller must hold s.mu.
func (s *Store) filterPortfolio(keep func(model.PortfolioItem) bool) []model.PortfolioItem {
	items := make([]model.PortfolioItem, 0, len(s.portfolio))
	for _, item := range s.portfolio {
		if keep(item) {
			item.Tags = cloneStrings(item.Tags)
			items = append(items, item)
		}
	}
	sortByID(items, func(i model.PortfolioItem) int { return i.ID })
	return items
}
