package memory

import (
	"context"

	"github.com/wearecreatives/api/internal/apperror"
	"github.com/wearecreatives/api/internal/model"
)

// CreateService exists for seeding and tests; no API route reaches it.
func (s *Store) CreateService(_ context.Context, in model.InsertService) (*model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextServiceID
	s.nextServiceID++

	svc := model.NewService(in, id)
	svc.Features = cloneStrings(svc.Features)
	s.services[id] = svc

	out := svc
	out.Features = cloneStrings(svc.Features)
	return &out, nil
}

func (s *Store) GetServiceByID(_ context.Context, id int) (*model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, ok := s.services[id]
	if !ok {
		return nil, apperror.NotFound("service", id)
	}
	svc.Features = cloneStrings(svc.Features)
	return &svc, nil
}

func (s *Store) ListServices(_ context.Context) ([]model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	services := make([]model.Service, 0, len(s.services))
	for _, svc := range s.services {
		svc.Features = cloneStrings(svc.Features)
		services = append(services, svc)
	}
	sortByID(services, func(s model.Service) int { return s.ID })
	return services, nil
}
