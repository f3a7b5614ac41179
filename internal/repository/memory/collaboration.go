package memory

import (
	"context"
	"time"

	"github.com/wearecreatives/api/internal/apperror"
	"github.com/wearecreatives/api/internal/model"
)

func (s *Store) CreateCollaboration(_ context.Context, in model.InsertCollaborationRequest) (*model.CollaborationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextCollaborationID
	s.nextCollaborationID++

	request := model.NewCollaborationRequest(in, id, time.Now())
	s.collaborations[id] = request
	return &request, nil
}

func (s *Store) GetCollaborationByID(_ context.Context, id int) (*model.CollaborationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.collaborations[id]
	if !ok {
		return nil, apperror.NotFound("collaboration request", id)
	}
	return &request, nil
}

func (s *Store) ListCollaborations(_ context.Context) ([]model.CollaborationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requests := make([]model.CollaborationRequest, 0, len(s.collaborations))
	for _, request := range s.collaborations {
		requests = append(requests, request)
	}
	sortByID(requests, func(r model.CollaborationRequest) int { return r.ID })
	return requests, nil
}

// ListCollaborationsByCreative returns requests where the creative is on
// either side — the sent and received views share one endpoint.
func (s *Store) ListCollaborationsByCreative(_ context.Context, creativeID int) ([]model.CollaborationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requests := make([]model.CollaborationRequest, 0)
	for _, request := range s.collaborations {
		if request.FromCreativeID == creativeID || request.ToCreativeID == creativeID {
			requests = append(requests, request)
		}
	}
	sortByID(requests, func(r model.CollaborationRequest) int { return r.ID })
	return requests, nil
}

func (s *Store) UpdateCollaborationStatus(_ context.Context, id int, status string) (*model.CollaborationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.collaborations[id]
	if !ok {
		return nil, apperror.NotFound("collaboration request", id)
	}

	now := time.Now()
	request.Status = status
	request.RespondedAt = &now
	s.collaborations[id] = request
	return &request, nil
}
