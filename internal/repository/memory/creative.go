package memory

import (
	"context"
	"strconv"
	"time"

	"github.com/wearecreatives/api/internal/apperror"
	"github.com/wearecreatives/api/internal/model"
)

func (s *Store) CreateCreative(_ context.Context, in model.InsertCreativeProfile) (*model.CreativeProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextCreativeID
	s.nextCreativeID++

	profile := model.NewCreativeProfile(in, id, time.Now())
	s.creatives[id] = profile
	return &profile, nil
}

func (s *Store) GetCreativeByID(_ context.Context, id int) (*model.CreativeProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.creatives[id]
	if !ok {
		return nil, apperror.NotFound("creative profile", id)
	}
	return &profile, nil
}

func (s *Store) GetCreativeByUserID(_ context.Context, userID int) (*model.CreativeProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, profile := range s.creatives {
		if profile.UserID != nil && *profile.UserID == userID {
			p := profile
			return &p, nil
		}
	}
	return nil, apperror.NotFoundBy("creative profile", "userId", strconv.Itoa(userID))
}

func (s *Store) ListCreatives(_ context.Context) ([]model.CreativeProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles := make([]model.CreativeProfile, 0, len(s.creatives))
	for _, profile := range s.creatives {
		profiles = append(profiles, profile)
	}
	sortByID(profiles, func(p model.CreativeProfile) int { return p.ID })
	return profiles, nil
}

// UpdateCreative applies the provided fields over the stored record. Each
// non-nil field fully replaces the prior value; absent fields are untouched.
func (s *Store) UpdateCreative(_ context.Context, id int, upd model.ProfileUpdate) (*model.CreativeProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.creatives[id]
	if !ok {
		return nil, apperror.NotFound("creative profile", id)
	}

	if upd.ArtistName != nil {
		profile.ArtistName = *upd.ArtistName
	}
	if upd.Specialty != nil {
		profile.Specialty = *upd.Specialty
	}
	if upd.Bio != nil {
		profile.Bio = upd.Bio
	}
	if upd.Location != nil {
		profile.Location = upd.Location
	}
	if upd.InstagramHandle != nil {
		profile.InstagramHandle = upd.InstagramHandle
	}
	if upd.PortfolioWebsite != nil {
		profile.PortfolioWebsite = upd.PortfolioWebsite
	}
	if upd.ProfileImageURL != nil {
		profile.ProfileImageURL = upd.ProfileImageURL
	}

	s.creatives[id] = profile
	return &profile, nil
}

func (s *Store) UpdateCreativeRating(_ context.Context, id int, rating string, totalReviews int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.creatives[id]
	if !ok {
		return apperror.NotFound("creative profile", id)
	}

	profile.Rating = rating
	profile.TotalReviews = totalReviews
	s.creatives[id] = profile
	return nil
}
