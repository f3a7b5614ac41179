package memory

import (
	"context"
	"testing"

	"github.com/wearecreatives/api/internal/model"
)

func TestSeed_FixtureCounts(t *testing.T) {
	s := New()
	s.Seed()
	ctx := context.Background()

	creatives, err := s.ListCreatives(ctx)
	if err != nil {
		t.Fatalf("ListCreatives() error = %v", err)
	}
	if len(creatives) != 3 {
		t.Errorf("seeded creatives = %d, want 3", len(creatives))
	}

	items, err := s.ListPortfolioItems(ctx)
	if err != nil {
		t.Fatalf("ListPortfolioItems() error = %v", err)
	}
	if len(items) != 6 {
		t.Errorf("seeded portfolio items = %d, want 6", len(items))
	}

	services, err := s.ListServices(ctx)
	if err != nil {
		t.Fatalf("ListServices() error = %v", err)
	}
	if len(services) != 3 {
		t.Errorf("seeded services = %d, want 3", len(services))
	}
}

func TestSeed_FeaturedSubset(t *testing.T) {
	s := New()
	s.Seed()
	ctx := context.Background()

	featured, err := s.ListFeaturedPortfolioItems(ctx)
	if err != nil {
		t.Fatalf("ListFeaturedPortfolioItems() error = %v", err)
	}
	if len(featured) != 3 {
		t.Fatalf("featured items = %d, want 3", len(featured))
	}
	for _, item := range featured {
		if !item.Featured {
			t.Errorf("item %d in featured listing has Featured = false", item.ID)
		}
	}

	// All seeds are approved, so the public listing shows everything.
	approved, err := s.ListApprovedPortfolioItems(ctx)
	if err != nil {
		t.Fatalf("ListApprovedPortfolioItems() error = %v", err)
	}
	if len(approved) != 6 {
		t.Errorf("approved items = %d, want 6", len(approved))
	}
}

func TestSeed_CountersContinuePastFixtures(t *testing.T) {
	s := New()
	s.Seed()
	ctx := context.Background()

	profile := createTestCreative(t, s, "New Artist")
	if profile.ID != 4 {
		t.Errorf("first post-seed creative ID = %d, want 4", profile.ID)
	}

	item, err := s.CreatePortfolioItem(ctx, model.InsertPortfolioItem{
		Title: "t", Description: "d", ImageURL: "u", Category: "c", Style: "s",
	})
	if err != nil {
		t.Fatalf("CreatePortfolioItem() error = %v", err)
	}
	if item.ID != 7 {
		t.Errorf("first post-seed portfolio ID = %d, want 7", item.ID)
	}
	if item.Featured {
		t.Error("post-seed create has Featured = true; featured must stay seed-only")
	}
}

func TestSeed_KnownFixtureContent(t *testing.T) {
	s := New()
	s.Seed()
	ctx := context.Background()

	sarah, err := s.GetCreativeByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetCreativeByID(1) error = %v", err)
	}
	if sarah.ArtistName != "Sarah Chen" {
		t.Errorf("creative 1 = %q, want %q", sarah.ArtistName, "Sarah Chen")
	}
	if sarah.Rating != "0.00" || sarah.TotalReviews != 0 {
		t.Errorf("creative 1 rating = %q/%d, want 0.00/0 before any review", sarah.Rating, sarah.TotalReviews)
	}

	printing, err := s.GetServiceByID(ctx, 3)
	if err != nil {
		t.Fatalf("GetServiceByID(3) error = %v", err)
	}
	if printing.Name != "Premium Printing" {
		t.Errorf("service 3 = %q, want %q", printing.Name, "Premium Printing")
	}
	if printing.PriceMin != 25 || printing.PriceMax == nil || *printing.PriceMax != 50 {
		t.Errorf("service 3 price range = %d–%v, want 25–50", printing.PriceMin, printing.PriceMax)
	}
	if len(printing.Features) != 4 {
		t.Errorf("service 3 features = %d, want 4", len(printing.Features))
	}
}
