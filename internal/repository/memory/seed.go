package memory

import (
	"time"

	"github.com/wearecreatives/api/internal/model"
)

// Seed loads the fixture content the site launches with: three creative
// profiles, six portfolio items, and the three-entry service catalog.
//
// Seeding writes full records directly instead of going through the Create
// methods — this is the only place the featured flag can be set, and it keeps
// API creates honest (they always start unfeatured). Counters are advanced
// past the seeded ids so later creates continue the sequence.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	for _, profile := range seedCreatives(now) {
		s.creatives[profile.ID] = profile
		if profile.ID >= s.nextCreativeID {
			s.nextCreativeID = profile.ID + 1
		}
	}
	for _, item := range seedPortfolio(now) {
		s.portfolio[item.ID] = item
		if item.ID >= s.nextPortfolioID {
			s.nextPortfolioID = item.ID + 1
		}
	}
	for _, svc := range seedServices() {
		s.services[svc.ID] = svc
		if svc.ID >= s.nextServiceID {
			s.nextServiceID = svc.ID + 1
		}
	}
}

func ptr[T any](v T) *T { return &v }

func seedCreatives(now time.Time) []model.CreativeProfile {
	return []model.CreativeProfile{
		{
			ID:               1,
			ArtistName:       "Sarah Chen",
			Bio:              ptr("Traditional and neo-traditional tattoo artist with 8+ years experience"),
			Specialty:        "tattoo",
			Location:         ptr("Los Angeles, CA"),
			InstagramHandle:  ptr("@sarahchen_ink"),
			PortfolioWebsite: ptr("sarahchenart.com"),
			ProfileImageURL:  ptr("https://images.unsplash.com/photo-1494790108755-2616b612b647?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400"),
			Rating:           model.DefaultRating,
			JoinedAt:         now,
		},
		{
			ID:               2,
			ArtistName:       "Marcus Rodriguez",
			Bio:              ptr("Digital illustrator specializing in fantasy and mythology designs"),
			Specialty:        "illustration",
			Location:         ptr("Austin, TX"),
			InstagramHandle:  ptr("@marcus_creates"),
			PortfolioWebsite: ptr("marcusrodriguez.art"),
			ProfileImageURL:  ptr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400"),
			Rating:           model.DefaultRating,
			JoinedAt:         now,
		},
		{
			ID:              3,
			ArtistName:      "Luna Blackwood",
			Bio:             ptr("Dark art and blackwork specialist, creating unique geometric pieces"),
			Specialty:       "tattoo",
			Location:        ptr("Portland, OR"),
			InstagramHandle: ptr("@luna_blackink"),
			ProfileImageURL: ptr("https://images.unsplash.com/photo-1438761681033-6461ffad8d80?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400"),
			Rating:          model.DefaultRating,
			JoinedAt:        now,
		},
	}
}

func seedPortfolio(now time.Time) []model.PortfolioItem {
	item := func(id int, creativeID int, title, description, imageURL, category, style string, tags []string, featured bool) model.PortfolioItem {
		return model.PortfolioItem{
			ID:          id,
			CreativeID:  ptr(creativeID),
			Title:       title,
			Description: description,
			ImageURL:    imageURL,
			Category:    category,
			Style:       style,
			Tags:        tags,
			Featured:    featured,
			IsApproved:  true,
			SubmittedAt: now,
			ApprovedAt:  ptr(now),
		}
	}

	return []model.PortfolioItem{
		item(1, 1, "Dragon Design", "Traditional Style",
			"https://pixabay.com/get/g7b407bdc0ca405034979743a5ac1598ece1301dd23d48ec4e074efeb1f00261c7cb6008117dfed33ed5ead4b8b9b945bc1c5e2525ecbffd799c8391040809b86_1280.jpg",
			"Traditional", "Dragon", []string{"dragon", "traditional", "asian"}, true),
		item(2, 1, "Sacred Geometry", "Mandala Style",
			"https://pixabay.com/get/g02b0ab5861f741c16aee5bfc6de25b7e95057a18cd3f260a0e663a282a6c097ab72391879073c6dc55c71243c78ca550d4b6c74de316f6d748284692d39d24f0_1280.jpg",
			"Geometric", "Mandala", []string{"mandala", "geometric", "spiritual"}, false),
		item(3, 2, "Line Art", "Minimalist",
			"https://images.unsplash.com/photo-1611501275019-9b5cda994e8d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			"Minimalist", "Line Art", []string{"minimalist", "lineart", "simple"}, true),
		item(4, 1, "Portrait", "Realistic",
			"https://pixabay.com/get/gaf4ab3fa1eac6aafe73f5f00a5cd772349ea6741d89c14ffe92819864318ba57ee5eafd2819768db75299005323d8eac442df101149079384a1f2a85ef45b6a9_1280.jpg",
			"Realistic", "Portrait", []string{"portrait", "realistic", "face"}, false),
		item(5, 3, "Koi Fish", "Japanese Style",
			"https://images.unsplash.com/photo-1588776814546-1ffcf47267a5?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			"Japanese", "Koi Fish", []string{"koi", "japanese", "fish"}, true),
		item(6, 2, "Abstract Art", "Watercolor",
			"https://images.unsplash.com/photo-1565058379802-bbe93b2f703a?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			"Abstract", "Watercolor", []string{"abstract", "watercolor", "artistic"}, false),
	}
}

func seedServices() []model.Service {
	return []model.Service{
		{
			ID:          1,
			Name:        "Custom Design",
			Description: "Personalized tattoo designs created just for you",
			Features:    []string{"Consultation included", "3 design revisions", "High-res files", "Print-ready format"},
			PriceMin:    150,
			PriceMax:    ptr(300),
			Icon:        "palette",
			Color:       "neon-blue",
		},
		{
			ID:          2,
			Name:        "Flash Sheets",
			Description: "Ready-to-use design collections",
			Features:    []string{"50+ designs per sheet", "Various styles", "Commercial license", "Monthly updates"},
			PriceMin:    75,
			Icon:        "bolt",
			Color:       "neon-pink",
		},
		{
			ID:          3,
			Name:        "Premium Printing",
			Description: "Professional tattoo stencil printing",
			Features:    []string{"Thermal transfer paper", "Multiple sizes", "Fast turnaround", "Bulk discounts"},
			PriceMin:    25,
			PriceMax:    ptr(50),
			Icon:        "print",
			Color:       "neon-purple",
		},
	}
}
