// Package memory implements every repository interface over plain in-process
// maps. The store is the sole owner of entity state; its lifetime is the
// process lifetime and nothing is ever persisted.
//
// CONCURRENCY:
// net/http serves each request on its own goroutine, so unlike a
// cooperatively-scheduled host the store's mutations genuinely interleave.
// A single mutex guards every operation — id assignment and the map write
// happen atomically, which is what keeps ids unique and updates from being
// lost. Operations are short (map lookups and linear scans over small
// collections), so one lock for the whole store is plenty.
//
// COPY SEMANTICS:
// The maps hold values, not pointers. Reads return a copy of the stored
// value (plus cloned slices for list-valued fields), so callers can never
// mutate store state through a returned record.
package memory

import (
	"sort"
	"sync"

	"github.com/wearecreatives/api/internal/model"
	"github.com/wearecreatives/api/internal/repository"
)

// Compile-time checks that Store satisfies every repository interface.
var (
	_ repository.UserRepository          = (*Store)(nil)
	_ repository.CreativeRepository      = (*Store)(nil)
	_ repository.PortfolioRepository     = (*Store)(nil)
	_ repository.CollaborationRepository = (*Store)(nil)
	_ repository.ReviewRepository        = (*Store)(nil)
	_ repository.ServiceRepository       = (*Store)(nil)
	_ repository.BookingRepository       = (*Store)(nil)
	_ repository.ContactRepository       = (*Store)(nil)
)

// Store holds all entity state. Each entity type has its own map and its own
// id counter; counters start at 1, advance only on successful creates, and
// are never rewound — ids are unique per entity type for the process lifetime.
type Store struct {
	mu sync.Mutex

	users          map[int]model.User
	creatives      map[int]model.CreativeProfile
	portfolio      map[int]model.PortfolioItem
	collaborations map[int]model.CollaborationRequest
	reviews        map[int]model.CreativeReview
	services       map[int]model.Service
	bookings       map[int]model.Booking
	contacts       map[int]model.ContactMessage

	nextUserID          int
	nextCreativeID      int
	nextPortfolioID     int
	nextCollaborationID int
	nextReviewID        int
	nextServiceID       int
	nextBookingID       int
	nextContactID       int
}

// New creates an empty store. Call Seed to load the fixture content the site
// ships with.
func New() *Store {
	return &Store{
		users:          make(map[int]model.User),
		creatives:      make(map[int]model.CreativeProfile),
		portfolio:      make(map[int]model.PortfolioItem),
		collaborations: make(map[int]model.CollaborationRequest),
		reviews:        make(map[int]model.CreativeReview),
		services:       make(map[int]model.Service),
		bookings:       make(map[int]model.Booking),
		contacts:       make(map[int]model.ContactMessage),

		nextUserID:          1,
		nextCreativeID:      1,
		nextPortfolioID:     1,
		nextCollaborationID: 1,
		nextReviewID:        1,
		nextServiceID:       1,
		nextBookingID:       1,
		nextContactID:       1,
	}
}

// cloneStrings copies a list-valued field so stored and returned records never
// share backing arrays.
func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// sortByID gives listings a stable order (creation order, since ids are
// sequential). Go's map iteration order is deliberately random.
func sortByID[T any](items []T, id func(T) int) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
