package repositories

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"jetfriend/internal/models/place_models"
)

// MockPlacesRepository synthesizes place records from fixture tables when no
// Places API key is configured. Output is deterministic: the same fictitious
// place always gets the same image and price tier within a session.
type MockPlacesRepository struct {
	fixtures FixtureSet
}

func NewMockPlacesRepository(fixtures FixtureSet) PlacesRepository {
	return &MockPlacesRepository{fixtures: fixtures}
}

func (r *MockPlacesRepository) Live() bool {
	return false
}

// SearchPlaces ignores the radius hint; fixtures have no geography.
func (r *MockPlacesRepository) SearchPlaces(ctx context.Context, query, location string, _, maxResults int) ([]place_models.Place, error) {
	if location == "" {
		location = "your area"
	}

	table := r.selectTable(strings.ToLower(query))
	if maxResults > len(table) {
		maxResults = len(table)
	}

	places := make([]place_models.Place, 0, maxResults)
	for _, fixture := range table[:maxResults] {
		places = append(places, r.synthesize(fixture, location))
	}
	return places, nil
}

func (r *MockPlacesRepository) selectTable(query string) []Fixture {
	switch {
	case strings.Contains(query, "hidden gem") || strings.Contains(query, "local favorite"):
		return r.fixtures.HiddenGems
	case containsAny(query, "restaurant", "food", "eat", "dinner", "lunch"):
		return r.fixtures.Restaurants
	case containsAny(query, "hotel", "stay", "accommodation"):
		return r.fixtures.Hotels
	case containsAny(query, "museum", "park", "attraction"):
		return r.fixtures.Attractions
	default:
		mixed := append([]Fixture{}, r.fixtures.Restaurants...)
		mixed = append(mixed, r.fixtures.Hotels...)
		return append(mixed, r.fixtures.Attractions...)
	}
}

func (r *MockPlacesRepository) synthesize(fixture Fixture, location string) place_models.Place {
	h := hashName(fixture.Name)

	return place_models.Place{
		PlaceID:     fmt.Sprintf("mock_%08x", h),
		Name:        fixture.Name,
		Address:     fixture.Street + ", " + location,
		Description: fixture.Description,
		Rating:      fixture.Rating,
		RatingCount: fixture.RatingCount,
		PriceLevel:  int(h%4) + 1,
		Types:       fixture.Types,
		ImageURL:    r.imageFor(fixture, h),
	}
}

// imageFor picks a stable stock photo for a place by hashing its name over the
// category's image list.
func (r *MockPlacesRepository) imageFor(fixture Fixture, h uint32) string {
	var images []string
	switch {
	case fixtureHasType(fixture, "restaurant", "cafe", "food"):
		images = r.fixtures.Images["restaurant"]
	case fixtureHasType(fixture, "lodging", "hotel"):
		images = r.fixtures.Images["hotel"]
	default:
		images = r.fixtures.Images["attraction"]
	}

	if len(images) == 0 {
		return fallbackImageURL
	}
	return images[h%uint32(len(images))]
}

func hashName(name string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(name)))
	return h.Sum32()
}

func fixtureHasType(fixture Fixture, types ...string) bool {
	for _, want := range types {
		for _, t := range fixture.Types {
			if t == want {
				return true
			}
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
