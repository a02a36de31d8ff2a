package services

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"jetfriend/internal/models/place_models"
	"jetfriend/internal/repositories"
)

const (
	defaultMaxResults = 6
	hiddenGemSuffix   = "hidden gem local favorite"
)

var foodServiceTypes = []string{"restaurant", "cafe", "bar", "food", "meal_takeaway", "bakery"}
var lodgingTypes = []string{"lodging", "hotel"}

// Ordered category-badge table; first matching type wins.
var categoryBadges = []struct {
	placeType string
	badge     string
}{
	{"restaurant", "🍽️ Restaurant"},
	{"cafe", "☕ Café"},
	{"bar", "🍸 Bar"},
	{"bakery", "🥐 Bakery"},
	{"lodging", "🏨 Hotel"},
	{"hotel", "🏨 Hotel"},
	{"museum", "🏛️ Museum"},
	{"art_gallery", "🖼️ Gallery"},
	{"park", "🌳 Park"},
	{"place_of_worship", "⛩️ Temple"},
	{"tourist_attraction", "📸 Attraction"},
}

const defaultBadge = "📍 Place"

type PlacesServiceInterface interface {
	// FindPlaces never returns an error: a total provider failure degrades to
	// an empty list so the chat pipeline always has something to work with.
	// radius is the optional search bias in meters, 0 for provider default.
	FindPlaces(ctx context.Context, query, location string, radius int, singular bool) []place_models.Place
	Live() bool
}

type PlacesService struct {
	repo       repositories.PlacesRepository
	maxResults int
	logger     *zap.Logger
}

func NewPlacesService(repo repositories.PlacesRepository, maxResults int, logger *zap.Logger) PlacesServiceInterface {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	return &PlacesService{
		repo:       repo,
		maxResults: maxResults,
		logger:     logger,
	}
}

func (s *PlacesService) Live() bool {
	return s.repo.Live()
}

func (s *PlacesService) FindPlaces(ctx context.Context, query, location string, radius int, singular bool) []place_models.Place {
	maxResults := s.maxResults
	if singular {
		maxResults = 1
	}

	primary, err := s.repo.SearchPlaces(ctx, query, location, radius, maxResults)
	if err != nil {
		s.logger.Warn("place search failed", zap.String("query", query), zap.Error(err))
		primary = nil
	}

	merged := primary
	if !singular {
		merged = s.mergeAuthentic(ctx, query, location, radius, primary, maxResults)
	}

	for i := range merged {
		s.enrich(&merged[i], location)
	}
	if merged == nil {
		merged = []place_models.Place{}
	}
	return merged
}

// mergeAuthentic runs the second "underground" search pass and lists its
// results ahead of the generic ones, de-duplicated by place ID.
func (s *PlacesService) mergeAuthentic(ctx context.Context, query, location string, radius int, primary []place_models.Place, maxResults int) []place_models.Place {
	authentic, err := s.repo.SearchPlaces(ctx, query+" "+hiddenGemSuffix, location, radius, maxResults)
	if err != nil {
		s.logger.Debug("authentic place search failed", zap.String("query", query), zap.Error(err))
		return primary
	}

	seen := make(map[string]bool, len(authentic))
	merged := make([]place_models.Place, 0, maxResults)
	for _, p := range authentic {
		if len(merged) >= maxResults || seen[p.PlaceID] {
			continue
		}
		seen[p.PlaceID] = true
		merged = append(merged, p)
	}
	for _, p := range primary {
		if len(merged) >= maxResults || seen[p.PlaceID] {
			continue
		}
		seen[p.PlaceID] = true
		merged = append(merged, p)
	}
	return merged
}

func (s *PlacesService) enrich(place *place_models.Place, location string) {
	place.CategoryBadge = categoryBadge(place)
	place.SmartTags = smartTags(place)

	query := place.Name
	if location != "" {
		query += " " + location
	} else if place.Address != "" {
		query += " " + place.Address
	}
	encoded := url.QueryEscape(query)

	if place.GoogleMapsURL == "" {
		place.GoogleMapsURL = "https://www.google.com/maps/search/?api=1&query=" + encoded
	}

	place.SearchURLs = map[string]string{
		"yelp":        "https://www.yelp.com/search?find_desc=" + url.QueryEscape(place.Name) + "&find_loc=" + url.QueryEscape(location),
		"tripadvisor": "https://www.tripadvisor.com/Search?q=" + encoded,
		"opentable":   "https://www.opentable.com/s?term=" + encoded,
		"booking":     "https://www.booking.com/searchresults.html?ss=" + encoded,
		"uber":        "https://m.uber.com/ul/?action=setPickup&dropoff%5Bformatted_address%5D=" + encoded,
	}
	filterSearchURLs(place)
}

// filterSearchURLs enforces the category gating: reservation links only on
// food-service records, hotel-booking links only on lodging records.
func filterSearchURLs(place *place_models.Place) {
	if !place.HasAnyType(foodServiceTypes...) {
		delete(place.SearchURLs, "opentable")
	}
	if !place.HasAnyType(lodgingTypes...) {
		delete(place.SearchURLs, "booking")
	}
}

func categoryBadge(place *place_models.Place) string {
	for _, entry := range categoryBadges {
		if place.HasType(entry.placeType) {
			return entry.badge
		}
	}
	return defaultBadge
}

func smartTags(place *place_models.Place) []string {
	tags := []string{}
	if place.Rating >= 4.5 && place.RatingCount >= 100 {
		tags = append(tags, "highly-rated")
	}
	if place.PriceLevel > 0 && place.PriceLevel <= 2 {
		tags = append(tags, "budget-friendly")
	} else if place.PriceLevel >= 4 {
		tags = append(tags, "premium")
	}
	return tags
}
