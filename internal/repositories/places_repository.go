package repositories

import (
	"context"

	"jetfriend/internal/models/place_models"
)

// Fallback used whenever a place has no usable photo.
const fallbackImageURL = "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?auto=compress&cs=tinysrgb&w=1200"

// PlacesRepository is the place-search contract. Implementations return raw,
// unenriched records; badges, smart tags and provider links are layered on by
// the places service. radius is a search-bias hint in meters, 0 meaning
// provider default; offline strategies ignore it.
type PlacesRepository interface {
	SearchPlaces(ctx context.Context, query, location string, radius, maxResults int) ([]place_models.Place, error)
	Live() bool
}
