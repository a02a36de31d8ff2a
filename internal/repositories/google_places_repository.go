package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"jetfriend/internal/models/place_models"
)

const (
	placesTextSearchURL = "https://maps.googleapis.com/maps/api/place/textsearch/json"
	placesDetailsURL    = "https://maps.googleapis.com/maps/api/place/details/json"
	placesPhotoURL      = "https://maps.googleapis.com/maps/api/place/photo"

	detailsFields = "website,formatted_phone_number,opening_hours,reviews"
)

// GooglePlacesRepository talks to the Google Places web services. Failures for
// an individual place degrade that place's fields to zero values; a failed
// search degrades to an empty result set.
type GooglePlacesRepository struct {
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger

	// Endpoint overrides, used by tests.
	searchURL  string
	detailsURL string
	photoBase  string
}

func NewGooglePlacesRepository(apiKey string, logger *zap.Logger) PlacesRepository {
	return &GooglePlacesRepository{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:     logger,
		searchURL:  placesTextSearchURL,
		detailsURL: placesDetailsURL,
		photoBase:  placesPhotoURL,
	}
}

func (r *GooglePlacesRepository) Live() bool {
	return true
}

type textSearchResponse struct {
	Results []struct {
		PlaceID          string   `json:"place_id"`
		Name             string   `json:"name"`
		FormattedAddress string   `json:"formatted_address"`
		Rating           float64  `json:"rating"`
		UserRatingsTotal int      `json:"user_ratings_total"`
		PriceLevel       int      `json:"price_level"`
		Types            []string `json:"types"`
		Photos           []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"results"`
	Status string `json:"status"`
}

type detailsResponse struct {
	Result struct {
		Website              string `json:"website"`
		FormattedPhoneNumber string `json:"formatted_phone_number"`
		OpeningHours         *struct {
			OpenNow bool `json:"open_now"`
		} `json:"opening_hours"`
		Reviews []struct {
			Text string `json:"text"`
		} `json:"reviews"`
	} `json:"result"`
	Status string `json:"status"`
}

func (r *GooglePlacesRepository) SearchPlaces(ctx context.Context, query, location string, radius, maxResults int) ([]place_models.Place, error) {
	searchQuery := query
	if location != "" {
		searchQuery += " in " + location
	}

	params := url.Values{}
	params.Set("query", searchQuery)
	params.Set("key", r.apiKey)
	if radius > 0 {
		params.Set("radius", strconv.Itoa(radius))
	}

	var search textSearchResponse
	if err := r.getJSON(ctx, r.searchURL+"?"+params.Encode(), &search); err != nil {
		r.logger.Warn("places text search failed", zap.String("query", searchQuery), zap.Error(err))
		return []place_models.Place{}, nil
	}
	if search.Status != "OK" && search.Status != "ZERO_RESULTS" {
		r.logger.Warn("places text search returned non-OK status",
			zap.String("query", searchQuery),
			zap.String("status", search.Status))
		return []place_models.Place{}, nil
	}

	places := make([]place_models.Place, 0, maxResults)
	for _, result := range search.Results {
		if len(places) >= maxResults {
			break
		}

		place := place_models.Place{
			PlaceID:     result.PlaceID,
			Name:        result.Name,
			Address:     result.FormattedAddress,
			Rating:      result.Rating,
			RatingCount: result.UserRatingsTotal,
			PriceLevel:  result.PriceLevel,
			Types:       result.Types,
			ImageURL:    fallbackImageURL,
		}

		if len(result.Photos) > 0 && result.Photos[0].PhotoReference != "" {
			place.ImageURL = r.photoURL(result.Photos[0].PhotoReference)
		}

		r.fillDetails(ctx, &place)
		places = append(places, place)
	}

	return places, nil
}

// fillDetails decorates a place with website, phone, open status and review
// excerpts. Any failure leaves the fields at their zero values.
func (r *GooglePlacesRepository) fillDetails(ctx context.Context, place *place_models.Place) {
	params := url.Values{}
	params.Set("place_id", place.PlaceID)
	params.Set("fields", detailsFields)
	params.Set("key", r.apiKey)

	var details detailsResponse
	if err := r.getJSON(ctx, r.detailsURL+"?"+params.Encode(), &details); err != nil {
		r.logger.Debug("place details lookup failed", zap.String("place", place.Name), zap.Error(err))
		return
	}
	if details.Status != "OK" {
		return
	}

	place.Website = details.Result.Website
	place.Phone = details.Result.FormattedPhoneNumber
	if details.Result.OpeningHours != nil {
		open := details.Result.OpeningHours.OpenNow
		place.OpenNow = &open
	}
	for _, review := range details.Result.Reviews {
		if review.Text == "" {
			continue
		}
		place.Reviews = append(place.Reviews, review.Text)
		if len(place.Reviews) >= 2 {
			break
		}
	}
}

func (r *GooglePlacesRepository) photoURL(reference string) string {
	params := url.Values{}
	params.Set("maxwidth", "1200")
	params.Set("photoreference", reference)
	params.Set("key", r.apiKey)
	return r.photoBase + "?" + params.Encode()
}

func (r *GooglePlacesRepository) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
