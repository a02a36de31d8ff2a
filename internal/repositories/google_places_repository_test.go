package repositories

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const searchBody = `{
	"status": "OK",
	"results": [
		{
			"place_id": "gp1",
			"name": "Ichiran Shibuya",
			"formatted_address": "1-22-7 Jinnan, Shibuya",
			"rating": 4.4,
			"user_ratings_total": 9821,
			"price_level": 2,
			"types": ["restaurant", "food"],
			"photos": [{"photo_reference": "ref123"}]
		},
		{
			"place_id": "gp2",
			"name": "Afuri Harajuku",
			"formatted_address": "3-63-1 Sendagaya",
			"rating": 4.2,
			"user_ratings_total": 5210,
			"price_level": 2,
			"types": ["restaurant", "food"]
		}
	]
}`

const detailsBody = `{
	"status": "OK",
	"result": {
		"website": "https://ichiran.example",
		"formatted_phone_number": "+81 3-1234-5678",
		"opening_hours": {"open_now": true},
		"reviews": [
			{"text": "Best tonkotsu in town"},
			{"text": ""},
			{"text": "Worth the queue"},
			{"text": "A third review that should be dropped"}
		]
	}
}`

func newLiveRepoAgainst(t *testing.T, handler http.Handler) *GooglePlacesRepository {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	repo := NewGooglePlacesRepository("test-key", zap.NewNop()).(*GooglePlacesRepository)
	repo.searchURL = server.URL + "/textsearch"
	repo.detailsURL = server.URL + "/details"
	repo.photoBase = server.URL + "/photo"
	return repo
}

func TestGoogleSearchPlaces_ParsesResults(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/textsearch", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ramen in Tokyo", r.URL.Query().Get("query"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(searchBody))
	})
	mux.HandleFunc("/details", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "website,formatted_phone_number,opening_hours,reviews", r.URL.Query().Get("fields"))
		w.Write([]byte(detailsBody))
	})
	repo := newLiveRepoAgainst(t, mux)

	places, err := repo.SearchPlaces(context.Background(), "ramen", "Tokyo", 0, 6)

	require.NoError(t, err)
	require.Len(t, places, 2)

	first := places[0]
	assert.Equal(t, "gp1", first.PlaceID)
	assert.Equal(t, "Ichiran Shibuya", first.Name)
	assert.Equal(t, "1-22-7 Jinnan, Shibuya", first.Address)
	assert.Equal(t, 4.4, first.Rating)
	assert.Equal(t, 9821, first.RatingCount)
	assert.Equal(t, 2, first.PriceLevel)
	assert.True(t, strings.Contains(first.ImageURL, "/photo?"))
	assert.Contains(t, first.ImageURL, "photoreference=ref123")

	// Details decoration.
	assert.Equal(t, "https://ichiran.example", first.Website)
	assert.Equal(t, "+81 3-1234-5678", first.Phone)
	require.NotNil(t, first.OpenNow)
	assert.True(t, *first.OpenNow)
	assert.Equal(t, []string{"Best tonkotsu in town", "Worth the queue"}, first.Reviews)

	// No photo reference falls back to the stock image.
	assert.Equal(t, fallbackImageURL, places[1].ImageURL)
}

func TestGoogleSearchPlaces_RespectsMaxResults(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/textsearch", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(searchBody))
	})
	mux.HandleFunc("/details", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status": "NOT_FOUND", "result": {}}`))
	})
	repo := newLiveRepoAgainst(t, mux)

	places, err := repo.SearchPlaces(context.Background(), "ramen", "", 0, 1)

	require.NoError(t, err)
	assert.Len(t, places, 1)
	// Details miss leaves decoration fields at zero values.
	assert.Empty(t, places[0].Website)
	assert.Nil(t, places[0].OpenNow)
}

func TestGoogleSearchPlaces_ForwardsRadius(t *testing.T) {
	var gotRadius []string
	mux := http.NewServeMux()
	mux.HandleFunc("/textsearch", func(w http.ResponseWriter, r *http.Request) {
		gotRadius = append(gotRadius, r.URL.Query().Get("radius"))
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})
	repo := newLiveRepoAgainst(t, mux)

	_, err := repo.SearchPlaces(context.Background(), "ramen", "Tokyo", 5000, 6)
	require.NoError(t, err)
	_, err = repo.SearchPlaces(context.Background(), "ramen", "Tokyo", 0, 6)
	require.NoError(t, err)

	// Zero means provider default: the parameter is omitted entirely.
	assert.Equal(t, []string{"5000", ""}, gotRadius)
}

func TestGoogleSearchPlaces_ErrorStatusDegradesToEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/textsearch", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "results": []}`))
	})
	repo := newLiveRepoAgainst(t, mux)

	places, err := repo.SearchPlaces(context.Background(), "ramen", "Tokyo", 0, 6)

	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestGoogleSearchPlaces_TransportFailureDegradesToEmpty(t *testing.T) {
	repo := NewGooglePlacesRepository("test-key", zap.NewNop()).(*GooglePlacesRepository)
	repo.searchURL = "http://127.0.0.1:1/textsearch"

	places, err := repo.SearchPlaces(context.Background(), "ramen", "Tokyo", 0, 6)

	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestGoogleRepositoryIsLive(t *testing.T) {
	repo := NewGooglePlacesRepository("test-key", zap.NewNop())
	assert.True(t, repo.Live())
}
