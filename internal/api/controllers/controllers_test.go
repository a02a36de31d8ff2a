package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jetfriend/internal/models/response_models"
	"jetfriend/internal/repositories"
	"jetfriend/internal/services"
	"jetfriend/pkg/llm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type cannedChatClient struct {
	reply string
}

func (c *cannedChatClient) Complete(context.Context, []llm.Message, int, float32) (string, error) {
	return c.reply, nil
}

func (c *cannedChatClient) Provider() string { return "canned" }

// newTestRouter wires the full pipeline with the mock place provider and the
// given chat client (nil means unconfigured).
func newTestRouter(client llm.ChatClientInterface) *gin.Engine {
	logger := zap.NewNop()
	gateway := llm.NewGateway(client, 1000, 0.7, logger)

	intentService := services.NewIntentService()
	placesService := services.NewPlacesService(
		repositories.NewMockPlacesRepository(repositories.DefaultFixtures()), 6, logger)
	chatService := services.NewChatService(
		intentService, placesService, services.NewPromptService(), gateway, logger)

	chatController := NewChatController(chatService)
	placesController := NewPlacesController(placesService, intentService)
	systemController := NewSystemController(gateway, placesService)

	router := gin.New()
	api := router.Group("/api")
	api.POST("/chat", chatController.ChatHandler)
	api.POST("/places", placesController.SearchHandler)
	api.GET("/health", systemController.HealthHandler)
	api.GET("/test", systemController.TestAIHandler)
	api.GET("/test/places", systemController.TestPlacesHandler)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func getJSON(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestChatHandler_Success(t *testing.T) {
	router := newTestRouter(&cannedChatClient{reply: "Tokyo has amazing ramen!"})

	rec := postJSON(t, router, "/api/chat", `{"message": "best ramen in Tokyo"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp response_models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Tokyo has amazing ramen!", resp.Response)
	assert.True(t, resp.LocationDetected)
	assert.GreaterOrEqual(t, resp.PlacesFound, 1)
}

func TestChatHandler_EmptyMessage(t *testing.T) {
	router := newTestRouter(&cannedChatClient{reply: "hi"})

	rec := postJSON(t, router, "/api/chat", `{"message": "  "}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp response_models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "message is required", resp.Error)
}

func TestChatHandler_MalformedBody(t *testing.T) {
	router := newTestRouter(&cannedChatClient{reply: "hi"})

	rec := postJSON(t, router, "/api/chat", `{"message":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatHandler_WorksWithoutLLMKey(t *testing.T) {
	router := newTestRouter(nil)

	rec := postJSON(t, router, "/api/chat", `{"message": "hello"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp response_models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Response, "currently unavailable")
}

func TestSearchHandler_Success(t *testing.T) {
	router := newTestRouter(nil)

	rec := postJSON(t, router, "/api/places", `{"query": "restaurants in Paris", "radius": 5000}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp response_models.PlaceSearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Paris", resp.Location)
	assert.Equal(t, len(resp.Places), resp.Count)
	require.NotEmpty(t, resp.Places)
	assert.NotEmpty(t, resp.Places[0].GoogleMapsURL)
}

func TestSearchHandler_EmptyQuery(t *testing.T) {
	router := newTestRouter(nil)

	rec := postJSON(t, router, "/api/places", `{"query": ""}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp response_models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "query is required", resp.Error)
}

func TestSearchHandler_ExplicitLocationWins(t *testing.T) {
	router := newTestRouter(nil)

	rec := postJSON(t, router, "/api/places", `{"query": "restaurants in Paris", "location": "Lyon"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp response_models.PlaceSearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Lyon", resp.Location)
}

func TestHealthHandler(t *testing.T) {
	router := newTestRouter(&cannedChatClient{reply: "ok"})

	rec := getJSON(t, router, "/api/health")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp response_models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "JetFriend API", resp.Service)
	assert.True(t, resp.Features["ai_chat"])
	assert.False(t, resp.Features["live_places"])
	assert.True(t, resp.Features["mock_places"])
}

func TestHealthHandler_UnconfiguredAI(t *testing.T) {
	router := newTestRouter(nil)

	rec := getJSON(t, router, "/api/health")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp response_models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Features["ai_chat"])
}

func TestTestAIHandler_Configured(t *testing.T) {
	router := newTestRouter(&cannedChatClient{reply: "All systems go"})

	rec := getJSON(t, router, "/api/test")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp response_models.TestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "All systems go", resp.TestResponse)
	assert.Equal(t, "connected", resp.AIStatus)
}

func TestTestAIHandler_Unconfigured(t *testing.T) {
	router := newTestRouter(nil)

	rec := getJSON(t, router, "/api/test")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp response_models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "llm api key not configured", resp.Error)
}

func TestTestPlacesHandler_Mock(t *testing.T) {
	router := newTestRouter(nil)

	rec := getJSON(t, router, "/api/test/places")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp response_models.PlacesTestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "mock", resp.PlacesStatus)
	assert.GreaterOrEqual(t, resp.PlacesFound, 1)
}
