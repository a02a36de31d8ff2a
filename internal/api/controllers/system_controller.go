package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jetfriend/internal/models/response_models"
	"jetfriend/internal/services"
	"jetfriend/pkg/config"
	"jetfriend/pkg/llm"
	"jetfriend/pkg/utils"
)

// SystemController serves the health and connectivity-diagnostic endpoints.
type SystemController struct {
	gateway       *llm.Gateway
	placesService services.PlacesServiceInterface
}

func NewSystemController(gateway *llm.Gateway, placesService services.PlacesServiceInterface) *SystemController {
	return &SystemController{
		gateway:       gateway,
		placesService: placesService,
	}
}

// HealthHandler handles GET /api/health.
func (ctl *SystemController) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, response_models.HealthResponse{
		Status:  "healthy",
		Service: config.ServiceName,
		Version: config.ServiceVersion,
		Features: map[string]bool{
			"ai_chat":     ctl.gateway.Configured(),
			"live_places": ctl.placesService.Live(),
			"mock_places": !ctl.placesService.Live(),
		},
	})
}

// TestAIHandler handles GET /api/test: one gateway round trip.
func (ctl *SystemController) TestAIHandler(c *gin.Context) {
	if !ctl.gateway.Configured() {
		utils.HandleServiceError(c, utils.ErrLLMNotConfigured)
		return
	}

	prompt := []llm.Message{
		{Role: llm.RoleSystem, Content: "You are JetFriend, an AI travel companion."},
		{Role: llm.RoleUser, Content: "Hello! Can you tell me you're working correctly?"},
	}

	c.JSON(http.StatusOK, response_models.TestResponse{
		Success:      true,
		TestResponse: ctl.gateway.Complete(c.Request.Context(), prompt),
		AIStatus:     "connected",
	})
}

// TestPlacesHandler handles GET /api/test/places: one provider round trip.
func (ctl *SystemController) TestPlacesHandler(c *gin.Context) {
	places := ctl.placesService.FindPlaces(c.Request.Context(), "restaurants", "New York", 0, false)

	status := "mock"
	if ctl.placesService.Live() {
		status = "connected"
		if len(places) == 0 {
			status = "limited"
		}
	}

	c.JSON(http.StatusOK, response_models.PlacesTestResponse{
		Success:      true,
		PlacesFound:  len(places),
		PlacesStatus: status,
	})
}
