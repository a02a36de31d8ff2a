package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jetfriend/internal/models/request_models"
	"jetfriend/internal/models/response_models"
	"jetfriend/internal/services"
	"jetfriend/pkg/utils"
)

type PlacesController struct {
	placesService services.PlacesServiceInterface
	intentService services.IntentServiceInterface
}

func NewPlacesController(
	placesService services.PlacesServiceInterface,
	intentService services.IntentServiceInterface,
) *PlacesController {
	return &PlacesController{
		placesService: placesService,
		intentService: intentService,
	}
}

// SearchHandler handles POST /api/places: a direct place search without LLM
// involvement, kept for front-end debugging.
func (ctl *PlacesController) SearchHandler(c *gin.Context) {
	var req request_models.PlaceSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBadRequest(c, "Invalid request format")
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		utils.RespondBadRequest(c, utils.ErrQueryRequired.Error())
		return
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		location = ctl.intentService.ExtractLocation(query)
	}

	singular := ctl.intentService.Classify(query).IsSingular
	places := ctl.placesService.FindPlaces(c.Request.Context(), query, location, req.Radius, singular)

	c.JSON(http.StatusOK, response_models.PlaceSearchResponse{
		Success:  true,
		Places:   places,
		Count:    len(places),
		Query:    query,
		Location: location,
	})
}
