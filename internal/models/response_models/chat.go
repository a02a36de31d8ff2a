package response_models

import "jetfriend/internal/models/place_models"

type ChatResponse struct {
	Success              bool   `json:"success"`
	Response             string `json:"response"`
	PlacesFound          int    `json:"places_found"`
	EnhancedWithLocation bool   `json:"enhanced_with_location"`
	LocationDetected     bool   `json:"location_detected"`
	Timestamp            string `json:"timestamp"`
}

type PlaceSearchResponse struct {
	Success  bool                 `json:"success"`
	Places   []place_models.Place `json:"places"`
	Count    int                  `json:"count"`
	Query    string               `json:"query"`
	Location string               `json:"location"`
}

type HealthResponse struct {
	Status   string          `json:"status"`
	Service  string          `json:"service"`
	Version  string          `json:"version"`
	Features map[string]bool `json:"features"`
}

type TestResponse struct {
	Success      bool   `json:"success"`
	TestResponse string `json:"test_response,omitempty"`
	AIStatus     string `json:"ai_status"`
	Error        string `json:"error,omitempty"`
	Message      string `json:"message,omitempty"`
}

type PlacesTestResponse struct {
	Success      bool   `json:"success"`
	PlacesFound  int    `json:"places_found"`
	PlacesStatus string `json:"places_status"`
	Error        string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
