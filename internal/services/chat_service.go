package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"jetfriend/internal/models/place_models"
	"jetfriend/internal/models/request_models"
	"jetfriend/internal/models/response_models"
	"jetfriend/pkg/llm"
	"jetfriend/pkg/utils"
)

type ChatServiceInterface interface {
	Chat(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatResponse, error)
}

// ChatService runs the whole pipeline: classify the message, enrich with place
// data when the message is location-flagged, assemble the prompt, call the
// gateway.
type ChatService struct {
	intent  IntentServiceInterface
	places  PlacesServiceInterface
	prompts PromptServiceInterface
	gateway *llm.Gateway
	logger  *zap.Logger
}

func NewChatService(
	intent IntentServiceInterface,
	places PlacesServiceInterface,
	prompts PromptServiceInterface,
	gateway *llm.Gateway,
	logger *zap.Logger,
) ChatServiceInterface {
	return &ChatService{
		intent:  intent,
		places:  places,
		prompts: prompts,
		gateway: gateway,
		logger:  logger,
	}
}

func (s *ChatService) Chat(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, utils.ErrMessageRequired
	}

	flags := s.intent.Classify(message)
	placeRecords := s.placeRecordsFor(ctx, message, flags)

	prompt := s.prompts.BuildPrompt(req.History, message, placeRecords)
	response := s.gateway.Complete(ctx, prompt)

	s.logger.Info("chat handled",
		zap.Bool("location_detected", flags.IsLocation),
		zap.Bool("singular", flags.IsSingular),
		zap.Int("places_found", len(placeRecords)))

	return &response_models.ChatResponse{
		Success:              true,
		Response:             response,
		PlacesFound:          len(placeRecords),
		EnhancedWithLocation: len(placeRecords) > 0,
		LocationDetected:     flags.IsLocation,
		Timestamp:            time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// placeRecordsFor invokes the place provider only for location-flagged
// messages that are not small talk.
func (s *ChatService) placeRecordsFor(ctx context.Context, message string, flags IntentFlags) []place_models.Place {
	if !flags.IsLocation || flags.IsBasic {
		return nil
	}
	location := s.intent.ExtractLocation(message)
	return s.places.FindPlaces(ctx, message, location, 0, flags.IsSingular)
}
