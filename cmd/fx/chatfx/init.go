package chatfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"jetfriend/internal/api/controllers"
	"jetfriend/internal/services"
	"jetfriend/pkg/llm"
)

var Module = fx.Provide(
	ProvideIntentService,
	ProvidePromptService,
	ProvideChatService,
	ProvideChatController,
	ProvidePlacesController,
	ProvideSystemController,
)

func ProvideIntentService() services.IntentServiceInterface {
	return services.NewIntentService()
}

func ProvidePromptService() services.PromptServiceInterface {
	return services.NewPromptService()
}

func ProvideChatService(
	intent services.IntentServiceInterface,
	places services.PlacesServiceInterface,
	prompts services.PromptServiceInterface,
	gateway *llm.Gateway,
	logger *zap.Logger,
) services.ChatServiceInterface {
	return services.NewChatService(intent, places, prompts, gateway, logger)
}

func ProvideChatController(chatService services.ChatServiceInterface) *controllers.ChatController {
	return controllers.NewChatController(chatService)
}

func ProvidePlacesController(
	placesService services.PlacesServiceInterface,
	intentService services.IntentServiceInterface,
) *controllers.PlacesController {
	return controllers.NewPlacesController(placesService, intentService)
}

func ProvideSystemController(gateway *llm.Gateway, placesService services.PlacesServiceInterface) *controllers.SystemController {
	return controllers.NewSystemController(gateway, placesService)
}
