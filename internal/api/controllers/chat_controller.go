package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jetfriend/internal/models/request_models"
	"jetfriend/internal/services"
	"jetfriend/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// ChatHandler handles POST /api/chat.
func (ctl *ChatController) ChatHandler(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBadRequest(c, "Invalid request format")
		return
	}

	resp, err := ctl.chatService.Chat(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
