package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teampath/learnhub-backend/internal/services"
	"github.com/teampath/learnhub-backend/internal/types"
)

type ChatHandler struct {
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (ch *ChatHandler) Messages(c *gin.Context) {
	roomID := c.Param("roomId")
	messages := ch.chatService.Messages(c.Request.Context(), roomID)
	if messages == nil {
		messages = []types.ChatMessage{}
	}
	RespondOK(c, gin.H{"messages": messages})
}

type postMessageRequest struct {
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	UserAvatar string `json:"userAvatar"`
	Message    string `json:"message"`
}

func (ch *ChatHandler) Post(c *gin.Context) {
	roomID := c.Param("roomId")
	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	msg, err := ch.chatService.Post(c.Request.Context(), roomID, types.ChatMessage{
		UserID:     req.UserID,
		UserName:   req.UserName,
		UserAvatar: req.UserAvatar,
		Message:    req.Message,
	})
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	RespondCreated(c, gin.H{"message": msg})
}
