package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BoluOladipo/AI-Diet-Recommender/internal/service"
)

// ChatHandler proxies chat messages to the language model. It carries no
// business logic and shares no state with the recommender.
type ChatHandler struct {
	chat service.IChatService
}

// NewChatHandler creates a new ChatHandler instance. chat may be nil when no
// API key is configured; the endpoint then reports itself unavailable.
func NewChatHandler(chat service.IChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// RegisterRoutes registers the chat routes
func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/chat", h.Chat)
}

// Chat forwards the message and history and returns the model's reply.
func (h *ChatHandler) Chat(c *gin.Context) {
	if h.chat == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "chat is not configured"})
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, err := h.chat.Chat(c.Request.Context(), req.Message, req.History)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "chatbot failed to respond"})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}
