package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Trail-App/internal/application"
)

// MessagesHandler メッセージログのHTTPハンドラー
type MessagesHandler struct {
	messages application.MessageService
}

// NewMessagesHandler MessagesHandlerの新しいインスタンスを作成
func NewMessagesHandler(messages application.MessageService) *MessagesHandler {
	return &MessagesHandler{
		messages: messages,
	}
}

// ListMessages GET /messages
func (h *MessagesHandler) ListMessages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": h.messages.Messages()})
}

// ClearMessages DELETE /messages
func (h *MessagesHandler) ClearMessages(c *gin.Context) {
	h.messages.Clear()
	c.Status(http.StatusNoContent)
}
