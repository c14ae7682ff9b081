package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"newschat-server/internal/domain/chat"
	"newschat-server/internal/infrastructure/config"
	"newschat-server/internal/infrastructure/metrics"
	"newschat-server/internal/interfaces/httpserver/requests"
	"newschat-server/internal/interfaces/httpserver/responses"
	"newschat-server/internal/utils/platformerrors"
)

// ChatHandler exposes the chat completion endpoint.
type ChatHandler struct {
	chatService *chat.Service
	timeout     time.Duration
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(cfg *config.Config, chatService *chat.Service) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		timeout:     time.Duration(cfg.RequestTimeout) * time.Second,
	}
}

// CreateChatCompletion handles POST /v1/chat. The request is rejected before
// any collaborator is invoked when the message is missing, and the whole
// orchestration runs under one deadline so a hung provider cannot stall the
// request indefinitely.
func (h *ChatHandler) CreateChatCompletion(reqCtx *gin.Context) {
	var req requests.ChatRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		metrics.RecordChatCompletion("invalid")
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "message is required", err)
		return
	}

	ctx, cancel := context.WithTimeout(reqCtx.Request.Context(), h.timeout)
	defer cancel()

	resp, err := h.chatService.Complete(ctx, chat.Request{Message: req.Message})
	if err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
			metrics.RecordChatCompletion("invalid")
			responses.HandleError(reqCtx, err, "message is required")
			return
		}
		metrics.RecordChatCompletion("error")
		responses.HandleError(reqCtx, err, "Error processing your request")
		return
	}

	metrics.RecordChatCompletion("success")
	reqCtx.JSON(http.StatusOK, responses.NewChatResponse(resp))
}
