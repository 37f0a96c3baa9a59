package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dynamicweb/dynamicweb/internal/api/middleware"
	"github.com/dynamicweb/dynamicweb/internal/api/response"
	"github.com/dynamicweb/dynamicweb/internal/api/validation"
	"github.com/dynamicweb/dynamicweb/internal/architect"
	"github.com/dynamicweb/dynamicweb/internal/provider"
)

// chatFailedMessage is returned for every failed chat call.
const chatFailedMessage = "Failed to get a reply. Please try again."

// Chatter answers free-text questions. *architect.Service satisfies it.
type Chatter interface {
	Chat(ctx context.Context, message string, history []provider.Message) (string, error)
}

type chatRequest struct {
	Message string             `json:"message"`
	History []provider.Message `json:"history"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// ChatHandler handles the consultant chat endpoint.
type ChatHandler struct {
	chatter Chatter
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(c Chatter) *ChatHandler {
	return &ChatHandler{chatter: c}
}

// Create handles POST /api/v1/chat.
func (h *ChatHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateChatRequest(validation.ChatRequest{Message: req.Message, History: req.History})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request validation failed", fieldErrors, requestID)
		return
	}

	reply, err := h.chatter.Chat(r.Context(), req.Message, req.History)
	if err != nil {
		if errors.Is(err, architect.ErrEmptyMessage) {
			response.Err(w, http.StatusBadRequest, "VALIDATION_ERROR", "message is required", requestID)
			return
		}
		slog.Error("chat failed", "outcome", string(architect.Classify(err)), "error", err, "requestId", requestID)
		response.Err(w, http.StatusBadGateway, "CHAT_FAILED", chatFailedMessage, requestID)
		return
	}

	response.Success(w, http.StatusOK, chatResponse{Reply: reply}, requestID)
}
