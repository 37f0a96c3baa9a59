package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dynamicweb/dynamicweb/internal/api/middleware"
	"github.com/dynamicweb/dynamicweb/internal/api/response"
	"github.com/dynamicweb/dynamicweb/internal/api/validation"
	"github.com/dynamicweb/dynamicweb/internal/blueprint"
	"github.com/dynamicweb/dynamicweb/internal/history"
)

// generationResponse is the API representation of a history record.
type generationResponse struct {
	ID           string               `json:"id"`
	SessionID    string               `json:"sessionId"`
	Idea         string               `json:"idea"`
	Model        string               `json:"model"`
	Provider     string               `json:"provider"`
	Outcome      string               `json:"outcome"`
	ErrorMessage string               `json:"errorMessage,omitempty"`
	Blueprint    *blueprint.Blueprint `json:"blueprint"`
	LatencyMS    int64                `json:"latencyMs"`
	CreatedAt    string               `json:"createdAt"`
}

func toGenerationResponse(g *history.Generation) generationResponse {
	return generationResponse{
		ID:           g.ID.String(),
		SessionID:    g.SessionID,
		Idea:         g.Idea,
		Model:        g.Model,
		Provider:     g.Provider,
		Outcome:      g.Outcome,
		ErrorMessage: g.ErrorMessage,
		Blueprint:    g.Blueprint,
		LatencyMS:    g.LatencyMS,
		CreatedAt:    g.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// GenerationHandler exposes the generation history.
type GenerationHandler struct {
	repo history.Repository
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(repo history.Repository) *GenerationHandler {
	return &GenerationHandler{repo: repo}
}

// List handles GET /api/v1/generations.
func (h *GenerationHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	q := r.URL.Query()

	var filter history.ListFilter
	if o := q.Get("outcome"); o != "" {
		if fieldErrors := validation.ValidateOutcome(o); len(fieldErrors) > 0 {
			response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters", fieldErrors, requestID)
			return
		}
		filter.Outcome = &o
	}
	if l := q.Get("limit"); l != "" {
		limit, err := strconv.Atoi(l)
		if err != nil || limit < 1 || limit > history.MaxListLimit {
			response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters",
				[]validation.FieldError{{Field: "limit", Message: "limit must be an integer between 1 and " + strconv.Itoa(history.MaxListLimit)}}, requestID)
			return
		}
		filter.Limit = limit
	}

	records, err := h.repo.List(r.Context(), filter)
	if err != nil {
		slog.Error("failed to list generations", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list generations", requestID)
		return
	}

	items := make([]generationResponse, len(records))
	for i := range records {
		items[i] = toGenerationResponse(&records[i])
	}
	limit := filter.Limit
	if limit == 0 {
		limit = history.DefaultListLimit
	}
	response.SuccessList(w, items, len(items), limit, requestID)
}

// GetByID handles GET /api/v1/generations/{id}.
func (h *GenerationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "Generation ID must be a valid UUID", requestID)
		return
	}

	g, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Generation not found", requestID)
			return
		}
		slog.Error("failed to get generation", "error", err, "id", id.String(), "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get generation", requestID)
		return
	}

	response.Success(w, http.StatusOK, toGenerationResponse(g), requestID)
}
