package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dynamicweb/dynamicweb/internal/api/middleware"
	"github.com/dynamicweb/dynamicweb/internal/api/response"
	"github.com/dynamicweb/dynamicweb/internal/api/validation"
	"github.com/dynamicweb/dynamicweb/internal/architect"
	"github.com/dynamicweb/dynamicweb/internal/session"
)

const maxBodyBytes = 1 << 20

// createBlueprintRequest is the request body for POST /api/v1/blueprints.
type createBlueprintRequest struct {
	Idea string `json:"idea"`
}

// BlueprintHandler generates blueprints over the JSON API.
type BlueprintHandler struct {
	gen session.Generator
	rec session.Recorder
}

// NewBlueprintHandler creates a new BlueprintHandler. rec may be nil.
func NewBlueprintHandler(gen session.Generator, rec session.Recorder) *BlueprintHandler {
	return &BlueprintHandler{gen: gen, rec: rec}
}

// Create handles POST /api/v1/blueprints. The generation runs against the
// caller's session, so a second request while one is pending gets a 409.
func (h *BlueprintHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req createBlueprintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	if fieldErrors := validation.ValidateIdea(req.Idea); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request validation failed", fieldErrors, requestID)
		return
	}

	bp, err := sess.Generate(r.Context(), h.gen, h.rec, req.Idea)
	switch {
	case err == nil:
	case errors.Is(err, session.ErrPending):
		response.Err(w, http.StatusConflict, "REQUEST_PENDING", "A blueprint request is already in progress", requestID)
		return
	case errors.Is(err, architect.ErrEmptyIdea):
		response.Err(w, http.StatusBadRequest, "VALIDATION_ERROR", "idea is required", requestID)
		return
	default:
		response.Err(w, http.StatusBadGateway, "GENERATION_FAILED", architect.UserMessage, requestID)
		return
	}

	response.Success(w, http.StatusCreated, bp, requestID)
}
