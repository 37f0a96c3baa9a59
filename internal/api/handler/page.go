package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dynamicweb/dynamicweb/internal/api/validation"
	"github.com/dynamicweb/dynamicweb/internal/architect"
	"github.com/dynamicweb/dynamicweb/internal/session"
	"github.com/dynamicweb/dynamicweb/internal/view"
)

// PageHandler serves the server-rendered pages.
type PageHandler struct {
	gen session.Generator
	rec session.Recorder
}

// NewPageHandler creates a new PageHandler. rec may be nil.
func NewPageHandler(gen session.Generator, rec session.Recorder) *PageHandler {
	return &PageHandler{gen: gen, rec: rec}
}

// Index handles GET /. The view query parameter switches the session's mode;
// concept selects the learn tab.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	if v := r.URL.Query().Get("view"); v != "" {
		sess.SetMode(session.ParseMode(v))
	}
	state := sess.Snapshot()

	var body templ.Component
	switch state.Mode {
	case session.ModeArchitect:
		body = view.ArchitectPage(state)
	case session.ModeVisualize:
		body = view.VisualizerPage()
	default:
		concept, _ := strconv.Atoi(r.URL.Query().Get("concept"))
		body = view.LearnPage(concept)
	}
	renderHTML(w, r, http.StatusOK, view.Layout(state.Mode, body))
}

// Architect handles POST /architect, the idea form submission. Empty or
// over-long ideas and submissions made while a request is pending re-render
// the page without calling the provider.
func (h *PageHandler) Architect(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	sess.SetMode(session.ModeArchitect)

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		h.renderArchitect(w, r, sess, http.StatusBadRequest)
		return
	}
	idea := r.PostForm.Get("idea")

	if errs := validation.ValidateIdea(idea); len(errs) > 0 {
		h.renderArchitect(w, r, sess, http.StatusBadRequest)
		return
	}

	_, err := sess.Generate(r.Context(), h.gen, h.rec, idea)
	switch {
	case errors.Is(err, session.ErrPending):
		h.renderArchitect(w, r, sess, http.StatusConflict)
	case errors.Is(err, architect.ErrEmptyIdea):
		h.renderArchitect(w, r, sess, http.StatusBadRequest)
	default:
		// Generation failures are already in the session state.
		h.renderArchitect(w, r, sess, http.StatusOK)
	}
}

func (h *PageHandler) renderArchitect(w http.ResponseWriter, r *http.Request, sess *session.Session, status int) {
	state := sess.Snapshot()
	renderHTML(w, r, status, view.Layout(session.ModeArchitect, view.ArchitectPage(state)))
}
