package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dynamicweb/dynamicweb/internal/api/middleware"
	"github.com/dynamicweb/dynamicweb/internal/blueprint"
	"github.com/dynamicweb/dynamicweb/internal/history"
	"github.com/dynamicweb/dynamicweb/internal/provider"
	"github.com/dynamicweb/dynamicweb/internal/session"
)

// --- Mock Architect ---

type mockArchitect struct {
	mu         sync.Mutex
	generateFn func(ctx context.Context, idea string) (*blueprint.Blueprint, error)
	chatFn     func(ctx context.Context, message string, history []provider.Message) (string, error)
	ideas      []string
	messages   []string
}

func (m *mockArchitect) Generate(ctx context.Context, idea string) (*blueprint.Blueprint, error) {
	m.mu.Lock()
	m.ideas = append(m.ideas, idea)
	m.mu.Unlock()
	if m.generateFn != nil {
		return m.generateFn(ctx, idea)
	}
	return commentBlog(), nil
}

func (m *mockArchitect) Chat(ctx context.Context, message string, history []provider.Message) (string, error) {
	m.mu.Lock()
	m.messages = append(m.messages, message)
	m.mu.Unlock()
	if m.chatFn != nil {
		return m.chatFn(ctx, message, history)
	}
	return "Use Postgres.", nil
}

func (m *mockArchitect) Model() string        { return "test-model" }
func (m *mockArchitect) ProviderName() string { return "mock" }

func (m *mockArchitect) generateCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.ideas...)
}

func (m *mockArchitect) chatCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.messages...)
}

// --- Mock History Repository ---

type mockHistoryRepo struct {
	recordFn  func(ctx context.Context, g *history.Generation) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*history.Generation, error)
	listFn    func(ctx context.Context, filter history.ListFilter) ([]history.Generation, error)
}

func (m *mockHistoryRepo) Record(ctx context.Context, g *history.Generation) error {
	if m.recordFn != nil {
		return m.recordFn(ctx, g)
	}
	return nil
}

func (m *mockHistoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*history.Generation, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, history.ErrNotFound
}

func (m *mockHistoryRepo) List(ctx context.Context, filter history.ListFilter) ([]history.Generation, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

// --- Helpers ---

func commentBlog() *blueprint.Blueprint {
	return &blueprint.Blueprint{
		Title:          "CommentBlog",
		Description:    "A blog where readers discuss posts.",
		Architecture:   "Server-rendered app backed by a relational store.",
		FrontendStack:  []string{"React"},
		BackendStack:   []string{"Node"},
		DatabaseSchema: []blueprint.Table{{Table: "posts", Fields: []string{"id", "body"}}},
		KeyFeatures:    []string{"Commenting"},
	}
}

func newTestSession() *session.Session {
	return session.NewStore(time.Minute).Create()
}

func makeChiRequest(method, path string, body []byte, params map[string]string) (*http.Request, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req, w
}

func withSession(req *http.Request, sess *session.Session) *http.Request {
	return req.WithContext(middleware.WithSession(req.Context(), sess))
}

func parseEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var env map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &env)
	require.NoError(t, err, "failed to parse response body")
	return env
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseEnvelope(t, w)["error"].(map[string]any)
	require.True(t, ok, "response has no error object")
	return errObj["code"].(string)
}
