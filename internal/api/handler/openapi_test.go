package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	specpkg "github.com/dynamicweb/dynamicweb/api"
	"github.com/dynamicweb/dynamicweb/internal/api/handler"
)

func TestOpenAPIHandler_ReturnsJSON(t *testing.T) {
	t.Parallel()

	yamlSpec := []byte(`openapi: "3.1.0"
info:
  title: Test API
  version: "1.0.0"
paths: {}
`)
	h := handler.NewOpenAPIHandler(yamlSpec, handler.OpenAPIOptions{})
	w := httptest.NewRecorder()

	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var result map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result), "response should be valid JSON")
	assert.Equal(t, "3.1.0", result["openapi"])
	assert.Equal(t, "Test API", result["info"].(map[string]any)["title"])
	assert.Equal(t, "1.0.0", result["info"].(map[string]any)["version"])
}

func TestOpenAPIHandler_InvalidYAML(t *testing.T) {
	t.Parallel()

	h := handler.NewOpenAPIHandler([]byte("openapi: [unclosed"), handler.OpenAPIOptions{})
	w := httptest.NewRecorder()

	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", errorCode(t, w))
}

func TestOpenAPIHandler_EmbeddedDocument(t *testing.T) {
	t.Parallel()

	h := handler.NewOpenAPIHandler(specpkg.OpenAPISpec, handler.OpenAPIOptions{History: true})
	w := httptest.NewRecorder()

	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var result map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	paths := result["paths"].(map[string]any)
	for _, p := range []string{"/health", "/api/v1/blueprints", "/api/v1/chat", "/api/v1/generations", "/api/v1/generations/{id}"} {
		assert.Contains(t, paths, p)
	}
	schemas := result["components"].(map[string]any)["schemas"].(map[string]any)
	bp := schemas["Blueprint"].(map[string]any)
	assert.Len(t, bp["required"], 7)
}

func serveOpenAPI(t *testing.T, opts handler.OpenAPIOptions) map[string]any {
	t.Helper()
	h := handler.NewOpenAPIHandler(specpkg.OpenAPISpec, opts)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var result map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	return result
}

func TestOpenAPIHandler_StampsBuildVersion(t *testing.T) {
	t.Parallel()

	result := serveOpenAPI(t, handler.OpenAPIOptions{Version: "v2.3.4", History: true})
	assert.Equal(t, "v2.3.4", result["info"].(map[string]any)["version"])
}

func TestOpenAPIHandler_OmitsHistoryRoutesWithoutBackend(t *testing.T) {
	t.Parallel()

	paths := serveOpenAPI(t, handler.OpenAPIOptions{})["paths"].(map[string]any)
	assert.NotContains(t, paths, "/api/v1/generations")
	assert.NotContains(t, paths, "/api/v1/generations/{id}")
	assert.Contains(t, paths, "/api/v1/blueprints")
	assert.Contains(t, paths, "/health")
}

func TestOpenAPIHandler_ETagNotModified(t *testing.T) {
	t.Parallel()

	h := handler.NewOpenAPIHandler(specpkg.OpenAPISpec, handler.OpenAPIOptions{Version: "dev"})

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	require.Equal(t, http.StatusOK, first.Code)
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	req.Header.Set("If-None-Match", etag)
	second := httptest.NewRecorder()
	h.ServeHTTP(second, req)

	assert.Equal(t, http.StatusNotModified, second.Code)
	assert.Empty(t, second.Body.Bytes())
}
