package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynamicweb/dynamicweb/internal/api/response"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var env map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestSuccess(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	response.Success(w, http.StatusCreated, map[string]string{"title": "CommentBlog"}, "req-1")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	env := decode(t, w)
	assert.Nil(t, env["error"])
	assert.Equal(t, "CommentBlog", env["data"].(map[string]any)["title"])
	meta := env["meta"].(map[string]any)
	assert.Equal(t, "req-1", meta["requestId"])
	assert.NotEmpty(t, meta["timestamp"])
}

func TestSuccessList(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	response.SuccessList(w, []string{"a", "b"}, 2, 20, "req-2")

	env := decode(t, w)
	meta := env["meta"].(map[string]any)
	assert.Equal(t, float64(2), meta["count"])
	assert.Equal(t, float64(20), meta["limit"])
	assert.Equal(t, "req-2", meta["requestId"])
}

func TestErr(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	response.Err(w, http.StatusBadGateway, "GENERATION_FAILED", "Failed to generate blueprint. Please try again.", "")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	env := decode(t, w)
	assert.Nil(t, env["data"])
	errObj := env["error"].(map[string]any)
	assert.Equal(t, "GENERATION_FAILED", errObj["code"])
	assert.NotContains(t, errObj, "details")
	assert.NotEmpty(t, env["meta"].(map[string]any)["requestId"])
}

func TestErrWithDetails(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid", []string{"idea"}, "req-3")

	errObj := decode(t, w)["error"].(map[string]any)
	assert.Equal(t, []any{"idea"}, errObj["details"])
}
