package handler

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"sigs.k8s.io/yaml"

	"github.com/dynamicweb/dynamicweb/internal/api/middleware"
	"github.com/dynamicweb/dynamicweb/internal/api/response"
)

// historyPathPrefix covers the routes that are only mounted with a history backend.
const historyPathPrefix = "/api/v1/generations"

// OpenAPIOptions describes the running server so the served document matches it.
type OpenAPIOptions struct {
	// Version replaces info.version when set.
	Version string
	// History reports whether the generation history routes are mounted.
	History bool
}

// OpenAPIHandler serves the embedded OpenAPI document as JSON, stamped with
// the build version and trimmed to the routes this server actually mounts.
type OpenAPIHandler struct {
	rawYAML []byte
	opts    OpenAPIOptions

	once    sync.Once
	doc     []byte
	etag    string
	loadErr error
}

// NewOpenAPIHandler creates a handler that builds the document on first use.
func NewOpenAPIHandler(yamlSpec []byte, opts OpenAPIOptions) *OpenAPIHandler {
	return &OpenAPIHandler{rawYAML: yamlSpec, opts: opts}
}

func (h *OpenAPIHandler) load() {
	var doc map[string]any
	if err := yaml.Unmarshal(h.rawYAML, &doc); err != nil {
		h.loadErr = fmt.Errorf("parse OpenAPI document: %w", err)
		return
	}

	if info, ok := doc["info"].(map[string]any); ok && h.opts.Version != "" {
		info["version"] = h.opts.Version
	}
	if paths, ok := doc["paths"].(map[string]any); ok && !h.opts.History {
		for p := range paths {
			if strings.HasPrefix(p, historyPathPrefix) {
				delete(paths, p)
			}
		}
	}

	h.doc, h.loadErr = json.Marshal(doc)
	if h.loadErr == nil {
		sum := sha256.Sum256(h.doc)
		h.etag = `"` + hex.EncodeToString(sum[:8]) + `"`
	}
}

// ServeHTTP writes the cached JSON document. Clients holding the current
// ETag get 304.
func (h *OpenAPIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.once.Do(h.load)

	if h.loadErr != nil {
		slog.Error("failed to build OpenAPI document", "error", h.loadErr)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load API description", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("ETag", h.etag)
	w.Header().Set("Cache-Control", "public, max-age=300")
	if r.Header.Get("If-None-Match") == h.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.doc); err != nil {
		slog.Error("failed to write OpenAPI response", "error", err)
	}
}
