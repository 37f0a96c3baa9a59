package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/dynamicweb/dynamicweb/internal/provider"
)

// Name is the registry name of the Gemini provider.
const Name = "gemini"

// ErrEmptyResponse is returned when Gemini answers without any candidate text.
var ErrEmptyResponse = errors.New("gemini returned no candidates")

// Config holds the settings needed to reach the Gemini API.
type Config struct {
	APIKey string
	// BaseURL overrides the API endpoint; empty uses the SDK default.
	BaseURL    string
	HTTPClient *http.Client
}

// Provider implements provider.Provider on top of the Google GenAI SDK.
type Provider struct {
	client *genai.Client
}

// New creates a Gemini provider backed by the Gemini Developer API.
func New(ctx context.Context, cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &Provider{client: client}, nil
}

// Name returns the registry name.
func (p *Provider) Name() string { return Name }

// Generate sends one GenerateContent request and returns the response text.
func (p *Provider) Generate(ctx context.Context, req provider.Request) (string, error) {
	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, m := range req.History {
		contents = append(contents, genai.NewContentFromText(m.Content, toRole(m.Role)))
	}
	contents = append(contents, genai.NewContentFromText(req.Prompt, genai.RoleUser))

	resp, err := p.client.Models.GenerateContent(ctx, req.Model, contents, buildConfig(req))
	if err != nil {
		return "", fmt.Errorf("gemini generate content (model %s): %w", req.Model, err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Text(), nil
}

func buildConfig(req provider.Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.ResponseMIMEType != "" {
		cfg.ResponseMIMEType = req.ResponseMIMEType
	}
	if req.Schema != nil {
		cfg.ResponseSchema = toSchema(req.Schema)
	}
	return cfg
}

func toRole(r provider.Role) genai.Role {
	if r == provider.RoleAssistant {
		return genai.RoleModel
	}
	return genai.RoleUser
}
