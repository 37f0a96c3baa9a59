// Package canned provides an offline text-generation provider that answers
// every request with fixed content. It backs local development and demos
// when no Gemini API key is available.
package canned

import (
	"context"

	"github.com/dynamicweb/dynamicweb/internal/blueprint"
	"github.com/dynamicweb/dynamicweb/internal/provider"
)

// Name is the registry name of the canned provider.
const Name = "canned"

// Advice is the free-text answer returned for unstructured requests.
const Advice = "Start with a thin REST API over a relational database, keep session state server-side, " +
	"and let the browser re-render from JSON responses. Add real-time updates with WebSockets only where the UI needs them."

// Sample is the blueprint returned for every structured request.
var Sample = blueprint.Blueprint{
	Title:        "Community Recipe Hub",
	Description:  "A site where members publish recipes, rate them and follow other cooks.",
	Architecture: "A React single-page app calls a Go JSON API. The API owns authentication and persists data in PostgreSQL; a Redis cache serves popular recipe lists.",
	FrontendStack: []string{
		"React", "TypeScript", "Tailwind CSS",
	},
	BackendStack: []string{
		"Go", "chi", "PostgreSQL", "Redis",
	},
	DatabaseSchema: []blueprint.Table{
		{Table: "users", Fields: []string{"id", "email", "display_name", "created_at"}},
		{Table: "recipes", Fields: []string{"id", "author_id", "title", "body", "created_at"}},
		{Table: "ratings", Fields: []string{"recipe_id", "user_id", "score"}},
	},
	KeyFeatures: []string{
		"Account sign-up and login",
		"Recipe publishing with images",
		"Ratings and follower feeds",
	},
}

// Provider returns canned content and never fails unless ctx is done.
type Provider struct{}

// New creates a canned provider.
func New() *Provider { return &Provider{} }

// Name returns the registry name.
func (p *Provider) Name() string { return Name }

// Generate returns Sample as JSON when a schema is requested, Advice otherwise.
func (p *Provider) Generate(ctx context.Context, req provider.Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if req.Schema == nil {
		return Advice, nil
	}
	raw, err := blueprint.Encode(&Sample)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
