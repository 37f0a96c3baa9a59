package view

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dynamicweb/dynamicweb/internal/session"
)

const (
	pendingLabel = "Consulting the Architect..."
	submitLabel  = "Generate Technical Blueprint"
)

// ArchitectPage renders the idea form followed by the blueprint panel.
func ArchitectPage(state session.State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div class="architect"><div class="card"><h2>AI Architectural Planner</h2>`)
		h.raw(`<p>Describe your dynamic website idea, and the architect will plan the full stack for you.</p>`)
		h.raw(`<form method="post" action="/architect">`)
		h.raw(`<textarea name="idea" placeholder="e.g., A real-time dashboard for crypto prices with user-specific alerts and history charts...">`)
		h.text(state.Idea)
		h.raw(`</textarea>`)
		if state.Pending {
			h.raw(`<button type="submit" disabled>` + pendingLabel + `</button>`)
		} else {
			h.raw(`<button type="submit">` + submitLabel + `</button>`)
		}
		h.raw(`</form></div>`)
		h.render(ctx, BlueprintPanel(state))
		h.raw(`</div>`)
		return h.err
	})
}

// BlueprintPanel renders the result area for a session: the pending
// indicator, the failure message, or the current blueprint.
func BlueprintPanel(state session.State) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section id="blueprint">`)
		switch {
		case state.Pending:
			h.raw(`<p class="pending">` + pendingLabel + `</p>`)
		case state.Error != "":
			h.raw(`<p class="error" role="alert">`)
			h.text(state.Error)
			h.raw(`</p>`)
		case state.Blueprint != nil:
			bp := state.Blueprint

			h.raw(`<div class="card"><h3>`)
			h.text(bp.Title)
			h.raw(`</h3><p>`)
			h.text(bp.Description)
			h.raw(`</p><h4>Technical Architecture</h4><p><em>`)
			h.text(bp.Architecture)
			h.raw(`</em></p><h4>Key Features</h4><ul>`)
			for _, f := range bp.KeyFeatures {
				h.raw(`<li>`)
				h.text(f)
				h.raw(`</li>`)
			}
			h.raw(`</ul></div>`)

			h.raw(`<div class="card"><h3>Database Design (Schema)</h3>`)
			for _, t := range bp.DatabaseSchema {
				h.raw(`<div class="table"><h5>Table: `)
				h.text(t.Table)
				h.raw(`</h5>`)
				h.tags("chip", t.Fields)
				h.raw(`</div>`)
			}
			h.raw(`</div>`)

			h.raw(`<div class="card"><h4>Frontend Stack</h4>`)
			h.tags("tag frontend", bp.FrontendStack)
			h.raw(`</div><div class="card"><h4>Backend Stack</h4>`)
			h.tags("tag backend", bp.BackendStack)
			h.raw(`</div>`)
		}
		h.raw(`</section>`)
		return h.err
	})
}
