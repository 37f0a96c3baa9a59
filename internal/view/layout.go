package view

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dynamicweb/dynamicweb/internal/session"
)

type navItem struct {
	mode  session.Mode
	label string
}

var navItems = []navItem{
	{session.ModeLearn, "Core Concepts"},
	{session.ModeArchitect, "AI Architect"},
	{session.ModeVisualize, "Data Flow"},
}

const stylesheet = `body{margin:0;font-family:system-ui,sans-serif;background:#020617;color:#e2e8f0}
a{color:inherit}
header,footer{border-color:#1e293b;border-style:solid;border-width:0}
header{display:flex;justify-content:space-between;align-items:center;padding:1rem 2rem;border-bottom-width:1px}
nav a{padding:.5rem 1rem;border-radius:.5rem;text-decoration:none;color:#94a3b8}
nav a.active{color:#60a5fa;background:rgba(37,99,235,.1);border:1px solid rgba(59,130,246,.2)}
main{max-width:72rem;margin:0 auto;padding:3rem 1rem;min-height:600px}
footer{border-top-width:1px;padding:2rem;font-size:.85rem;color:#64748b}
.card{background:#0f172a;border:1px solid #334155;border-radius:.75rem;padding:1.5rem;margin-bottom:1.5rem}
.tag{display:inline-block;margin:.15rem;padding:.2rem .7rem;border-radius:999px;font-size:.85rem;background:#1e293b}
.tag.frontend{color:#fcd34d;border:1px solid #92400e}
.tag.backend{color:#d8b4fe;border:1px solid #6b21a8}
.chip{display:inline-block;margin:.15rem;padding:.15rem .5rem;border-radius:.25rem;font:12px monospace;background:#334155}
.error{color:#f87171}
.pending{color:#60a5fa}
textarea{width:100%;height:8rem;background:#1e293b;color:#f1f5f9;border:1px solid #475569;border-radius:.5rem;padding:1rem}
button{padding:.75rem 1.5rem;border-radius:.5rem;border:0;font-weight:700;background:#2563eb;color:#fff}
button[disabled]{background:#334155;color:#64748b}`

// Layout wraps body in the page chrome: header navigation with the active
// mode highlighted, and the footer.
func Layout(mode session.Mode, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>DynamicWeb | Architect &amp; Blueprint</title><style>` + stylesheet + `</style></head><body>`)

		h.raw(`<header><div><strong>DynamicWeb</strong><br><small>Architect &amp; Blueprint</small></div><nav>`)
		for _, item := range navItems {
			class := ""
			if item.mode == mode {
				class = ` class="active" aria-current="page"`
			}
			h.raw(`<a href="/?view=` + string(item.mode) + `"` + class + `>`)
			h.text(item.label)
			h.raw(`</a>`)
		}
		h.raw(`</nav></header>`)

		if mode == session.ModeLearn {
			h.raw(hero)
		}

		h.raw(`<main>`)
		h.render(ctx, body)
		h.raw(`</main>`)

		h.raw(footer)
		h.raw(`</body></html>`)
		return h.err
	})
}

const hero = `<section class="hero" style="text-align:center;padding:4rem 1rem">
<h2 style="font-size:3rem">Build Websites That <br><span style="color:#3b82f6">Think and React.</span></h2>
<p>Dynamic websites are more than just pages; they are living applications. Learn the architecture, plan your stack, and visualize the flow behind modern web apps.</p>
<p><a class="tag" href="/?view=architect">Architect My Project</a> <a class="tag" href="/?view=visualize">Watch Data Flow</a></p>
</section>`

const footer = `<footer><div><strong>DynamicWeb</strong>
<p>An educational platform for planning full-stack dynamic web applications.</p></div>
<div><a href="/?view=learn">Core Concepts</a> · <a href="/?view=architect">Project Blueprints</a> · <a href="/?view=visualize">Data Flow</a> · <a href="/openapi.json">API</a></div>
</footer>`
