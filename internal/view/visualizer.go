package view

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/a-h/templ"
)

type flowNode struct {
	id, label, color string
	x, y             int
}

type flowLink struct {
	source, target, label string
}

var flowNodes = []flowNode{
	{"User", "Browser/User", "#60a5fa", 100, 200},
	{"Frontend", "React App", "#fbbf24", 300, 200},
	{"API", "API / Server", "#a78bfa", 500, 200},
	{"DB", "Database", "#34d399", 700, 200},
}

var flowLinks = []flowLink{
	{"User", "Frontend", "Interaction"},
	{"Frontend", "API", "Fetch Request"},
	{"API", "DB", "Query"},
	{"DB", "API", "Data Result"},
	{"API", "Frontend", "JSON Response"},
	{"Frontend", "User", "UI Update (State)"},
}

var flowSteps = []struct{ title, body string }{
	{"1. Client Interaction", "User clicks or types, triggering a state change or a fetch call."},
	{"2. API Gateway", "The server processes the request, authenticates the user, and prepares DB queries."},
	{"3. Persistent Storage", "Data is retrieved or updated in a database (SQL or NoSQL)."},
	{"4. State Hydration", "The browser receives JSON and updates the UI without a full page reload."},
}

func nodeByID(id string) flowNode {
	i := slices.IndexFunc(flowNodes, func(n flowNode) bool { return n.id == id })
	return flowNodes[i]
}

// linkPath is a quadratic curve between two nodes. Requests arc above the
// node row and responses below it.
func linkPath(l flowLink) string {
	src, dst := nodeByID(l.source), nodeByID(l.target)
	curve := -40
	if dst.x < src.x {
		curve = 40
	}
	return fmt.Sprintf("M%d,%d Q%d,%d %d,%d", src.x, src.y, (src.x+dst.x)/2, src.y+curve, dst.x, dst.y)
}

// VisualizerPage shows the request lifecycle diagram. Dots travel each link
// in turn using SVG animation, so the page needs no script.
func VisualizerPage() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div class="card visualizer"><h3>Request Lifecycle Visualizer</h3>`)
		h.raw(`<p>Observe how data flows between the user and the dynamic server infrastructure.</p>`)
		h.raw(`<svg viewBox="0 0 800 400" width="100%" role="img" aria-label="Request lifecycle">`)
		h.raw(`<defs><marker id="arrowhead" viewBox="-0 -5 10 10" refX="20" refY="0" orient="auto" markerWidth="6" markerHeight="6">`)
		h.raw(`<path d="M 0,-5 L 10,0 L 0,5" fill="#94a3b8"/></marker></defs>`)

		for i, l := range flowLinks {
			h.raw(fmt.Sprintf(`<path id="link-%d" class="link" d="%s" fill="none" stroke="#475569" stroke-width="2" marker-end="url(#arrowhead)">`, i, linkPath(l)))
			h.raw(`<title>`)
			h.text(l.label)
			h.raw(`</title></path>`)
		}
		for _, n := range flowNodes {
			h.raw(fmt.Sprintf(`<g class="node" transform="translate(%d,%d)">`, n.x, n.y))
			h.raw(fmt.Sprintf(`<circle r="30" fill="%s" stroke="#1e293b" stroke-width="3"/>`, n.color))
			h.raw(`<text dy="50" text-anchor="middle" fill="#f8fafc" font-weight="600">`)
			h.text(n.label)
			h.raw(`</text></g>`)
		}

		// One full cycle visits every link once; each dot waits for its turn.
		cycle := float64(len(flowLinks)) * 0.8
		for i := range flowLinks {
			h.raw(`<circle class="flow-dot" r="4" fill="#fff" opacity="0">`)
			h.raw(fmt.Sprintf(`<set attributeName="opacity" to="1" begin="%.1fs"/>`, float64(i)*0.8))
			h.raw(fmt.Sprintf(`<animateMotion dur="%.1fs" begin="%.1fs" keyPoints="0;1;1" keyTimes="0;%.3f;1" calcMode="linear" repeatCount="indefinite">`,
				cycle, float64(i)*0.8, 1.5/cycle))
			h.raw(fmt.Sprintf(`<mpath href="#link-%d"/></animateMotion></circle>`, i))
		}
		h.raw(`</svg><div class="steps">`)
		for _, s := range flowSteps {
			h.raw(`<div class="card"><h4>`)
			h.text(s.title)
			h.raw(`</h4><p>`)
			h.text(s.body)
			h.raw(`</p></div>`)
		}
		h.raw(`</div></div>`)
		return h.err
	})
}
