package view

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Concept is one entry of the learn page.
type Concept struct {
	Title        string
	Summary      string
	Technologies []string
}

// Concepts are the fixed topics shown on the learn page, in tab order.
var Concepts = []Concept{
	{
		Title:        "What is a Dynamic Website?",
		Summary:      "Unlike static websites (HTML/CSS files), dynamic websites generate content in real-time. They use a combination of server-side logic and client-side scripting to pull data from a database and display it based on user interaction, time, or location.",
		Technologies: []string{"Serverless", "Microservices", "SSR"},
	},
	{
		Title:        "The Role of State",
		Summary:      "Dynamic behavior in the browser is driven by state: a data structure that changes over time. When state updates, the relevant parts of the UI are re-rendered, so the page changes without a full refresh.",
		Technologies: []string{"React Hooks", "Redux", "Zustand"},
	},
	{
		Title:        "APIs & JSON",
		Summary:      "APIs are the bridge between your UI and your data. Most dynamic sites use REST or GraphQL APIs to send and receive data as JSON, which browsers parse natively.",
		Technologies: []string{"REST", "Axios", "Fetch API"},
	},
	{
		Title:        "Authentication",
		Summary:      "Dynamic sites often need to know who the user is. This is handled with cookies or tokens (JWT), so private data like a profile or a shopping cart can be loaded for one user alone.",
		Technologies: []string{"OAuth", "Firebase", "NextAuth"},
	},
}

// ConceptIndex clamps i to a valid Concepts index. Out-of-range values select
// the first concept.
func ConceptIndex(i int) int {
	if i < 0 || i >= len(Concepts) {
		return 0
	}
	return i
}

// LearnPage lists the concepts as tabs and shows the active one in full.
func LearnPage(active int) templ.Component {
	active = ConceptIndex(active)
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div class="learn"><div class="tabs">`)
		for i, c := range Concepts {
			class := "card"
			if i == active {
				class += " active"
			}
			h.raw(`<a class="` + class + `" href="/?view=learn&amp;concept=` + strconv.Itoa(i) + `">`)
			h.raw(`<h4>`)
			h.text(c.Title)
			h.raw(`</h4><small>Click to learn more</small></a>`)
		}
		h.raw(`</div>`)

		c := Concepts[active]
		h.raw(`<div class="card concept"><h3>`)
		h.text(c.Title)
		h.raw(`</h3><p><em>`)
		h.text(c.Summary)
		h.raw(`</em></p><hr><h5>Key Technologies</h5><div>`)
		h.tags("tag", c.Technologies)
		h.raw(`</div></div></div>`)
		return h.err
	})
}
