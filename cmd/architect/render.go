package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dynamicweb/dynamicweb/internal/blueprint"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60A5FA"))
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F1F5F9")).MarginTop(1)
	bodyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#CBD5E1")).Width(80)
	italicStyle   = bodyStyle.Italic(true)
	tableStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#34D399")).Padding(0, 1)
	tableName     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6EE7B7"))
	frontendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FCD34D"))
	backendStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D8B4FE"))
)

// renderBlueprint lays a blueprint out in the same sections as the web view.
// Empty lists produce no section body.
func renderBlueprint(bp *blueprint.Blueprint) string {
	var sections []string
	sections = append(sections,
		titleStyle.Render(bp.Title),
		bodyStyle.Render(bp.Description),
		headingStyle.Render("Technical Architecture"),
		italicStyle.Render(bp.Architecture),
		headingStyle.Render("Key Features"),
	)
	for _, f := range bp.KeyFeatures {
		sections = append(sections, bodyStyle.Render("• "+f))
	}

	sections = append(sections, headingStyle.Render("Database Design (Schema)"))
	var tables []string
	for _, t := range bp.DatabaseSchema {
		tables = append(tables, tableStyle.Render(tableName.Render("Table: "+t.Table)+"\n"+strings.Join(t.Fields, ", ")))
	}
	if len(tables) > 0 {
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, tables...))
	}

	sections = append(sections,
		headingStyle.Render("Frontend Stack"),
		frontendStyle.Render(strings.Join(bp.FrontendStack, " · ")),
		headingStyle.Render("Backend Stack"),
		backendStyle.Render(strings.Join(bp.BackendStack, " · ")),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
