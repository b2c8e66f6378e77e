// Package ui renders the scraper's terminal progress line.
package ui

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	countStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#14B8A6"))
)

// ProgressLine formats one cycle report: how many questions the cycle
// fetched, how many were new, and the running store total.
func ProgressLine(fetched, added, total int) string {
	return fmt.Sprintf("%s %s  %s %s  %s %s",
		labelStyle.Render("fetched"), countStyle.Render(strconv.Itoa(fetched)),
		labelStyle.Render("new"), countStyle.Render(strconv.Itoa(added)),
		labelStyle.Render("total"), countStyle.Render(strconv.Itoa(total)),
	)
}
