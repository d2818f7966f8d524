package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hostcost/internal/pricing"
)

// Layout constants
const (
	minPanelWidth = 36
	maxPanelWidth = 64
	labelWidth    = 16
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")).
			MarginBottom(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")).
			Bold(true)

	fieldStyle = lipgloss.NewStyle()

	costStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			MarginTop(1)
)

// panelWidth picks a panel width that fits the screen.
func panelWidth(screenW int) int {
	w := screenW - 4
	return max(minPanelWidth, min(w, maxPanelWidth))
}

// renderPanel draws content inside a rounded box with a title line.
func renderPanel(title, content string, width int) string {
	body := panelTitleStyle.Render(title) + "\n" + content
	return panelStyle.Width(width).Render(body)
}

// renderFields draws one row per field, highlighting the selected one.
func renderFields(m EstimatorModel) string {
	rows := make([]string, 0, m.form.Len())
	for i, fd := range m.form.Fields() {
		cursor := "  "
		style := fieldStyle
		value := fd.Value
		if i == m.form.Selected() {
			cursor = "> "
			style = selectedStyle
			value += "_"
		}
		line := fmt.Sprintf("%s%-*s %s", cursor, labelWidth, fd.Label, value)
		rows = append(rows, style.Render(line))
	}
	return strings.Join(rows, "\n")
}

// renderCost formats the live estimate line.
func renderCost(m EstimatorModel) string {
	cost := m.Result().Cost
	return "Estimated Cost: " + costStyle.Render(pricing.FormatCost(cost))
}

// renderEstimator composes the full screen.
func renderEstimator(m EstimatorModel) string {
	width := panelWidth(m.config.ScreenW)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.config.Title),
		renderPanel("Parameters", renderFields(m), width),
		renderPanel("Cost", renderCost(m), width),
		helpStyle.Render(m.help.View(m.keys)),
	)
}
