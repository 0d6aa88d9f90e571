package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rusenback/sysmon/internal/model"
)

// View renders the TUI interface
func (m Model) View() string {
	if m.waiting {
		return panelStyle.Render(titleStyle.Render("📊 System Monitor") + "\n\nCollecting metrics...")
	}

	if m.simple {
		return m.renderSimpleView()
	}

	width := m.width
	if width <= 0 {
		width = 100
	}

	showCPU := m.viewMode.ShowCPU()
	showNetwork := m.viewMode.ShowNetwork()

	var rows []string
	switch {
	case showCPU && showNetwork:
		// 55% CPU, rest network
		leftWidth := int(float64(width) * 0.55)
		rightWidth := width - leftWidth - 4
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderCPUPanel(leftWidth),
			m.renderNetworkPanel(rightWidth),
		))
	case showCPU:
		rows = append(rows, m.renderCPUPanel(width-4))
	default:
		rows = append(rows, m.renderNetworkPanel(width-4))
	}

	if showCPU {
		rows = append(rows, m.renderGraphPanel(width-4))
	}
	rows = append(rows, m.renderAlertsPanel(width-4))
	rows = append(rows, helpStyle.Render(m.helpLine()))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) helpLine() string {
	help := "[q] quit"
	if m.mode == model.ModeAll {
		help += "  [m] cycle view"
	}
	return help
}
