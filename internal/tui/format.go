package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/rusenback/sysmon/internal/model"
)

// formatRate formats a bytes-per-second throughput value
func formatRate(bps float64) string {
	if bps < 0 {
		bps = 0
	}
	return humanize.Bytes(uint64(bps)) + "/s"
}

// renderBar piirtää prosenttipalkin
func renderBar(percent float64, length int) string {
	filled := int(percent / 100 * float64(length))
	if filled > length {
		filled = length
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("─", length-filled)
}

// colorize värittää tekstin kuormituksen mukaan
func colorize(percent float64, text string) string {
	var color string
	switch {
	case percent > 80:
		color = "#F38BA8" // red/pink
	case percent > 50:
		color = "#FAB387" // orange
	default:
		color = "#A6E3A1" // green
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
}

// renderAlertTag renders the inline marker next to an alerting metric
func renderAlertTag(a *model.Alert) string {
	if a.Kind == model.AlertEntered {
		return enteredStyle.Render("⚠ ALERT")
	}
	return sustainedStyle.Render("⚠ alert")
}
