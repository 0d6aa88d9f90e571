package tui

import (
	"fmt"
	"strings"

	"github.com/rusenback/sysmon/internal/model"
)

// renderCPUPanel renders per-core bars and the aggregate percentage
func (m Model) renderCPUPanel(width int) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("🖥  CPU") + "\n\n")

	snap := m.snapshot
	if snap == nil || !snap.HasCPU {
		s.WriteString(dimStyle.Render("No data"))
		return panelStyle.Width(width).Render(s.String())
	}

	barLen := width - 26
	if barLen < 10 {
		barLen = 10
	}

	avgStr := fmt.Sprintf("%6.2f%% |%s|", snap.CPUAverage, renderBar(snap.CPUAverage, barLen))
	s.WriteString(labelStyle.Render("AVG  ") + colorize(snap.CPUAverage, avgStr))
	if a := m.alertFor(model.CPUEntity); a != nil {
		s.WriteString("  " + renderAlertTag(a))
	}
	s.WriteString("\n\n")

	for i, p := range snap.Cores {
		line := fmt.Sprintf("%-4s %6.2f%% |%s|", fmt.Sprintf("C%d", i), p, renderBar(p, barLen))
		s.WriteString(colorize(p, line) + "\n")
	}

	return panelStyle.Width(width).Render(s.String())
}

// renderNetworkPanel renders the per-interface throughput table
func (m Model) renderNetworkPanel(width int) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("🌐 Network") + "\n\n")

	snap := m.snapshot
	if snap == nil || len(snap.Interfaces) == 0 {
		s.WriteString(dimStyle.Render("No data"))
		return panelStyle.Width(width).Render(s.String())
	}

	nameWidth := width - 32
	if nameWidth < 10 {
		nameWidth = 10
	}

	header := fmt.Sprintf("%-*s %12s %12s", nameWidth, "INTERFACE", "RX/s", "TX/s")
	s.WriteString(headerStyle.Render(header) + "\n")

	for _, iface := range snap.Interfaces {
		rx, tx := "--", "--"
		if iface.HasRate {
			rx = formatRate(iface.RecvRate)
			tx = formatRate(iface.SendRate)
		}
		line := fmt.Sprintf("%-*s %12s %12s", nameWidth, truncate(iface.Name, nameWidth), rx, tx)

		if a := m.alertFor(iface.Name); a != nil {
			if a.Kind == model.AlertEntered {
				line = enteredStyle.Render(line)
			} else {
				line = sustainedStyle.Render(line)
			}
		}
		s.WriteString(line + "\n")
	}

	return panelStyle.Width(width).Render(s.String())
}

// renderGraphPanel renders the rolling aggregate CPU sparkline
func (m Model) renderGraphPanel(width int) string {
	content := renderCPUGraph(m.cpuHistory, width-8, m.interval)
	return panelStyle.Width(width).Render(content)
}

// renderAlertsPanel lists the alerts raised this tick
func (m Model) renderAlertsPanel(width int) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("🔔 Alerts") + "\n\n")

	switch {
	case !m.thresholds.Enabled:
		s.WriteString(dimStyle.Render("Alerts disabled (--no-alerts)"))

	case len(m.alerts) == 0:
		s.WriteString(okStyle.Render("All metrics below thresholds"))

	default:
		for _, a := range m.alerts {
			var value, threshold string
			if a.Entity == model.CPUEntity {
				value = fmt.Sprintf("%.1f%%", a.Value)
				threshold = fmt.Sprintf("%.1f%%", a.Threshold)
			} else {
				value = formatRate(a.Value)
				threshold = formatRate(a.Threshold)
			}

			line := fmt.Sprintf("● %-12s %10s ≥ %-10s (%s)",
				truncate(a.Entity, 12), value, threshold, a.Kind)
			if a.Kind == model.AlertEntered {
				line = enteredStyle.Render(line)
			} else {
				line = sustainedStyle.Render(line)
			}
			s.WriteString(line + "\n")
		}
	}

	return panelStyle.Width(width).Render(s.String())
}

// renderSimpleView renders the compact single-panel summary
func (m Model) renderSimpleView() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("📊 System Monitor") + "\n\n")

	snap := m.snapshot

	if m.viewMode.ShowCPU() {
		if snap != nil && snap.HasCPU {
			line := fmt.Sprintf("CPU: %5.1f%% (%d cores)", snap.CPUAverage, len(snap.Cores))
			s.WriteString(colorize(snap.CPUAverage, line))
			if a := m.alertFor(model.CPUEntity); a != nil {
				s.WriteString("  " + renderAlertTag(a))
			}
		} else {
			s.WriteString(dimStyle.Render("CPU: no data"))
		}
		s.WriteString("\n")
	}

	if m.viewMode.ShowNetwork() {
		if snap != nil && len(snap.Interfaces) > 0 {
			var rx, tx float64
			alerting := 0
			for _, iface := range snap.Interfaces {
				rx += iface.RecvRate
				tx += iface.SendRate
				if m.alertFor(iface.Name) != nil {
					alerting++
				}
			}
			line := fmt.Sprintf("Net: ↓ %s  ↑ %s (%d interfaces)",
				formatRate(rx), formatRate(tx), len(snap.Interfaces))
			s.WriteString(valueStyle.Render(line))
			if alerting > 0 {
				s.WriteString("  " + sustainedStyle.Render(fmt.Sprintf("⚠ %d over threshold", alerting)))
			}
		} else {
			s.WriteString(dimStyle.Render("Net: no data"))
		}
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render(m.helpLine()))
	return s.String()
}
