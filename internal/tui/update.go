package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rusenback/sysmon/internal/model"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "m":
			// Cycle visible sections. Only meaningful when the sampler
			// collects everything; otherwise there is nothing to cycle to.
			if m.mode == model.ModeAll {
				switch m.viewMode {
				case model.ModeAll:
					m.viewMode = model.ModeCPUOnly
				case model.ModeCPUOnly:
					m.viewMode = model.ModeNetworkOnly
				default:
					m.viewMode = model.ModeAll
				}
			}
		}

	case tickResultMsg:
		m.waiting = false
		m.snapshot = msg.snapshot
		m.alerts = msg.alerts

		if msg.snapshot.HasCPU {
			// Shift history left and add the new value at the end
			m.cpuHistory = append(m.cpuHistory[1:], msg.snapshot.CPUAverage)
		}
	}

	return m, nil
}
