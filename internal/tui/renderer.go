// internal/tui/renderer.go
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rusenback/sysmon/internal/model"
)

// ProgramRenderer forwards scheduler ticks into the running bubbletea
// program. Sending never blocks the scheduler; terminal write failures
// surface from the program's own Run call.
type ProgramRenderer struct {
	p *tea.Program
}

func NewProgramRenderer(p *tea.Program) *ProgramRenderer {
	return &ProgramRenderer{p: p}
}

func (r *ProgramRenderer) Render(snap *model.Snapshot, alerts []model.Alert) error {
	r.p.Send(tickResultMsg{snapshot: snap, alerts: alerts})
	return nil
}
