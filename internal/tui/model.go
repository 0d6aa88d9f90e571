package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rusenback/sysmon/internal/config"
	"github.com/rusenback/sysmon/internal/model"
)

// Model represents the TUI application state
type Model struct {
	mode       model.DisplayMode // which sections carry data, fixed at startup
	viewMode   model.DisplayMode // which sections are visible right now
	simple     bool
	thresholds model.ThresholdConfig
	interval   time.Duration

	snapshot *model.Snapshot
	alerts   []model.Alert
	waiting  bool

	// Rolling aggregate CPU history for the sparkline graph
	cpuHistory    []float64
	maxDataPoints int

	width  int
	height int
}

// tickResultMsg carries one scheduler tick into the update loop
type tickResultMsg struct {
	snapshot *model.Snapshot
	alerts   []model.Alert
}

// NewModel luo uuden TUI modelin
func NewModel(cfg *config.Config) Model {
	maxPoints := 150
	// Pre-fill with zeros so the graph is full-width from the start
	cpuHist := make([]float64, maxPoints)

	return Model{
		mode:          cfg.Mode,
		viewMode:      cfg.Mode,
		simple:        cfg.Simple,
		thresholds:    cfg.Thresholds,
		interval:      cfg.Interval,
		waiting:       true,
		cpuHistory:    cpuHist,
		maxDataPoints: maxPoints,
	}
}

// Init does nothing: ticks arrive from the scheduler, not from tea.Tick.
func (m Model) Init() tea.Cmd {
	return nil
}

// alertFor returns the alert raised for an entity this tick, if any.
func (m Model) alertFor(entity string) *model.Alert {
	for i := range m.alerts {
		if m.alerts[i].Entity == entity {
			return &m.alerts[i]
		}
	}
	return nil
}
