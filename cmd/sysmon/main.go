// cmd/sysmon/main.go
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rusenback/sysmon/internal/alerts"
	"github.com/rusenback/sysmon/internal/config"
	"github.com/rusenback/sysmon/internal/logger"
	"github.com/rusenback/sysmon/internal/sampler"
	"github.com/rusenback/sysmon/internal/scheduler"
	"github.com/rusenback/sysmon/internal/sysstats"
	"github.com/rusenback/sysmon/internal/tui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "sysmon: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to ~/.sysmon/sysmon.log
	logFile, err := logger.OpenFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sysmon: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger.Init(logFile, cfg.Debug, cfg.Verbose)

	collector, err := sysstats.NewCollector(sysstats.DefaultConfig(), cfg.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to read system counters: %v\n", err)
		os.Exit(1)
	}

	smp := sampler.New(collector, cfg.Mode)
	eval := alerts.NewEvaluator(cfg.Thresholds)

	m := tui.NewModel(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())

	sched := scheduler.New(smp, eval, tui.NewProgramRenderer(p), cfg.Interval)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	schedErr := make(chan error, 1)
	go func() {
		err := sched.Run(ctx)
		if err != nil {
			// A failed render ends the session; tear the TUI down too.
			logger.Error().Err(err).Msg("scheduler stopped")
			p.Quit()
		}
		schedErr <- err
	}()

	_, runErr := p.Run()

	// Let the in-flight tick finish before exiting.
	cancel()
	loopErr := <-schedErr

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", runErr)
		os.Exit(1)
	}
	if loopErr != nil {
		fmt.Fprintf(os.Stderr, "sysmon: %v\n", loopErr)
		os.Exit(1)
	}
}
