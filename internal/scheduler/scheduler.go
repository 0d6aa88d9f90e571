// internal/scheduler/scheduler.go
package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rusenback/sysmon/internal/alerts"
	"github.com/rusenback/sysmon/internal/logger"
	"github.com/rusenback/sysmon/internal/model"
	"github.com/rusenback/sysmon/internal/sampler"
)

// State describes the scheduler lifecycle.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateStopping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Renderer receives the outcome of one tick. A render error stops the
// loop; everything else the scheduler absorbs.
type Renderer interface {
	Render(snap *model.Snapshot, alerts []model.Alert) error
}

// Scheduler ajaa collect→evaluate→render silmukkaa
//
// One tick runs sampling, evaluation and rendering sequentially; ticks
// never overlap. The period is anchored to tick-start times so collection
// and render cost do not inflate the cadence.
type Scheduler struct {
	sampler  *sampler.Sampler
	eval     *alerts.Evaluator
	renderer Renderer
	interval time.Duration
	state    atomic.Int32
}

// New luo uuden schedulerin
func New(s *sampler.Sampler, e *alerts.Evaluator, r Renderer, interval time.Duration) *Scheduler {
	sc := &Scheduler{
		sampler:  s,
		eval:     e,
		renderer: r,
		interval: interval,
	}
	sc.state.Store(int32(StateIdle))
	return sc
}

// State returns the current lifecycle state.
func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// Run executes ticks until ctx is cancelled or a render fails. An
// in-flight render always finishes before the loop observes cancellation,
// so the terminal is never left with partial output. A degraded or empty
// snapshot is still rendered; the next scheduled tick is the retry.
func (s *Scheduler) Run(ctx context.Context) error {
	s.state.Store(int32(StateRunning))
	defer s.state.Store(int32(StateStopped))

	for {
		start := time.Now()

		snap := s.sampler.Sample()
		raised := s.eval.Evaluate(snap)

		if err := s.renderer.Render(snap, raised); err != nil {
			s.state.Store(int32(StateStopping))
			return fmt.Errorf("render failed: %w", err)
		}

		sleep := s.interval - time.Since(start)
		if sleep < 0 {
			logger.Debug().
				Dur("interval", s.interval).
				Dur("overrun", -sleep).
				Msg("tick work exceeded interval")
			sleep = 0
		}

		select {
		case <-ctx.Done():
			s.state.Store(int32(StateStopping))
			return nil
		case <-time.After(sleep):
		}
	}
}
