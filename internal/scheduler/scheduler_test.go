package scheduler_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusenback/sysmon/internal/alerts"
	"github.com/rusenback/sysmon/internal/model"
	"github.com/rusenback/sysmon/internal/sampler"
	"github.com/rusenback/sysmon/internal/scheduler"
)

// scriptedSource replays per-core CPU percentages, one reading per tick.
type scriptedSource struct {
	cpu  [][]float64
	call int
}

func (s *scriptedSource) QueryCPU() (model.CPUReading, error) {
	if len(s.cpu) == 0 {
		return model.CPUReading{}, errors.New("unavailable")
	}
	percents := s.cpu[s.call%len(s.cpu)]
	s.call++
	return model.CPUReading{Percents: percents, Timestamp: time.Now()}, nil
}

func (s *scriptedSource) QueryNetwork() ([]model.InterfaceCounter, error) {
	return nil, errors.New("unavailable")
}

// recordingRenderer captures every tick and can simulate render cost,
// stop the loop after N ticks, or fail a render.
type recordingRenderer struct {
	mu        sync.Mutex
	work      time.Duration
	times     []time.Time
	snaps     []*model.Snapshot
	alerts    [][]model.Alert
	stopAfter int
	errAfter  int
	cancel    context.CancelFunc
}

func (r *recordingRenderer) Render(snap *model.Snapshot, raised []model.Alert) error {
	r.mu.Lock()
	r.times = append(r.times, time.Now())
	r.snaps = append(r.snaps, snap)
	r.alerts = append(r.alerts, raised)
	n := len(r.times)
	r.mu.Unlock()

	if r.work > 0 {
		time.Sleep(r.work)
	}
	if r.errAfter > 0 && n >= r.errAfter {
		return errors.New("terminal gone")
	}
	if r.stopAfter > 0 && n >= r.stopAfter && r.cancel != nil {
		r.cancel()
	}
	return nil
}

func (r *recordingRenderer) ticks() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.times)
}

func newScheduler(src *scriptedSource, r *recordingRenderer, cpuThreshold float64, interval time.Duration) *scheduler.Scheduler {
	smp := sampler.New(src, model.ModeCPUOnly)
	eval := alerts.NewEvaluator(model.ThresholdConfig{
		CPUPercent:     cpuThreshold,
		NetBytesPerSec: 1_000_000,
		Enabled:        true,
	})
	return scheduler.New(smp, eval, r, interval)
}

func TestDriftCorrection(t *testing.T) {
	const (
		interval = 40 * time.Millisecond
		work     = 15 * time.Millisecond
		ticks    = 12
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := &recordingRenderer{work: work, stopAfter: ticks, cancel: cancel}
	sched := newScheduler(&scriptedSource{cpu: [][]float64{{30, 30}}}, r, 90, interval)

	require.NoError(t, sched.Run(ctx))
	require.GreaterOrEqual(t, r.ticks(), ticks)

	// The cadence must converge to the interval, not interval + work.
	var total time.Duration
	for i := 1; i < ticks; i++ {
		total += r.times[i].Sub(r.times[i-1])
	}
	avg := total / time.Duration(ticks-1)
	assert.Less(t, avg, interval+work/2, "Expected work cost to be absorbed, got avg period %v", avg)
	assert.GreaterOrEqual(t, avg, interval-5*time.Millisecond)
}

func TestStateTransitions(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := &recordingRenderer{}
	sched := newScheduler(&scriptedSource{cpu: [][]float64{{10}}}, r, 90, 20*time.Millisecond)
	assert.Equal(t, scheduler.StateIdle, sched.State())

	done := make(chan error, 1)
	go func() { done <- sched.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return sched.State() == scheduler.StateRunning
	}, time.Second, time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, scheduler.StateStopped, sched.State())
	assert.GreaterOrEqual(t, r.ticks(), 1, "First tick runs immediately")
}

func TestRenderFailureIsFatal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := &recordingRenderer{errAfter: 2}
	sched := newScheduler(&scriptedSource{cpu: [][]float64{{10}}}, r, 90, 10*time.Millisecond)

	err := sched.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render failed")
	assert.Equal(t, scheduler.StateStopped, sched.State())
	assert.Equal(t, 2, r.ticks())
}

func TestDegradedSnapshotStillRenders(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Counter source is completely unreachable: the loop must keep
	// rendering "no data" snapshots instead of crashing.
	r := &recordingRenderer{stopAfter: 3, cancel: cancel}
	sched := newScheduler(&scriptedSource{}, r, 90, 10*time.Millisecond)

	require.NoError(t, sched.Run(ctx))
	require.GreaterOrEqual(t, r.ticks(), 3)
	for _, snap := range r.snaps[:3] {
		assert.False(t, snap.HasCPU)
		assert.Empty(t, snap.Interfaces)
	}
}

func TestAlertScenarioEndToEnd(t *testing.T) {
	// CPU averages 30% for three ticks, 95% for two, then 30% again with
	// threshold 90: none, none, none, entered, sustained, none.
	script := [][]float64{
		{25, 35}, {30, 30}, {28, 32},
		{94, 96}, {95, 95},
		{30, 30},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := &recordingRenderer{stopAfter: len(script), cancel: cancel}
	sched := newScheduler(&scriptedSource{cpu: script}, r, 90, 10*time.Millisecond)

	require.NoError(t, sched.Run(ctx))
	require.Equal(t, len(script), r.ticks())

	wantAlerts := []int{0, 0, 0, 1, 1, 0}
	for i, want := range wantAlerts {
		assert.Len(t, r.alerts[i], want, "tick %d", i)
	}
	assert.Equal(t, model.AlertEntered, r.alerts[3][0].Kind)
	assert.Equal(t, model.AlertSustained, r.alerts[4][0].Kind)

	// Snapshot aggregates match the arithmetic mean of each reading.
	wantAvg := []float64{30, 30, 30, 95, 95, 30}
	for i, want := range wantAvg {
		require.True(t, r.snaps[i].HasCPU)
		assert.InDelta(t, want, r.snaps[i].CPUAverage, 0.001, "tick %d", i)
	}

	// Timestamps are strictly ordered by tick.
	for i := 1; i < len(script); i++ {
		assert.False(t, r.snaps[i].Timestamp.Before(r.snaps[i-1].Timestamp))
	}
}
