package sysstats

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/net"

	"github.com/rusenback/sysmon/internal/model"
)

// Config sisältää collector konfiguraation
type Config struct {
	// Timeout bounds every OS counter query. A timed-out query counts as
	// a failed sample for that tick, the dashboard must never hang on it.
	Timeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Timeout: 5 * time.Second,
	}
}

// Collector reads CPU and network counters from the host OS via gopsutil.
type Collector struct {
	timeout time.Duration
}

// NewCollector luo uuden collectorin
//
// The counter sources needed by the given mode are probed once so a
// permanently unavailable source fails at launch instead of producing an
// endlessly empty dashboard. The CPU probe doubles as the baseline for
// gopsutil's interval-relative percentages: the first cpu.Percent call
// after it reports usage since this probe.
func NewCollector(cfg Config, mode model.DisplayMode) (*Collector, error) {
	c := &Collector{timeout: cfg.Timeout}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	if mode.ShowCPU() {
		if _, err := cpu.PercentWithContext(ctx, 0, true); err != nil {
			return nil, fmt.Errorf("cpu counters unavailable: %w", err)
		}
	}
	if mode.ShowNetwork() {
		if _, err := net.IOCountersWithContext(ctx, true); err != nil {
			return nil, fmt.Errorf("network counters unavailable: %w", err)
		}
	}

	return c, nil
}

// QueryCPU returns the busy percentage of each core since the previous
// call, stamped at call time.
func (c *Collector) QueryCPU() (model.CPUReading, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	percents, err := cpu.PercentWithContext(ctx, 0, true)
	if err != nil {
		return model.CPUReading{}, err
	}

	return model.CPUReading{
		Percents:  percents,
		Timestamp: time.Now(),
	}, nil
}

// QueryNetwork returns the cumulative byte counters of every interface the
// OS currently reports, stamped at call time.
func (c *Collector) QueryNetwork() ([]model.InterfaceCounter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]model.InterfaceCounter, 0, len(counters))
	for _, counter := range counters {
		result = append(result, model.InterfaceCounter{
			Name:      counter.Name,
			BytesSent: counter.BytesSent,
			BytesRecv: counter.BytesRecv,
			Timestamp: now,
		})
	}

	return result, nil
}
