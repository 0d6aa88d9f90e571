// internal/sampler/sampler.go
package sampler

import (
	"time"

	"github.com/rusenback/sysmon/internal/logger"
	"github.com/rusenback/sysmon/internal/model"
	"github.com/rusenback/sysmon/internal/sysstats"
)

// Sampler orkestroi counter kyselyt ja tuottaa snapshotin
//
// It retains the previous network reading per interface for rate
// computation. CPU percentages come interval-relative from the source, so
// no CPU state is kept here.
type Sampler struct {
	source  sysstats.StatsSource
	mode    model.DisplayMode
	prevNet map[string]model.InterfaceCounter
}

// New luo uuden samplerin
func New(source sysstats.StatsSource, mode model.DisplayMode) *Sampler {
	return &Sampler{
		source:  source,
		mode:    mode,
		prevNet: make(map[string]model.InterfaceCounter),
	}
}

// Sample queries the counter source and produces the snapshot for this
// tick. A failing counter degrades to an omitted section; it never fails
// the whole sample.
func (s *Sampler) Sample() *model.Snapshot {
	snap := &model.Snapshot{Timestamp: time.Now()}

	if s.mode.ShowCPU() {
		s.sampleCPU(snap)
	}
	if s.mode.ShowNetwork() {
		s.sampleNetwork(snap)
	}

	return snap
}

func (s *Sampler) sampleCPU(snap *model.Snapshot) {
	reading, err := s.source.QueryCPU()
	if err != nil {
		logger.Warn().Err(err).Msg("cpu query failed, omitting cpu from snapshot")
		return
	}
	if len(reading.Percents) == 0 {
		return
	}

	var sum float64
	for _, p := range reading.Percents {
		sum += p
	}

	snap.Cores = reading.Percents
	snap.CPUAverage = sum / float64(len(reading.Percents))
	snap.HasCPU = true
}

func (s *Sampler) sampleNetwork(snap *model.Snapshot) {
	counters, err := s.source.QueryNetwork()
	if err != nil {
		logger.Warn().Err(err).Msg("network query failed, omitting network from snapshot")
		return
	}

	seen := make(map[string]struct{}, len(counters))
	rates := make([]model.InterfaceRates, 0, len(counters))

	for _, cur := range counters {
		seen[cur.Name] = struct{}{}

		iface := model.InterfaceRates{Name: cur.Name}
		if prev, ok := s.prevNet[cur.Name]; ok {
			send, okSend := PerSecond(prev.BytesSent, cur.BytesSent, prev.Timestamp, cur.Timestamp)
			recv, okRecv := PerSecond(prev.BytesRecv, cur.BytesRecv, prev.Timestamp, cur.Timestamp)
			// A reset on either counter invalidates the pair; the
			// current reading becomes the baseline for the next tick.
			if okSend && okRecv {
				iface.SendRate = send
				iface.RecvRate = recv
				iface.HasRate = true
			}
		}

		s.prevNet[cur.Name] = cur
		rates = append(rates, iface)
	}

	// Drop retained readings for interfaces the OS no longer reports.
	for name := range s.prevNet {
		if _, ok := seen[name]; !ok {
			logger.Debug().Str("interface", name).Msg("interface disappeared, dropping previous reading")
			delete(s.prevNet, name)
		}
	}

	snap.Interfaces = rates
}
