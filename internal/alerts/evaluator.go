// internal/alerts/evaluator.go
package alerts

import (
	"math"

	"github.com/rusenback/sysmon/internal/model"
)

// Evaluator tarkistaa snapshotit hälytysrajoja vasten
//
// It owns the per-entity "currently alerting" state used to distinguish
// entered from sustained alerts across ticks. Evaluation order is fixed:
// aggregate CPU first, then interfaces in snapshot order, so the display
// stays stable.
type Evaluator struct {
	cfg    model.ThresholdConfig
	active map[string]bool
}

// NewEvaluator luo uuden evaluatorin
func NewEvaluator(cfg model.ThresholdConfig) *Evaluator {
	return &Evaluator{
		cfg:    cfg,
		active: make(map[string]bool),
	}
}

// Evaluate returns the alerts raised by one snapshot and advances the
// transition state. Sustained alerts are re-emitted on every tick above
// threshold so the renderer can keep the highlight active; the kind field
// lets it separate one-shot notifications from persistent highlights.
func (e *Evaluator) Evaluate(snap *model.Snapshot) []model.Alert {
	if !e.cfg.Enabled {
		// Alert relevance from before a disabled window is stale, so a
		// later re-enable starts clean.
		if len(e.active) > 0 {
			e.active = make(map[string]bool)
		}
		return nil
	}

	var out []model.Alert
	seen := make(map[string]struct{}, len(snap.Interfaces)+1)

	if snap.HasCPU {
		seen[model.CPUEntity] = struct{}{}
		if alert, ok := e.check(model.CPUEntity, snap.CPUAverage, e.cfg.CPUPercent); ok {
			out = append(out, alert)
		}
	}

	for _, iface := range snap.Interfaces {
		seen[iface.Name] = struct{}{}
		if !iface.HasRate {
			// Unknown rate this tick: nothing to compare, state as-is.
			continue
		}
		value := math.Max(iface.SendRate, iface.RecvRate)
		if alert, ok := e.check(iface.Name, value, e.cfg.NetBytesPerSec); ok {
			out = append(out, alert)
		}
	}

	// Drop state for entities the snapshot no longer reports.
	for entity := range e.active {
		if _, ok := seen[entity]; !ok {
			delete(e.active, entity)
		}
	}

	return out
}

func (e *Evaluator) check(entity string, value, threshold float64) (model.Alert, bool) {
	if value >= threshold {
		kind := model.AlertEntered
		if e.active[entity] {
			kind = model.AlertSustained
		}
		e.active[entity] = true
		return model.Alert{
			Entity:    entity,
			Value:     value,
			Threshold: threshold,
			Kind:      kind,
		}, true
	}

	// Falling below threshold clears the state silently.
	if e.active[entity] {
		delete(e.active, entity)
	}
	return model.Alert{}, false
}
