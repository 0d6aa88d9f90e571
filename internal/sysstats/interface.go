// internal/sysstats/interface.go
package sysstats

import "github.com/rusenback/sysmon/internal/model"

// StatsSource interface mahdollistaa mockauksen testeissä
//
// Both queries are stamped at call time and may fail independently; a
// failed query degrades that section of the snapshot, it is never fatal
// to the tick.
type StatsSource interface {
	QueryCPU() (model.CPUReading, error)
	QueryNetwork() ([]model.InterfaceCounter, error)
}

// Varmista että Collector toteuttaa interfacen
var _ StatsSource = (*Collector)(nil)
