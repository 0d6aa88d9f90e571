// internal/model/alert.go
package model

// CPUEntity is the alert entity name for aggregate CPU usage. Network
// entities use the interface name.
const CPUEntity = "cpu"

// AlertKind distinguishes the tick where a value first crossed its
// threshold from the ticks where it stays above it.
type AlertKind int

const (
	AlertEntered AlertKind = iota
	AlertSustained
)

func (k AlertKind) String() string {
	switch k {
	case AlertEntered:
		return "entered"
	case AlertSustained:
		return "sustained"
	default:
		return "unknown"
	}
}

// Alert is the output of one threshold evaluation for one entity. It is
// not retained past the tick that produced it.
type Alert struct {
	Entity    string
	Value     float64
	Threshold float64
	Kind      AlertKind
}

// ThresholdConfig sisältää hälytysrajat
//
// Set once at startup, read-only afterwards.
type ThresholdConfig struct {
	CPUPercent     float64 // aggregate CPU alert threshold, percent
	NetBytesPerSec float64 // per-interface alert threshold, bytes/sec
	Enabled        bool
}
