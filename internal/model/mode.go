// internal/model/mode.go
package model

// DisplayMode selects which counter sources the sampler queries and which
// panels the display renders.
type DisplayMode int

const (
	ModeCPUOnly DisplayMode = iota
	ModeNetworkOnly
	ModeAll
)

func (m DisplayMode) String() string {
	switch m {
	case ModeCPUOnly:
		return "cpu-only"
	case ModeNetworkOnly:
		return "network-only"
	case ModeAll:
		return "all"
	default:
		return "unknown"
	}
}

// ShowCPU reports whether CPU metrics are sampled in this mode.
func (m DisplayMode) ShowCPU() bool {
	return m != ModeNetworkOnly
}

// ShowNetwork reports whether network metrics are sampled in this mode.
func (m DisplayMode) ShowNetwork() bool {
	return m != ModeCPUOnly
}
