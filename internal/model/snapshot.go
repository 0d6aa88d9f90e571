// internal/model/snapshot.go
package model

import "time"

// CPUReading sisältää per-core CPU lukemat yhdeltä kyselyltä
type CPUReading struct {
	Percents  []float64 // busy percentage per core, 0-100
	Timestamp time.Time
}

// InterfaceCounter holds the cumulative byte counters of one network
// interface as reported by the OS. Counters only grow until a reset/wrap.
type InterfaceCounter struct {
	Name      string
	BytesSent uint64
	BytesRecv uint64
	Timestamp time.Time
}

// InterfaceRates holds the derived per-second throughput of one interface.
// HasRate is false on the first observation of an interface and after a
// counter reset; the rate fields are meaningless then.
type InterfaceRates struct {
	Name     string
	SendRate float64 // bytes/sec
	RecvRate float64 // bytes/sec
	HasRate  bool
}

// Snapshot on yhden tickin mittaustulos
//
// A snapshot is immutable once produced; the next tick supersedes it.
type Snapshot struct {
	Timestamp  time.Time
	Cores      []float64 // per-core busy percentage, 0-100
	CPUAverage float64   // arithmetic mean of Cores
	HasCPU     bool      // false when CPU was not sampled or the query failed
	Interfaces []InterfaceRates
}
