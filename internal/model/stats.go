// internal/model/stats.go
package model

import "time"

// Snapshot is one point-in-time read of a container's cumulative counters.
type Snapshot struct {
	// Memory
	MemoryUsage uint64 // bytes

	// CPU, cumulative nanoseconds
	CPUUsage       uint64 // container since creation
	SystemCPUUsage uint64 // host since boot
	OnlineCPUs     uint32

	// When the engine took the sample
	Read time.Time
}

// Metric is the displayable row served by the stats endpoint. Numeric
// fields are fixed two-decimal strings on the wire.
type Metric struct {
	Name        string `json:"name"`
	MemoryUsage string `json:"memory_usage"`
	CPUPercent  string `json:"cpu_percent"`
}
