// Package metrics turns raw container stats snapshots into display rows.
package metrics

import (
	"errors"
	"math"
	"strconv"

	"github.com/rusenback/docker-stats/internal/model"
)

const bytesPerGiB = 1024 * 1024 * 1024

var (
	ErrZeroSystemCPU = errors.New("system cpu usage is zero")
	ErrNoOnlineCPUs  = errors.New("online cpu count is zero")
	ErrInvalidValue  = errors.New("derived value is not a finite non-negative number")
)

// Derive computes memory usage in GiB and CPU percent from one snapshot.
//
// CPU percent is the container's cumulative CPU time against the per-CPU
// share of cumulative system CPU time read at the same instant.
func Derive(name string, s model.Snapshot) (model.Metric, error) {
	if s.SystemCPUUsage == 0 {
		return model.Metric{}, ErrZeroSystemCPU
	}
	if s.OnlineCPUs == 0 {
		return model.Metric{}, ErrNoOnlineCPUs
	}

	memGiB := float64(s.MemoryUsage) / bytesPerGiB
	perCPU := float64(s.SystemCPUUsage) / float64(s.OnlineCPUs)
	cpuPercent := float64(s.CPUUsage) / perCPU * 100

	if !valid(memGiB) || !valid(cpuPercent) {
		return model.Metric{}, ErrInvalidValue
	}

	return model.Metric{
		Name:        name,
		MemoryUsage: format(memGiB),
		CPUPercent:  format(cpuPercent),
	}, nil
}

// GiB returns the numeric value of a metric's formatted memory usage.
func GiB(m model.Metric) (float64, error) {
	return strconv.ParseFloat(m.MemoryUsage, 64)
}

// format rounds to nearest with ties to even on the exact binary value.
func format(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func valid(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
