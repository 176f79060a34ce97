// internal/docker/stats.go
package docker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/docker/docker/api/types/container"
	"github.com/rusenback/docker-stats/internal/model"
)

// ErrNoStats is returned when the engine answers with an empty sample,
// which it does for containers that are not running.
var ErrNoStats = errors.New("no stats sample")

// ContainerStats fetches one non-streaming stats sample for the container.
func (c *Client) ContainerStats(ctx context.Context, cont model.Container) (model.Snapshot, error) {
	resp, err := c.cli.ContainerStatsOneShot(ctx, cont.ID)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("stats %s: %w", cont.Name, err)
	}
	defer resp.Body.Close()

	var stats container.StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return model.Snapshot{}, fmt.Errorf("decode stats %s: %w", cont.Name, err)
	}

	if stats.Read.IsZero() {
		return model.Snapshot{}, fmt.Errorf("stats %s: %w", cont.Name, ErrNoStats)
	}

	return snapshotFromResponse(&stats, resp.OSType), nil
}

// snapshotFromResponse poimii laskennassa tarvittavat kentät
func snapshotFromResponse(stats *container.StatsResponse, osType string) model.Snapshot {
	memUsage := stats.MemoryStats.Usage
	if osType == "windows" {
		memUsage = stats.MemoryStats.PrivateWorkingSet
	}

	// Older engines and cgroup v1 hosts may omit online_cpus
	onlineCPUs := stats.CPUStats.OnlineCPUs
	if onlineCPUs == 0 {
		onlineCPUs = uint32(len(stats.CPUStats.CPUUsage.PercpuUsage))
	}

	return model.Snapshot{
		MemoryUsage:    memUsage,
		CPUUsage:       stats.CPUStats.CPUUsage.TotalUsage,
		SystemCPUUsage: stats.CPUStats.SystemUsage,
		OnlineCPUs:     onlineCPUs,
		Read:           stats.Read,
	}
}
