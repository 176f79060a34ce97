// internal/docker/interface.go
package docker

import (
	"context"

	"github.com/rusenback/docker-stats/internal/model"
)

// StatsSource interface mahdollistaa mockauksen testeissä
type StatsSource interface {
	ListContainers(ctx context.Context) ([]model.Container, error)
	ContainerStats(ctx context.Context, c model.Container) (model.Snapshot, error)
}

// Varmista että Client toteuttaa interfacen
var _ StatsSource = (*Client)(nil)
