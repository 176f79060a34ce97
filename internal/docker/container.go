// internal/docker/container.go
package docker

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/rusenback/docker-stats/internal/model"
)

// ListContainers palauttaa kaikki containerit (running + stopped)
func (c *Client) ListContainers(ctx context.Context) ([]model.Container, error) {
	containers, err := c.cli.ContainerList(ctx, container.ListOptions{
		All: true, // Näytä myös pysäytetyt
	})
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}

	result := make([]model.Container, 0, len(containers))
	for _, cont := range containers {
		result = append(result, model.Container{
			ID:    cont.ID,
			Name:  containerName(cont),
			Image: cont.Image,
			State: string(cont.State),
		})
	}

	return result, nil
}

// containerName returns the primary name without Docker's leading "/",
// or the short ID for a container that has no name.
func containerName(cont container.Summary) string {
	if len(cont.Names) == 0 {
		if len(cont.ID) > 12 {
			return cont.ID[:12]
		}
		return cont.ID
	}
	return strings.TrimPrefix(cont.Names[0], "/")
}
