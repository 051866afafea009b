package ports

import (
	"context"

	"github.com/melih/craftbot/internal/core/domain"
)

// ContainerService defines the container engine operations the bot needs.
// Implementations must be safe for concurrent use.
type ContainerService interface {
	// ListContainers returns the status of every known container the engine reports,
	// stopped ones included. Containers outside the registry are dropped.
	ListContainers(ctx context.Context) (domain.ContainerStatuses, error)
	StartContainer(ctx context.Context, c domain.Container) error
	StopContainer(ctx context.Context, c domain.Container) error
	// GetContainerLogs returns at most tail of the most recent stdout and stderr lines, oldest first.
	GetContainerLogs(ctx context.Context, c domain.Container, tail int) ([]string, error)
	Ping(ctx context.Context) error
}
