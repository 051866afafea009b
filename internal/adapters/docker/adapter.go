package docker

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/melih/craftbot/internal/core/domain"
	"github.com/pkg/errors"
)

// DefaultTimeout bounds every engine call unless overridden with WithTimeout.
const DefaultTimeout = 30 * time.Second

// engine is the part of the Docker API client the adapter uses.
type engine interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error
	ContainerInspect(ctx context.Context, containerID string) (container.InspectResponse, error)
	ContainerLogs(ctx context.Context, containerID string, options container.LogsOptions) (io.ReadCloser, error)
	Ping(ctx context.Context) (types.Ping, error)
	Close() error
}

// Adapter implements ports.ContainerService using Docker SDK
type Adapter struct {
	cli         engine
	timeout     time.Duration
	stopTimeout int
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithTimeout sets the deadline applied to each engine call.
func WithTimeout(d time.Duration) Option {
	return func(a *Adapter) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithStopTimeout sets how long the engine waits for a container to exit before killing it.
// Zero keeps the engine default.
func WithStopTimeout(d time.Duration) Option {
	return func(a *Adapter) {
		a.stopTimeout = int(d / time.Second)
	}
}

// NewAdapter creates a new Docker adapter instance. An empty host uses DOCKER_HOST
// or the local socket.
func NewAdapter(host string, opts ...Option) (*Adapter, error) {
	clientOpts := []client.Opt{client.FromEnv, client.WithAPIVersionNegotiation()}
	if host != "" {
		clientOpts = append(clientOpts, client.WithHost(host))
	}
	cli, err := client.NewClientWithOpts(clientOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create docker client")
	}
	return newAdapter(cli, opts...), nil
}

func newAdapter(cli engine, opts ...Option) *Adapter {
	a := &Adapter{cli: cli, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.timeout)
}

// Ping validates connectivity to the Docker daemon.
func (a *Adapter) Ping(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	ping, err := a.cli.Ping(ctx)
	if err != nil {
		return errors.Wrap(err, "docker ping")
	}
	if ping.APIVersion == "" {
		return errors.New("docker ping returned empty API version")
	}
	return nil
}

// ListContainers returns the status of the known containers, stopped ones included.
func (a *Adapter) ListContainers(ctx context.Context) (domain.ContainerStatuses, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	containers, err := a.cli.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list containers")
	}

	result := make(domain.ContainerStatuses, len(containers))
	for _, c := range containers {
		if len(c.Names) == 0 || c.Status == "" {
			continue
		}
		// Use the first name, without the leading slash
		name := strings.TrimPrefix(c.Names[0], "/")
		if known, ok := domain.LookupContainer(name); ok {
			result[known] = c.Status
		}
	}
	return result, nil
}

// StartContainer starts an existing container by name
func (a *Adapter) StartContainer(ctx context.Context, c domain.Container) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	if err := a.cli.ContainerStart(ctx, c.String(), container.StartOptions{}); err != nil {
		return errors.Wrapf(err, "failed to start container %s", c)
	}
	return nil
}

// StopContainer stops a running container by name
func (a *Adapter) StopContainer(ctx context.Context, c domain.Container) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	opts := container.StopOptions{}
	if a.stopTimeout > 0 {
		opts.Timeout = &a.stopTimeout
	}
	if err := a.cli.ContainerStop(ctx, c.String(), opts); err != nil {
		return errors.Wrapf(err, "failed to stop container %s", c)
	}
	return nil
}

// GetContainerLogs returns the last tail lines of combined stdout and stderr.
// A tail of zero or less returns the whole log.
func (a *Adapter) GetContainerLogs(ctx context.Context, c domain.Container, tail int) ([]string, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	// TTY containers write a raw stream, everything else is multiplexed
	info, err := a.cli.ContainerInspect(ctx, c.String())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to inspect container %s", c)
	}

	options := container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Timestamps: false,
		Tail:       "all",
	}
	if tail > 0 {
		options.Tail = strconv.Itoa(tail)
	}
	reader, err := a.cli.ContainerLogs(ctx, c.String(), options)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch logs of container %s", c)
	}
	defer reader.Close()

	var buf bytes.Buffer
	if info.Config != nil && info.Config.Tty {
		_, err = io.Copy(&buf, reader)
	} else {
		_, err = stdcopy.StdCopy(&buf, &buf, reader)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read logs of container %s", c)
	}
	return splitLines(buf.String(), tail), nil
}

// splitLines breaks raw log output into lines and keeps the last tail of them.
func splitLines(raw string, tail int) []string {
	raw = strings.TrimRight(raw, "\r\n")
	if raw == "" {
		return []string{}
	}
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if tail > 0 && len(lines) > tail {
		lines = lines[len(lines)-tail:]
	}
	return lines
}

// Close releases resources held by the Docker client.
func (a *Adapter) Close() error {
	if a.cli == nil {
		return nil
	}
	return a.cli.Close()
}
