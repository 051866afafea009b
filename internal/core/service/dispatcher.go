// Package service turns slash command invocations into container engine calls
// and formats the replies.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/melih/craftbot/internal/core/domain"
	"github.com/melih/craftbot/internal/core/ports"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// StatusTitle is the title of the status embed.
const StatusTitle = "Minecraft server status"

const codeFence = "```"

// Dispatcher handles one invocation at a time and keeps no state between them,
// so a single instance is shared by all concurrent interactions.
type Dispatcher struct {
	containers ports.ContainerService
	log        zerolog.Logger
	metrics    *Metrics
}

func NewDispatcher(containers ports.ContainerService, log zerolog.Logger, metrics *Metrics) *Dispatcher {
	return &Dispatcher{
		containers: containers,
		log:        log.With().Str("component", "dispatcher").Logger(),
		metrics:    metrics,
	}
}

// Dispatch routes an invocation to its handler.
func (d *Dispatcher) Dispatch(ctx context.Context, inv domain.CommandInvocation) (domain.Reply, error) {
	switch inv.Command {
	case domain.CommandStatus:
		return d.Status(ctx)
	case domain.CommandStart, domain.CommandStop, domain.CommandLogs:
		if !inv.HasContainer {
			return domain.Reply{}, errors.Wrapf(domain.ErrMissingContainer, "command %s", inv.Command)
		}
	default:
		return domain.Reply{}, errors.Wrapf(domain.ErrUnknownCommand, "command %q", inv.Command)
	}

	switch inv.Command {
	case domain.CommandStart:
		return d.Start(ctx, inv.Container), nil
	case domain.CommandStop:
		return d.Stop(ctx, inv.Container), nil
	default:
		return d.Logs(ctx, inv.Container)
	}
}

// Status reports every known container in registry order, "Missing" for those the engine does not have.
func (d *Dispatcher) Status(ctx context.Context) (domain.Reply, error) {
	d.log.Info().Str("operation", string(domain.CommandStatus)).Msg("command invoked")

	started := time.Now()
	statuses, err := d.containers.ListContainers(ctx)
	d.metrics.engineCall("list", started)
	if err != nil {
		d.metrics.command(string(domain.CommandStatus), resultError)
		return domain.Reply{}, errors.Wrap(err, "status")
	}

	embed := &domain.Embed{Title: StatusTitle}
	for _, c := range domain.Containers() {
		embed.Fields = append(embed.Fields, domain.EmbedField{
			Name:  c.String(),
			Value: statuses.StatusOf(c),
		})
	}
	d.metrics.command(string(domain.CommandStatus), resultOK)
	return domain.Reply{Embed: embed}, nil
}

// Start never fails: an engine error becomes the failure text.
func (d *Dispatcher) Start(ctx context.Context, c domain.Container) domain.Reply {
	d.log.Info().Str("container", c.String()).Str("operation", string(domain.CommandStart)).Msg("command invoked")

	started := time.Now()
	err := d.containers.StartContainer(ctx, c)
	d.metrics.engineCall("start", started)
	if err != nil {
		d.log.Warn().Err(err).Str("container", c.String()).Msg("start rejected by engine")
		d.metrics.command(string(domain.CommandStart), resultFailed)
		return domain.Reply{Content: fmt.Sprintf("%s: failed to start", c)}
	}
	d.metrics.command(string(domain.CommandStart), resultOK)
	return domain.Reply{Content: fmt.Sprintf("%s: started", c)}
}

// Stop never fails: an engine error becomes the failure text.
func (d *Dispatcher) Stop(ctx context.Context, c domain.Container) domain.Reply {
	d.log.Info().Str("container", c.String()).Str("operation", string(domain.CommandStop)).Msg("command invoked")

	started := time.Now()
	err := d.containers.StopContainer(ctx, c)
	d.metrics.engineCall("stop", started)
	if err != nil {
		d.log.Warn().Err(err).Str("container", c.String()).Msg("stop rejected by engine")
		d.metrics.command(string(domain.CommandStop), resultFailed)
		return domain.Reply{Content: fmt.Sprintf("%s: failed to stop", c)}
	}
	d.metrics.command(string(domain.CommandStop), resultOK)
	return domain.Reply{Content: fmt.Sprintf("%s: stopped", c)}
}

// Logs replies with the last domain.LogTail lines inside a code block.
func (d *Dispatcher) Logs(ctx context.Context, c domain.Container) (domain.Reply, error) {
	d.log.Info().Str("container", c.String()).Str("operation", string(domain.CommandLogs)).Msg("command invoked")

	started := time.Now()
	lines, err := d.containers.GetContainerLogs(ctx, c, domain.LogTail)
	d.metrics.engineCall("logs", started)
	if err != nil {
		d.metrics.command(string(domain.CommandLogs), resultError)
		return domain.Reply{}, errors.Wrap(err, "logs")
	}
	d.metrics.command(string(domain.CommandLogs), resultOK)
	return domain.Reply{Content: CodeBlock(lines)}, nil
}

// CodeBlock joins lines with newlines and wraps them in a code fence.
func CodeBlock(lines []string) string {
	return codeFence + strings.Join(lines, "\n") + codeFence
}
