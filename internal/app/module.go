package app

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/melih/craftbot/internal/adapters/discord"
	"github.com/melih/craftbot/internal/adapters/docker"
	"github.com/melih/craftbot/internal/config"
	"github.com/melih/craftbot/internal/core/ports"
	"github.com/melih/craftbot/internal/core/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func ConfigModule(cfg config.BotConfig) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(func(cfg config.BotConfig) config.DiscordConfig {
			return cfg.Discord
		}),
		fx.Provide(func(cfg config.BotConfig) config.DockerConfig {
			return cfg.Docker
		}),
		fx.Provide(func(cfg config.BotConfig) config.HTTPConfig {
			return cfg.HTTP
		}),
	)
}

// AdapterModule provides the docker adapter as ports.ContainerService and the discord session.
func AdapterModule() fx.Option {
	return fx.Options(
		fx.Provide(NewDockerAdapter),
		fx.Provide(func(a *docker.Adapter) ports.ContainerService {
			return a
		}),
		fx.Provide(NewDiscordSession),
	)
}

// ServiceModule provides the metrics registry and the dispatcher.
func ServiceModule() fx.Option {
	return fx.Options(
		fx.Provide(NewRegistry),
		fx.Provide(func(reg *prometheus.Registry) prometheus.Registerer {
			return reg
		}),
		fx.Provide(func(reg *prometheus.Registry) prometheus.Gatherer {
			return reg
		}),
		fx.Provide(service.NewMetrics),
		fx.Provide(service.NewDispatcher),
	)
}

// BotModule provides the discord bot on top of the service layer.
func BotModule() fx.Option {
	return fx.Options(
		fx.Provide(func(d *service.Dispatcher) discord.Dispatcher {
			return d
		}),
		fx.Provide(NewBot),
	)
}

// NewDockerAdapter connects to the engine and fails when it does not answer a ping.
func NewDockerAdapter(lc fx.Lifecycle, cfg config.DockerConfig, log zerolog.Logger) (*docker.Adapter, error) {
	adapter, err := docker.NewAdapter(cfg.Host,
		docker.WithTimeout(cfg.Timeout),
		docker.WithStopTimeout(cfg.StopTimeout),
	)
	if err != nil {
		return nil, err
	}
	if err := adapter.Ping(context.Background()); err != nil {
		_ = adapter.Close()
		return nil, err
	}
	log.Info().Str("host", cfg.Host).Msg("connected to docker engine")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return adapter.Close()
		},
	})
	return adapter, nil
}

func NewDiscordSession(cfg config.DiscordConfig) (*discordgo.Session, error) {
	return discord.NewSession(cfg.Token)
}

func NewBot(session *discordgo.Session, dispatcher discord.Dispatcher, cfg config.DiscordConfig, log zerolog.Logger) *discord.Bot {
	return discord.NewBot(session, dispatcher, log,
		discord.WithGuild(cfg.GuildID),
		discord.WithApplicationID(cfg.ApplicationID),
	)
}

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
