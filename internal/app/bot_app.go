package app

import (
	"context"

	"github.com/melih/craftbot/internal/adapters/discord"
	httpadapter "github.com/melih/craftbot/internal/adapters/http"
	"github.com/melih/craftbot/internal/config"
	"github.com/melih/craftbot/internal/core/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// NewBotApp wires the bot for an already validated configuration.
func NewBotApp(cfg config.BotConfig, log zerolog.Logger) *fx.App {
	return fx.New(
		fx.Supply(log),
		fx.WithLogger(func(log zerolog.Logger) fxevent.Logger {
			return &fxLogger{log: log.With().Str("component", "fx").Logger()}
		}),
		ConfigModule(cfg),
		AdapterModule(),
		ServiceModule(),
		BotModule(),
		fx.Invoke(StartOpsServer),
		fx.Invoke(StartBot),
	)
}

func StartBot(lc fx.Lifecycle, bot *discord.Bot) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return bot.Start()
		},
		OnStop: func(ctx context.Context) error {
			return bot.Close()
		},
	})
}

// StartOpsServer serves health and metrics when http.addr is set.
func StartOpsServer(lc fx.Lifecycle, cfg config.HTTPConfig, containers ports.ContainerService, gatherer prometheus.Gatherer, log zerolog.Logger) {
	if cfg.Addr == "" {
		return
	}
	server := httpadapter.NewServer(cfg.Addr, httpadapter.NewHandler(containers, gatherer), log)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return server.Start()
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("shutting down ops server")
			return server.Shutdown(ctx)
		},
	})
}

type fxLogger struct {
	log zerolog.Logger
}

func (l *fxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.OnStartExecuted:
		if e.Err != nil {
			l.log.Error().Err(e.Err).Str("callee", e.FunctionName).Msg("start hook failed")
		}
	case *fxevent.OnStopExecuted:
		if e.Err != nil {
			l.log.Error().Err(e.Err).Str("callee", e.FunctionName).Msg("stop hook failed")
		}
	case *fxevent.Invoked:
		if e.Err != nil {
			l.log.Error().Err(e.Err).Str("function", e.FunctionName).Msg("invoke failed")
		}
	case *fxevent.Started:
		if e.Err != nil {
			l.log.Error().Err(e.Err).Msg("start failed")
		} else {
			l.log.Debug().Msg("started")
		}
	case *fxevent.Stopped:
		if e.Err != nil {
			l.log.Error().Err(e.Err).Msg("stop failed")
		}
	default:
		l.log.Trace().Msgf("%T", event)
	}
}
