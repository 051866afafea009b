package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/melih/craftbot/internal/adapters/discord"
	"github.com/melih/craftbot/internal/app"
	"github.com/melih/craftbot/internal/config"
	"github.com/melih/craftbot/pkg/logger"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configName string
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "craftbot",
		Short:         "Discord bot that manages the Minecraft server containers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBot(cmd.Context(), opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configName, "config-name", config.DefaultConfigName, "config file name without extension")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config-path", "", "directory containing the config file")

	cmd.AddCommand(newRegisterCmd(opts), newCommandsCmd())
	return cmd
}

func runBot(ctx context.Context, opts *rootOptions) error {
	// 1. Configuration first, nothing touches the network without a token
	cfg, err := config.Load(opts.configName, opts.configPath)
	if err != nil {
		return err
	}
	log := logger.InitLogger(cfg.Logging.Level)

	// 2. Wire adapters, dispatcher and bot
	bot := app.NewBotApp(cfg, *log)
	if err := bot.Err(); err != nil {
		return err
	}

	// 3. Connect and serve until SIGINT or SIGTERM
	startCtx, cancel := context.WithTimeout(ctx, bot.StartTimeout())
	defer cancel()
	if err := bot.Start(startCtx); err != nil {
		return err
	}
	log.Info().Msg("bot running")

	sig := <-bot.Wait()
	event := log.Info().Int("exit_code", sig.ExitCode)
	if sig.Signal != nil {
		event = event.Str("signal", sig.Signal.String())
	}
	event.Msg("shutting down")

	stopCtx, cancelStop := context.WithTimeout(context.Background(), bot.StopTimeout())
	defer cancelStop()
	return bot.Stop(stopCtx)
}

func newRegisterCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Overwrite the slash command schemas and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configName, opts.configPath)
			if err != nil {
				return err
			}
			log := logger.InitLogger(cfg.Logging.Level)

			session, err := discord.NewSession(cfg.Discord.Token)
			if err != nil {
				return err
			}
			bot := discord.NewBot(session, nil, *log,
				discord.WithGuild(cfg.Discord.GuildID),
				discord.WithApplicationID(cfg.Discord.ApplicationID),
			)
			if err := bot.Open(); err != nil {
				return err
			}
			defer bot.Close()
			return bot.Register()
		},
	}
}

func newCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "Print the slash command schemas",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printCommands(cmd.OutOrStdout())
		},
	}
}

func printCommands(w io.Writer) {
	for _, c := range discord.ApplicationCommands() {
		fmt.Fprintf(w, "/%s - %s\n", c.Name, c.Description)
		for _, opt := range c.Options {
			choices := make([]string, 0, len(opt.Choices))
			for _, choice := range opt.Choices {
				choices = append(choices, choice.Name)
			}
			fmt.Fprintf(w, "    %s (required: %t): %s\n", opt.Name, opt.Required, strings.Join(choices, ", "))
		}
	}
}
