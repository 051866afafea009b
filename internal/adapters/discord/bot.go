// Package discord connects the command dispatcher to Discord slash commands.
package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/melih/craftbot/internal/core/domain"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Dispatcher executes a slash command and returns its reply.
type Dispatcher interface {
	Dispatch(ctx context.Context, inv domain.CommandInvocation) (domain.Reply, error)
}

// API is the part of the Discord REST client the bot uses. *discordgo.Session implements it.
type API interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// Bot owns the gateway session and routes interactions to the dispatcher.
type Bot struct {
	session    *discordgo.Session
	api        API
	dispatcher Dispatcher
	log        zerolog.Logger

	guildID string
	appID   string

	ctx     context.Context
	cancel  context.CancelFunc
	removes []func()
}

type Option func(*Bot)

// WithGuild registers commands to a single guild instead of globally.
func WithGuild(guildID string) Option {
	return func(b *Bot) { b.guildID = guildID }
}

// WithApplicationID overrides the application ID otherwise taken from the session user.
func WithApplicationID(appID string) Option {
	return func(b *Bot) { b.appID = appID }
}

// NewSession creates a session for token without connecting.
func NewSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create discord session")
	}
	session.Identify.Intents = discordgo.IntentsGuilds
	return session, nil
}

func NewBot(session *discordgo.Session, dispatcher Dispatcher, log zerolog.Logger, opts ...Option) *Bot {
	ctx, cancel := context.WithCancel(context.Background())
	b := &Bot{
		session:    session,
		api:        session,
		dispatcher: dispatcher,
		log:        log.With().Str("component", "discord").Logger(),
		ctx:        ctx,
		cancel:     cancel,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Open connects to the gateway.
func (b *Bot) Open() error {
	b.removes = append(b.removes, b.session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		event := b.log.Info().Int("guilds", len(r.Guilds))
		if r.User != nil {
			event = event.Str("user", r.User.Username)
		}
		event.Msg("connected to discord")
	}))
	if err := b.session.Open(); err != nil {
		return errors.Wrap(err, "failed to open discord gateway")
	}
	return nil
}

// Register overwrites the application's commands with ApplicationCommands.
func (b *Bot) Register() error {
	appID := b.appID
	if appID == "" && b.session != nil && b.session.State != nil && b.session.State.User != nil {
		appID = b.session.State.User.ID
	}
	if appID == "" {
		return errors.New("discord application id unknown, open the session first")
	}

	commands := ApplicationCommands()
	if _, err := b.api.ApplicationCommandBulkOverwrite(appID, b.guildID, commands); err != nil {
		return errors.Wrap(err, "failed to register commands")
	}
	scope := "global"
	if b.guildID != "" {
		scope = "guild " + b.guildID
	}
	b.log.Info().Int("commands", len(commands)).Str("scope", scope).Msg("registered commands")
	return nil
}

// Start opens the gateway, registers the commands and begins handling interactions.
func (b *Bot) Start() error {
	if err := b.Open(); err != nil {
		return err
	}
	if err := b.Register(); err != nil {
		_ = b.session.Close()
		return err
	}
	b.removes = append(b.removes, b.session.AddHandler(func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
		b.handle(b.ctx, i.Interaction)
	}))
	return nil
}

// Close stops handling interactions and disconnects from the gateway.
func (b *Bot) Close() error {
	b.cancel()
	for _, remove := range b.removes {
		remove()
	}
	b.removes = nil
	return b.session.Close()
}

// handle answers one interaction. discordgo runs every handler in its own goroutine.
func (b *Bot) handle(ctx context.Context, i *discordgo.Interaction) {
	if i == nil || i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()
	log := b.log.With().
		Str("interaction_id", i.ID).
		Str("command", data.Name).
		Str("guild", i.GuildID).
		Str("user", interactionUser(i)).
		Logger()

	inv, err := invocationFrom(data)
	if err != nil {
		log.Warn().Err(err).Msg("rejected invocation")
		err = b.api.InteractionRespond(i, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{Content: unknownServerText},
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to respond")
		}
		return
	}

	// Engine calls can outlast the 3 second acknowledgement window.
	err = b.api.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to acknowledge interaction")
		return
	}

	edit := textEdit(internalErrorText)
	reply, err := b.dispatcher.Dispatch(log.WithContext(ctx), inv)
	if err != nil {
		log.Error().Err(err).Msg("command failed")
	} else {
		edit = renderReply(reply)
	}
	if _, err := b.api.InteractionResponseEdit(i, edit); err != nil {
		log.Error().Err(err).Msg("failed to send reply")
	}
}

func interactionUser(i *discordgo.Interaction) string {
	switch {
	case i.Member != nil && i.Member.User != nil:
		return i.Member.User.ID
	case i.User != nil:
		return i.User.ID
	}
	return ""
}
