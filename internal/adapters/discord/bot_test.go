package discord

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/melih/craftbot/internal/core/domain"
	"github.com/melih/craftbot/internal/core/ports"
	"github.com/melih/craftbot/internal/core/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fakeAPI struct {
	responses  []*discordgo.InteractionResponse
	edits      []*discordgo.WebhookEdit
	respondErr error

	overwriteApp      string
	overwriteGuild    string
	overwriteCommands []*discordgo.ApplicationCommand
}

func (f *fakeAPI) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responses = append(f.responses, resp)
	return f.respondErr
}

func (f *fakeAPI) InteractionResponseEdit(_ *discordgo.Interaction, edit *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.edits = append(f.edits, edit)
	return &discordgo.Message{}, nil
}

func (f *fakeAPI) ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	f.overwriteApp = appID
	f.overwriteGuild = guildID
	f.overwriteCommands = commands
	return commands, nil
}

func commandInteraction(name string, server string) *discordgo.Interaction {
	data := discordgo.ApplicationCommandInteractionData{Name: name}
	if server != "" {
		data.Options = []*discordgo.ApplicationCommandInteractionDataOption{{
			Name:  domain.ServerOption,
			Type:  discordgo.ApplicationCommandOptionString,
			Value: server,
		}}
	}
	return &discordgo.Interaction{
		ID:      "interaction-1",
		Type:    discordgo.InteractionApplicationCommand,
		GuildID: "guild-1",
		Member:  &discordgo.Member{User: &discordgo.User{ID: "user-1"}},
		Data:    data,
	}
}

func TestBotTestSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}

type BotTestSuite struct {
	suite.Suite
	Ctx        context.Context
	API        *fakeAPI
	Containers *ports.MockContainerService
	Bot        *Bot
}

func (suite *BotTestSuite) SetupTest() {
	suite.Ctx = context.Background()
	suite.API = &fakeAPI{}
	suite.Containers = ports.NewMockContainerService(suite.T())
	dispatcher := service.NewDispatcher(suite.Containers, zerolog.Nop(), nil)
	suite.Bot = &Bot{api: suite.API, dispatcher: dispatcher, log: zerolog.Nop()}
}

func (suite *BotTestSuite) lastContent() string {
	suite.Require().Len(suite.API.edits, 1)
	suite.Require().NotNil(suite.API.edits[0].Content)
	return *suite.API.edits[0].Content
}

func (suite *BotTestSuite) assertDeferred() {
	suite.Require().Len(suite.API.responses, 1)
	suite.Equal(discordgo.InteractionResponseDeferredChannelMessageWithSource, suite.API.responses[0].Type)
}

func (suite *BotTestSuite) TestStartSurvival() {
	suite.Containers.EXPECT().StartContainer(mock.Anything, domain.Survival).Return(nil).Once()

	suite.Bot.handle(suite.Ctx, commandInteraction("start", "survival"))

	suite.assertDeferred()
	suite.Equal("survival: started", suite.lastContent())
}

func (suite *BotTestSuite) TestStopFailure() {
	suite.Containers.EXPECT().StopContainer(mock.Anything, domain.Creative).Return(errors.New("is not running")).Once()

	suite.Bot.handle(suite.Ctx, commandInteraction("stop", "creative"))

	suite.Equal("creative: failed to stop", suite.lastContent())
}

func (suite *BotTestSuite) TestLogsVelocity() {
	suite.Containers.EXPECT().GetContainerLogs(mock.Anything, domain.Velocity, 10).Return([]string{"a", "b", "c"}, nil).Once()

	suite.Bot.handle(suite.Ctx, commandInteraction("logs", "velocity"))

	suite.Equal("```a\nb\nc```", suite.lastContent())
}

func (suite *BotTestSuite) TestStatusEmbed() {
	suite.Containers.EXPECT().
		ListContainers(mock.Anything).
		Return(domain.ContainerStatuses{domain.Creative: "Up 2 hours"}, nil).
		Once()

	suite.Bot.handle(suite.Ctx, commandInteraction("status", ""))

	suite.assertDeferred()
	suite.Require().Len(suite.API.edits, 1)
	edit := suite.API.edits[0]
	suite.Nil(edit.Content)
	suite.Require().NotNil(edit.Embeds)
	suite.Require().Len(*edit.Embeds, 1)
	embed := (*edit.Embeds)[0]
	suite.Equal("Minecraft server status", embed.Title)
	got := make([]string, 0, len(embed.Fields))
	for _, f := range embed.Fields {
		got = append(got, f.Name+": "+f.Value)
		suite.False(f.Inline)
	}
	suite.Equal([]string{
		"velocity: Missing",
		"creative: Up 2 hours",
		"survival: Missing",
		"oneblock: Missing",
		"skyblock: Missing",
	}, got)
}

func (suite *BotTestSuite) TestTransportFailureSendsGenericError() {
	suite.Containers.EXPECT().ListContainers(mock.Anything).Return(nil, errors.New("engine gone")).Once()

	suite.Bot.handle(suite.Ctx, commandInteraction("status", ""))

	suite.Equal(internalErrorText, suite.lastContent())
}

func (suite *BotTestSuite) TestUnknownServerIsRejectedWithoutEngineCall() {
	suite.Bot.handle(suite.Ctx, commandInteraction("start", "lobby"))

	suite.Require().Len(suite.API.responses, 1)
	resp := suite.API.responses[0]
	suite.Equal(discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	suite.Equal(unknownServerText, resp.Data.Content)
	suite.Empty(suite.API.edits)
}

func (suite *BotTestSuite) TestAcknowledgeFailureSkipsCommand() {
	suite.API.respondErr = errors.New("unknown interaction")

	suite.Bot.handle(suite.Ctx, commandInteraction("start", "survival"))

	suite.Empty(suite.API.edits)
}

func (suite *BotTestSuite) TestIgnoresNonCommandInteractions() {
	suite.Bot.handle(suite.Ctx, &discordgo.Interaction{Type: discordgo.InteractionPing})
	suite.Bot.handle(suite.Ctx, nil)

	suite.Empty(suite.API.responses)
}

func (suite *BotTestSuite) TestRegisterUsesConfiguredScope() {
	suite.Bot.appID = "app-1"
	suite.Bot.guildID = "guild-9"

	suite.Require().NoError(suite.Bot.Register())
	suite.Equal("app-1", suite.API.overwriteApp)
	suite.Equal("guild-9", suite.API.overwriteGuild)
	suite.Len(suite.API.overwriteCommands, 4)
}

func (suite *BotTestSuite) TestRegisterWithoutApplicationID() {
	suite.Error(suite.Bot.Register())
	suite.Nil(suite.API.overwriteCommands)
}

func TestApplicationCommands(t *testing.T) {
	commands := ApplicationCommands()
	require.Len(t, commands, 4)

	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		names = append(names, cmd.Name)
	}
	assert.Equal(t, []string{"status", "start", "stop", "logs"}, names)
	assert.Empty(t, commands[0].Options)

	for _, cmd := range commands[1:] {
		require.Len(t, cmd.Options, 1, cmd.Name)
		opt := cmd.Options[0]
		assert.Equal(t, "server", opt.Name)
		assert.True(t, opt.Required)
		assert.Equal(t, discordgo.ApplicationCommandOptionString, opt.Type)
		choices := make([]string, 0, len(opt.Choices))
		for _, choice := range opt.Choices {
			assert.Equal(t, choice.Name, choice.Value)
			choices = append(choices, choice.Name)
		}
		assert.Equal(t, []string{"velocity", "creative", "survival", "oneblock", "skyblock"}, choices)
	}
}

func TestInvocationFrom(t *testing.T) {
	inv, err := invocationFrom(commandInteraction("logs", "skyblock").ApplicationCommandData())
	require.NoError(t, err)
	assert.Equal(t, domain.CommandInvocation{Command: domain.CommandLogs, Container: domain.SkyBlock, HasContainer: true}, inv)

	inv, err = invocationFrom(commandInteraction("status", "").ApplicationCommandData())
	require.NoError(t, err)
	assert.False(t, inv.HasContainer)

	_, err = invocationFrom(commandInteraction("stop", "hub").ApplicationCommandData())
	assert.ErrorIs(t, err, domain.ErrUnknownContainer)
}

func TestFitMessage(t *testing.T) {
	short := service.CodeBlock([]string{"a", "b"})
	assert.Equal(t, short, fitMessage(short))

	lines := make([]string, 10)
	for i := range lines {
		lines[i] = strings.Repeat(string(rune('a'+i)), 300)
	}
	fitted := fitMessage(service.CodeBlock(lines))
	assert.LessOrEqual(t, utf8.RuneCountInString(fitted), MessageLimit)
	assert.Equal(t, service.CodeBlock(lines[4:]), fitted, "oldest lines are dropped first")

	huge := service.CodeBlock([]string{strings.Repeat("x", 2500) + "END"})
	fitted = fitMessage(huge)
	assert.Equal(t, MessageLimit, utf8.RuneCountInString(fitted))
	assert.True(t, strings.HasSuffix(fitted, "END```"))

	plain := strings.Repeat("é", 2100)
	assert.Equal(t, MessageLimit, utf8.RuneCountInString(fitMessage(plain)))
}
