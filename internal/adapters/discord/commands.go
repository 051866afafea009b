package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/melih/craftbot/internal/core/domain"
)

// ApplicationCommands returns the slash command schemas registered with Discord.
// The server option only accepts registry names, so start, stop and logs never see anything else.
func ApplicationCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        string(domain.CommandStatus),
			Description: "Get the status of all minecraft servers",
		},
		{
			Name:        string(domain.CommandStart),
			Description: "Start a minecraft server",
			Options:     []*discordgo.ApplicationCommandOption{serverOption()},
		},
		{
			Name:        string(domain.CommandStop),
			Description: "Stop a minecraft server",
			Options:     []*discordgo.ApplicationCommandOption{serverOption()},
		},
		{
			Name:        string(domain.CommandLogs),
			Description: "Get the last 10 lines of logs of a minecraft server",
			Options:     []*discordgo.ApplicationCommandOption{serverOption()},
		},
	}
}

func serverOption() *discordgo.ApplicationCommandOption {
	containers := domain.Containers()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(containers))
	for _, c := range containers {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  c.String(),
			Value: c.String(),
		})
	}
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        domain.ServerOption,
		Description: "Minecraft server",
		Required:    true,
		Choices:     choices,
	}
}

// invocationFrom converts interaction data into a CommandInvocation.
func invocationFrom(data discordgo.ApplicationCommandInteractionData) (domain.CommandInvocation, error) {
	inv := domain.CommandInvocation{Command: domain.CommandName(data.Name)}
	for _, opt := range data.Options {
		if opt == nil || opt.Name != domain.ServerOption || opt.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		c, err := domain.ParseContainer(opt.StringValue())
		if err != nil {
			return inv, err
		}
		inv.Container = c
		inv.HasContainer = true
	}
	return inv, nil
}
