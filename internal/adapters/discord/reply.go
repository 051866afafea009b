package discord

import (
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/melih/craftbot/internal/core/domain"
	"github.com/melih/craftbot/internal/core/service"
)

// MessageLimit is the maximum length of a Discord message content.
const MessageLimit = 2000

const (
	internalErrorText = "internal error"
	unknownServerText = "unknown server"
	fence             = "```"
)

func renderReply(reply domain.Reply) *discordgo.WebhookEdit {
	if reply.Embed != nil {
		embed := &discordgo.MessageEmbed{Title: reply.Embed.Title}
		for _, field := range reply.Embed.Fields {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   field.Name,
				Value:  field.Value,
				Inline: false,
			})
		}
		embeds := []*discordgo.MessageEmbed{embed}
		return &discordgo.WebhookEdit{Embeds: &embeds}
	}
	content := fitMessage(reply.Content)
	return &discordgo.WebhookEdit{Content: &content}
}

func textEdit(text string) *discordgo.WebhookEdit {
	return &discordgo.WebhookEdit{Content: &text}
}

// fitMessage keeps content within MessageLimit. Code blocks lose their oldest lines first,
// anything else is cut at the end.
func fitMessage(content string) string {
	if utf8.RuneCountInString(content) <= MessageLimit {
		return content
	}
	body, ok := codeBlockBody(content)
	if !ok {
		return string([]rune(content)[:MessageLimit])
	}

	lines := strings.Split(body, "\n")
	for len(lines) > 1 && utf8.RuneCountInString(service.CodeBlock(lines)) > MessageLimit {
		lines = lines[1:]
	}
	if block := service.CodeBlock(lines); utf8.RuneCountInString(block) <= MessageLimit {
		return block
	}
	// a single line longer than the limit, keep its end
	last := []rune(lines[0])
	keep := MessageLimit - 2*len(fence)
	return service.CodeBlock([]string{string(last[len(last)-keep:])})
}

func codeBlockBody(content string) (string, bool) {
	if len(content) < 2*len(fence) || !strings.HasPrefix(content, fence) || !strings.HasSuffix(content, fence) {
		return "", false
	}
	return content[len(fence) : len(content)-len(fence)], true
}
