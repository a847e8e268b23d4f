package discord

import (
	"github.com/bwmarrin/discordgo"
)

const (
	colorOK    = 0x00ff00
	colorError = 0xff0000
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// Request is a slash command or button press reduced to what the game needs
type Request struct {
	ChannelID  string
	UserID     string
	Username   string
	Subcommand string

	// Options holds every option value as text
	Options map[string]string
}

// Reply is what the bot answers with
type Reply struct {
	Title       string
	Description string
	Fields      []*discordgo.MessageEmbedField
	Buttons     []discordgo.MessageComponent

	// Ephemeral replies are only shown to the caller
	Ephemeral bool
	IsError   bool
}

// errorReply builds an ephemeral error reply
func errorReply(title, message string) *Reply {
	return &Reply{
		Title:       title,
		Description: message,
		Ephemeral:   true,
		IsError:     true,
	}
}

// Respond sends a reply as the response to an interaction
func Respond(s *discordgo.Session, i *discordgo.InteractionCreate, reply *Reply) error {
	color := colorOK
	if reply.IsError {
		color = colorError
	}

	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       reply.Title,
			Description: reply.Description,
			Color:       color,
			Fields:      reply.Fields,
		}},
	}

	if len(reply.Buttons) > 0 {
		data.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: reply.Buttons},
		}
	}

	if reply.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// RespondWithEphemeralMessage sends an ephemeral message response to an interaction
func RespondWithEphemeralMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
