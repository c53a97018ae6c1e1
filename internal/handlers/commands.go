package handlers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/Fripe070/experienced/internal/cards"
)

func colorOption(name, description string) *discordgo.ApplicationCommandOption {
	minLength := 6
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		MinLength:   &minLength,
		MaxLength:   7,
	}
}

func guildOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "guild",
		Description: "Guild ID",
		Required:    true,
	}
}

// Commands returns the full command surface for bulk registration.
func Commands() []*discordgo.ApplicationCommand {
	fontChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(cards.Fonts))
	for _, font := range cards.Fonts {
		fontChoices = append(fontChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  font,
			Value: font,
		})
	}

	rankOptions := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to check the rank of",
		},
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "rank",
			Description: "Check your rank and level",
			Options:     rankOptions,
		},
		{
			Name:        "level",
			Description: "Check your rank and level",
			Options:     rankOptions,
		},
		{
			Type: discordgo.UserApplicationCommand,
			Name: "Get level",
		},
		{
			Type: discordgo.MessageApplicationCommand,
			Name: "Get author level",
		},
		{
			Name:        "xp",
			Description: "Manage your rank card and XP data",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "edit",
					Description: "Customize your rank card's colors and font",
					Options: []*discordgo.ApplicationCommandOption{
						colorOption("important", "Important text color"),
						colorOption("secondary", "Secondary text color"),
						colorOption("rank", "Rank text color"),
						colorOption("level", "Level text color"),
						colorOption("border", "Border color"),
						colorOption("background", "Background color"),
						colorOption("progress_foreground", "Progress bar completed color"),
						colorOption("progress_background", "Progress bar remaining color"),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "font",
							Description: "Card font",
							Choices:     fontChoices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "fetch",
					Description: "Show a card's current settings",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "User whose card settings to show",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset",
					Description: "Reset your card to the default settings",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "import",
					Description: "Import this guild's legacy Mee6 levels",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "token",
							Description: "Mee6 API token",
							Required:    true,
						},
					},
				},
			},
		},
		{
			Name:        "config",
			Description: "Guild settings for the leveling bot",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "get",
					Description: "Show this guild's settings",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set",
					Description: "Change this guild's settings",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "one-reward-at-a-time",
							Description: "Only keep the highest earned reward role",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "level-up-message",
							Description: "Level-up announcement; {user_mention} and {level} are filled in",
						},
						{
							Type:        discordgo.ApplicationCommandOptionChannel,
							Name:        "level-up-channel",
							Description: "Channel to announce level-ups in",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "rewards",
					Description: "List this guild's role rewards",
				},
			},
		},
		{
			Name:        "admin",
			Description: "Bot administration",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leave",
					Description: "Leave a guild",
					Options:     []*discordgo.ApplicationCommandOption{guildOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset-guild",
					Description: "Delete all level data for a guild",
					Options:     []*discordgo.ApplicationCommandOption{guildOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset-user",
					Description: "Delete a user's level data everywhere",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "user",
							Description: "User ID",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set-nick",
					Description: "Set the bot's nickname in a guild",
					Options: []*discordgo.ApplicationCommandOption{
						guildOption(),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Nickname to set; omit to clear",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "ban-guild",
					Description: "Ban a guild from using the bot",
					Options: []*discordgo.ApplicationCommandOption{
						guildOption(),
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "duration",
							Description: "Ban duration in days; omit for permanent",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "pardon-guild",
					Description: "Lift a guild ban",
					Options:     []*discordgo.ApplicationCommandOption{guildOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "guild-stats",
					Description: "Show level statistics for a guild",
					Options:     []*discordgo.ApplicationCommandOption{guildOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show bot-wide statistics",
				},
			},
		},
	}
}

// Register bulk-overwrites the global command set.
func Register(s *discordgo.Session, appID string) error {
	if _, err := s.ApplicationCommandBulkOverwrite(appID, "", Commands()); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	return nil
}
