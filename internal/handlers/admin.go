package handlers

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/Fripe070/experienced/internal/common"
)

// processAdmin authorizes against the control guild and owner set before any
// side effect, then dispatches the maintenance subcommands.
func (r *Router) processAdmin(
	ctx context.Context,
	i *discordgo.InteractionCreate,
	data discordgo.ApplicationCommandInteractionData,
	invoker *discordgo.User,
) (*response, error) {
	if i.GuildID == "" {
		return nil, ErrNoGuild
	}
	guildID, err := common.ParseID(i.GuildID)
	if err != nil {
		return nil, err
	}
	invokerID, err := common.ParseID(invoker.ID)
	if err != nil {
		return nil, err
	}
	if err := r.admin.Authorize(guildID, invokerID); err != nil {
		return nil, err
	}

	if len(data.Options) == 0 {
		return nil, ErrMissingOption
	}
	sub := data.Options[0]

	contents, err := r.dispatchAdmin(ctx, sub)
	if err != nil {
		return nil, err
	}
	return embedResponse(contents), nil
}

func (r *Router) dispatchAdmin(ctx context.Context, sub *discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	switch sub.Name {
	case "leave":
		guild, err := stringOption(sub, "guild")
		if err != nil {
			return "", err
		}
		return r.admin.Leave(ctx, guild)

	case "reset-guild":
		guild, err := stringOption(sub, "guild")
		if err != nil {
			return "", err
		}
		return r.admin.ResetGuild(ctx, guild)

	case "reset-user":
		rawUser, err := stringOption(sub, "user")
		if err != nil {
			return "", err
		}
		userID, err := common.ParseID(rawUser)
		if err != nil {
			return "", err
		}
		return r.admin.ResetUser(ctx, userID)

	case "set-nick":
		guild, err := stringOption(sub, "guild")
		if err != nil {
			return "", err
		}
		nick, _ := optionalStringOption(sub, "name")
		return r.admin.SetNick(ctx, guild, nick)

	case "ban-guild":
		guild, err := stringOption(sub, "guild")
		if err != nil {
			return "", err
		}
		days := numberOption(sub, "duration")
		return r.admin.BanGuild(ctx, guild, days)

	case "pardon-guild":
		guild, err := stringOption(sub, "guild")
		if err != nil {
			return "", err
		}
		return r.admin.PardonGuild(ctx, guild)

	case "guild-stats":
		guild, err := stringOption(sub, "guild")
		if err != nil {
			return "", err
		}
		return r.admin.GuildStats(ctx, guild)

	case "stats":
		return r.admin.BotStats(ctx)

	default:
		return "", ErrUnrecognizedCommand
	}
}

func stringOption(sub *discordgo.ApplicationCommandInteractionDataOption, name string) (string, error) {
	value, ok := optionalStringOption(sub, name)
	if !ok {
		return "", ErrMissingOption
	}
	return value, nil
}

func optionalStringOption(sub *discordgo.ApplicationCommandInteractionDataOption, name string) (string, bool) {
	for _, opt := range sub.Options {
		if opt.Name == name {
			if value, ok := opt.Value.(string); ok {
				return value, true
			}
		}
	}
	return "", false
}

func numberOption(sub *discordgo.ApplicationCommandInteractionDataOption, name string) *float64 {
	for _, opt := range sub.Options {
		if opt.Name == name {
			if value, ok := opt.Value.(float64); ok {
				return &value
			}
		}
	}
	return nil
}
