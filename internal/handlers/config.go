package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/Fripe070/experienced/internal/common"
	"github.com/Fripe070/experienced/internal/constants"
	"github.com/Fripe070/experienced/internal/services"
)

// processConfig handles the guild configuration command. Like imports, it is
// gated on the Manage Server permission rather than the owner set.
func (r *Router) processConfig(
	ctx context.Context,
	i *discordgo.InteractionCreate,
	data discordgo.ApplicationCommandInteractionData,
) (*response, error) {
	if i.GuildID == "" {
		return nil, ErrNoGuild
	}
	if i.Member == nil || i.Member.Permissions&discordgo.PermissionManageServer == 0 {
		return textResponse(constants.MsgConfigForbidden), nil
	}
	guildID, err := common.ParseID(i.GuildID)
	if err != nil {
		return nil, err
	}

	if len(data.Options) == 0 {
		return nil, ErrMissingOption
	}
	sub := data.Options[0]

	switch sub.Name {
	case "get":
		config, err := r.config.Get(ctx, guildID)
		if err != nil {
			return nil, err
		}
		return embedResponse(config.Describe()), nil

	case "set":
		edit, err := parseConfigEdit(sub.Options)
		if err != nil {
			return nil, err
		}
		config, err := r.config.Set(ctx, guildID, edit)
		if err != nil {
			return nil, err
		}
		return embedResponse(config.Describe()), nil

	case "rewards":
		rewards, err := r.config.Rewards(ctx, guildID)
		if err != nil {
			return nil, err
		}
		if len(rewards) == 0 {
			return embedResponse(constants.MsgNoRoleRewards), nil
		}
		lines := make([]string, 0, len(rewards))
		for _, reward := range rewards {
			lines = append(lines, fmt.Sprintf("<@&%d>: %d XP",
				common.DBToID(reward.RoleID), reward.Requirement))
		}
		return embedResponse(strings.Join(lines, "\n")), nil

	default:
		return nil, ErrUnrecognizedCommand
	}
}

func parseConfigEdit(options []*discordgo.ApplicationCommandInteractionDataOption) (services.GuildConfigEdit, error) {
	edit := services.GuildConfigEdit{}
	for _, opt := range options {
		switch opt.Name {
		case "one-reward-at-a-time":
			value, ok := opt.Value.(bool)
			if !ok {
				return services.GuildConfigEdit{}, ErrMissingOption
			}
			edit.OneRewardAtATime = &value

		case "level-up-message":
			value, ok := opt.Value.(string)
			if !ok {
				return services.GuildConfigEdit{}, ErrMissingOption
			}
			edit.LevelUpMessage = &value

		case "level-up-channel":
			raw, ok := opt.Value.(string)
			if !ok {
				return services.GuildConfigEdit{}, ErrMissingOption
			}
			channel, err := common.ParseID(raw)
			if err != nil {
				return services.GuildConfigEdit{}, err
			}
			edit.LevelUpChannel = &channel

		default:
			return services.GuildConfigEdit{}, ErrUnrecognizedCommand
		}
	}
	return edit, nil
}
