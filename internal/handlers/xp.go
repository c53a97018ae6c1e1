package handlers

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/Fripe070/experienced/internal/cards"
	"github.com/Fripe070/experienced/internal/common"
	"github.com/Fripe070/experienced/internal/constants"
	"github.com/Fripe070/experienced/internal/models/dtos"
)

func thirdPersonNotRanked(target *discordgo.User) string {
	return fmt.Sprintf(constants.MsgOtherNotRanked, target.Username, target.Discriminator)
}

// processXP dispatches the xp subcommands: card edit, fetch, reset, and the
// legacy-data import.
func (r *Router) processXP(
	ctx context.Context,
	i *discordgo.InteractionCreate,
	data discordgo.ApplicationCommandInteractionData,
	invoker *discordgo.User,
) (*response, error) {
	if len(data.Options) == 0 {
		return nil, ErrMissingOption
	}
	sub := data.Options[0]

	invokerID, err := common.ParseID(invoker.ID)
	if err != nil {
		return nil, err
	}

	switch sub.Name {
	case "edit":
		edit, err := parseCardEdit(sub.Options)
		if err != nil {
			return nil, err
		}
		contents, err := r.cards.Edit(ctx, invokerID, edit)
		if err != nil {
			return nil, err
		}
		return embedResponse(contents), nil

	case "fetch":
		target := invoker
		for _, opt := range sub.Options {
			if opt.Name != "user" || opt.Type != discordgo.ApplicationCommandOptionUser {
				continue
			}
			if data.Resolved == nil {
				return nil, ErrNoResolvedData
			}
			rawID, ok := opt.Value.(string)
			if !ok {
				return nil, ErrNoTarget
			}
			resolved, ok := data.Resolved.Users[rawID]
			if !ok {
				return nil, ErrNoTarget
			}
			target = resolved
		}
		targetID, err := common.ParseID(target.ID)
		if err != nil {
			return nil, err
		}
		return embedResponse(r.cards.Describe(ctx, targetID)), nil

	case "reset":
		contents, err := r.cards.Reset(ctx, invokerID)
		if err != nil {
			return nil, err
		}
		return embedResponse(contents), nil

	case "import":
		return r.processImport(i, sub, invokerID)

	default:
		return nil, ErrUnrecognizedCommand
	}
}

// parseCardEdit converts the edit options into a partial update. A bad hex
// string aborts the command before any mutation.
func parseCardEdit(options []*discordgo.ApplicationCommandInteractionDataOption) (dtos.CardEdit, error) {
	edit := dtos.CardEdit{}
	colorFields := map[string]**cards.Color{
		"important":           &edit.Important,
		"secondary":           &edit.Secondary,
		"rank":                &edit.Rank,
		"level":               &edit.Level,
		"border":              &edit.Border,
		"background":          &edit.Background,
		"progress_foreground": &edit.ProgressForeground,
		"progress_background": &edit.ProgressBackground,
	}

	for _, opt := range options {
		raw, ok := opt.Value.(string)
		if !ok {
			return dtos.CardEdit{}, ErrMissingOption
		}
		if opt.Name == "font" {
			font := raw
			edit.Font = &font
			continue
		}
		field, known := colorFields[opt.Name]
		if !known {
			return dtos.CardEdit{}, ErrUnrecognizedCommand
		}
		color, err := cards.FromHex(raw)
		if err != nil {
			return dtos.CardEdit{}, fmt.Errorf("%s: %w", opt.Name, err)
		}
		*field = &color
	}
	return edit, nil
}

// processImport enqueues a Mee6 import job for the invoking guild. Requires
// the Manage Server permission; enqueue is non-blocking, processing is
// asynchronous.
func (r *Router) processImport(
	i *discordgo.InteractionCreate,
	sub *discordgo.ApplicationCommandInteractionDataOption,
	invokerID uint64,
) (*response, error) {
	if i.GuildID == "" {
		return nil, ErrNoGuild
	}
	if i.Member == nil || i.Member.Permissions&discordgo.PermissionManageServer == 0 {
		return textResponse(constants.MsgImportForbidden), nil
	}
	guildID, err := common.ParseID(i.GuildID)
	if err != nil {
		return nil, err
	}

	var token string
	for _, opt := range sub.Options {
		if opt.Name == "token" {
			token, _ = opt.Value.(string)
		}
	}
	if token == "" {
		return nil, ErrMissingOption
	}

	if _, ok := r.imports.Enqueue(guildID, token); !ok {
		return textResponse(constants.MsgImportDuplicate), nil
	}
	return textResponse(constants.MsgImportQueued), nil
}
