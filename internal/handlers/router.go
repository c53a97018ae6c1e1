// Package handlers routes decoded Discord interactions to the leveling,
// theming, import, and admin operations and converts their results into
// response payloads. It never panics on malformed platform input: every
// missing field maps to a distinct error.
package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Fripe070/experienced/internal/common"
	"github.com/Fripe070/experienced/internal/constants"
	"github.com/Fripe070/experienced/internal/leveling"
	"github.com/Fripe070/experienced/internal/logging"
	"github.com/Fripe070/experienced/internal/metrics"
	"github.com/Fripe070/experienced/internal/models/dtos"
	gormModels "github.com/Fripe070/experienced/internal/models/gorm"
	"github.com/Fripe070/experienced/internal/services"
	"github.com/Fripe070/experienced/internal/workers"
)

// RankOps computes level and guild rank.
type RankOps interface {
	RankOf(ctx context.Context, guildID, userID uint64) (leveling.LevelInfo, int64, error)
}

// CardOps owns theme editing and the rendering pipeline.
type CardOps interface {
	Edit(ctx context.Context, userID uint64, edit dtos.CardEdit) (string, error)
	Reset(ctx context.Context, userID uint64) (string, error)
	Describe(ctx context.Context, userID uint64) string
	RenderCard(ctx context.Context, info dtos.MemberDisplayInfo, level leveling.LevelInfo, rank int64) ([]byte, error)
}

// AdminOps performs the guarded maintenance operations.
type AdminOps interface {
	Authorize(guildID, invokerID uint64) error
	Leave(ctx context.Context, rawGuild string) (string, error)
	ResetGuild(ctx context.Context, rawGuild string) (string, error)
	ResetUser(ctx context.Context, userID uint64) (string, error)
	SetNick(ctx context.Context, rawGuild, nick string) (string, error)
	BanGuild(ctx context.Context, rawGuild string, days *float64) (string, error)
	PardonGuild(ctx context.Context, rawGuild string) (string, error)
	GuildStats(ctx context.Context, rawGuild string) (string, error)
	BotStats(ctx context.Context) (string, error)
}

// ConfigOps reads and edits per-guild configuration.
type ConfigOps interface {
	Get(ctx context.Context, guildID uint64) (*services.GuildConfig, error)
	Set(ctx context.Context, guildID uint64, edit services.GuildConfigEdit) (*services.GuildConfig, error)
	Rewards(ctx context.Context, guildID uint64) ([]gormModels.RoleReward, error)
}

// ImportOps enqueues legacy-data import jobs.
type ImportOps interface {
	Enqueue(guildID uint64, token string) (workers.ImportJob, bool)
}

// BanChecker reports whether a guild is banned from using the bot.
type BanChecker interface {
	IsBanned(ctx context.Context, guildID int64, now time.Time) (bool, error)
}

// Router is the top-level interaction dispatcher.
type Router struct {
	rank    RankOps
	cards   CardOps
	admin   AdminOps
	config  ConfigOps
	imports ImportOps
	bans    BanChecker
	metrics *metrics.MetricsRegistry
}

func NewRouter(
	rank RankOps,
	cards CardOps,
	admin AdminOps,
	config ConfigOps,
	imports ImportOps,
	bans BanChecker,
	reg *metrics.MetricsRegistry,
) *Router {
	return &Router{
		rank:    rank,
		cards:   cards,
		admin:   admin,
		config:  config,
		imports: imports,
		bans:    bans,
		metrics: reg,
	}
}

// HandleInteraction is the discordgo handler. Errors are logged here, at the
// boundary, then converted to a user-visible message; nothing terminates the
// process.
func (r *Router) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		sendPong(s, i)
		return
	}

	name := i.ApplicationCommandData().Name
	start := time.Now()

	resp, err := r.process(context.Background(), i)
	status := "success"
	if err != nil {
		status = "error"
		logging.WithInteraction(i.ID, i.GuildID, invokerIDForLog(i), name).
			Errorw("Interaction failed", "error", err.Error())
		resp = textResponse(userMessage(err))
	}
	r.metrics.CommandsTotal.WithLabelValues(name, status).Inc()
	r.metrics.CommandDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	sendResponse(s, i, resp)
}

// userMessage maps an error to what the invoker sees. Authorization failures
// are surfaced generically so they leak nothing.
func userMessage(err error) string {
	if errors.Is(err, services.ErrUnauthorized) {
		return constants.MsgUnauthorized
	}
	return err.Error()
}

func invokerIDForLog(i *discordgo.InteractionCreate) string {
	if user := invokerUser(i); user != nil {
		return user.ID
	}
	return ""
}

// invokerUser prefers the per-guild member's user record, which carries the
// guild nickname, over the bare user record from DM interactions.
func invokerUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func (r *Router) process(ctx context.Context, i *discordgo.InteractionCreate) (*response, error) {
	invoker := invokerUser(i)
	if invoker == nil {
		return nil, ErrNoInvoker
	}

	if i.GuildID != "" {
		guildID, err := common.ParseID(i.GuildID)
		if err != nil {
			return nil, err
		}
		banned, err := r.bans.IsBanned(ctx, common.IDToDB(guildID), time.Now())
		if err != nil {
			return nil, err
		}
		if banned {
			return textResponse(constants.MsgGuildBanned), nil
		}
	}

	data := i.ApplicationCommandData()
	switch data.CommandType {
	case discordgo.ChatApplicationCommand:
		return r.processChatCommand(ctx, i, data, invoker)
	case discordgo.UserApplicationCommand:
		return r.processUserCommand(ctx, i, data, invoker)
	case discordgo.MessageApplicationCommand:
		return r.processMessageCommand(ctx, i, data, invoker)
	default:
		return nil, ErrWrongInteractionData
	}
}

func (r *Router) processChatCommand(
	ctx context.Context,
	i *discordgo.InteractionCreate,
	data discordgo.ApplicationCommandInteractionData,
	invoker *discordgo.User,
) (*response, error) {
	switch data.Name {
	case "rank", "level":
		return r.processRank(ctx, i, data, invoker)
	case "xp":
		return r.processXP(ctx, i, data, invoker)
	case "config":
		return r.processConfig(ctx, i, data)
	case "admin":
		return r.processAdmin(ctx, i, data, invoker)
	default:
		return nil, ErrUnrecognizedCommand
	}
}

// processRank handles the rank/level command. When a user option is present
// the target comes strictly from the resolved-entity map; otherwise the
// invoker is the target.
func (r *Router) processRank(
	ctx context.Context,
	i *discordgo.InteractionCreate,
	data discordgo.ApplicationCommandInteractionData,
	invoker *discordgo.User,
) (*response, error) {
	target := invoker
	for _, opt := range data.Options {
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
	return r.respondWithLevel(ctx, i, data, target, invoker)
}

// processUserCommand resolves its target strictly from the pre-resolved
// entity map, never a secondary fetch.
func (r *Router) processUserCommand(
	ctx context.Context,
	i *discordgo.InteractionCreate,
	data discordgo.ApplicationCommandInteractionData,
	invoker *discordgo.User,
) (*response, error) {
	if data.TargetID == "" {
		return nil, ErrNoTargetID
	}
	if data.Resolved == nil {
		return nil, ErrNoResolvedData
	}
	target, ok := data.Resolved.Users[data.TargetID]
	if !ok {
		return nil, ErrNoTarget
	}
	return r.respondWithLevel(ctx, i, data, target, invoker)
}

func (r *Router) processMessageCommand(
	ctx context.Context,
	i *discordgo.InteractionCreate,
	data discordgo.ApplicationCommandInteractionData,
	invoker *discordgo.User,
) (*response, error) {
	if data.TargetID == "" {
		return nil, ErrNoTargetID
	}
	if data.Resolved == nil {
		return nil, ErrNoResolvedData
	}
	message, ok := data.Resolved.Messages[data.TargetID]
	if !ok || message.Author == nil {
		return nil, ErrNoTarget
	}
	return r.respondWithLevel(ctx, i, data, message.Author, invoker)
}

// respondWithLevel implements the policy by actor: bots are never ranked, a
// zero-XP target gets a first- or third-person message, anyone else gets a
// rendered card.
func (r *Router) respondWithLevel(
	ctx context.Context,
	i *discordgo.InteractionCreate,
	data discordgo.ApplicationCommandInteractionData,
	target *discordgo.User,
	invoker *discordgo.User,
) (*response, error) {
	if i.GuildID == "" {
		return nil, ErrNoGuild
	}
	guildID, err := common.ParseID(i.GuildID)
	if err != nil {
		return nil, err
	}
	targetID, err := common.ParseID(target.ID)
	if err != nil {
		return nil, err
	}

	level, rank, err := r.rank.RankOf(ctx, guildID, targetID)
	if err != nil {
		return nil, err
	}

	if target.Bot {
		return textResponse(constants.MsgBotsNotRanked), nil
	}
	if level.XP() == 0 {
		if target.ID == invoker.ID {
			return textResponse(constants.MsgSelfNotRanked), nil
		}
		return textResponse(thirdPersonNotRanked(target)), nil
	}

	info, err := displayInfoFor(data, target)
	if err != nil {
		return nil, err
	}
	image, err := r.cards.RenderCard(ctx, info, level, rank)
	if err != nil {
		return nil, err
	}
	return cardResponse(image), nil
}

// displayInfoFor merges the target user with its resolved member record,
// when one was sent, so the card shows the guild nickname.
func displayInfoFor(data discordgo.ApplicationCommandInteractionData, target *discordgo.User) (dtos.MemberDisplayInfo, error) {
	info, err := dtos.DisplayInfoFromUser(target)
	if err != nil {
		return dtos.MemberDisplayInfo{}, err
	}
	if data.Resolved == nil {
		return info, nil
	}
	member, ok := data.Resolved.Members[target.ID]
	if !ok || member == nil {
		return info, nil
	}
	if member.Nick != "" {
		info.Nick = &member.Nick
	}
	if member.Avatar != "" {
		info.GuildAvatar = &member.Avatar
	}
	return info, nil
}
