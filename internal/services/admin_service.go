package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Fripe070/experienced/internal/common"
)

// ErrUnauthorized covers both admin authorization failures. One error for
// both checks, so responses never leak which check failed.
var ErrUnauthorized = errors.New("not authorized for admin commands")

// LevelAdminStore is the slice of the levels repository admin commands need.
type LevelAdminStore interface {
	DeleteGuild(ctx context.Context, guildID int64) (int64, error)
	DeleteUser(ctx context.Context, userID int64) (int64, error)
	CountGuild(ctx context.Context, guildID int64) (int64, error)
	CountTotal(ctx context.Context) (int64, error)
}

// BanStore records and lifts guild bans.
type BanStore interface {
	Ban(ctx context.Context, guildID int64, expiresAt *time.Time) error
	Pardon(ctx context.Context, guildID int64) error
}

// DiscordRest is the slice of the platform REST client admin commands use.
type DiscordRest interface {
	GuildLeave(guildID string, options ...discordgo.RequestOption) error
	GuildMemberNickname(guildID, userID, nickname string, options ...discordgo.RequestOption) error
	GuildWithCounts(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error)
}

// AdminService performs the guarded destructive and maintenance operations.
type AdminService struct {
	controlGuild uint64
	owners       map[uint64]struct{}
	levels       LevelAdminStore
	bans         BanStore
	client       DiscordRest
	buildSHA     string
}

func NewAdminService(
	controlGuild uint64,
	owners []uint64,
	levels LevelAdminStore,
	bans BanStore,
	client DiscordRest,
	buildSHA string,
) *AdminService {
	ownerSet := make(map[uint64]struct{}, len(owners))
	for _, id := range owners {
		ownerSet[id] = struct{}{}
	}
	return &AdminService{
		controlGuild: controlGuild,
		owners:       ownerSet,
		levels:       levels,
		bans:         bans,
		client:       client,
		buildSHA:     buildSHA,
	}
}

// Authorize gates every admin operation: the interaction must come from the
// control guild and the invoker must be a configured owner. It runs before
// any side effect.
func (s *AdminService) Authorize(guildID, invokerID uint64) error {
	if guildID != s.controlGuild {
		return ErrUnauthorized
	}
	if _, ok := s.owners[invokerID]; !ok {
		return ErrUnauthorized
	}
	return nil
}

// Leave makes the bot leave a guild.
func (s *AdminService) Leave(ctx context.Context, rawGuild string) (string, error) {
	guild, err := common.ParseID(rawGuild)
	if err != nil {
		return "", err
	}
	if err := s.client.GuildLeave(common.FormatID(guild)); err != nil {
		return "", fmt.Errorf("failed to leave guild: %w", err)
	}
	return fmt.Sprintf("Left guild %d", guild), nil
}

// ResetGuild deletes every level row for a guild.
func (s *AdminService) ResetGuild(ctx context.Context, rawGuild string) (string, error) {
	guild, err := common.ParseID(rawGuild)
	if err != nil {
		return "", err
	}
	rows, err := s.levels.DeleteGuild(ctx, common.IDToDB(guild))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Reset levels for guild %d. It had %d users worth of data.", guild, rows), nil
}

// ResetUser deletes a user's level rows across all guilds.
func (s *AdminService) ResetUser(ctx context.Context, userID uint64) (string, error) {
	rows, err := s.levels.DeleteUser(ctx, common.IDToDB(userID))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Reset levels for user %d. They had level data in %d guilds.", userID, rows), nil
}

// SetNick overrides the bot's nickname in a guild. An empty nick clears the
// override.
func (s *AdminService) SetNick(ctx context.Context, rawGuild, nick string) (string, error) {
	guild, err := common.ParseID(rawGuild)
	if err != nil {
		return "", err
	}
	if err := s.client.GuildMemberNickname(common.FormatID(guild), "@me", nick); err != nil {
		return "", fmt.Errorf("failed to set nickname: %w", err)
	}
	if nick == "" {
		nick = "{default}"
	}
	return fmt.Sprintf("Set nickname to %s in %d", nick, guild), nil
}

// BanGuild bans a guild from using the bot, optionally for a number of days.
func (s *AdminService) BanGuild(ctx context.Context, rawGuild string, days *float64) (string, error) {
	guild, err := common.ParseID(rawGuild)
	if err != nil {
		return "", err
	}
	var expiresAt *time.Time
	if days != nil {
		expiry := time.Now().Add(time.Duration(*days * 24 * float64(time.Hour)))
		expiresAt = &expiry
	}
	if err := s.bans.Ban(ctx, common.IDToDB(guild), expiresAt); err != nil {
		return "", err
	}
	return fmt.Sprintf("Banned guild %d", guild), nil
}

// PardonGuild lifts a guild ban.
func (s *AdminService) PardonGuild(ctx context.Context, rawGuild string) (string, error) {
	guild, err := common.ParseID(rawGuild)
	if err != nil {
		return "", err
	}
	if err := s.bans.Pardon(ctx, common.IDToDB(guild)); err != nil {
		return "", err
	}
	return fmt.Sprintf("Pardoned guild %d", guild), nil
}

// GuildStats reports the level rows held for a guild plus its approximate
// member and presence counts.
func (s *AdminService) GuildStats(ctx context.Context, rawGuild string) (string, error) {
	guild, err := common.ParseID(rawGuild)
	if err != nil {
		return "", err
	}
	levels, err := s.levels.CountGuild(ctx, common.IDToDB(guild))
	if err != nil {
		return "", err
	}
	info, err := s.client.GuildWithCounts(common.FormatID(guild))
	if err != nil {
		return "", fmt.Errorf("failed to fetch guild: %w", err)
	}
	large := ""
	if info.Large {
		large = "large "
	}
	return fmt.Sprintf(
		"%d levels in database for %sguild %s. Roughly %d members online of %d total members.",
		levels, large, info.Name, info.ApproximatePresenceCount, info.ApproximateMemberCount,
	), nil
}

// BotStats reports the bot-wide level row count and build identifier.
func (s *AdminService) BotStats(ctx context.Context) (string, error) {
	levels, err := s.levels.CountTotal(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Roughly %d levels in database. Bot version `git-%s`", levels, s.buildSHA), nil
}
