package services

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/Fripe070/experienced/internal/common"
	"github.com/Fripe070/experienced/internal/db/repositories"
	gormModels "github.com/Fripe070/experienced/internal/models/gorm"
)

// GuildConfig is a guild's configuration with the level-up message template
// already compiled, so rendering it can never fail.
type GuildConfig struct {
	OneRewardAtATime *bool
	LevelUpMessage   *common.Template
	LevelUpChannel   *uint64
}

// CompileGuildConfig validates a raw config row. A malformed template fails
// here, at construction, never at render time.
func CompileGuildConfig(row *gormModels.GuildConfig) (*GuildConfig, error) {
	config := &GuildConfig{}
	if row == nil {
		return config, nil
	}
	config.OneRewardAtATime = row.OneRewardAtATime
	if row.LevelUpMessage != nil {
		tmpl, err := common.CompileTemplate(*row.LevelUpMessage)
		if err != nil {
			return nil, fmt.Errorf("invalid level-up message: %w", err)
		}
		config.LevelUpMessage = tmpl
	}
	if row.LevelUpChannel != nil {
		channel := common.DBToID(*row.LevelUpChannel)
		config.LevelUpChannel = &channel
	}
	return config, nil
}

// Describe renders the config the way the config command displays it.
func (c *GuildConfig) Describe() string {
	message := "unset"
	if c.LevelUpMessage != nil {
		message = fmt.Sprintf("`%s`", c.LevelUpMessage.Input())
	}
	channel := "unset"
	if c.LevelUpChannel != nil {
		channel = fmt.Sprintf("`<#%d>`", *c.LevelUpChannel)
	}
	return fmt.Sprintf(
		"One reward role at a time: %s\nLevel-up message: %s\nLevel-up channel: %s",
		tribool(c.OneRewardAtATime), message, channel,
	)
}

func tribool(data *bool) string {
	switch {
	case data == nil:
		return "unset"
	case *data:
		return "true"
	default:
		return "false"
	}
}

const configCacheTTL = 5 * time.Minute

// GuildConfigService loads compiled guild configs and sorted role rewards,
// caching both in process.
type GuildConfigService struct {
	configs *repositories.GuildConfigRepository
	rewards *repositories.RoleRewardRepository
	cache   *gocache.Cache
}

func NewGuildConfigService(
	configs *repositories.GuildConfigRepository,
	rewards *repositories.RoleRewardRepository,
) *GuildConfigService {
	return &GuildConfigService{
		configs: configs,
		rewards: rewards,
		cache:   gocache.New(configCacheTTL, 10*time.Minute),
	}
}

func configKey(guildID uint64) string {
	return "guild-config-" + common.FormatID(guildID)
}

// Get returns the compiled config for a guild, the zero config when none is
// stored.
func (s *GuildConfigService) Get(ctx context.Context, guildID uint64) (*GuildConfig, error) {
	key := configKey(guildID)
	if val, found := s.cache.Get(key); found {
		return val.(*GuildConfig), nil
	}
	row, err := s.configs.Get(ctx, common.IDToDB(guildID))
	if err != nil {
		return nil, err
	}
	config, err := CompileGuildConfig(row)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, config, gocache.DefaultExpiration)
	return config, nil
}

// GuildConfigEdit is a partial update; nil fields keep their stored value.
type GuildConfigEdit struct {
	OneRewardAtATime *bool
	LevelUpMessage   *string
	LevelUpChannel   *uint64
}

// Set merges the edit into the stored row and persists it. The merged config
// is compiled before anything is written, so a malformed level-up message
// never reaches the database.
func (s *GuildConfigService) Set(ctx context.Context, guildID uint64, edit GuildConfigEdit) (*GuildConfig, error) {
	row, err := s.configs.Get(ctx, common.IDToDB(guildID))
	if err != nil {
		return nil, err
	}
	if row == nil {
		row = &gormModels.GuildConfig{GuildID: common.IDToDB(guildID)}
	}
	if edit.OneRewardAtATime != nil {
		row.OneRewardAtATime = edit.OneRewardAtATime
	}
	if edit.LevelUpMessage != nil {
		row.LevelUpMessage = edit.LevelUpMessage
	}
	if edit.LevelUpChannel != nil {
		channel := common.IDToDB(*edit.LevelUpChannel)
		row.LevelUpChannel = &channel
	}

	config, err := CompileGuildConfig(row)
	if err != nil {
		return nil, err
	}
	if err := s.configs.Upsert(ctx, row); err != nil {
		return nil, err
	}
	s.cache.Set(configKey(guildID), config, gocache.DefaultExpiration)
	return config, nil
}

// Rewards returns the guild's role rewards sorted ascending by requirement.
func (s *GuildConfigService) Rewards(ctx context.Context, guildID uint64) ([]gormModels.RoleReward, error) {
	key := "role-rewards-" + common.FormatID(guildID)
	if val, found := s.cache.Get(key); found {
		return val.([]gormModels.RoleReward), nil
	}
	rewards, err := s.rewards.ListByGuild(ctx, common.IDToDB(guildID))
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, rewards, gocache.DefaultExpiration)
	return rewards, nil
}

// HighestReward walks the sorted reward list and returns the highest reward
// the XP total qualifies for, or nil when none applies.
func HighestReward(rewards []gormModels.RoleReward, xp int64) *gormModels.RoleReward {
	var best *gormModels.RoleReward
	for i := range rewards {
		if rewards[i].Requirement > xp {
			break
		}
		best = &rewards[i]
	}
	return best
}
