package services

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Fripe070/experienced/internal/db/repositories"
	gormModels "github.com/Fripe070/experienced/internal/models/gorm"
)

func newConfigTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&gormModels.GuildConfig{}, &gormModels.RoleReward{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func newConfigTestService(t *testing.T) (*GuildConfigService, *gorm.DB) {
	db := newConfigTestDB(t)
	service := NewGuildConfigService(
		repositories.NewGuildConfigRepository(db),
		repositories.NewRoleRewardRepository(db),
	)
	return service, db
}

func boolPtr(b bool) *bool {
	return &b
}

func TestGuildConfigService_Get_NoRow(t *testing.T) {
	service, _ := newConfigTestService(t)

	config, err := service.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := "One reward role at a time: unset\nLevel-up message: unset\nLevel-up channel: unset"
	if config.Describe() != want {
		t.Errorf("Expected %q, got %q", want, config.Describe())
	}
}

func TestGuildConfigService_SetAndGet(t *testing.T) {
	service, _ := newConfigTestService(t)
	ctx := context.Background()

	message := "GG {user_mention}, level {level}!"
	channel := uint64(12345)
	config, err := service.Set(ctx, 1, GuildConfigEdit{
		OneRewardAtATime: boolPtr(true),
		LevelUpMessage:   &message,
		LevelUpChannel:   &channel,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if config.LevelUpMessage == nil {
		t.Fatal("Expected a compiled template")
	}
	rendered := config.LevelUpMessage.Render(map[string]string{"user_mention": "<@7>", "level": "3"})
	if rendered != "GG <@7>, level 3!" {
		t.Errorf("Unexpected render: %q", rendered)
	}

	got, err := service.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.OneRewardAtATime == nil || !*got.OneRewardAtATime {
		t.Error("Expected one-reward-at-a-time true")
	}
	if got.LevelUpChannel == nil || *got.LevelUpChannel != 12345 {
		t.Errorf("Expected channel 12345, got %v", got.LevelUpChannel)
	}
}

func TestGuildConfigService_Set_MergesWithStored(t *testing.T) {
	service, _ := newConfigTestService(t)
	ctx := context.Background()

	message := "hi {user_mention}"
	if _, err := service.Set(ctx, 1, GuildConfigEdit{LevelUpMessage: &message}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := service.Set(ctx, 1, GuildConfigEdit{OneRewardAtATime: boolPtr(false)}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	config, err := service.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if config.LevelUpMessage == nil || config.LevelUpMessage.Input() != message {
		t.Error("Expected earlier message edit to survive a later unrelated edit")
	}
	if config.OneRewardAtATime == nil || *config.OneRewardAtATime {
		t.Error("Expected one-reward-at-a-time false")
	}
}

func TestGuildConfigService_Set_BadTemplateWritesNothing(t *testing.T) {
	service, db := newConfigTestService(t)
	ctx := context.Background()

	bad := "hello {username}"
	if _, err := service.Set(ctx, 1, GuildConfigEdit{LevelUpMessage: &bad}); err == nil {
		t.Fatal("Expected error for unknown template variable")
	}

	var count int64
	if err := db.Model(&gormModels.GuildConfig{}).Count(&count).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected no stored row after a failed edit, got %d", count)
	}
}

func TestGuildConfigService_Get_Cached(t *testing.T) {
	service, db := newConfigTestService(t)
	ctx := context.Background()

	message := "hi {level}"
	if _, err := service.Set(ctx, 1, GuildConfigEdit{LevelUpMessage: &message}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// A direct row change is invisible until the cache entry expires.
	if err := db.Model(&gormModels.GuildConfig{}).
		Where("guild_id = ?", 1).
		Update("level_up_message", "changed {level}").Error; err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	config, err := service.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if config.LevelUpMessage.Input() != message {
		t.Errorf("Expected cached config, got %q", config.LevelUpMessage.Input())
	}
}

func TestGuildConfigService_Rewards_SortedAscending(t *testing.T) {
	service, db := newConfigTestDBWithRewards(t)
	ctx := context.Background()

	rewards, err := service.Rewards(ctx, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(rewards) != 3 {
		t.Fatalf("Expected 3 rewards, got %d", len(rewards))
	}
	for i := 1; i < len(rewards); i++ {
		if rewards[i].Requirement < rewards[i-1].Requirement {
			t.Fatalf("Rewards out of order: %v", rewards)
		}
	}
	_ = db
}

func newConfigTestDBWithRewards(t *testing.T) (*GuildConfigService, *gorm.DB) {
	t.Helper()
	service, db := newConfigTestService(t)
	rows := []gormModels.RoleReward{
		{GuildID: 1, RoleID: 30, Requirement: 5000},
		{GuildID: 1, RoleID: 10, Requirement: 100},
		{GuildID: 1, RoleID: 20, Requirement: 1000},
		{GuildID: 2, RoleID: 40, Requirement: 50},
	}
	for _, row := range rows {
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("Failed to seed reward: %v", err)
		}
	}
	return service, db
}

func TestHighestReward(t *testing.T) {
	rewards := []gormModels.RoleReward{
		{RoleID: 10, Requirement: 100},
		{RoleID: 20, Requirement: 1000},
		{RoleID: 30, Requirement: 5000},
	}

	if got := HighestReward(rewards, 50); got != nil {
		t.Errorf("Expected no reward below the first requirement, got %v", got)
	}
	if got := HighestReward(rewards, 100); got == nil || got.RoleID != 10 {
		t.Errorf("Expected the first reward at its exact requirement, got %v", got)
	}
	if got := HighestReward(rewards, 2500); got == nil || got.RoleID != 20 {
		t.Errorf("Expected the middle reward, got %v", got)
	}
	if got := HighestReward(rewards, 1000000); got == nil || got.RoleID != 30 {
		t.Errorf("Expected the top reward, got %v", got)
	}
	if got := HighestReward(nil, 100); got != nil {
		t.Errorf("Expected nil for an empty list, got %v", got)
	}
}
