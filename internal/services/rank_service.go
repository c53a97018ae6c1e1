package services

import (
	"context"
	"fmt"

	"github.com/Fripe070/experienced/internal/common"
	"github.com/Fripe070/experienced/internal/leveling"
)

// LevelReader is the slice of the levels repository the rank service needs.
type LevelReader interface {
	GetXP(ctx context.Context, userID, guildID int64) (int64, error)
	CountHigherXP(ctx context.Context, guildID, xp int64) (int64, error)
}

// RankService computes a user's level, progress, and guild rank.
type RankService struct {
	levels LevelReader
}

func NewRankService(levels LevelReader) *RankService {
	return &RankService{levels: levels}
}

// RankOf returns the level info and 1-based guild rank for a user. Users with
// equal XP share a rank, since rank counts strictly greater totals.
func (s *RankService) RankOf(ctx context.Context, guildID, userID uint64) (leveling.LevelInfo, int64, error) {
	xp, err := s.levels.GetXP(ctx, common.IDToDB(userID), common.IDToDB(guildID))
	if err != nil {
		return leveling.LevelInfo{}, 0, fmt.Errorf("failed to look up xp: %w", err)
	}
	higher, err := s.levels.CountHigherXP(ctx, common.IDToDB(guildID), xp)
	if err != nil {
		return leveling.LevelInfo{}, 0, fmt.Errorf("failed to compute rank: %w", err)
	}
	return leveling.NewLevelInfo(xp), higher + 1, nil
}
