package services

import (
	"context"
	"errors"
	"testing"
)

type fakeLevelReader struct {
	xp     int64
	higher int64
	xpErr  error
}

func (f *fakeLevelReader) GetXP(ctx context.Context, userID, guildID int64) (int64, error) {
	return f.xp, f.xpErr
}

func (f *fakeLevelReader) CountHigherXP(ctx context.Context, guildID, xp int64) (int64, error) {
	return f.higher, nil
}

func TestRankService_RankOf(t *testing.T) {
	service := NewRankService(&fakeLevelReader{xp: 475, higher: 2})

	info, rank, err := service.RankOf(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if info.Level() != 3 {
		t.Errorf("Expected level 3 for 475 XP, got %d", info.Level())
	}
	if rank != 3 {
		t.Errorf("Expected rank 3 with 2 users above, got %d", rank)
	}
}

func TestRankService_RankOf_TopUser(t *testing.T) {
	service := NewRankService(&fakeLevelReader{xp: 100, higher: 0})

	_, rank, err := service.RankOf(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rank != 1 {
		t.Errorf("Expected rank 1 for the top user, got %d", rank)
	}
}

func TestRankService_RankOf_ZeroXP(t *testing.T) {
	service := NewRankService(&fakeLevelReader{xp: 0, higher: 5})

	info, rank, err := service.RankOf(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if info.XP() != 0 || info.Level() != 0 {
		t.Errorf("Expected zeroed info, got xp=%d level=%d", info.XP(), info.Level())
	}
	if rank != 6 {
		t.Errorf("Expected rank 6, got %d", rank)
	}
}

func TestRankService_RankOf_StoreError(t *testing.T) {
	service := NewRankService(&fakeLevelReader{xpErr: errors.New("db down")})

	if _, _, err := service.RankOf(context.Background(), 1, 10); err == nil {
		t.Fatal("Expected store error to propagate")
	}
}
