package repositories

import (
	"context"
	"testing"
)

func TestLevelsRepository_GetXP_MissingRow(t *testing.T) {
	repo := NewLevelsRepository(newRawTestDB(t))

	xp, err := repo.GetXP(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("Expected a missing row to read as zero, got error %v", err)
	}
	if xp != 0 {
		t.Errorf("Expected 0 XP for an unknown user, got %d", xp)
	}
}

func TestLevelsRepository_UpsertReplaces(t *testing.T) {
	repo := NewLevelsRepository(newRawTestDB(t))
	ctx := context.Background()

	if err := repo.UpsertXP(ctx, 1, 10, 500); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := repo.UpsertXP(ctx, 1, 10, 750); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	xp, err := repo.GetXP(ctx, 1, 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if xp != 750 {
		t.Errorf("Expected the later total to replace the first, got %d", xp)
	}
}

func TestLevelsRepository_CountHigherXP_StrictlyGreater(t *testing.T) {
	repo := NewLevelsRepository(newRawTestDB(t))
	ctx := context.Background()

	for user, xp := range map[int64]int64{1: 100, 2: 200, 3: 200, 4: 300} {
		if err := repo.UpsertXP(ctx, user, 10, xp); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}
	// A row in another guild must not count.
	if err := repo.UpsertXP(ctx, 5, 11, 9000); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	higher, err := repo.CountHigherXP(ctx, 10, 200)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if higher != 1 {
		t.Errorf("Expected ties to share a rank, got %d users above 200 XP", higher)
	}
}

func TestLevelsRepository_DeleteGuild(t *testing.T) {
	repo := NewLevelsRepository(newRawTestDB(t))
	ctx := context.Background()

	for user := int64(1); user <= 3; user++ {
		if err := repo.UpsertXP(ctx, user, 10, 100*user); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}
	if err := repo.UpsertXP(ctx, 1, 11, 42); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	deleted, err := repo.DeleteGuild(ctx, 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if deleted != 3 {
		t.Errorf("Expected 3 deleted rows, got %d", deleted)
	}

	xp, err := repo.GetXP(ctx, 1, 11)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if xp != 42 {
		t.Errorf("Expected other guilds to be untouched, got %d", xp)
	}
}

func TestLevelsRepository_DeleteUser(t *testing.T) {
	repo := NewLevelsRepository(newRawTestDB(t))
	ctx := context.Background()

	if err := repo.UpsertXP(ctx, 1, 10, 100); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := repo.UpsertXP(ctx, 1, 11, 200); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := repo.UpsertXP(ctx, 2, 10, 300); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	deleted, err := repo.DeleteUser(ctx, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if deleted != 2 {
		t.Errorf("Expected rows in both guilds deleted, got %d", deleted)
	}

	xp, err := repo.GetXP(ctx, 2, 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if xp != 300 {
		t.Errorf("Expected other users to be untouched, got %d", xp)
	}
}

func TestLevelsRepository_Counts(t *testing.T) {
	repo := NewLevelsRepository(newRawTestDB(t))
	ctx := context.Background()

	if err := repo.UpsertXP(ctx, 1, 10, 100); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := repo.UpsertXP(ctx, 2, 10, 200); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := repo.UpsertXP(ctx, 1, 11, 300); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	guild, err := repo.CountGuild(ctx, 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if guild != 2 {
		t.Errorf("Expected 2 rows in guild 10, got %d", guild)
	}

	total, err := repo.CountTotal(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if total != 3 {
		t.Errorf("Expected 3 rows in total, got %d", total)
	}
}
