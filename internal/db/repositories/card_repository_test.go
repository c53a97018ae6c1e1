package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Fripe070/experienced/internal/models/entities"
)

const rawTestSchema = `
CREATE TABLE levels (
	user_id  BIGINT NOT NULL,
	guild_id BIGINT NOT NULL,
	xp       BIGINT NOT NULL,
	PRIMARY KEY (user_id, guild_id)
);
CREATE TABLE custom_card (
	id                  BIGINT PRIMARY KEY,
	important           TEXT,
	secondary           TEXT,
	rank                TEXT,
	level               TEXT,
	border              TEXT,
	background          TEXT,
	progress_foreground TEXT,
	progress_background TEXT,
	font                TEXT
);
`

// newRawTestDB opens an in-memory database for the sqlx repositories, mirroring
// newTestDB for the gorm ones.
func newRawTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if _, err := db.Exec(rawTestSchema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return db
}

func testStr(s string) *string { return &s }

func TestCardRepository_GetAbsent(t *testing.T) {
	repo := NewCardRepository(newRawTestDB(t))

	card, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if card != nil {
		t.Errorf("Expected nil for a user without a card, got %+v", card)
	}
}

func TestCardRepository_UpsertMergesFields(t *testing.T) {
	repo := NewCardRepository(newRawTestDB(t))
	ctx := context.Background()

	if err := repo.Upsert(ctx, &entities.CustomCard{ID: 1, Background: testStr("#112233")}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := repo.Upsert(ctx, &entities.CustomCard{ID: 1, Rank: testStr("#AABBCC")}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	card, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if card == nil {
		t.Fatal("Expected a stored card")
	}
	if card.Background == nil || *card.Background != "#112233" {
		t.Errorf("Expected the background to survive an unrelated edit, got %v", card.Background)
	}
	if card.Rank == nil || *card.Rank != "#AABBCC" {
		t.Errorf("Expected the rank color to be stored, got %v", card.Rank)
	}
	if card.Font != nil {
		t.Errorf("Expected untouched fields to stay null, got %v", *card.Font)
	}
}

func TestCardRepository_UpsertOverwritesSameField(t *testing.T) {
	repo := NewCardRepository(newRawTestDB(t))
	ctx := context.Background()

	if err := repo.Upsert(ctx, &entities.CustomCard{ID: 1, Border: testStr("#000000")}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := repo.Upsert(ctx, &entities.CustomCard{ID: 1, Border: testStr("#FFFFFF")}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	card, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if card.Border == nil || *card.Border != "#FFFFFF" {
		t.Errorf("Expected the later value to win, got %v", card.Border)
	}
}

func TestCardRepository_UpsertIsPerUser(t *testing.T) {
	repo := NewCardRepository(newRawTestDB(t))
	ctx := context.Background()

	if err := repo.Upsert(ctx, &entities.CustomCard{ID: 1, Font: testStr("Mojang")}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	other, err := repo.Get(ctx, 2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if other != nil {
		t.Errorf("Expected no card for an unrelated user, got %+v", other)
	}
}

func TestCardRepository_Delete(t *testing.T) {
	repo := NewCardRepository(newRawTestDB(t))
	ctx := context.Background()

	if err := repo.Upsert(ctx, &entities.CustomCard{ID: 1, Important: testStr("#123456")}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	card, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if card != nil {
		t.Errorf("Expected the card to be gone, got %+v", card)
	}
}
