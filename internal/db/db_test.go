package db

import (
	"context"
	"os"
	"testing"
	"time"

	"dartsleague/internal/games"

	"go.uber.org/zap/zaptest"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}
	ctx := context.Background()
	database, err := Connect(ctx, dsn, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Connect() error: %v", err)
	}
	if err := database.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error: %v", err)
	}
	database.conn.Exec("DELETE FROM games")
	t.Cleanup(func() {
		// Clean up test data
		database.conn.Exec("DELETE FROM games")
		database.Close()
	})
	return database
}

func intPtr(i int) *int { return &i }

func TestConnect(t *testing.T) {
	database := getTestDB(t)
	if err := database.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error: %v", err)
	}
}

func TestMigrate(t *testing.T) {
	database := getTestDB(t)

	var exists bool
	err := database.conn.QueryRow(`
		SELECT EXISTS (SELECT FROM information_schema.tables WHERE table_name = $1)
	`, "games").Scan(&exists)
	if err != nil {
		t.Fatalf("checking table games: %v", err)
	}
	if !exists {
		t.Error("table games does not exist")
	}

	// Re-running must not fail
	if err := database.Migrate(context.Background()); err != nil {
		t.Errorf("second Migrate() error: %v", err)
	}
}

func TestInsertAndAll(t *testing.T) {
	database := getTestDB(t)
	ctx := context.Background()
	played := time.Date(2024, 3, 1, 19, 30, 0, 0, time.UTC)

	id, err := database.Insert(ctx, &games.Game{
		Player1ID: 1,
		Player2ID: 2,
		Scores:    games.Scores{Player1: []int{100, 180, 60}, Player2: []int{140, 90, 95}},
		WinnerID:  intPtr(1),
		Date:      &played,
	})
	if err != nil {
		t.Fatalf("Insert() error: %v", err)
	}
	if id == "" {
		t.Fatal("Insert() returned empty ID")
	}

	list, err := database.All(ctx)
	if err != nil {
		t.Fatalf("All() error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("All() returned %d games, want 1", len(list))
	}
	g := list[0]
	if g.ID != id {
		t.Errorf("ID = %q, want %q", g.ID, id)
	}
	if len(g.Scores.Player1) != 3 || g.Scores.Player1[1] != 180 {
		t.Errorf("Player1 scores = %v, want [100 180 60]", g.Scores.Player1)
	}
	if g.WinnerID == nil || *g.WinnerID != 1 {
		t.Errorf("WinnerID = %v, want 1", g.WinnerID)
	}
	if g.Date == nil || !g.Date.Equal(played) {
		t.Errorf("Date = %v, want %v", g.Date, played)
	}
}

func TestInsert_NoWinnerNoScores(t *testing.T) {
	database := getTestDB(t)
	ctx := context.Background()

	if _, err := database.Insert(ctx, &games.Game{Player1ID: 3, Player2ID: 4}); err != nil {
		t.Fatalf("Insert() error: %v", err)
	}

	list, _ := database.All(ctx)
	if len(list) != 1 {
		t.Fatalf("All() returned %d games, want 1", len(list))
	}
	if list[0].WinnerID != nil {
		t.Errorf("WinnerID = %v, want nil", *list[0].WinnerID)
	}
	if list[0].Date != nil {
		t.Errorf("Date = %v, want nil", list[0].Date)
	}
	if list[0].Scores.Player1 == nil || len(list[0].Scores.Player1) != 0 {
		t.Errorf("Player1 scores = %#v, want empty slice", list[0].Scores.Player1)
	}
}

func TestAll_InsertionOrder(t *testing.T) {
	database := getTestDB(t)
	ctx := context.Background()

	var ids []string
	for i := 1; i <= 3; i++ {
		id, err := database.Insert(ctx, &games.Game{Player1ID: i, Player2ID: i + 1})
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}

	list, _ := database.All(ctx)
	if len(list) != 3 {
		t.Fatalf("All() returned %d games, want 3", len(list))
	}
	for i, g := range list {
		if g.ID != ids[i] {
			t.Errorf("game %d ID = %q, want %q", i, g.ID, ids[i])
		}
	}
}
