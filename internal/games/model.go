package games

import (
	"context"
	"time"
)

// Scores holds the per-turn scores of each player slot. The two sequences may
// differ in length.
type Scores struct {
	Player1 []int `json:"player1"`
	Player2 []int `json:"player2"`
}

// Game is one completed match. Records are immutable once stored.
type Game struct {
	ID        string     `json:"_id,omitempty"`
	Player1ID int        `json:"player1Id"`
	Player2ID int        `json:"player2Id"`
	Scores    Scores     `json:"scores"`
	WinnerID  *int       `json:"winnerId,omitempty"` // nil when no winner was recorded
	Date      *time.Time `json:"date,omitempty"`
}

// HasWinner reports whether a winner was recorded. A zero id counts as none.
func (g Game) HasWinner() bool {
	return g.WinnerID != nil && *g.WinnerID != 0
}

// Normalize replaces missing score sequences with empty ones so records
// encode as [] rather than null.
func (g *Game) Normalize() {
	if g.Scores.Player1 == nil {
		g.Scores.Player1 = []int{}
	}
	if g.Scores.Player2 == nil {
		g.Scores.Player2 = []int{}
	}
}

// Clone returns a deep copy of the game.
func (g Game) Clone() Game {
	c := g
	c.Scores.Player1 = append([]int(nil), g.Scores.Player1...)
	c.Scores.Player2 = append([]int(nil), g.Scores.Player2...)
	if g.WinnerID != nil {
		w := *g.WinnerID
		c.WinnerID = &w
	}
	if g.Date != nil {
		d := *g.Date
		c.Date = &d
	}
	c.Normalize()
	return c
}

// Store persists game records and returns them in insertion order.
type Store interface {
	Insert(ctx context.Context, g *Game) (string, error)
	All(ctx context.Context) ([]Game, error)
	Ping(ctx context.Context) error
	Close() error
}
