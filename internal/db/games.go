package db

import (
	"context"
	"database/sql"
	"fmt"

	"dartsleague/internal/games"

	"github.com/lib/pq"
)

func (d *DB) Insert(ctx context.Context, g *games.Game) (string, error) {
	var winner sql.NullInt64
	if g.WinnerID != nil {
		winner = sql.NullInt64{Int64: int64(*g.WinnerID), Valid: true}
	}
	var playedAt sql.NullTime
	if g.Date != nil {
		playedAt = sql.NullTime{Time: *g.Date, Valid: true}
	}

	var id string
	err := d.conn.QueryRowContext(ctx, `
		INSERT INTO games (player1_id, player2_id, player1_scores, player2_scores, winner_id, played_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, g.Player1ID, g.Player2ID, pq.Array(toInt64s(g.Scores.Player1)), pq.Array(toInt64s(g.Scores.Player2)), winner, playedAt).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("saving game: %w", err)
	}
	return id, nil
}

func (d *DB) All(ctx context.Context) ([]games.Game, error) {
	rows, err := d.conn.QueryContext(ctx, `
		SELECT id, player1_id, player2_id, player1_scores, player2_scores, winner_id, played_at
		FROM games
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("listing games: %w", err)
	}
	defer rows.Close()

	list := make([]games.Game, 0)
	for rows.Next() {
		var (
			g        games.Game
			p1, p2   pq.Int64Array
			winner   sql.NullInt64
			playedAt sql.NullTime
		)
		if err := rows.Scan(&g.ID, &g.Player1ID, &g.Player2ID, &p1, &p2, &winner, &playedAt); err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}
		g.Scores.Player1 = toInts(p1)
		g.Scores.Player2 = toInts(p2)
		if winner.Valid {
			w := int(winner.Int64)
			g.WinnerID = &w
		}
		if playedAt.Valid {
			t := playedAt.Time.UTC()
			g.Date = &t
		}
		list = append(list, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing games: %w", err)
	}
	return list, nil
}

func toInt64s(in []int) []int64 {
	out := make([]int64, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}
	return out
}

func toInts(in []int64) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}

var _ games.Store = (*DB)(nil)
