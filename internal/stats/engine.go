// Package stats derives per-player league statistics from recorded games.
package stats

import (
	"errors"
	"fmt"
	"math"

	"dartsleague/internal/games"
	"dartsleague/internal/roster"
)

// MaxThrow is the highest score possible with three darts.
const MaxThrow = 180

var ErrScoreOverflow = errors.New("score total overflows")

type accumulator struct {
	wins        int
	losses      int
	gamesPlayed int
	maxThrows   int
	total       int64
	count       int
	best        int
}

// Compute returns one statistics record per roster player, in roster order.
// It makes a single pass over the games, so a game where both slots hold the
// same id is credited once, to the player1 slot.
//
// A recorded winner that is neither participant gives both participants a
// loss.
func Compute(gs []games.Game, r roster.Roster) ([]PlayerStats, error) {
	acc := make(map[int]*accumulator, len(r))
	for _, p := range r {
		acc[p.ID] = &accumulator{}
	}

	for _, g := range gs {
		if a, ok := acc[g.Player1ID]; ok {
			if err := a.add(g, g.Player1ID, g.Scores.Player1); err != nil {
				return nil, fmt.Errorf("player %d: %w", g.Player1ID, err)
			}
		}
		if g.Player2ID == g.Player1ID {
			continue
		}
		if a, ok := acc[g.Player2ID]; ok {
			if err := a.add(g, g.Player2ID, g.Scores.Player2); err != nil {
				return nil, fmt.Errorf("player %d: %w", g.Player2ID, err)
			}
		}
	}

	out := make([]PlayerStats, 0, len(r))
	for _, p := range r {
		out = append(out, acc[p.ID].result(p))
	}
	return out, nil
}

func (a *accumulator) add(g games.Game, playerID int, scores []int) error {
	a.gamesPlayed++
	if g.WinnerID != nil && *g.WinnerID == playerID {
		a.wins++
	} else if g.HasWinner() {
		a.losses++
	}

	for _, s := range scores {
		v := int64(s)
		if (v > 0 && a.total > math.MaxInt64-v) || (v < 0 && a.total < math.MinInt64-v) {
			return ErrScoreOverflow
		}
		a.total += v
		if a.count == 0 || s > a.best {
			a.best = s
		}
		a.count++
		if s == MaxThrow {
			a.maxThrows++
		}
	}
	return nil
}

func (a *accumulator) result(p roster.Player) PlayerStats {
	ps := PlayerStats{
		ID:           p.ID,
		Name:         p.Name,
		Wins:         a.wins,
		Losses:       a.losses,
		NumberOf180s: a.maxThrows,
		GamesPlayed:  a.gamesPlayed,
		WinLossRatio: "0/0",
	}
	if a.count > 0 {
		ps.AvgScore = newFigure(float64(a.total) / float64(a.count))
		ps.BestThrow = a.best
	}
	if ps.AvgScore.Value > 0 {
		ps.PPD = newFigure(ps.AvgScore.Value / 3)
	}
	if a.gamesPlayed > 0 {
		ps.WinLossRatio = fmt.Sprintf("%d/%d", a.wins, a.losses)
	}
	return ps
}
