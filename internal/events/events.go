package events

import "dartsleague/internal/games"

type GameSavedEvent struct {
	Game games.Game
}

type Bus struct {
	GamesSaved chan GameSavedEvent
}

func NewBus() *Bus {
	return &Bus{
		GamesSaved: make(chan GameSavedEvent, 10),
	}
}

// PublishGameSaved queues the event and reports whether it was accepted.
// It never blocks; events are dropped when nobody is draining the bus.
func (b *Bus) PublishGameSaved(g games.Game) bool {
	select {
	case b.GamesSaved <- GameSavedEvent{Game: g}:
		return true
	default:
		return false
	}
}
