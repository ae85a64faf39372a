package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/player-relations/internal/domain/player"
)

// PlayerSource serves a fixed set of raw player rows. Rows are returned in
// insertion order, duplicates included.
type PlayerSource struct {
	mu    sync.RWMutex
	items []player.Player
}

func NewPlayerSource(items []player.Player) *PlayerSource {
	return &PlayerSource{items: clonePlayers(items)}
}

func (s *PlayerSource) FetchPlayers(ctx context.Context) ([]player.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return clonePlayers(s.items), nil
}

// Replace swaps the served rows.
func (s *PlayerSource) Replace(items []player.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = clonePlayers(items)
}

func clonePlayers(items []player.Player) []player.Player {
	out := make([]player.Player, 0, len(items))
	for _, item := range items {
		copied := item
		if item.BirthCountry != nil {
			copied.BirthCountry = player.StringPtr(*item.BirthCountry)
		}
		out = append(out, copied)
	}
	return out
}
