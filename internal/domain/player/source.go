package player

import "context"

// Source supplies raw player records, possibly several per name.
type Source interface {
	FetchPlayers(ctx context.Context) ([]Player, error)
}
