package rules

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/player-relations/internal/domain/player"
)

// ErrPlayerNotFound is returned by closed rules for a subject with no rows.
var ErrPlayerNotFound = errors.New("player not found")

// Archetype thresholds.
const (
	StrikerShirtNumber  = 9
	StrikerMinGoals     = 50
	GoalkeeperMinHeight = 1.90
	GoalkeeperMinGoals  = 1
	ShirtTenNumber      = 10
)

// Predicate selects single player rows.
type Predicate func(player.Player) bool

// Filter returns the rows matching pred in their original relative order.
func Filter(players []player.Player, pred Predicate) []player.Player {
	out := make([]player.Player, 0)
	for _, p := range players {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// Any reports whether at least one row matches pred.
func Any(players []player.Player, pred Predicate) bool {
	for _, p := range players {
		if pred(p) {
			return true
		}
	}
	return false
}

// IsStrikerRow matches a forward wearing 9 with more than 50 goals.
func IsStrikerRow(p player.Player) bool {
	return p.Position == player.PositionForward &&
		p.ShirtNumber == StrikerShirtNumber &&
		p.Goals > StrikerMinGoals
}

// IsGoalkeeperRow matches a goalkeeper of at least 1.90m with a goal.
func IsGoalkeeperRow(p player.Player) bool {
	return p.Position == player.PositionGoalkeeper &&
		p.HeightMeters >= GoalkeeperMinHeight &&
		p.Goals >= GoalkeeperMinGoals
}

// IsShirtTenScorelessRow matches a number 10 with no goals.
func IsShirtTenScorelessRow(p player.Player) bool {
	return p.ShirtNumber == ShirtTenNumber && p.Goals == 0
}

// Strikers returns forwards wearing 9 with more than 50 goals.
func Strikers(players []player.Player) []player.Player {
	return Filter(players, IsStrikerRow)
}

// IsStriker reports whether subject has a striker row. Unknown subjects are
// simply not strikers.
func IsStriker(players []player.Player, subject string) bool {
	return Any(players, func(p player.Player) bool {
		return p.Name == subject && IsStrikerRow(p)
	})
}

// Goalkeepers returns scoring goalkeepers of at least 1.90m.
func Goalkeepers(players []player.Player) []player.Player {
	return Filter(players, IsGoalkeeperRow)
}

// ShirtTenScoreless returns number 10s who never scored.
func ShirtTenScoreless(players []player.Player) []player.Player {
	return Filter(players, IsShirtTenScorelessRow)
}

// TeammatesOf returns the names of every other row whose player shares the
// subject's club. A name's club is the club of its first row.
func TeammatesOf(players []player.Player, subject string) ([]string, error) {
	clubByName := make(map[string]string, len(players))
	for _, p := range players {
		if _, ok := clubByName[p.Name]; !ok {
			clubByName[p.Name] = p.Club
		}
	}

	club, ok := clubByName[subject]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, subject)
	}

	out := make([]string, 0)
	for _, p := range players {
		if p.Name != subject && clubByName[p.Name] == club {
			out = append(out, p.Name)
		}
	}

	return out, nil
}
