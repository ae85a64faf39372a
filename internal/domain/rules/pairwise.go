package rules

import "github.com/riskibarqy/player-relations/internal/domain/player"

// Pair is an unordered pair of distinct players, First < Second by name.
type Pair struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

// CountryPair is a super-teammate pair with the shared birth country.
type CountryPair struct {
	Pair
	Country string `json:"country"`
}

// CompetitorPair is a pair competing for the same position at the same club.
type CompetitorPair struct {
	Pair
	Position string `json:"position"`
	Club     string `json:"club"`
}

// RivalPair is a pair playing in the same league for different clubs.
type RivalPair struct {
	Pair
	League string `json:"league"`
}

// eachPair calls fn for every (j1, j2) with j1.Name < j2.Name, outer index
// first. The name guard drops self-pairs and the mirrored (j2, j1) visit.
func eachPair(players []player.Player, fn func(j1, j2 player.Player)) {
	for i := range players {
		for j := range players {
			if players[i].Name < players[j].Name {
				fn(players[i], players[j])
			}
		}
	}
}

// Contemporaries pairs players born in the same year. Players without a
// defined birth year never match.
func Contemporaries(players []player.Player) []Pair {
	years := make([]int, len(players))
	known := make([]bool, len(players))
	for i, p := range players {
		years[i], known[i] = p.BirthYear()
	}

	out := make([]Pair, 0)
	for i := range players {
		if !known[i] {
			continue
		}
		for j := range players {
			if !known[j] || players[i].Name >= players[j].Name {
				continue
			}
			if years[i] == years[j] {
				out = append(out, Pair{First: players[i].Name, Second: players[j].Name})
			}
		}
	}

	return out
}

// Teammates pairs players registered at the same club.
func Teammates(players []player.Player) []Pair {
	out := make([]Pair, 0)
	eachPair(players, func(j1, j2 player.Player) {
		if j1.Club == j2.Club {
			out = append(out, Pair{First: j1.Name, Second: j2.Name})
		}
	})
	return out
}

// SuperTeammates pairs teammates born in the same country who play different
// positions.
func SuperTeammates(players []player.Player) []CountryPair {
	out := make([]CountryPair, 0)
	eachPair(players, func(j1, j2 player.Player) {
		if j1.Club != j2.Club || j1.Position == j2.Position {
			return
		}
		c1, ok1 := j1.Country()
		c2, ok2 := j2.Country()
		if !ok1 || !ok2 || c1 != c2 {
			return
		}
		out = append(out, CountryPair{
			Pair:    Pair{First: j1.Name, Second: j2.Name},
			Country: c1,
		})
	})
	return out
}

// Competitors pairs players holding the same position at the same club.
func Competitors(players []player.Player) []CompetitorPair {
	out := make([]CompetitorPair, 0)
	eachPair(players, func(j1, j2 player.Player) {
		if j1.Position == j2.Position && j1.Club == j2.Club {
			out = append(out, CompetitorPair{
				Pair:     Pair{First: j1.Name, Second: j2.Name},
				Position: j1.Position,
				Club:     j1.Club,
			})
		}
	})
	return out
}

// Rivals pairs players of the same league at different clubs who are not
// teammates under any of their rows.
func Rivals(players []player.Player) []RivalPair {
	teammates := NewPairSet(Teammates(players))

	out := make([]RivalPair, 0)
	eachPair(players, func(j1, j2 player.Player) {
		if j1.League != j2.League || j1.Club == j2.Club {
			return
		}
		if teammates.Contains(j1.Name, j2.Name) {
			return
		}
		out = append(out, RivalPair{
			Pair:   Pair{First: j1.Name, Second: j2.Name},
			League: j1.League,
		})
	})
	return out
}

// PairSet answers order-insensitive membership questions over pairs.
type PairSet struct {
	items map[Pair]struct{}
}

// NewPairSet indexes pairs for Contains lookups.
func NewPairSet(pairs []Pair) PairSet {
	items := make(map[Pair]struct{}, len(pairs))
	for _, p := range pairs {
		items[p] = struct{}{}
	}
	return PairSet{items: items}
}

// Contains reports whether {a, b} is in the set in either order.
func (s PairSet) Contains(a, b string) bool {
	if _, ok := s.items[Pair{First: a, Second: b}]; ok {
		return true
	}
	_, ok := s.items[Pair{First: b, Second: a}]
	return ok
}

// Len returns the number of distinct pairs.
func (s PairSet) Len() int {
	return len(s.items)
}
