package player

// Normalize collapses multiple raw observations per player name into the rows
// carrying the maximum goal count for that name. Rows tied at the maximum are
// all kept. Input order is preserved and the input slice is not modified.
func Normalize(raw []Player) []Player {
	maxGoals := make(map[string]int, len(raw))
	for _, p := range raw {
		current, seen := maxGoals[p.Name]
		if !seen || p.Goals > current {
			maxGoals[p.Name] = p.Goals
		}
	}

	out := make([]Player, 0, len(maxGoals))
	for _, p := range raw {
		if p.Goals == maxGoals[p.Name] {
			out = append(out, p)
		}
	}

	return out
}
