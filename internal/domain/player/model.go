package player

import (
	"fmt"
	"strconv"
	"strings"
)

// Position labels as published by the knowledge graph. Archetype rules compare
// them by exact string equality.
const (
	PositionForward    = "Forward (association football)"
	PositionGoalkeeper = "Goalkeeper (association football)"
)

// Player is one soccer-player row derived from the knowledge graph.
type Player struct {
	Name         string  `json:"name"`
	BirthCountry *string `json:"birth_country,omitempty"`
	BirthDate    string  `json:"birth_date"`
	Club         string  `json:"club"`
	Position     string  `json:"position"`
	HeightMeters float64 `json:"height_meters"`
	ShirtNumber  int     `json:"shirt_number"`
	Goals        int     `json:"goals"`
	League       string  `json:"league"`
}

// BirthYear extracts the year from BirthDate. The year is only defined when the
// date contains a '-' and its first four characters are numeric.
func (p Player) BirthYear() (int, bool) {
	if !strings.Contains(p.BirthDate, "-") || len(p.BirthDate) < 4 {
		return 0, false
	}

	year, err := strconv.Atoi(p.BirthDate[:4])
	if err != nil {
		return 0, false
	}

	return year, true
}

// Country returns the birth country and whether it is known.
func (p Player) Country() (string, bool) {
	if p.BirthCountry == nil {
		return "", false
	}
	return *p.BirthCountry, true
}

// Validate rejects rows without a name or club and negative goal counts.
func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if strings.TrimSpace(p.Club) == "" {
		return fmt.Errorf("player club is required: %s", p.Name)
	}
	if p.Goals < 0 {
		return fmt.Errorf("player goals must not be negative: %s", p.Name)
	}

	return nil
}

// StringPtr is a helper for building records with a known birth country.
func StringPtr(v string) *string {
	return &v
}
