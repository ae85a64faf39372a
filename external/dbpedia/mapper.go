package dbpedia

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/player-relations/internal/domain/player"
)

func mapBindings(rows []map[string]bindingValue) ([]player.Player, []error) {
	out := make([]player.Player, 0, len(rows))
	var rejected []error
	for i, row := range rows {
		item, err := mapBinding(row)
		if err != nil {
			rejected = append(rejected, fmt.Errorf("row %d: %w", i, err))
			continue
		}
		out = append(out, item)
	}
	return out, rejected
}

func mapBinding(row map[string]bindingValue) (player.Player, error) {
	height, err := strconv.ParseFloat(value(row, varHeight), 64)
	if err != nil {
		return player.Player{}, fmt.Errorf("parse %s: %w", varHeight, err)
	}
	shirt, err := parseInteger(value(row, varShirtNumber))
	if err != nil {
		return player.Player{}, fmt.Errorf("parse %s: %w", varShirtNumber, err)
	}
	goals, err := parseInteger(value(row, varGoals))
	if err != nil {
		return player.Player{}, fmt.Errorf("parse %s: %w", varGoals, err)
	}

	item := player.Player{
		Name:         value(row, varName),
		BirthDate:    value(row, varBirthDate),
		Club:         value(row, varClub),
		Position:     value(row, varPosition),
		HeightMeters: height,
		ShirtNumber:  shirt,
		Goals:        goals,
		League:       value(row, varLeague),
	}
	if country, ok := row[varCountry]; ok && strings.TrimSpace(country.Value) != "" {
		item.BirthCountry = player.StringPtr(country.Value)
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, err
	}

	return item, nil
}

func value(row map[string]bindingValue, key string) string {
	return strings.TrimSpace(row[key].Value)
}

// parseInteger accepts xsd:integer lexical forms such as "+12".
func parseInteger(v string) (int, error) {
	return strconv.Atoi(strings.TrimPrefix(v, "+"))
}
