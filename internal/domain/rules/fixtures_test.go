package rules

import "github.com/riskibarqy/player-relations/internal/domain/player"

// exampleDataset is the two-player example from the rule documentation.
func exampleDataset() []player.Player {
	return []player.Player{
		{
			Name:         "A",
			Club:         "X",
			League:       "L",
			Position:     player.PositionForward,
			ShirtNumber:  9,
			Goals:        60,
			HeightMeters: 1.80,
			BirthCountry: player.StringPtr("BR"),
			BirthDate:    "1995-01-01",
		},
		{
			Name:         "B",
			Club:         "X",
			League:       "L",
			Position:     player.PositionGoalkeeper,
			ShirtNumber:  1,
			Goals:        2,
			HeightMeters: 1.95,
			BirthCountry: player.StringPtr("BR"),
			BirthDate:    "1995-06-01",
		},
	}
}

// mixedDataset covers several clubs, leagues, missing countries, malformed
// dates and a name tied at max goals across two clubs.
func mixedDataset() []player.Player {
	return []player.Player{
		{Name: "Diego", Club: "Flamengo", League: "Serie A", Position: player.PositionForward, ShirtNumber: 9, Goals: 80, HeightMeters: 1.82, BirthCountry: player.StringPtr("Brazil"), BirthDate: "1990-03-01"},
		{Name: "Bruno", Club: "Flamengo", League: "Serie A", Position: "Midfielder", ShirtNumber: 10, Goals: 0, HeightMeters: 1.75, BirthCountry: player.StringPtr("Brazil"), BirthDate: "1990-11-20"},
		{Name: "Alan", Club: "Flamengo", League: "Serie A", Position: player.PositionForward, ShirtNumber: 11, Goals: 12, HeightMeters: 1.79, BirthDate: "unknown"},
		{Name: "Carlos", Club: "Palmeiras", League: "Serie A", Position: player.PositionGoalkeeper, ShirtNumber: 1, Goals: 3, HeightMeters: 1.93, BirthCountry: player.StringPtr("Brazil"), BirthDate: "1988-01-15"},
		{Name: "Edu", Club: "Palmeiras", League: "Serie A", Position: "Defender", ShirtNumber: 4, Goals: 5, HeightMeters: 1.88, BirthCountry: player.StringPtr("Argentina"), BirthDate: "1988-07-07"},
		{Name: "Fabio", Club: "Boca", League: "Primera", Position: "Midfielder", ShirtNumber: 10, Goals: 0, HeightMeters: 1.70, BirthCountry: player.StringPtr("Argentina"), BirthDate: "1995"},
		{Name: "Gil", Club: "Flamengo", League: "Serie A", Position: "Defender", ShirtNumber: 3, Goals: 7, HeightMeters: 1.86, BirthCountry: player.StringPtr("Brazil"), BirthDate: "1993-02-02"},
		{Name: "Gil", Club: "Palmeiras", League: "Serie A", Position: "Defender", ShirtNumber: 3, Goals: 7, HeightMeters: 1.86, BirthCountry: player.StringPtr("Brazil"), BirthDate: "1993-02-02"},
		{Name: "Hugo", Club: "Boca", League: "Primera", Position: player.PositionGoalkeeper, ShirtNumber: 12, Goals: 0, HeightMeters: 1.95, BirthDate: "unknown"},
	}
}
