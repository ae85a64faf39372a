package memory

import "github.com/riskibarqy/player-relations/internal/domain/player"

const (
	leaguePremier  = "Premier League"
	leagueSerieA   = "Campeonato Brasileiro Série A"
	leagueColombia = "Categoría Primera A"
	positionMid    = "Midfielder"
	positionDef    = "Defender (association football)"
)

// SeedPlayers returns raw rows shaped like the knowledge graph output: one row
// per goal observation, so some players appear more than once.
func SeedPlayers() []player.Player {
	brazil := "Brazil"
	colombia := "Colombia"
	england := "England"
	belgium := "Belgium"
	bosnia := "Bosnia and Herzegovina"

	return []player.Player{
		{Name: "Lucas Piazon", BirthCountry: &brazil, BirthDate: "1994-01-20", Club: "Chelsea F.C.", Position: positionMid, HeightMeters: 1.83, ShirtNumber: 7, Goals: 11, League: leaguePremier},
		{Name: "Lucas Piazon", BirthCountry: &brazil, BirthDate: "1994-01-20", Club: "Chelsea F.C.", Position: positionMid, HeightMeters: 1.83, ShirtNumber: 7, Goals: 14, League: leaguePremier},
		{Name: "Kenedy", BirthCountry: &brazil, BirthDate: "1996-02-08", Club: "Chelsea F.C.", Position: positionMid, HeightMeters: 1.80, ShirtNumber: 10, Goals: 0, League: leaguePremier},
		{Name: "Eden Hazard", BirthCountry: &belgium, BirthDate: "1991-01-07", Club: "Chelsea F.C.", Position: player.PositionForward, HeightMeters: 1.75, ShirtNumber: 10, Goals: 85, League: leaguePremier},
		{Name: "Asmir Begović", BirthCountry: &bosnia, BirthDate: "1987-06-20", Club: "Chelsea F.C.", Position: player.PositionGoalkeeper, HeightMeters: 1.99, ShirtNumber: 1, Goals: 1, League: leaguePremier},
		{Name: "Harry Kane", BirthCountry: &england, BirthDate: "1993-07-28", Club: "Tottenham Hotspur F.C.", Position: player.PositionForward, HeightMeters: 1.88, ShirtNumber: 9, Goals: 213, League: leaguePremier},
		{Name: "Harry Kane", BirthCountry: &england, BirthDate: "1993-07-28", Club: "Tottenham Hotspur F.C.", Position: player.PositionForward, HeightMeters: 1.88, ShirtNumber: 9, Goals: 187, League: leaguePremier},
		{Name: "Dele Alli", BirthCountry: &england, BirthDate: "1996-04-11", Club: "Tottenham Hotspur F.C.", Position: positionMid, HeightMeters: 1.88, ShirtNumber: 20, Goals: 51, League: leaguePremier},
		{Name: "Michel Vorm", BirthDate: "unknown", Club: "Tottenham Hotspur F.C.", Position: player.PositionGoalkeeper, HeightMeters: 1.83, ShirtNumber: 13, Goals: 0, League: leaguePremier},
		{Name: "Gabriel Jesus", BirthCountry: &brazil, BirthDate: "1997-04-03", Club: "Sociedade Esportiva Palmeiras", Position: player.PositionForward, HeightMeters: 1.75, ShirtNumber: 33, Goals: 28, League: leagueSerieA},
		{Name: "Fernando Prass", BirthCountry: &brazil, BirthDate: "1978-07-09", Club: "Sociedade Esportiva Palmeiras", Position: player.PositionGoalkeeper, HeightMeters: 1.93, ShirtNumber: 1, Goals: 2, League: leagueSerieA},
		{Name: "Diego Ribas", BirthCountry: &brazil, BirthDate: "1985-02-28", Club: "Clube de Regatas do Flamengo", Position: positionMid, HeightMeters: 1.73, ShirtNumber: 10, Goals: 0, League: leagueSerieA},
		{Name: "Réver", BirthCountry: &brazil, BirthDate: "1985-01-04", Club: "Clube de Regatas do Flamengo", Position: positionDef, HeightMeters: 1.92, ShirtNumber: 4, Goals: 17, League: leagueSerieA},
		{Name: "Jeison Medina", BirthCountry: &colombia, BirthDate: "1994-09-22", Club: "Deportes Tolima", Position: player.PositionForward, HeightMeters: 1.78, ShirtNumber: 9, Goals: 61, League: leagueColombia},
		{Name: "Jeison Medina", BirthCountry: &colombia, BirthDate: "1994-09-22", Club: "Deportes Tolima", Position: player.PositionForward, HeightMeters: 1.78, ShirtNumber: 9, Goals: 48, League: leagueColombia},
		{Name: "Andrés Ibargüen", BirthCountry: &colombia, BirthDate: "1992-05-07", Club: "Deportes Tolima", Position: player.PositionForward, HeightMeters: 1.70, ShirtNumber: 11, Goals: 22, League: leagueColombia},
		{Name: "Yimmi Chará", BirthCountry: &colombia, BirthDate: "1991-04-02", Club: "Atlético Junior", Position: positionMid, HeightMeters: 1.66, ShirtNumber: 10, Goals: 39, League: leagueColombia},
	}
}
