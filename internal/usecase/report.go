package usecase

import (
	"time"

	"github.com/riskibarqy/player-relations/internal/domain/player"
	"github.com/riskibarqy/player-relations/internal/domain/rules"
)

const (
	RuleContemporaries    = "contemporaries"
	RuleTeammates         = "teammates"
	RuleTeammatesOf       = "teammates_of"
	RuleSuperTeammates    = "super_teammates"
	RuleStrikers          = "strikers"
	RuleIsStriker         = "is_striker"
	RuleCompetitors       = "competitors"
	RuleRivals            = "rivals"
	RuleGoalkeepers       = "goalkeepers"
	RuleShirtTenScoreless = "shirt_ten_scoreless"
)

// Report is the outcome of one RunAll call.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	RawCount    int       `json:"raw_count"`
	PlayerCount int       `json:"player_count"`

	Contemporaries    []rules.Pair           `json:"contemporaries"`
	Teammates         []rules.Pair           `json:"teammates"`
	SubjectTeammates  SubjectTeammates       `json:"subject_teammates"`
	SuperTeammates    []rules.CountryPair    `json:"super_teammates"`
	Strikers          []player.Player        `json:"strikers"`
	SubjectStriker    SubjectStriker         `json:"subject_striker"`
	Competitors       []rules.CompetitorPair `json:"competitors"`
	Rivals            []rules.RivalPair      `json:"rivals"`
	Goalkeepers       []player.Player        `json:"goalkeepers"`
	ShirtTenScoreless []player.Player        `json:"shirt_ten_scoreless"`

	Durations []RuleDuration `json:"durations"`
}

type SubjectTeammates struct {
	Subject   string   `json:"subject"`
	Teammates []string `json:"teammates"`
	NotFound  bool     `json:"not_found"`
	Message   string   `json:"message,omitempty"`
}

type SubjectStriker struct {
	Subject   string `json:"subject"`
	IsStriker bool   `json:"is_striker"`
}

type RuleDuration struct {
	Rule       string  `json:"rule"`
	DurationMs float64 `json:"duration_ms"`
}

type ruleJob struct {
	name string
	eval func(players []player.Player, report *Report) int
}

// ruleJobs lists the rules in report order. Each job writes only its own
// report field.
func ruleJobs(input RunInput) []ruleJob {
	return []ruleJob{
		{name: RuleContemporaries, eval: func(players []player.Player, r *Report) int {
			r.Contemporaries = rules.Contemporaries(players)
			return len(r.Contemporaries)
		}},
		{name: RuleTeammates, eval: func(players []player.Player, r *Report) int {
			r.Teammates = rules.Teammates(players)
			return len(r.Teammates)
		}},
		{name: RuleTeammatesOf, eval: func(players []player.Player, r *Report) int {
			names, err := rules.TeammatesOf(players, input.TeammatesSubject)
			if err != nil {
				r.SubjectTeammates.Teammates = []string{}
				r.SubjectTeammates.NotFound = true
				r.SubjectTeammates.Message = err.Error()
				return 0
			}
			r.SubjectTeammates.Teammates = names
			return len(names)
		}},
		{name: RuleSuperTeammates, eval: func(players []player.Player, r *Report) int {
			r.SuperTeammates = rules.SuperTeammates(players)
			return len(r.SuperTeammates)
		}},
		{name: RuleStrikers, eval: func(players []player.Player, r *Report) int {
			r.Strikers = rules.Strikers(players)
			return len(r.Strikers)
		}},
		{name: RuleIsStriker, eval: func(players []player.Player, r *Report) int {
			r.SubjectStriker.IsStriker = rules.IsStriker(players, input.StrikerSubject)
			if r.SubjectStriker.IsStriker {
				return 1
			}
			return 0
		}},
		{name: RuleCompetitors, eval: func(players []player.Player, r *Report) int {
			r.Competitors = rules.Competitors(players)
			return len(r.Competitors)
		}},
		{name: RuleRivals, eval: func(players []player.Player, r *Report) int {
			r.Rivals = rules.Rivals(players)
			return len(r.Rivals)
		}},
		{name: RuleGoalkeepers, eval: func(players []player.Player, r *Report) int {
			r.Goalkeepers = rules.Goalkeepers(players)
			return len(r.Goalkeepers)
		}},
		{name: RuleShirtTenScoreless, eval: func(players []player.Player, r *Report) int {
			r.ShirtTenScoreless = rules.ShirtTenScoreless(players)
			return len(r.ShirtTenScoreless)
		}},
	}
}
