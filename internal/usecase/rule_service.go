package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/player-relations/internal/domain/player"
	"github.com/riskibarqy/player-relations/internal/domain/rules"
	"github.com/riskibarqy/player-relations/internal/platform/cache"
	"github.com/riskibarqy/player-relations/internal/platform/id"
	"github.com/riskibarqy/player-relations/internal/platform/logging"
)

const (
	datasetCacheKey    = "dataset:normalized"
	defaultDatasetTTL  = 10 * time.Minute
	poolReleaseTimeout = 2 * time.Second
)

type RuleServiceConfig struct {
	TeammatesSubject string
	StrikerSubject   string
	Parallel         bool
	MaxWorkers       int
	CacheEnabled     bool
	CacheTTL         time.Duration
}

// Dataset is one normalized snapshot of the source.
type Dataset struct {
	RawCount int             `json:"raw_count"`
	Players  []player.Player `json:"players"`
	LoadedAt time.Time       `json:"loaded_at"`
}

// RunInput overrides the configured closed-form subjects. Blank fields keep
// the configured value.
type RunInput struct {
	TeammatesSubject string
	StrikerSubject   string
}

type RuleService struct {
	source  player.Source
	ids     id.Generator
	logger  *logging.Logger
	cfg     RuleServiceConfig
	cache   *cache.Store[Dataset]
	metrics *ruleMetrics
	now     func() time.Time
}

func NewRuleService(source player.Source, ids id.Generator, logger *logging.Logger, cfg RuleServiceConfig) *RuleService {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultDatasetTTL
	}

	svc := &RuleService{
		source:  source,
		ids:     ids,
		logger:  logger,
		cfg:     cfg,
		metrics: newRuleMetrics(),
		now:     time.Now,
	}
	if cfg.CacheEnabled {
		svc.cache = cache.NewStore[Dataset](cfg.CacheTTL)
	}
	return svc
}

// Dataset returns the normalized snapshot, loading it from the source when the
// cache is empty, expired or disabled.
func (s *RuleService) Dataset(ctx context.Context) (Dataset, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RuleService.Dataset")
	defer span.End()

	if s.cache == nil {
		return s.loadDataset(ctx)
	}
	return s.cache.GetOrLoad(ctx, datasetCacheKey, s.loadDataset)
}

func (s *RuleService) loadDataset(ctx context.Context) (Dataset, error) {
	if s.source == nil {
		return Dataset{}, fmt.Errorf("%w: player source is not configured", ErrDependencyUnavailable)
	}

	start := time.Now()
	raw, err := s.source.FetchPlayers(ctx)
	if err != nil {
		return Dataset{}, fmt.Errorf("fetch players: %w", err)
	}

	players := player.Normalize(raw)
	s.logger.InfoContext(ctx, "player dataset loaded",
		"raw_records", len(raw),
		"players", len(players),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return Dataset{
		RawCount: len(raw),
		Players:  players,
		LoadedAt: s.now().UTC(),
	}, nil
}

// Refresh drops the cached snapshot so the next call reloads from the source.
func (s *RuleService) Refresh(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RuleService.Refresh")
	defer span.End()

	if s.cache != nil {
		s.cache.Delete(ctx, datasetCacheKey)
	}
	s.logger.InfoContext(ctx, "player dataset cache dropped", "cache_enabled", s.cache != nil)
	return nil
}

// RunAll evaluates every rule against a single snapshot. An unknown closed
// teammates subject is recorded on the report and does not fail the run.
func (s *RuleService) RunAll(ctx context.Context, input RunInput) (Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RuleService.RunAll")
	defer span.End()

	input = s.resolveRunInput(input)
	if input.TeammatesSubject == "" {
		return Report{}, fmt.Errorf("%w: teammates subject is required", ErrInvalidInput)
	}
	if input.StrikerSubject == "" {
		return Report{}, fmt.Errorf("%w: striker subject is required", ErrInvalidInput)
	}

	dataset, err := s.Dataset(ctx)
	if err != nil {
		return Report{}, err
	}

	runID, err := s.ids.NewID()
	if err != nil {
		return Report{}, fmt.Errorf("generate run id: %w", err)
	}

	report := Report{
		RunID:            runID,
		GeneratedAt:      s.now().UTC(),
		RawCount:         dataset.RawCount,
		PlayerCount:      len(dataset.Players),
		SubjectTeammates: SubjectTeammates{Subject: input.TeammatesSubject},
		SubjectStriker:   SubjectStriker{Subject: input.StrikerSubject},
	}

	jobs := ruleJobs(input)
	elapsed := make([]time.Duration, len(jobs))
	sizes := make([]int, len(jobs))
	run := func(i int) {
		start := time.Now()
		sizes[i] = jobs[i].eval(dataset.Players, &report)
		elapsed[i] = time.Since(start)
	}

	start := time.Now()
	if s.cfg.Parallel {
		if err := s.runPooled(len(jobs), run); err != nil {
			return Report{}, err
		}
	} else {
		for i := range jobs {
			run(i)
		}
	}

	report.Durations = make([]RuleDuration, 0, len(jobs))
	for i, job := range jobs {
		s.metrics.record(ctx, job.name, elapsed[i], sizes[i])
		report.Durations = append(report.Durations, RuleDuration{
			Rule:       job.name,
			DurationMs: float64(elapsed[i]) / float64(time.Millisecond),
		})
	}

	if report.SubjectTeammates.NotFound {
		s.logger.WarnContext(ctx, "teammates subject not found",
			"run_id", runID,
			"subject", input.TeammatesSubject,
		)
	}
	s.logger.InfoContext(ctx, "rule run completed",
		"run_id", runID,
		"players", report.PlayerCount,
		"parallel", s.cfg.Parallel,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return report, nil
}

func (s *RuleService) resolveRunInput(input RunInput) RunInput {
	input.TeammatesSubject = strings.TrimSpace(input.TeammatesSubject)
	input.StrikerSubject = strings.TrimSpace(input.StrikerSubject)
	if input.TeammatesSubject == "" {
		input.TeammatesSubject = strings.TrimSpace(s.cfg.TeammatesSubject)
	}
	if input.StrikerSubject == "" {
		input.StrikerSubject = strings.TrimSpace(s.cfg.StrikerSubject)
	}
	return input
}

// runPooled runs n jobs on an ants pool. Every job owns its own result slot, so
// nothing is shared between workers beyond the read-only snapshot.
func (s *RuleService) runPooled(n int, run func(int)) error {
	workers := s.cfg.MaxWorkers
	if workers > n {
		workers = n
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer func() {
		if err := pool.ReleaseTimeout(poolReleaseTimeout); err != nil {
			s.logger.Warn("release rule worker pool", "error", err)
		}
	}()

	var workersWG sync.WaitGroup
	for i := 0; i < n; i++ {
		workersWG.Add(1)
		if err := pool.Submit(func() {
			defer workersWG.Done()
			run(i)
		}); err != nil {
			workersWG.Done()
			workersWG.Wait()
			return fmt.Errorf("submit rule to worker pool: %w", err)
		}
	}
	workersWG.Wait()

	return nil
}

func (s *RuleService) players(ctx context.Context) ([]player.Player, error) {
	dataset, err := s.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	return dataset.Players, nil
}

func (s *RuleService) Contemporaries(ctx context.Context) ([]rules.Pair, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RuleService.Contemporaries")
	defer span.End()

	players, err := s.players(ctx)
	if err != nil {
		return nil, err
	}
	return observe(ctx, s.metrics, RuleContemporaries, func() []rules.Pair {
		return rules.Contemporaries(players)
	}), nil
}

func (s *RuleService) Teammates(ctx context.Context) ([]rules.Pair, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RuleService.Teammates")
	defer span.End()

	players, err := s.players(ctx)
	if err != nil {
		return nil, err
	}
	return observe(ctx, s.metrics, RuleTeammates, func() []rules.Pair {
		return rules.Teammates(players)
	}), nil
}

// TeammatesOf is the closed teammates rule. An unknown subject yields an error
// matching both ErrNotFound and rules.ErrPlayerNotFound.
func (s *RuleService) TeammatesOf(ctx context.Context, name string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RuleService.TeammatesOf")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	players, err := s.players(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	names, err := rules.TeammatesOf(players, name)
	if err != nil {
		if errors.Is(err, rules.ErrPlayerNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, fmt.Errorf("teammates of %s: %w", name, err)
	}
	s.metrics.record(ctx, RuleTeammatesOf, time.Since(start), len(names))

	return names, nil
}

func (s *RuleService) SuperTeammates(ctx context.Context) ([]rules.CountryPair, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RuleService.SuperTeammates")
	defer span.End()

	players, err := s.players(ctx)
	if err != nil {
		return nil, err
	}
	return observe(ctx, s.metrics, RuleSuperTeammates, func() []rules.CountryPair {
		return rules.SuperTeammates(players)
	}), nil
}

func (s *RuleService) Competitors(ctx context.Context) ([]rules.CompetitorPair, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RuleService.Competitors")
	defer span.End()

	players, err := s.players(ctx)
	if err != nil {
		return nil, err
	}
	return observe(ctx, s.metrics, RuleCompetitors, func() []rules.CompetitorPair {
		return rules.Competitors(players)
	}), nil
}

func (s *RuleService) Rivals(ctx context.Context) ([]rules.RivalPair, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RuleService.Rivals")
	defer span.End()

	players, err := s.players(ctx)
	if err != nil {
		return nil, err
	}
	return observe(ctx, s.metrics, RuleRivals, func() []rules.RivalPair {
		return rules.Rivals(players)
	}), nil
}

func (s *RuleService) Strikers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RuleService.Strikers")
	defer span.End()

	players, err := s.players(ctx)
	if err != nil {
		return nil, err
	}
	return observe(ctx, s.metrics, RuleStrikers, func() []player.Player {
		return rules.Strikers(players)
	}), nil
}

// IsStriker is the closed striker rule. Unknown names are simply not strikers.
func (s *RuleService) IsStriker(ctx context.Context, name string) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RuleService.IsStriker")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return false, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	players, err := s.players(ctx)
	if err != nil {
		return false, err
	}

	start := time.Now()
	isStriker := rules.IsStriker(players, name)
	size := 0
	if isStriker {
		size = 1
	}
	s.metrics.record(ctx, RuleIsStriker, time.Since(start), size)

	return isStriker, nil
}

func (s *RuleService) Goalkeepers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RuleService.Goalkeepers")
	defer span.End()

	players, err := s.players(ctx)
	if err != nil {
		return nil, err
	}
	return observe(ctx, s.metrics, RuleGoalkeepers, func() []player.Player {
		return rules.Goalkeepers(players)
	}), nil
}

func (s *RuleService) ShirtTenScoreless(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RuleService.ShirtTenScoreless")
	defer span.End()

	players, err := s.players(ctx)
	if err != nil {
		return nil, err
	}
	return observe(ctx, s.metrics, RuleShirtTenScoreless, func() []player.Player {
		return rules.ShirtTenScoreless(players)
	}), nil
}

func observe[T any](ctx context.Context, m *ruleMetrics, rule string, eval func() []T) []T {
	start := time.Now()
	out := eval()
	m.record(ctx, rule, time.Since(start), len(out))
	return out
}
