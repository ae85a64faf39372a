package app

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/riskibarqy/player-relations/external/dbpedia"
	"github.com/riskibarqy/player-relations/internal/config"
	"github.com/riskibarqy/player-relations/internal/domain/player"
	"github.com/riskibarqy/player-relations/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/player-relations/internal/interfaces/cli"
	"github.com/riskibarqy/player-relations/internal/interfaces/httpapi"
	"github.com/riskibarqy/player-relations/internal/platform/id"
	"github.com/riskibarqy/player-relations/internal/platform/logging"
	"github.com/riskibarqy/player-relations/internal/platform/resilience"
	"github.com/riskibarqy/player-relations/internal/usecase"
)

// NewPlayerSource returns the DBpedia client, or the seeded in-memory source
// when DBPEDIA_ENABLED=false.
func NewPlayerSource(cfg config.Config, logger *logging.Logger) player.Source {
	if logger == nil {
		logger = logging.Default()
	}
	if !cfg.DBpediaEnabled {
		logger.Info("dbpedia disabled, using seeded players", "reason", "DBPEDIA_ENABLED=false")
		return memory.NewPlayerSource(memory.SeedPlayers())
	}

	return dbpedia.NewClient(dbpedia.ClientConfig{
		Endpoint:       cfg.DBpediaEndpoint,
		Timeout:        cfg.DBpediaTimeout,
		MaxRetries:     cfg.DBpediaMaxRetries,
		PageSize:       cfg.DBpediaPageSize,
		MaxConcurrency: cfg.DBpediaMaxConcurrency,
		Logger:         logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.DBpediaCircuitEnabled,
			FailureThreshold: cfg.DBpediaCircuitFailureCount,
			OpenTimeout:      cfg.DBpediaCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.DBpediaCircuitHalfOpenMaxReq,
		},
	})
}

func NewRuleService(cfg config.Config, source player.Source, logger *logging.Logger) *usecase.RuleService {
	return usecase.NewRuleService(source, id.NewUUIDGenerator(), logger, usecase.RuleServiceConfig{
		TeammatesSubject: cfg.RulesTeammatesSubject,
		StrikerSubject:   cfg.RulesStrikerSubject,
		Parallel:         cfg.RulesParallel,
		MaxWorkers:       cfg.RulesMaxWorkers,
		CacheEnabled:     cfg.CacheEnabled,
		CacheTTL:         cfg.CacheTTL,
	})
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	ruleSvc := NewRuleService(cfg, NewPlayerSource(cfg, logger), logger)
	handler := httpapi.NewHandler(ruleSvc, logger)
	router := httpapi.NewRouter(handler, logger)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// RunReport evaluates every rule once and prints the report to out.
func RunReport(ctx context.Context, cfg config.Config, logger *logging.Logger, out io.Writer) error {
	if logger == nil {
		logger = logging.Default()
	}

	ruleSvc := NewRuleService(cfg, NewPlayerSource(cfg, logger), logger)
	report, err := ruleSvc.RunAll(ctx, usecase.RunInput{})
	if err != nil {
		return fmt.Errorf("run rules: %w", err)
	}

	if err := cli.NewReportWriter(out).Write(report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
