package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/player-relations/internal/platform/logging"
)

const (
	DefaultTeammatesSubject = "Lucas Piazon"
	DefaultStrikerSubject   = "Jeison Medina"
)

// Config stores runtime configuration for the rule runner and the HTTP API.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	LogLevel       logging.Level

	DBpediaEnabled               bool
	DBpediaEndpoint              string
	DBpediaTimeout               time.Duration
	DBpediaMaxRetries            int
	DBpediaPageSize              int
	DBpediaMaxConcurrency        int
	DBpediaCircuitEnabled        bool
	DBpediaCircuitFailureCount   int
	DBpediaCircuitOpenTimeout    time.Duration
	DBpediaCircuitHalfOpenMaxReq int

	CacheEnabled bool
	CacheTTL     time.Duration

	RulesParallel         bool
	RulesMaxWorkers       int
	RulesTeammatesSubject string
	RulesStrikerSubject   string

	UptraceEnabled         bool
	UptraceDSN             string
	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeUploadRate    time.Duration
	PprofEnabled           bool
	PprofAddr              string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	dbpediaEnabled, err := strconv.ParseBool(getEnv("DBPEDIA_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DBPEDIA_ENABLED: %w", err)
	}
	dbpediaEndpoint := strings.TrimSpace(getEnv("DBPEDIA_ENDPOINT", "http://dbpedia.org/sparql"))
	if dbpediaEnabled && dbpediaEndpoint == "" {
		return Config{}, fmt.Errorf("DBPEDIA_ENDPOINT is required when DBPEDIA_ENABLED=true")
	}
	dbpediaTimeout, err := time.ParseDuration(getEnv("DBPEDIA_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DBPEDIA_TIMEOUT: %w", err)
	}
	if dbpediaTimeout <= 0 {
		return Config{}, fmt.Errorf("DBPEDIA_TIMEOUT must be > 0")
	}
	dbpediaMaxRetries, err := getEnvAsInt("DBPEDIA_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse DBPEDIA_MAX_RETRIES: %w", err)
	}
	if dbpediaMaxRetries < 0 {
		return Config{}, fmt.Errorf("DBPEDIA_MAX_RETRIES must be >= 0")
	}
	dbpediaPageSize, err := getEnvAsInt("DBPEDIA_PAGE_SIZE", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse DBPEDIA_PAGE_SIZE: %w", err)
	}
	if dbpediaPageSize < 0 {
		return Config{}, fmt.Errorf("DBPEDIA_PAGE_SIZE must be >= 0")
	}
	dbpediaMaxConcurrency, err := getEnvAsInt("DBPEDIA_MAX_CONCURRENCY", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse DBPEDIA_MAX_CONCURRENCY: %w", err)
	}
	if dbpediaMaxConcurrency < 1 {
		return Config{}, fmt.Errorf("DBPEDIA_MAX_CONCURRENCY must be >= 1")
	}
	dbpediaCircuitEnabled, err := strconv.ParseBool(getEnv("DBPEDIA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DBPEDIA_CIRCUIT_ENABLED: %w", err)
	}
	dbpediaCircuitFailureCount, err := getEnvAsInt("DBPEDIA_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse DBPEDIA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if dbpediaCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("DBPEDIA_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	dbpediaCircuitOpenTimeout, err := time.ParseDuration(getEnv("DBPEDIA_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DBPEDIA_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if dbpediaCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("DBPEDIA_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	dbpediaCircuitHalfOpenMaxReq, err := getEnvAsInt("DBPEDIA_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse DBPEDIA_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if dbpediaCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("DBPEDIA_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	rulesParallel, err := strconv.ParseBool(getEnv("RULES_PARALLEL", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RULES_PARALLEL: %w", err)
	}
	rulesMaxWorkers, err := getEnvAsInt("RULES_MAX_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse RULES_MAX_WORKERS: %w", err)
	}
	if rulesMaxWorkers < 1 {
		return Config{}, fmt.Errorf("RULES_MAX_WORKERS must be >= 1")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}

	cfg := Config{
		AppEnv:                       appEnv,
		ServiceName:                  getEnv("APP_SERVICE_NAME", "player-relations"),
		ServiceVersion:               getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                     getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                  readTimeout,
		WriteTimeout:                 writeTimeout,
		LogLevel:                     logging.ParseLevel(strings.ToLower(strings.TrimSpace(getEnv("APP_LOG_LEVEL", "info")))),
		DBpediaEnabled:               dbpediaEnabled,
		DBpediaEndpoint:              dbpediaEndpoint,
		DBpediaTimeout:               dbpediaTimeout,
		DBpediaMaxRetries:            dbpediaMaxRetries,
		DBpediaPageSize:              dbpediaPageSize,
		DBpediaMaxConcurrency:        dbpediaMaxConcurrency,
		DBpediaCircuitEnabled:        dbpediaCircuitEnabled,
		DBpediaCircuitFailureCount:   dbpediaCircuitFailureCount,
		DBpediaCircuitOpenTimeout:    dbpediaCircuitOpenTimeout,
		DBpediaCircuitHalfOpenMaxReq: dbpediaCircuitHalfOpenMaxReq,
		CacheEnabled:                 cacheEnabled,
		CacheTTL:                     cacheTTL,
		RulesParallel:                rulesParallel,
		RulesMaxWorkers:              rulesMaxWorkers,
		RulesTeammatesSubject:        getEnv("RULES_TEAMMATES_SUBJECT", DefaultTeammatesSubject),
		RulesStrikerSubject:          getEnv("RULES_STRIKER_SUBJECT", DefaultStrikerSubject),
		UptraceEnabled:               uptraceEnabled,
		UptraceDSN:                   uptraceDSN,
		PyroscopeEnabled:             pyroscopeEnabled,
		PyroscopeServerAddress:       pyroscopeServerAddress,
		PyroscopeUploadRate:          pyroscopeUploadRate,
		PprofEnabled:                 pprofEnabled,
		PprofAddr:                    getEnv("PPROF_ADDR", "127.0.0.1:6060"),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return Config{}, fmt.Errorf("APP_HTTP_ADDR cannot be empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
