package dbpedia

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/player-relations/internal/domain/player"
	"github.com/riskibarqy/player-relations/internal/platform/logging"
	"github.com/riskibarqy/player-relations/internal/platform/resilience"
	"github.com/riskibarqy/player-relations/internal/usecase"
	"github.com/sourcegraph/conc/pool"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultEndpoint     = "http://dbpedia.org/sparql"
	sparqlResultsJSON   = "application/sparql-results+json"
	maxResponseBytes    = 64 << 20
	defaultTimeout      = 60 * time.Second
	defaultRetryBackoff = time.Second
)

var errDBpediaTransient = crerr.New("dbpedia transient failure")

// Strings decoded from a pooled buffer must not alias it.
var resultsAPI = sonic.Config{CopyString: true}.Froze()

type ClientConfig struct {
	HTTPClient     *http.Client
	Endpoint       string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	PageSize       int
	MaxConcurrency int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches raw player rows from a SPARQL endpoint.
type Client struct {
	httpClient     *http.Client
	endpoint       string
	maxRetries     int
	retryBackoff   time.Duration
	pageSize       int
	maxConcurrency int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	flight         singleflight.Group
	responseLimit  int64
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	retryBackoff := cfg.RetryBackoff
	if retryBackoff < 0 {
		retryBackoff = 0
	} else if retryBackoff == 0 {
		retryBackoff = defaultRetryBackoff
	}

	return &Client{
		httpClient:     httpClient,
		endpoint:       endpoint,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		retryBackoff:   retryBackoff,
		pageSize:       maxInt(cfg.PageSize, 0),
		maxConcurrency: maxInt(cfg.MaxConcurrency, 1),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		responseLimit:  maxResponseBytes,
	}
}

var _ player.Source = (*Client)(nil)

// FetchPlayers returns every raw row, one per goal observation. Rows with
// unparsable numeric fields are dropped.
func (c *Client) FetchPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startSpan(ctx, "dbpedia.Client.FetchPlayers")
	defer span.End()

	start := time.Now()
	var (
		rows []map[string]bindingValue
		err  error
	)
	if c.pageSize > 0 {
		rows, err = c.fetchPaged(ctx)
	} else {
		rows, err = c.fetchRows(ctx, PlayersQuery())
	}
	if err != nil {
		return nil, err
	}

	players, rejected := mapBindings(rows)
	if len(rejected) > 0 {
		c.logger.WarnContext(ctx, "dbpedia rows skipped",
			"skipped", len(rejected),
			"first_error", rejected[0].Error(),
		)
	}
	c.logger.InfoContext(ctx, "dbpedia players fetched",
		"rows", len(rows),
		"players", len(players),
		"paged", c.pageSize > 0,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return players, nil
}

func (c *Client) fetchPaged(ctx context.Context) ([]map[string]bindingValue, error) {
	total, err := c.countRows(ctx)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return []map[string]bindingValue{}, nil
	}

	pageCount := (total + c.pageSize - 1) / c.pageSize
	pages := make([][]map[string]bindingValue, pageCount)

	p := pool.New().
		WithMaxGoroutines(c.maxConcurrency).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()
	for i := 0; i < pageCount; i++ {
		p.Go(func(ctx context.Context) error {
			offset := i * c.pageSize
			rows, err := c.fetchRows(ctx, PlayersPageQuery(offset, c.pageSize))
			if err != nil {
				return fmt.Errorf("fetch page offset=%d: %w", offset, err)
			}
			pages[i] = rows
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	out := make([]map[string]bindingValue, 0, total)
	for _, page := range pages {
		out = append(out, page...)
	}
	return out, nil
}

func (c *Client) countRows(ctx context.Context) (int, error) {
	rows, err := c.fetchRows(ctx, PlayersCountQuery())
	if err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	if len(rows) == 0 {
		return 0, crerr.New("count players: empty result")
	}

	total, err := parseInteger(value(rows[0], varTotal))
	if err != nil {
		return 0, crerr.Wrap(err, "count players: parse total")
	}
	return total, nil
}

func (c *Client) fetchRows(ctx context.Context, query string) ([]map[string]bindingValue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The shared request outlives any single caller; DBPEDIA_TIMEOUT bounds it.
	requestCtx := context.WithoutCancel(ctx)
	ch := c.flight.DoChan(query, func() (any, error) {
		var envelope *resultsEnvelope
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			envelope, reqErr = c.executeRequest(requestCtx, query)
			return reqErr
		}, isTransient)
		return envelope, execErr
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	out, err, shared := res.Val, res.Err, res.Shared
	if err != nil {
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "dbpedia circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: knowledge graph endpoint is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		if isTransient(err) {
			return nil, fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, err)
		}
		return nil, err
	}
	if shared {
		c.logger.DebugContext(ctx, "dbpedia query shared with in-flight request")
	}

	envelope, ok := out.(*resultsEnvelope)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}
	return envelope.Results.Bindings, nil
}

func (c *Client) executeRequest(ctx context.Context, query string) (*resultsEnvelope, error) {
	form := url.Values{}
	form.Set("query", query)
	body := form.Encode()

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(body))
		if err != nil {
			return nil, crerr.Wrap(err, "build request")
		}
		req.Header.Set("Accept", sparqlResultsJSON)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		envelope, err := c.do(req)
		if err == nil {
			return envelope, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
		if !isTransient(err) {
			break
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * c.retryBackoff
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = crerr.New("dbpedia request failed")
	}
	c.logger.WarnContext(ctx, "dbpedia request failed", "endpoint", c.endpoint, "error", lastErr)
	return nil, lastErr
}

func (c *Client) do(req *http.Request) (*resultsEnvelope, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "send request"), errDBpediaTransient)
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, c.responseLimit+1)); err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "read response body"), errDBpediaTransient)
	}
	if int64(buf.Len()) > c.responseLimit {
		return nil, crerr.Newf("response exceeds %d bytes", c.responseLimit)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := crerr.Newf("endpoint status=%d body=%s", resp.StatusCode, abbreviateBody(buf.B))
		if isRetryableStatus(resp.StatusCode) {
			return nil, crerr.Mark(statusErr, errDBpediaTransient)
		}
		return nil, statusErr
	}

	var envelope resultsEnvelope
	if err := resultsAPI.Unmarshal(buf.B, &envelope); err != nil {
		return nil, crerr.Wrap(err, "decode sparql results")
	}
	return &envelope, nil
}

func isTransient(err error) bool {
	return err != nil && crerr.Is(err, errDBpediaTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}

