package dbpedia

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/player-relations/internal/platform/logging"
	"github.com/riskibarqy/player-relations/internal/platform/resilience"
	"github.com/riskibarqy/player-relations/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var offsetPattern = regexp.MustCompile(`OFFSET (\d+)`)

func literal(v string) string {
	return fmt.Sprintf(`{"type":"literal","value":%q}`, v)
}

func playerBinding(name, country, height, shirt, goals string) string {
	fields := []string{
		fmt.Sprintf(`%q:%s`, varName, literal(name)),
		fmt.Sprintf(`%q:%s`, varBirthDate, literal("1994-01-20")),
		fmt.Sprintf(`%q:%s`, varClub, literal("Chelsea F.C.")),
		fmt.Sprintf(`%q:%s`, varPosition, literal("Midfielder")),
		fmt.Sprintf(`%q:%s`, varHeight, literal(height)),
		fmt.Sprintf(`%q:%s`, varShirtNumber, literal(shirt)),
		fmt.Sprintf(`%q:%s`, varGoals, literal(goals)),
		fmt.Sprintf(`%q:%s`, varLeague, literal("Premier League")),
	}
	if country != "" {
		fields = append(fields, fmt.Sprintf(`%q:%s`, varCountry, literal(country)))
	}
	return "{" + strings.Join(fields, ",") + "}"
}

func resultsJSON(bindings ...string) string {
	return `{"head":{"vars":["nome"]},"results":{"bindings":[` + strings.Join(bindings, ",") + `]}}`
}

func newTestClient(server *httptest.Server, cfg ClientConfig) *Client {
	cfg.HTTPClient = server.Client()
	cfg.Endpoint = server.URL
	cfg.Logger = logging.NewNop()
	cfg.RetryBackoff = -1
	return NewClient(cfg)
}

func TestClient_FetchPlayers_Unpaged(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, sparqlResultsJSON, r.Header.Get("Accept"))
		require.NoError(t, r.ParseForm())
		query := r.PostForm.Get("query")
		require.Contains(t, query, "dbo:SoccerPlayer")
		require.NotContains(t, query, "OFFSET")

		w.Header().Set("Content-Type", sparqlResultsJSON)
		_, _ = w.Write([]byte(resultsJSON(
			playerBinding("Lucas Piazon", "Brazil", "1.83", "7", "14"),
			playerBinding("Kenedy", "", "1.80", "+10", "0"),
			playerBinding("Broken Row", "Brazil", "tall", "7", "3"),
		)))
	}))
	defer server.Close()

	client := newTestClient(server, ClientConfig{})
	players, err := client.FetchPlayers(context.Background())
	require.NoError(t, err)
	require.Len(t, players, 2)

	assert.Equal(t, "Lucas Piazon", players[0].Name)
	country, ok := players[0].Country()
	assert.True(t, ok)
	assert.Equal(t, "Brazil", country)
	assert.Equal(t, 1.83, players[0].HeightMeters)
	assert.Equal(t, 14, players[0].Goals)

	assert.Equal(t, "Kenedy", players[1].Name)
	assert.Nil(t, players[1].BirthCountry)
	assert.Equal(t, 10, players[1].ShirtNumber)
}

func TestClient_FetchPlayers_PagedKeepsOffsetOrder(t *testing.T) {
	t.Parallel()

	const total = 5
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		require.NoError(t, r.ParseForm())
		query := r.PostForm.Get("query")

		if strings.Contains(query, "COUNT(*)") {
			_, _ = w.Write([]byte(`{"head":{"vars":["total"]},"results":{"bindings":[{"total":{"type":"typed-literal","value":"5"}}]}}`))
			return
		}

		match := offsetPattern.FindStringSubmatch(query)
		require.Len(t, match, 2)
		offset, err := strconv.Atoi(match[1])
		require.NoError(t, err)

		// later pages answer first
		time.Sleep(time.Duration(total-offset) * 5 * time.Millisecond)

		bindings := make([]string, 0, 2)
		for i := offset; i < offset+2 && i < total; i++ {
			bindings = append(bindings, playerBinding(fmt.Sprintf("player-%d", i), "Brazil", "1.80", "7", "1"))
		}
		_, _ = w.Write([]byte(resultsJSON(bindings...)))
	}))
	defer server.Close()

	client := newTestClient(server, ClientConfig{PageSize: 2, MaxConcurrency: 3})
	players, err := client.FetchPlayers(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"player-0", "player-1", "player-2", "player-3", "player-4"}, names)
	assert.Equal(t, int32(4), requests.Load())
}

func TestClient_FetchPlayers_PagedEmptyCount(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"head":{"vars":["total"]},"results":{"bindings":[{"total":{"type":"literal","value":"0"}}]}}`))
	}))
	defer server.Close()

	players, err := newTestClient(server, ClientConfig{PageSize: 10}).FetchPlayers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestClient_FetchPlayers_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("busy"))
			return
		}
		_, _ = w.Write([]byte(resultsJSON(playerBinding("Lucas Piazon", "Brazil", "1.83", "7", "14"))))
	}))
	defer server.Close()

	players, err := newTestClient(server, ClientConfig{MaxRetries: 1}).FetchPlayers(context.Background())
	require.NoError(t, err)
	assert.Len(t, players, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_FetchPlayers_DoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("syntax error"))
	}))
	defer server.Close()

	_, err := newTestClient(server, ClientConfig{MaxRetries: 3}).FetchPlayers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=400")
	assert.False(t, errors.Is(err, usecase.ErrDependencyUnavailable))
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_FetchPlayers_CircuitBreakerOpens(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server, ClientConfig{
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	_, err := client.FetchPlayers(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrDependencyUnavailable)

	_, err = client.FetchPlayers(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrDependencyUnavailable)
	assert.Equal(t, int32(1), calls.Load(), "open breaker must not reach the endpoint")
}

func TestClient_FetchPlayers_ContextCanceled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(server, ClientConfig{MaxRetries: 2}).FetchPlayers(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_FetchPlayers_LeaderCancelDoesNotFailFollower(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		_, _ = w.Write([]byte(resultsJSON(playerBinding("Lucas Piazon", "Brazil", "1.83", "7", "14"))))
	}))
	defer server.Close()

	client := newTestClient(server, ClientConfig{})

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := client.FetchPlayers(leaderCtx)
		leaderErr <- err
	}()

	<-started
	cancel()
	require.ErrorIs(t, <-leaderErr, context.Canceled)

	type result struct {
		players int
		err     error
	}
	follower := make(chan result, 1)
	go func() {
		players, err := client.FetchPlayers(context.Background())
		follower <- result{players: len(players), err: err}
	}()

	time.Sleep(20 * time.Millisecond)
	close(release)

	got := <-follower
	require.NoError(t, got.err)
	assert.Equal(t, 1, got.players)
}

func TestClient_FetchPlayers_ResponseTooLarge(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(resultsJSON(playerBinding("Lucas Piazon", "Brazil", "1.83", "7", "14"))))
	}))
	defer server.Close()

	client := newTestClient(server, ClientConfig{})
	client.responseLimit = 32

	_, err := client.FetchPlayers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "response exceeds 32 bytes")
	assert.NotContains(t, err.Error(), "decode")
}

func TestQueries(t *testing.T) {
	t.Parallel()

	assert.NotContains(t, PlayersQuery(), "LIMIT")
	page := PlayersPageQuery(200, 100)
	assert.Contains(t, page, "ORDER BY ?nome")
	assert.Contains(t, page, "LIMIT 100")
	assert.Contains(t, page, "OFFSET 200")
	assert.Contains(t, PlayersCountQuery(), "COUNT(*) AS ?total")
}
