package httpapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/player-relations/internal/domain/player"
	"github.com/riskibarqy/player-relations/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/player-relations/internal/platform/id"
	"github.com/riskibarqy/player-relations/internal/platform/logging"
	"github.com/riskibarqy/player-relations/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	APIVersion string         `json:"apiVersion"`
	Data       map[string]any `json:"data"`
	Error      *struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
	} `json:"error"`
}

func newTestServer(t *testing.T, rows []player.Player) (*httptest.Server, *memory.PlayerSource) {
	t.Helper()

	source := memory.NewPlayerSource(rows)
	svc := usecase.NewRuleService(source, id.StaticGenerator("run-test"), logging.NewNop(), usecase.RuleServiceConfig{
		TeammatesSubject: "Lucas Piazon",
		StrikerSubject:   "Jeison Medina",
		MaxWorkers:       2,
		CacheEnabled:     true,
	})
	logger := logging.NewNop()
	server := httptest.NewServer(NewRouter(NewHandler(svc, logger), logger))
	t.Cleanup(server.Close)
	return server, source
}

func do(t *testing.T, server *httptest.Server, method, path string) (int, envelope) {
	t.Helper()

	req, err := http.NewRequest(method, server.URL+path, nil)
	require.NoError(t, err)
	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body envelope
	require.NoError(t, sonic.Unmarshal(raw, &body), string(raw))
	assert.Equal(t, "2.0", body.APIVersion)
	return resp.StatusCode, body
}

func TestHandler_Healthz(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, memory.SeedPlayers())
	status, body := do(t, server, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body.Data["status"])
}

func TestHandler_GetPlayerTeammates(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, memory.SeedPlayers())

	status, body := do(t, server, http.MethodGet, "/v1/players/"+url.PathEscape("Lucas Piazon")+"/teammates")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Lucas Piazon", body.Data["name"])
	assert.Equal(t, []any{"Kenedy", "Eden Hazard", "Asmir Begović"}, body.Data["teammates"])

	status, body = do(t, server, http.MethodGet, "/v1/players/Nobody/teammates")
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Status)
}

func TestHandler_GetPlayerTeammates_RejectsLongName(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, memory.SeedPlayers())
	status, body := do(t, server, http.MethodGet, "/v1/players/"+strings.Repeat("a", 201)+"/teammates")
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_ARGUMENT", body.Error.Status)
}

func TestHandler_GetPlayerStriker(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, memory.SeedPlayers())

	status, body := do(t, server, http.MethodGet, "/v1/players/"+url.PathEscape("Jeison Medina")+"/striker")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body.Data["is_striker"])

	status, body = do(t, server, http.MethodGet, "/v1/players/Nobody/striker")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body.Data["is_striker"])
}

func TestHandler_ListRelationsAndArchetypes(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, memory.SeedPlayers())

	paths := []string{
		"/v1/relations/contemporaries",
		"/v1/relations/teammates",
		"/v1/relations/super-teammates",
		"/v1/relations/competitors",
		"/v1/relations/rivals",
		"/v1/archetypes/strikers",
		"/v1/archetypes/goalkeepers",
		"/v1/archetypes/shirt-ten-scoreless",
	}
	for _, path := range paths {
		status, body := do(t, server, http.MethodGet, path)
		require.Equal(t, http.StatusOK, status, path)
		items, ok := body.Data["items"].([]any)
		require.True(t, ok, path)
		assert.Equal(t, float64(len(items)), body.Data["total"], path)
	}
}

func TestHandler_GetReport(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, memory.SeedPlayers())

	status, body := do(t, server, http.MethodGet, "/v1/report")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "run-test", body.Data["run_id"])

	subject, ok := body.Data["subject_teammates"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, subject["not_found"])

	status, body = do(t, server, http.MethodGet, "/v1/report?teammates_subject=Nobody")
	require.Equal(t, http.StatusOK, status)
	subject, ok = body.Data["subject_teammates"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, subject["not_found"])
}

func TestHandler_RefreshDataset(t *testing.T) {
	t.Parallel()

	server, source := newTestServer(t, memory.SeedPlayers())

	status, body := do(t, server, http.MethodGet, "/v1/archetypes/strikers")
	require.Equal(t, http.StatusOK, status)
	before := body.Data["total"]

	source.Replace([]player.Player{{Name: "Solo", Club: "Nowhere FC"}})

	_, body = do(t, server, http.MethodGet, "/v1/archetypes/strikers")
	assert.Equal(t, before, body.Data["total"], "cached dataset must be served until refresh")

	status, _ = do(t, server, http.MethodPost, "/v1/dataset/refresh")
	require.Equal(t, http.StatusOK, status)

	_, body = do(t, server, http.MethodGet, "/v1/archetypes/strikers")
	assert.Equal(t, float64(0), body.Data["total"])
}
