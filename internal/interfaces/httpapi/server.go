package httpapi

import (
	"net/http"

	"github.com/riskibarqy/player-relations/internal/platform/logging"
)

func NewRouter(handler *Handler, logger *logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerRelationRoutes(mux, handler)
	registerArchetypeRoutes(mux, handler)
	registerPlayerRoutes(mux, handler)

	return RequestTracing(RequestLogging(logger, recoverPanic(logger, mux)))
}

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /v1/report", handler.GetReport)
	mux.HandleFunc("POST /v1/dataset/refresh", handler.RefreshDataset)
}

func registerRelationRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/relations/contemporaries", handler.ListContemporaries)
	mux.HandleFunc("GET /v1/relations/teammates", handler.ListTeammates)
	mux.HandleFunc("GET /v1/relations/super-teammates", handler.ListSuperTeammates)
	mux.HandleFunc("GET /v1/relations/competitors", handler.ListCompetitors)
	mux.HandleFunc("GET /v1/relations/rivals", handler.ListRivals)
}

func registerArchetypeRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/archetypes/strikers", handler.ListStrikers)
	mux.HandleFunc("GET /v1/archetypes/goalkeepers", handler.ListGoalkeepers)
	mux.HandleFunc("GET /v1/archetypes/shirt-ten-scoreless", handler.ListShirtTenScoreless)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players/{name}/teammates", handler.GetPlayerTeammates)
	mux.HandleFunc("GET /v1/players/{name}/striker", handler.GetPlayerStriker)
}
