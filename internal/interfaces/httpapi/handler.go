package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/player-relations/internal/domain/player"
	"github.com/riskibarqy/player-relations/internal/domain/rules"
	"github.com/riskibarqy/player-relations/internal/platform/logging"
	"github.com/riskibarqy/player-relations/internal/usecase"
)

type Handler struct {
	ruleService *usecase.RuleService
	logger      *logging.Logger
	validator   *validator.Validate
}

func NewHandler(ruleService *usecase.RuleService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		ruleService: ruleService,
		logger:      logger,
		validator:   validator.New(),
	}
}

type playerPathParams struct {
	Name string `validate:"required,max=200"`
}

type reportQueryParams struct {
	TeammatesSubject string `validate:"omitempty,max=200"`
	StrikerSubject   string `validate:"omitempty,max=200"`
}

type listDTO[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func newListDTO[T any](items []T) listDTO[T] {
	return listDTO[T]{Items: items, Total: len(items)}
}

type playerTeammatesDTO struct {
	Name      string   `json:"name"`
	Teammates []string `json:"teammates"`
}

type playerStrikerDTO struct {
	Name      string `json:"name"`
	IsStriker bool   `json:"is_striker"`
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetReport")
	defer span.End()

	params := reportQueryParams{
		TeammatesSubject: strings.TrimSpace(r.URL.Query().Get("teammates_subject")),
		StrikerSubject:   strings.TrimSpace(r.URL.Query().Get("striker_subject")),
	}
	if err := h.validateRequest(ctx, params); err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.ruleService.RunAll(ctx, usecase.RunInput{
		TeammatesSubject: params.TeammatesSubject,
		StrikerSubject:   params.StrikerSubject,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "run all rules failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}

func (h *Handler) RefreshDataset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshDataset")
	defer span.End()

	if err := h.ruleService.Refresh(ctx); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "refreshed"})
}

func (h *Handler) ListContemporaries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListContemporaries")
	defer span.End()

	writeList(ctx, w, h, "contemporaries", func() ([]rules.Pair, error) {
		return h.ruleService.Contemporaries(ctx)
	})
}

func (h *Handler) ListTeammates(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeammates")
	defer span.End()

	writeList(ctx, w, h, "teammates", func() ([]rules.Pair, error) {
		return h.ruleService.Teammates(ctx)
	})
}

func (h *Handler) ListSuperTeammates(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSuperTeammates")
	defer span.End()

	writeList(ctx, w, h, "super teammates", func() ([]rules.CountryPair, error) {
		return h.ruleService.SuperTeammates(ctx)
	})
}

func (h *Handler) ListCompetitors(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitors")
	defer span.End()

	writeList(ctx, w, h, "competitors", func() ([]rules.CompetitorPair, error) {
		return h.ruleService.Competitors(ctx)
	})
}

func (h *Handler) ListRivals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRivals")
	defer span.End()

	writeList(ctx, w, h, "rivals", func() ([]rules.RivalPair, error) {
		return h.ruleService.Rivals(ctx)
	})
}

func (h *Handler) ListStrikers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStrikers")
	defer span.End()

	writeList(ctx, w, h, "strikers", func() ([]player.Player, error) {
		return h.ruleService.Strikers(ctx)
	})
}

func (h *Handler) ListGoalkeepers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGoalkeepers")
	defer span.End()

	writeList(ctx, w, h, "goalkeepers", func() ([]player.Player, error) {
		return h.ruleService.Goalkeepers(ctx)
	})
}

func (h *Handler) ListShirtTenScoreless(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListShirtTenScoreless")
	defer span.End()

	writeList(ctx, w, h, "shirt ten scoreless", func() ([]player.Player, error) {
		return h.ruleService.ShirtTenScoreless(ctx)
	})
}

func (h *Handler) GetPlayerTeammates(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerTeammates")
	defer span.End()

	params := playerPathParams{Name: strings.TrimSpace(r.PathValue("name"))}
	if err := h.validateRequest(ctx, params); err != nil {
		writeError(ctx, w, err)
		return
	}

	teammates, err := h.ruleService.TeammatesOf(ctx, params.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "teammates of player failed", "name", params.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerTeammatesDTO{Name: params.Name, Teammates: teammates})
}

func (h *Handler) GetPlayerStriker(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStriker")
	defer span.End()

	params := playerPathParams{Name: strings.TrimSpace(r.PathValue("name"))}
	if err := h.validateRequest(ctx, params); err != nil {
		writeError(ctx, w, err)
		return
	}

	isStriker, err := h.ruleService.IsStriker(ctx, params.Name)
	if err != nil {
		h.logger.ErrorContext(ctx, "striker check failed", "name", params.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerStrikerDTO{Name: params.Name, IsStriker: isStriker})
}

func writeList[T any](ctx context.Context, w http.ResponseWriter, h *Handler, rule string, load func() ([]T, error)) {
	items, err := load()
	if err != nil {
		h.logger.ErrorContext(ctx, "evaluate rule failed", "rule", rule, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newListDTO(items))
}
