package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/hoopscout/internal/domain/team"
	"github.com/riskibarqy/hoopscout/internal/usecase"
)

type recentGamesQuery struct {
	SlotSize int64 `validate:"omitempty,min=1,max=200"`
}

type standingsQuery struct {
	Region string `validate:"required"`
	Season int64  `validate:"omitempty,gt=0"`
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams := h.teamService.List()
	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamOverview")
	defer span.End()

	teamID, err := pathInt64(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	seasonID, err := queryInt64(r.URL.Query(), "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	overview, err := h.teamService.Overview(ctx, seasonID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team overview failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamOverviewToDTO(overview))
}

func (h *Handler) ListRecentGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRecentGames")
	defer span.End()

	slotSize, err := queryInt64(r.URL.Query(), "slotSize")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, recentGamesQuery{SlotSize: slotSize}); err != nil {
		writeError(ctx, w, err)
		return
	}

	games, err := h.gamesService.Recent(ctx, int(slotSize))
	if err != nil {
		h.logger.WarnContext(ctx, "list recent games failed", "slot_size", slotSize, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameDTO, 0, len(games))
	for _, g := range games {
		items = append(items, gameToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	division, seasonID, err := h.standingsParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.standingsService.Table(ctx, seasonID, division)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "division", division, "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(table))
}

// standingsParams reads region and season, shared by the JSON endpoint and
// the overlay.
func (h *Handler) standingsParams(r *http.Request) (team.Division, int64, error) {
	query := r.URL.Query()
	seasonID, err := queryInt64(query, "season")
	if err != nil {
		return team.DivisionUnknown, 0, err
	}
	req := standingsQuery{Region: query.Get("region"), Season: seasonID}
	if err := h.validateRequest(r.Context(), req); err != nil {
		return team.DivisionUnknown, 0, err
	}

	division, err := team.ParseDivision(req.Region)
	if err != nil {
		return team.DivisionUnknown, 0, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return division, seasonID, nil
}
