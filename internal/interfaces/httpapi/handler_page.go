package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/riskibarqy/hoopscout/internal/domain/player"
	"github.com/riskibarqy/hoopscout/internal/domain/scouting"
	"github.com/riskibarqy/hoopscout/internal/render"
	"github.com/riskibarqy/hoopscout/internal/usecase"
)

type reportQuery struct {
	Home   int64  `validate:"required,gt=0"`
	Guest  int64  `validate:"required,gt=0,nefield=Home"`
	Season int64  `validate:"omitempty,gt=0"`
	TipOff string `validate:"omitempty"`
	Scout  string `validate:"omitempty,oneof=home guest"`
}

type liveParams struct {
	GameID string `validate:"required,number,max=20"`
}

// GetReport renders the scouting report for one fixture. With download=1 the
// browser saves it under the report file name.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetReport")
	defer span.End()

	query := r.URL.Query()
	home, err := queryInt64(query, "home")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	guest, err := queryInt64(query, "guest")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := queryInt64(query, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req := reportQuery{
		Home:   home,
		Guest:  guest,
		Season: season,
		TipOff: strings.TrimSpace(query.Get("tipoff")),
		Scout:  strings.ToLower(strings.TrimSpace(query.Get("scout"))),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	var tipOff time.Time
	if req.TipOff != "" {
		tipOff, err = time.Parse(time.RFC3339, req.TipOff)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: tipoff must be RFC3339", usecase.ErrInvalidInput))
			return
		}
	}

	artifact, err := h.reportService.Render(ctx, usecase.ReportRequest{
		HomeTeamID:  req.Home,
		GuestTeamID: req.Guest,
		SeasonID:    req.Season,
		TipOff:      tipOff,
		Scout:       scouting.ParseSide(req.Scout),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "render report failed", "home_team_id", req.Home, "guest_team_id", req.Guest, "error", err)
		writeError(ctx, w, err)
		return
	}

	if queryFlag(query, "download") {
		attachment(w, artifact.Filename)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.HTML)
}

// GetLive serves the self-refreshing scoreboard. While no origin answers the
// page keeps reloading with a notice instead of failing.
func (h *Handler) GetLive(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLive")
	defer span.End()

	params := liveParams{GameID: player.CanonicalID(chi.URLParam(r, "gameID"))}
	if err := h.validateRequest(ctx, params); err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.liveService.Page(ctx, params.GameID)
	if err != nil {
		h.logger.WarnContext(ctx, "live scoreboard unavailable", "game_id", params.GameID, "error", err)
		if mapError(ctx, err).HTTPStatus < http.StatusInternalServerError {
			writeError(ctx, w, err)
			return
		}
		notice := "Live-Daten derzeit nicht verfügbar"
		templ.Handler(render.LiveUnavailable(params.GameID, notice), templ.WithStatus(http.StatusServiceUnavailable)).ServeHTTP(w, r.WithContext(ctx))
		return
	}

	templ.Handler(page).ServeHTTP(w, r.WithContext(ctx))
}
