package httpapi

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/riskibarqy/hoopscout/internal/domain/player"
	"github.com/riskibarqy/hoopscout/internal/usecase"
)

type startingFiveQuery struct {
	Team    string   `validate:"max=100"`
	Coach   string   `validate:"max=100"`
	Logo    int64    `validate:"omitempty,gt=0"`
	Players []string `validate:"required,min=1,max=5,dive,required,number"`
}

type comparisonQuery struct {
	Home      int64  `validate:"required,gt=0"`
	Guest     int64  `validate:"required,gt=0"`
	HomeName  string `validate:"max=100"`
	GuestName string `validate:"max=100"`
}

type gameQuery struct {
	Game string `validate:"required,number,max=20"`
}

func serveOverlay(w http.ResponseWriter, r *http.Request, page templ.Component) {
	w.Header().Set("Cache-Control", "no-store")
	templ.Handler(page).ServeHTTP(w, r)
}

// StartingFiveOverlay reads team, coach, logo, players (comma separated) and
// per player n_<id> and nr_<id>.
func (h *Handler) StartingFiveOverlay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartingFiveOverlay")
	defer span.End()

	query := r.URL.Query()
	logo, err := queryInt64(query, "logo")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req := startingFiveQuery{
		Team:    strings.TrimSpace(query.Get("team")),
		Coach:   strings.TrimSpace(query.Get("coach")),
		Logo:    logo,
		Players: splitIDs(query.Get("players")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	names := make(map[string]string, len(req.Players))
	numbers := make(map[string]string, len(req.Players))
	for _, id := range req.Players {
		if v := strings.TrimSpace(query.Get("n_" + id)); v != "" {
			names[id] = v
		}
		if v := strings.TrimSpace(query.Get("nr_" + id)); v != "" {
			numbers[id] = v
		}
	}

	page, err := h.overlayService.StartingFive(ctx, usecase.StartingFiveRequest{
		TeamName:   req.Team,
		Coach:      req.Coach,
		LogoTeamID: req.Logo,
		PlayerIDs:  req.Players,
		Names:      names,
		Numbers:    numbers,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	serveOverlay(w, r.WithContext(ctx), page)
}

func (h *Handler) StandingsOverlay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StandingsOverlay")
	defer span.End()

	division, seasonID, err := h.standingsParams(r.WithContext(ctx))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.overlayService.Standings(ctx, seasonID, division)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	serveOverlay(w, r.WithContext(ctx), page)
}

func (h *Handler) ComparisonOverlay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComparisonOverlay")
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
	req := comparisonQuery{
		Home:      home,
		Guest:     guest,
		HomeName:  strings.TrimSpace(query.Get("home_name")),
		GuestName: strings.TrimSpace(query.Get("guest_name")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.overlayService.Comparison(ctx, usecase.ComparisonRequest{
		HomeTeamID:  req.Home,
		GuestTeamID: req.Guest,
		HomeName:    req.HomeName,
		GuestName:   req.GuestName,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	serveOverlay(w, r.WithContext(ctx), page)
}

func (h *Handler) PlayerOfTheGameOverlay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayerOfTheGameOverlay")
	defer span.End()

	req := gameQuery{Game: player.CanonicalID(r.URL.Query().Get("game"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.overlayService.PlayerOfTheGame(ctx, req.Game)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	serveOverlay(w, r.WithContext(ctx), page)
}

func splitIDs(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if id := player.CanonicalID(part); id != "" {
			out = append(out, id)
		}
	}
	return out
}
