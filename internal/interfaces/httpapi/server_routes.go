package httpapi

import "github.com/go-chi/chi/v5"

func registerSystemRoutes(r chi.Router, handler *Handler) {
	r.Get("/healthz", handler.Healthz)
}

func registerAPIRoutes(r chi.Router, handler *Handler) {
	r.Route("/v1", func(r chi.Router) {
		r.Get("/teams", handler.ListTeams)
		r.Get("/teams/{teamID}/overview", handler.GetTeamOverview)
		r.Get("/games/recent", handler.ListRecentGames)
		r.Get("/standings", handler.GetStandings)

		r.Route("/annotations", func(r chi.Router) {
			r.Get("/", handler.GetAnnotations)
			r.Get("/export", handler.ExportAnnotations)
			r.Post("/import", handler.ImportAnnotations)
			r.Get("/players/{playerID}", handler.GetPlayerAnnotation)
			r.Put("/players/{playerID}", handler.PutPlayerAnnotation)
			r.Put("/players/{playerID}/lines/{field}", handler.SetAnnotationLine)
			r.Put("/players/{playerID}/color", handler.SetAnnotationColor)
			r.Put("/key-facts/{table}", handler.SetKeyFacts)
			r.Put("/matchup", handler.SetMatchup)
		})
	})
}

func registerPageRoutes(r chi.Router, handler *Handler) {
	r.Get("/report", handler.GetReport)
	r.Get("/live/{gameID}", handler.GetLive)
}

func registerOverlayRoutes(r chi.Router, handler *Handler) {
	r.Route("/overlays", func(r chi.Router) {
		r.Get("/starting-five", handler.StartingFiveOverlay)
		r.Get("/standings", handler.StandingsOverlay)
		r.Get("/comparison", handler.ComparisonOverlay)
		r.Get("/player-of-the-game", handler.PlayerOfTheGameOverlay)
	})
}
