// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/canchalibre/canchalibre/internal/api"
	"github.com/canchalibre/canchalibre/internal/api/dashboard"
	"github.com/canchalibre/canchalibre/internal/api/enrollment"
	"github.com/canchalibre/canchalibre/internal/api/matches"
	"github.com/canchalibre/canchalibre/internal/api/notices"
	"github.com/canchalibre/canchalibre/internal/api/players"
	"github.com/canchalibre/canchalibre/internal/api/seasons"
	"github.com/canchalibre/canchalibre/internal/api/standings"
	"github.com/canchalibre/canchalibre/internal/api/teams"
	"github.com/canchalibre/canchalibre/internal/api/tournaments"
	"github.com/canchalibre/canchalibre/internal/config"
	"github.com/canchalibre/canchalibre/internal/db"
	"github.com/canchalibre/canchalibre/internal/notify"
)

func newServer(cfg *config.Config, database *db.DB, notifier notify.Notifier) *http.Server {
	seasons.InitHandlers(database)
	teams.InitHandlers(database)
	enrollment.InitHandlers(database)
	tournaments.InitHandlers(database)
	matches.InitHandlers(database, notifier)
	players.InitHandlers(database)
	standings.InitHandlers(database)
	notices.InitHandlers(database)
	dashboard.InitHandlers(database)

	router := http.NewServeMux()
	registerRoutes(router, cfg)

	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithContentType,
	)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux, cfg *config.Config) {
	admin := api.WithAdminAuth(cfg.App.AdminTokenHash)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public read surface
	mux.HandleFunc("GET /api/v1/seasons", seasons.HandleSeasonsList)
	mux.HandleFunc("GET /api/v1/seasons/active", seasons.HandleActiveSeason)
	mux.HandleFunc("GET /api/v1/seasons/{id}/enrollments", enrollment.HandleEnrolledList)
	mux.HandleFunc("GET /api/v1/seasons/{id}/tournaments", tournaments.HandleTournamentsBySeason)
	mux.HandleFunc("GET /api/v1/seasons/{id}/notices", notices.HandleNoticesList)
	mux.HandleFunc("GET /api/v1/teams", teams.HandleTeamsList)
	mux.HandleFunc("GET /api/v1/teams/{id}", teams.HandleTeamDetail)
	mux.HandleFunc("GET /api/v1/teams/{id}/players", players.HandleSquadList)
	mux.HandleFunc("GET /api/v1/players/{playerId}", players.HandlePlayerDetail)
	mux.HandleFunc("GET /api/v1/tournaments/{id}", tournaments.HandleTournamentDetail)
	mux.HandleFunc("GET /api/v1/tournaments/{id}/matchdays", tournaments.HandleMatchdaysList)
	mux.HandleFunc("GET /api/v1/tournaments/{id}/standings", standings.HandleStandings)
	mux.HandleFunc("GET /api/v1/tournaments/{id}/scorers", standings.HandleTopScorers)
	mux.HandleFunc("GET /api/v1/tournaments/{id}/players/{playerId}/stats", standings.HandlePlayerStats)
	mux.HandleFunc("GET /api/v1/matches", matches.HandleMatchesList)
	mux.HandleFunc("GET /api/v1/matches/{id}", matches.HandleMatchDetail)
	mux.HandleFunc("GET /api/v1/matches/{id}/events", matches.HandleEventsList)
	mux.HandleFunc("GET /api/v1/dashboard", dashboard.HandleDashboard)

	// Admin surface
	mux.Handle("POST /api/v1/seasons", admin(http.HandlerFunc(seasons.HandleSeasonCreate)))
	mux.Handle("POST /api/v1/seasons/{id}/activate", admin(http.HandlerFunc(seasons.HandleSeasonActivate)))
	mux.Handle("POST /api/v1/seasons/{id}/enrollments", admin(http.HandlerFunc(enrollment.HandleEnroll)))
	mux.Handle("DELETE /api/v1/seasons/{id}/enrollments/{teamId}", admin(http.HandlerFunc(enrollment.HandleUnenroll)))
	mux.Handle("POST /api/v1/seasons/{id}/notices", admin(http.HandlerFunc(notices.HandleNoticeCreate)))
	mux.Handle("POST /api/v1/teams", admin(http.HandlerFunc(teams.HandleTeamCreate)))
	mux.Handle("POST /api/v1/teams/{id}/players", admin(http.HandlerFunc(players.HandlePlayerCreate)))
	mux.Handle("DELETE /api/v1/players/{playerId}", admin(http.HandlerFunc(players.HandlePlayerDelete)))
	mux.Handle("POST /api/v1/tournaments", admin(http.HandlerFunc(tournaments.HandleTournamentCreate)))
	mux.Handle("POST /api/v1/tournaments/{id}/matchdays", admin(http.HandlerFunc(tournaments.HandleMatchdayCreate)))
	mux.Handle("DELETE /api/v1/tournaments/{id}/matchdays/{matchdayId}", admin(http.HandlerFunc(tournaments.HandleMatchdayDelete)))
	mux.Handle("POST /api/v1/tournaments/{id}/fixtures", admin(http.HandlerFunc(tournaments.HandleGenerateFixtures)))
	mux.Handle("POST /api/v1/matches", admin(http.HandlerFunc(matches.HandleMatchCreate)))
	mux.Handle("POST /api/v1/matches/{id}/events", admin(http.HandlerFunc(matches.HandleEventCreate)))
	mux.Handle("POST /api/v1/matches/{id}/finalize", admin(http.HandlerFunc(matches.HandleMatchFinalize)))
}
