package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/funfight/challenge-tracker/internal/middleware"
	"github.com/funfight/challenge-tracker/internal/service"
)

// Server exposes the challenge tracker as a JSON API for the browser
// frontend.
type Server struct {
	summonerSvc *service.SummonerService
	matchSvc    *service.MatchService
	sessionSvc  *service.SessionService
	logger      zerolog.Logger
}

func NewServer(summonerSvc *service.SummonerService, matchSvc *service.MatchService, sessionSvc *service.SessionService, logger zerolog.Logger) *Server {
	return &Server{
		summonerSvc: summonerSvc,
		matchSvc:    matchSvc,
		sessionSvc:  sessionSvc,
		logger:      logger,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID(s.logger))

	r.Route("/api", func(r chi.Router) {
		r.Route("/summoner", func(r chi.Router) {
			r.Post("/search", s.handleSearchSummoner)
			r.Post("/matches", s.handleSummonerMatches)
			r.Post("/recent-players", s.handleRecentPlayers)
			r.Get("/suggestions", s.handleSuggestions)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", s.handleGetSession)
				r.Delete("/", s.handleClearSession)
				r.Post("/summoners", s.handleAddSummoner)
				r.Delete("/summoners/{name}", s.handleRemoveSummoner)
				r.Post("/start", s.handleStartSession)
				r.Post("/matches", s.handleAppendMatches)
				r.Post("/matches/{matchID}/toggle", s.handleToggleInvalid)
				r.Put("/handicaps", s.handleSetHandicap)
				r.Get("/leaderboard", s.handleLeaderboard)
				r.Get("/winner", s.handleWinner)
				r.Get("/instances", s.handleInstances)
			})
		})
	})

	return r
}
