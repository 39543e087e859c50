package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/funfight/challenge-tracker/internal/domain"
	"github.com/funfight/challenge-tracker/internal/riot"
	"github.com/funfight/challenge-tracker/internal/service"
	"github.com/funfight/challenge-tracker/internal/session"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

// writeError maps service and upstream errors onto HTTP statuses: domain
// validation to 400, unknown resources to 404, Riot throttling to 429 and
// a bad key to 502 since it is an upstream credential problem, not the
// caller's.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, riot.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, riot.ErrRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(err, riot.ErrUnauthorized):
		status = http.StatusBadGateway
	case errors.Is(err, domain.ErrUnsupportedMode),
		errors.Is(err, service.ErrTooManySummoners),
		errors.Is(err, service.ErrNotEnoughPlayers),
		errors.Is(err, service.ErrDuplicateSummoner),
		errors.Is(err, service.ErrEmptyName),
		errors.Is(err, service.ErrAlreadyStarted),
		errors.Is(err, service.ErrNotStarted),
		errors.Is(err, service.ErrMaxMatchesReached),
		errors.Is(err, service.ErrUnknownSummoner),
		errors.Is(err, service.ErrInvalidBatch):
		status = http.StatusBadRequest
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func (s *Server) handleSearchSummoner(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RiotID string `json:"riotId"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	summoner, err := s.summonerSvc.Search(r.Context(), req.RiotID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, summoner)
}

func (s *Server) handleSummonerMatches(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Puuid   string `json:"puuid"`
		Count   int    `json:"count"`
		Refresh bool   `json:"refresh"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if req.Puuid == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "puuid is required"})
		return
	}

	records, err := s.matchSvc.FetchMatches(r.Context(), req.Puuid, req.Count, req.Refresh)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"matches": records})
}

func (s *Server) handleRecentPlayers(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Puuid string `json:"puuid"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if req.Puuid == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "puuid is required"})
		return
	}

	players, err := s.summonerSvc.RecentTeammates(r.Context(), req.Puuid)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"players": players})
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := s.summonerSvc.Suggestions(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode       domain.ChallengeMode `json:"mode"`
		Weights    *domain.ScoreWeights `json:"scoreWeights"`
		MaxMatches int                  `json:"maxMatches"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	sess, err := s.sessionSvc.Create(req.Mode, req.Weights, req.MaxMatches)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, sess)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionSvc.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleClearSession(w http.ResponseWriter, r *http.Request) {
	s.sessionSvc.Clear(chi.URLParam(r, "sessionID"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddSummoner(w http.ResponseWriter, r *http.Request) {
	var summoner domain.Summoner
	if !s.decode(w, r, &summoner) {
		return
	}

	id := chi.URLParam(r, "sessionID")
	if err := s.sessionSvc.AddSummoner(id, summoner); err != nil {
		s.writeError(w, err)
		return
	}
	sess, err := s.sessionSvc.Get(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleRemoveSummoner(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if err := s.sessionSvc.RemoveSummoner(id, chi.URLParam(r, "name")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if err := s.sessionSvc.Start(id); err != nil {
		s.writeError(w, err)
		return
	}
	sess, err := s.sessionSvc.Get(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sess)
}

// handleAppendMatches records one played game: the per-summoner records
// of a single instance, sharing one timestamp.
func (s *Server) handleAppendMatches(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Records []domain.MatchRecord `json:"records"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	id := chi.URLParam(r, "sessionID")
	if err := s.sessionSvc.AppendMatches(id, req.Records); err != nil {
		s.writeError(w, err)
		return
	}
	sess, err := s.sessionSvc.Get(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleToggleInvalid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if err := s.sessionSvc.ToggleInvalid(id, chi.URLParam(r, "matchID")); err != nil {
		s.writeError(w, err)
		return
	}
	sess, err := s.sessionSvc.Get(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleSetHandicap(w http.ResponseWriter, r *http.Request) {
	var handicap domain.Handicap
	if !s.decode(w, r, &handicap) {
		return
	}

	id := chi.URLParam(r, "sessionID")
	if err := s.sessionSvc.SetHandicap(id, handicap); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := s.sessionSvc.Leaderboard(chi.URLParam(r, "sessionID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"leaderboard": board})
}

func (s *Server) handleWinner(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	name, score, err := s.sessionSvc.Winner(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	duration, err := s.sessionSvc.Duration(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"name":            name,
		"score":           score,
		"durationMinutes": duration,
	})
}

func (s *Server) handleInstances(w http.ResponseWriter, r *http.Request) {
	instances, err := s.sessionSvc.Instances(chi.URLParam(r, "sessionID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"instances": instances})
}
