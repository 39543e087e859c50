package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/funfight/challenge-tracker/internal/domain"
	"github.com/funfight/challenge-tracker/internal/service"
	"github.com/funfight/challenge-tracker/internal/session"
)

func newTestServer() http.Handler {
	sessionSvc := service.NewSessionService(session.NewStore(), zerolog.Nop())
	return NewServer(nil, nil, sessionSvc, zerolog.Nop()).Routes()
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeSession(t *testing.T, rec *httptest.ResponseRecorder) domain.Session {
	t.Helper()
	var sess domain.Session
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sess))
	return sess
}

func TestSessionLifecycle(t *testing.T) {
	handler := newTestServer()

	rec := doJSON(t, handler, http.MethodPost, "/api/sessions/", map[string]any{
		"mode": "damage",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	sess := decodeSession(t, rec)
	require.NotEmpty(t, sess.ID)
	base := "/api/sessions/" + sess.ID

	for _, name := range []string{"alice", "bob"} {
		rec = doJSON(t, handler, http.MethodPost, base+"/summoners", domain.Summoner{Name: name})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = doJSON(t, handler, http.MethodPost, base+"/start", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, decodeSession(t, rec).Started)

	rec = doJSON(t, handler, http.MethodPost, base+"/matches", map[string]any{
		"records": []domain.MatchRecord{
			{MatchID: "g1", SummonerName: "alice", Damage: 12000, Timestamp: 1000, Win: true},
			{MatchID: "g1", SummonerName: "bob", Damage: 8000, Timestamp: 1000, Win: false},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, base+"/leaderboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var board struct {
		Leaderboard []domain.LeaderboardEntry `json:"leaderboard"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&board))
	require.Len(t, board.Leaderboard, 2)
	require.Equal(t, "alice", board.Leaderboard[0].Summoner.Name)

	rec = doJSON(t, handler, http.MethodGet, base+"/winner", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var winner struct {
		Name  string  `json:"name"`
		Score float64 `json:"score"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&winner))
	require.Equal(t, "alice", winner.Name)
	require.InDelta(t, 12000, winner.Score, 1e-9)

	rec = doJSON(t, handler, http.MethodDelete, base+"/", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, base+"/", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToggleInvalidExcludesMatch(t *testing.T) {
	handler := newTestServer()

	rec := doJSON(t, handler, http.MethodPost, "/api/sessions/", map[string]any{"mode": "damage"})
	sess := decodeSession(t, rec)
	base := "/api/sessions/" + sess.ID

	for _, name := range []string{"alice", "bob"} {
		doJSON(t, handler, http.MethodPost, base+"/summoners", domain.Summoner{Name: name})
	}
	doJSON(t, handler, http.MethodPost, base+"/start", nil)
	doJSON(t, handler, http.MethodPost, base+"/matches", map[string]any{
		"records": []domain.MatchRecord{
			{MatchID: "g1", SummonerName: "alice", Damage: 100, Timestamp: 1000},
			{MatchID: "g1", SummonerName: "bob", Damage: 200, Timestamp: 1000},
		},
	})

	rec = doJSON(t, handler, http.MethodPost, base+"/matches/g1/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, decodeSession(t, rec).InvalidMatches, "g1")

	rec = doJSON(t, handler, http.MethodGet, base+"/leaderboard", nil)
	var board struct {
		Leaderboard []domain.LeaderboardEntry `json:"leaderboard"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&board))
	for _, entry := range board.Leaderboard {
		require.Zero(t, entry.Matches)
		require.Zero(t, entry.Total)
	}
}

func TestSetHandicap(t *testing.T) {
	handler := newTestServer()

	rec := doJSON(t, handler, http.MethodPost, "/api/sessions/", map[string]any{"mode": "damage"})
	sess := decodeSession(t, rec)
	base := "/api/sessions/" + sess.ID

	for _, name := range []string{"alice", "bob"} {
		doJSON(t, handler, http.MethodPost, base+"/summoners", domain.Summoner{Name: name})
	}

	rec = doJSON(t, handler, http.MethodPut, base+"/handicaps", domain.Handicap{
		Mode: domain.ModeDamage, SummonerName: "bob", Value: 10,
	})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, handler, http.MethodPut, base+"/handicaps", domain.Handicap{
		Mode: domain.ModeDamage, SummonerName: "mallory", Value: 10,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorStatusMapping(t *testing.T) {
	handler := newTestServer()

	// unsupported mode on create
	rec := doJSON(t, handler, http.MethodPost, "/api/sessions/", map[string]any{"mode": "vision"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown session
	rec = doJSON(t, handler, http.MethodGet, "/api/sessions/nope/", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// malformed body
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/", bytes.NewBufferString("{"))
	out := httptest.NewRecorder()
	handler.ServeHTTP(out, req)
	require.Equal(t, http.StatusBadRequest, out.Code)

	// registration cap
	rec = doJSON(t, handler, http.MethodPost, "/api/sessions/", map[string]any{"mode": "kda"})
	sess := decodeSession(t, rec)
	base := "/api/sessions/" + sess.ID
	for i := 0; i < 5; i++ {
		rec = doJSON(t, handler, http.MethodPost, base+"/summoners", domain.Summoner{Name: fmt.Sprintf("p%d", i)})
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec = doJSON(t, handler, http.MethodPost, base+"/summoners", domain.Summoner{Name: "p5"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
