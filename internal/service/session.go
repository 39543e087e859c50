package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/funfight/challenge-tracker/internal/challenge"
	"github.com/funfight/challenge-tracker/internal/constants"
	"github.com/funfight/challenge-tracker/internal/domain"
	"github.com/funfight/challenge-tracker/internal/session"
)

var (
	ErrTooManySummoners  = fmt.Errorf("at most %d summoners can be registered", constants.MaxSummoners)
	ErrNotEnoughPlayers  = fmt.Errorf("at least %d summoners are required", constants.MinSummoners)
	ErrDuplicateSummoner = errors.New("summoner already registered")
	ErrEmptyName         = errors.New("summoner name must not be empty")
	ErrAlreadyStarted    = errors.New("session already started")
	ErrNotStarted        = errors.New("session not started")
	ErrMaxMatchesReached = errors.New("maximum match count reached")
	ErrUnknownSummoner   = errors.New("summoner not registered in session")
	ErrInvalidBatch      = errors.New("match batch records must share one timestamp")
)

type SessionService struct {
	store  *session.Store
	logger zerolog.Logger
}

func NewSessionService(store *session.Store, logger zerolog.Logger) *SessionService {
	return &SessionService{store: store, logger: logger}
}

// Create opens a fresh session for a challenge mode. Weights only matter
// for score mode; nil picks the defaults.
func (s *SessionService) Create(mode domain.ChallengeMode, weights *domain.ScoreWeights, maxMatches int) (domain.Session, error) {
	if !mode.Valid() {
		return domain.Session{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedMode, mode)
	}

	w := domain.DefaultScoreWeights()
	if weights != nil {
		w = *weights
	}
	if w.CSPerPoint < 1 {
		w.CSPerPoint = 1
	}
	if maxMatches < 0 {
		maxMatches = 0
	}

	sess := &domain.Session{
		Mode:       mode,
		Weights:    w,
		MaxMatches: maxMatches,
		StartTime:  time.Now().UnixMilli(),
	}
	id, err := s.store.Create(sess)
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info().
		Str("session_id", id).
		Str("mode", string(mode)).
		Int("max_matches", maxMatches).
		Msg("session created")

	return s.store.Get(id)
}

func (s *SessionService) Get(id string) (domain.Session, error) {
	return s.store.Get(id)
}

func (s *SessionService) Clear(id string) {
	s.store.Delete(id)
	s.logger.Info().Str("session_id", id).Msg("session cleared")
}

func (s *SessionService) AddSummoner(id string, summoner domain.Summoner) error {
	summoner.Name = strings.TrimSpace(summoner.Name)
	if summoner.Name == "" {
		return ErrEmptyName
	}

	return s.store.Update(id, func(sess *domain.Session) error {
		if sess.Started {
			return ErrAlreadyStarted
		}
		if len(sess.Summoners) >= constants.MaxSummoners {
			return ErrTooManySummoners
		}
		for _, existing := range sess.Summoners {
			if strings.EqualFold(existing.Name, summoner.Name) {
				return ErrDuplicateSummoner
			}
		}
		sess.Summoners = append(sess.Summoners, summoner)
		return nil
	})
}

func (s *SessionService) RemoveSummoner(id, name string) error {
	return s.store.Update(id, func(sess *domain.Session) error {
		if sess.Started {
			return ErrAlreadyStarted
		}
		for i, existing := range sess.Summoners {
			if strings.EqualFold(existing.Name, name) {
				sess.Summoners = append(sess.Summoners[:i], sess.Summoners[i+1:]...)
				return nil
			}
		}
		return ErrUnknownSummoner
	})
}

// Start locks registration and stamps the session start time.
func (s *SessionService) Start(id string) error {
	return s.store.Update(id, func(sess *domain.Session) error {
		if sess.Started {
			return ErrAlreadyStarted
		}
		if len(sess.Summoners) < constants.MinSummoners {
			return ErrNotEnoughPlayers
		}
		sess.Started = true
		sess.StartTime = time.Now().UnixMilli()
		return nil
	})
}

// AppendMatches adds one game instance: one record per participating
// summoner, all sharing the instance timestamp. Records for unregistered
// summoners are rejected, the batch is applied atomically or not at all.
func (s *SessionService) AppendMatches(id string, records []domain.MatchRecord) error {
	if len(records) == 0 {
		return ErrInvalidBatch
	}

	return s.store.Update(id, func(sess *domain.Session) error {
		if !sess.Started {
			return ErrNotStarted
		}

		timestamp := records[0].Timestamp
		for _, r := range records {
			if r.Timestamp != timestamp {
				return ErrInvalidBatch
			}
			if !s.registered(sess, r.SummonerName) {
				return fmt.Errorf("%w: %q", ErrUnknownSummoner, r.SummonerName)
			}
		}

		if sess.MaxMatches > 0 {
			played := len(challenge.GroupMatches(sess.Matches))
			if played >= sess.MaxMatches {
				return ErrMaxMatchesReached
			}
		}

		sess.Matches = append(sess.Matches, records...)
		s.logger.Debug().
			Str("session_id", id).
			Int64("timestamp", timestamp).
			Int("records", len(records)).
			Msg("match batch appended")
		return nil
	})
}

// ToggleInvalid flips a match in or out of the invalidated set. The raw
// records stay in the history either way.
func (s *SessionService) ToggleInvalid(id, matchID string) error {
	return s.store.Update(id, func(sess *domain.Session) error {
		for i, existing := range sess.InvalidMatches {
			if existing == matchID {
				sess.InvalidMatches = append(sess.InvalidMatches[:i], sess.InvalidMatches[i+1:]...)
				return nil
			}
		}
		sess.InvalidMatches = append(sess.InvalidMatches, matchID)
		return nil
	})
}

// SetHandicap upserts the handicap for (mode, summoner). A zero value
// removes the entry, zero means absent everywhere downstream.
func (s *SessionService) SetHandicap(id string, h domain.Handicap) error {
	if !h.Mode.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedMode, h.Mode)
	}

	return s.store.Update(id, func(sess *domain.Session) error {
		if !s.registered(sess, h.SummonerName) {
			return fmt.Errorf("%w: %q", ErrUnknownSummoner, h.SummonerName)
		}

		for i := range sess.Handicaps {
			existing := &sess.Handicaps[i]
			if existing.Mode == h.Mode && strings.EqualFold(existing.SummonerName, h.SummonerName) {
				if h.Value == 0 {
					sess.Handicaps = append(sess.Handicaps[:i], sess.Handicaps[i+1:]...)
				} else {
					existing.Value = h.Value
				}
				return nil
			}
		}
		if h.Value != 0 {
			sess.Handicaps = append(sess.Handicaps, h)
		}
		return nil
	})
}

func (s *SessionService) Leaderboard(id string) ([]domain.LeaderboardEntry, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return challenge.Leaderboard(&sess), nil
}

func (s *SessionService) Winner(id string) (string, float64, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return "", 0, err
	}
	name, score, ok := challenge.OverallWinner(&sess)
	if !ok {
		return "", 0, nil
	}
	return name, score, nil
}

// Duration reports whole minutes since the session started.
func (s *SessionService) Duration(id string) (int, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return 0, err
	}
	return challenge.GameDuration(sess.StartTime, time.Now()), nil
}

// Instances returns the session history grouped into game instances,
// most recent first, for presentation.
func (s *SessionService) Instances(id string) ([]domain.GameInstance, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return challenge.GroupMatches(sess.Matches), nil
}

func (s *SessionService) registered(sess *domain.Session, name string) bool {
	for _, summoner := range sess.Summoners {
		if strings.EqualFold(summoner.Name, name) {
			return true
		}
	}
	return false
}
