package domain

import (
	"errors"
	"slices"
)

// ChallengeMode is the single scoring metric active for a session.
type ChallengeMode string

const (
	ModeDamage ChallengeMode = "damage"
	ModeGold   ChallengeMode = "gold"
	ModeScore  ChallengeMode = "score"
	ModeKDA    ChallengeMode = "kda"
)

var ErrUnsupportedMode = errors.New("unsupported challenge mode")

func (m ChallengeMode) Valid() bool {
	switch m {
	case ModeDamage, ModeGold, ModeScore, ModeKDA:
		return true
	}
	return false
}

// Summoner is a registered participant.
type Summoner struct {
	Name          string `json:"name"`
	Tag           string `json:"tag,omitempty"`
	Puuid         string `json:"puuid,omitempty"`
	ProfileIconID int    `json:"profileIconId,omitempty"`
	SummonerLevel int    `json:"summonerLevel,omitempty"`
}

// MatchRecord is one summoner's performance in one game instance. All
// records of the same game instance share MatchID, Timestamp and a per-team
// win flag.
type MatchRecord struct {
	MatchID      string `json:"matchId"`
	SummonerName string `json:"summonerName"`
	Champion     string `json:"champion"`
	Damage       int    `json:"damage"`
	Gold         int    `json:"gold"`
	CS           int    `json:"cs"`
	Kills        int    `json:"kills"`
	Deaths       int    `json:"deaths"`
	Assists      int    `json:"assists"`
	Win          bool   `json:"win"`
	Timestamp    int64  `json:"timestamp"` // game creation, unix ms

	// cosmetic metadata, unused by scoring
	GameMode   string `json:"gameMode,omitempty"`
	MapName    string `json:"mapName,omitempty"`
	Items      []int  `json:"items,omitempty"`
	Spell1ID   int    `json:"summoner1Id,omitempty"`
	Spell2ID   int    `json:"summoner2Id,omitempty"`
	ChampLevel int    `json:"champLevel,omitempty"`
}

// ScoreWeights configures the composite score mode.
type ScoreWeights struct {
	Kill       float64 `json:"kill"`
	Death      float64 `json:"death"`
	Assist     float64 `json:"assist"`
	CS         float64 `json:"cs"`
	CSPerPoint int     `json:"csPerPoint"` // CS needed per point unit, min 1
}

func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{Kill: 300, Death: -100, Assist: 150, CS: 1, CSPerPoint: 10}
}

// Handicap adjusts one summoner's total for one mode. Value 0 means absent.
type Handicap struct {
	Mode         ChallengeMode `json:"mode"`
	SummonerName string        `json:"summonerName"`
	Value        float64       `json:"value"`
}

// Session is the aggregate root for one challenge run. One session per
// browser tab, single writer, no cross-tab synchronization.
type Session struct {
	ID             string        `json:"id"`
	Summoners      []Summoner    `json:"summoners"`
	Mode           ChallengeMode `json:"mode"`
	Matches        []MatchRecord `json:"matches"`
	StartTime      int64         `json:"startTime"` // unix ms
	MaxMatches     int           `json:"maxMatches,omitempty"`
	Weights        ScoreWeights  `json:"scoreWeights"`
	Handicaps      []Handicap    `json:"handicaps,omitempty"`
	InvalidMatches []string      `json:"invalidMatches,omitempty"`
	Started        bool          `json:"started"`
}

// Clone returns a copy whose slices share no backing arrays with s, so the
// caller can read it while the stored session keeps being mutated.
func (s *Session) Clone() Session {
	out := *s
	out.Summoners = slices.Clone(s.Summoners)
	out.Matches = slices.Clone(s.Matches)
	out.Handicaps = slices.Clone(s.Handicaps)
	out.InvalidMatches = slices.Clone(s.InvalidMatches)
	return out
}

// HandicapFor returns the meaningful handicap for a summoner under a mode,
// or nil when none is configured or its value is zero.
func (s *Session) HandicapFor(mode ChallengeMode, name string) *Handicap {
	for i := range s.Handicaps {
		h := &s.Handicaps[i]
		if h.Mode == mode && h.SummonerName == name && h.Value != 0 {
			return h
		}
	}
	return nil
}

// Invalidated reports whether a match ID has been flagged out of scoring.
func (s *Session) Invalidated(matchID string) bool {
	for _, id := range s.InvalidMatches {
		if id == matchID {
			return true
		}
	}
	return false
}

// LeaderboardEntry is derived per summoner, never stored.
type LeaderboardEntry struct {
	Summoner Summoner `json:"summoner"`
	Total    float64  `json:"total"`
	Average  float64  `json:"average"`
	Matches  int      `json:"matches"`
	Wins     int      `json:"wins"`
	WinRate  float64  `json:"winRate"`
}

// GameInstance is one played game reconstructed from the flat record
// stream: every record sharing one timestamp.
type GameInstance struct {
	Number    int           `json:"number"` // 1 = most recent
	Timestamp int64         `json:"timestamp"`
	Records   []MatchRecord `json:"records"`
}
