package challenge

import (
	"sort"
	"time"

	"github.com/funfight/challenge-tracker/internal/domain"
)

// Leaderboard folds a session into ranked per-summoner entries, descending
// by total. It is total over its input: a session with no mode, no
// summoners or no matches yields an empty slice, zero counts never divide.
// The sort is stable, so ties keep registration order.
func Leaderboard(s *domain.Session) []domain.LeaderboardEntry {
	if s == nil || !s.Mode.Valid() || len(s.Summoners) == 0 {
		return []domain.LeaderboardEntry{}
	}

	entries := make([]domain.LeaderboardEntry, 0, len(s.Summoners))
	for _, summoner := range s.Summoners {
		var filtered []domain.MatchRecord
		for _, m := range s.Matches {
			if m.SummonerName == summoner.Name && !s.Invalidated(m.MatchID) {
				filtered = append(filtered, m)
			}
		}

		// mode is validated above, the error branch is unreachable
		total, _ := PlayerTotal(filtered, s.Mode, s.Weights)
		total = ApplyHandicap(total, s.HandicapFor(s.Mode, summoner.Name), s.Mode)

		var average float64
		if s.Mode == domain.ModeKDA {
			average = total
		} else if len(filtered) > 0 {
			average = total / float64(len(filtered))
		}

		var wins int
		for _, m := range filtered {
			if m.Win {
				wins++
			}
		}
		var winRate float64
		if len(filtered) > 0 {
			winRate = float64(wins) / float64(len(filtered)) * 100
		}

		entries = append(entries, domain.LeaderboardEntry{
			Summoner: summoner,
			Total:    total,
			Average:  average,
			Matches:  len(filtered),
			Wins:     wins,
			WinRate:  winRate,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total > entries[j].Total
	})
	return entries
}

// OverallWinner returns the leaderboard head. ok is false for an empty
// leaderboard.
func OverallWinner(s *domain.Session) (name string, score float64, ok bool) {
	board := Leaderboard(s)
	if len(board) == 0 {
		return "", 0, false
	}
	return board[0].Summoner.Name, board[0].Total, true
}

// GameDuration reports whole minutes elapsed since the session started.
func GameDuration(startTime int64, now time.Time) int {
	elapsed := now.UnixMilli() - startTime
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / 1000 / 60)
}

// GroupMatches reconstructs discrete game instances from the flat record
// stream: records sharing a timestamp belong to one game. Instances are
// numbered descending by recency, the most recent is 1.
func GroupMatches(matches []domain.MatchRecord) []domain.GameInstance {
	byTimestamp := make(map[int64][]domain.MatchRecord)
	var order []int64
	for _, m := range matches {
		if _, seen := byTimestamp[m.Timestamp]; !seen {
			order = append(order, m.Timestamp)
		}
		byTimestamp[m.Timestamp] = append(byTimestamp[m.Timestamp], m)
	}

	sort.Slice(order, func(i, j int) bool { return order[i] > order[j] })

	instances := make([]domain.GameInstance, 0, len(order))
	for i, ts := range order {
		instances = append(instances, domain.GameInstance{
			Number:    i + 1,
			Timestamp: ts,
			Records:   byTimestamp[ts],
		})
	}
	return instances
}
