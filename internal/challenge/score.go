package challenge

import (
	"fmt"
	"math"

	"github.com/funfight/challenge-tracker/internal/domain"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MatchValue converts one match record into its numeric contribution under
// a challenge mode. The mode set is closed: an unknown mode is reported as
// domain.ErrUnsupportedMode instead of silently scoring zero.
func MatchValue(m domain.MatchRecord, mode domain.ChallengeMode, w domain.ScoreWeights) (float64, error) {
	switch mode {
	case domain.ModeDamage:
		return float64(m.Damage), nil
	case domain.ModeGold:
		return float64(m.Gold), nil
	case domain.ModeScore:
		perPoint := w.CSPerPoint
		if perPoint < 1 {
			perPoint = 1
		}
		kda := float64(m.Kills)*w.Kill + float64(m.Deaths)*w.Death + float64(m.Assists)*w.Assist
		cs := float64(m.CS/perPoint) * w.CS
		return kda + cs, nil
	case domain.ModeKDA:
		if m.Deaths == 0 {
			return float64(m.Kills + m.Assists), nil
		}
		return round2(float64(m.Kills+m.Assists) / float64(m.Deaths)), nil
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrUnsupportedMode, mode)
	}
}

// PlayerTotal folds a summoner's filtered matches into a single total.
//
// KDA is pooled: kills, deaths and assists are summed across all matches
// before the ratio is taken, which is how KDA is conventionally reported
// over a multi-game set and avoids small-sample ratio distortion. Every
// other mode sums per-match values.
func PlayerTotal(matches []domain.MatchRecord, mode domain.ChallengeMode, w domain.ScoreWeights) (float64, error) {
	if mode == domain.ModeKDA {
		var kills, deaths, assists int
		for _, m := range matches {
			kills += m.Kills
			deaths += m.Deaths
			assists += m.Assists
		}
		if deaths == 0 {
			return float64(kills + assists), nil
		}
		return round2(float64(kills+assists) / float64(deaths)), nil
	}

	var total float64
	for _, m := range matches {
		v, err := MatchValue(m, mode, w)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

// ApplyHandicap adjusts a computed total with a per-summoner offset.
// Damage and gold read the value as percentage points (10 means +10%),
// KDA adds it with 2-decimal rounding, score adds it as-is. A nil
// handicap passes the total through unchanged.
func ApplyHandicap(total float64, h *domain.Handicap, mode domain.ChallengeMode) float64 {
	if h == nil || h.Value == 0 {
		return total
	}
	switch mode {
	case domain.ModeDamage, domain.ModeGold:
		return total * (1 + h.Value/100)
	case domain.ModeKDA:
		return round2(total + h.Value)
	default:
		return total + h.Value
	}
}
