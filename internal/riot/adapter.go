package riot

import (
	"strings"

	"github.com/funfight/challenge-tracker/internal/domain"
)

// map display names keyed by queue game mode, unknown modes fall through
// to the raw identifier
var mapNames = map[string]string{
	"CLASSIC":    "Summoner's Rift",
	"ARAM":       "Howling Abyss",
	"ONEFORALL":  "One for All",
	"URF":        "U.R.F.",
	"TUTORIAL":   "Tutorial",
	"NEXUSBLITZ": "Nexus Blitz",
}

// ParseRiotID splits "name#tag" input. A missing tag falls back to the
// given default, surrounding whitespace is dropped.
func ParseRiotID(input, defaultTag string) (gameName, tagLine string) {
	input = strings.TrimSpace(input)
	if name, tag, found := strings.Cut(input, "#"); found {
		return strings.TrimSpace(name), strings.TrimSpace(tag)
	}
	return input, defaultTag
}

// ToMatchRecord extracts the target participant's performance from a full
// match payload. ok is false when the puuid did not take part.
func ToMatchRecord(match *Match, targetPuuid string) (domain.MatchRecord, bool) {
	var p *Participant
	for i := range match.Info.Participants {
		if match.Info.Participants[i].Puuid == targetPuuid {
			p = &match.Info.Participants[i]
			break
		}
	}
	if p == nil {
		return domain.MatchRecord{}, false
	}

	items := make([]int, 0, 6)
	for _, item := range []int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5} {
		if item != 0 {
			items = append(items, item)
		}
	}

	name := p.RiotIDGameName
	if name == "" {
		name = p.SummonerName
	}

	mapName, ok := mapNames[match.Info.GameMode]
	if !ok {
		mapName = match.Info.GameMode
	}

	return domain.MatchRecord{
		MatchID:      match.Metadata.MatchID,
		SummonerName: name,
		Champion:     p.ChampionName,
		Damage:       p.TotalDamageDealtToChampions,
		Gold:         p.GoldEarned,
		CS:           p.TotalMinionsKilled + p.NeutralMinionsKilled,
		Kills:        p.Kills,
		Deaths:       p.Deaths,
		Assists:      p.Assists,
		Win:          p.Win,
		Timestamp:    match.Info.GameCreation,
		GameMode:     match.Info.GameMode,
		MapName:      mapName,
		Items:        items,
		Spell1ID:     p.Summoner1ID,
		Spell2ID:     p.Summoner2ID,
		ChampLevel:   p.ChampLevel,
	}, true
}

// ToMatchRecords converts a batch, skipping matches the target did not
// play in.
func ToMatchRecords(matches []*Match, targetPuuid string) []domain.MatchRecord {
	records := make([]domain.MatchRecord, 0, len(matches))
	for _, m := range matches {
		if record, ok := ToMatchRecord(m, targetPuuid); ok {
			records = append(records, record)
		}
	}
	return records
}
