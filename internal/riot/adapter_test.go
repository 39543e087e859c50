package riot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRiotID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantTag  string
	}{
		{name: "name and tag", input: "Hide on bush#KR1", wantName: "Hide on bush", wantTag: "KR1"},
		{name: "tag omitted uses default", input: "Hide on bush", wantName: "Hide on bush", wantTag: "KR1"},
		{name: "whitespace trimmed", input: "  Faker # KR1 ", wantName: "Faker", wantTag: "KR1"},
		{name: "empty tag after hash", input: "Faker#", wantName: "Faker", wantTag: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, tag := ParseRiotID(tt.input, "KR1")
			require.Equal(t, tt.wantName, name)
			require.Equal(t, tt.wantTag, tag)
		})
	}
}

func fixtureMatch() *Match {
	return &Match{
		Metadata: MatchMetadata{
			MatchID:      "KR_123",
			Participants: []string{"puuid-a", "puuid-b"},
		},
		Info: MatchInfo{
			GameCreation: 1_700_000_000_000,
			GameMode:     "CLASSIC",
			Participants: []Participant{
				{
					Puuid:                       "puuid-a",
					RiotIDGameName:              "alice",
					ChampionName:                "Ahri",
					ChampLevel:                  16,
					Kills:                       7,
					Deaths:                      2,
					Assists:                     9,
					TotalDamageDealtToChampions: 24000,
					GoldEarned:                  13100,
					TotalMinionsKilled:          180,
					NeutralMinionsKilled:        12,
					Item0:                       3089,
					Item1:                       0,
					Item2:                       3020,
					Win:                         true,
				},
				{Puuid: "puuid-b", SummonerName: "bob", Win: false},
			},
		},
	}
}

func TestToMatchRecord(t *testing.T) {
	record, ok := ToMatchRecord(fixtureMatch(), "puuid-a")
	require.True(t, ok)

	require.Equal(t, "KR_123", record.MatchID)
	require.Equal(t, "alice", record.SummonerName)
	require.Equal(t, "Ahri", record.Champion)
	require.Equal(t, 24000, record.Damage)
	require.Equal(t, 13100, record.Gold)
	// cs pools lane and jungle minions
	require.Equal(t, 192, record.CS)
	require.Equal(t, 7, record.Kills)
	require.Equal(t, 2, record.Deaths)
	require.Equal(t, 9, record.Assists)
	require.True(t, record.Win)
	require.Equal(t, int64(1_700_000_000_000), record.Timestamp)
	require.Equal(t, "Summoner's Rift", record.MapName)
	// zero item slots are dropped
	require.Equal(t, []int{3089, 3020}, record.Items)
}

func TestToMatchRecord_LegacyNameFallback(t *testing.T) {
	record, ok := ToMatchRecord(fixtureMatch(), "puuid-b")
	require.True(t, ok)
	require.Equal(t, "bob", record.SummonerName)
}

func TestToMatchRecord_ParticipantMissing(t *testing.T) {
	_, ok := ToMatchRecord(fixtureMatch(), "puuid-c")
	require.False(t, ok)
}

func TestToMatchRecord_UnknownGameMode(t *testing.T) {
	m := fixtureMatch()
	m.Info.GameMode = "ULTBOOK"
	record, ok := ToMatchRecord(m, "puuid-a")
	require.True(t, ok)
	require.Equal(t, "ULTBOOK", record.MapName)
}

func TestToMatchRecords(t *testing.T) {
	first := fixtureMatch()
	second := fixtureMatch()
	second.Metadata.MatchID = "KR_124"
	missing := fixtureMatch()
	missing.Info.Participants = nil

	records := ToMatchRecords([]*Match{first, second, missing}, "puuid-a")
	require.Len(t, records, 2)
	require.Equal(t, "KR_123", records[0].MatchID)
	require.Equal(t, "KR_124", records[1].MatchID)
}
