package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/funfight/challenge-tracker/internal/config"
	"github.com/funfight/challenge-tracker/internal/database"
	"github.com/funfight/challenge-tracker/internal/db"
	"github.com/funfight/challenge-tracker/internal/domain"
)

func newTestRepos(t *testing.T) (*SummonerRepository, *MatchRepository) {
	t.Helper()

	logger := zerolog.Nop()
	sqlDB, err := database.New(&config.Config{DBPath: filepath.Join(t.TempDir(), "test.db")}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	queries := db.New(sqlDB)
	return NewSummonerRepository(sqlDB, queries, logger), NewMatchRepository(sqlDB, queries, logger)
}

func TestSummonerRepository_GetByPuuid(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	_, err := repo.GetByPuuid(ctx, "missing")
	require.ErrorIs(t, err, sql.ErrNoRows)

	want := &domain.Summoner{
		Name:          "Hide on bush",
		Tag:           "KR1",
		Puuid:         "puuid-1",
		ProfileIconID: 6,
		SummonerLevel: 500,
	}
	require.NoError(t, repo.Upsert(ctx, want))

	got, err := repo.GetByPuuid(ctx, "puuid-1")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestMatchRepository_LatestGameCreation(t *testing.T) {
	_, repo := newTestRepos(t)
	ctx := context.Background()

	latest, err := repo.LatestGameCreation(ctx, "puuid-1")
	require.NoError(t, err)
	require.Zero(t, latest)

	records := []domain.MatchRecord{
		{MatchID: "KR_1", SummonerName: "faker", Timestamp: 1_700_000_000_000},
		{MatchID: "KR_2", SummonerName: "faker", Timestamp: 1_700_000_600_000},
	}
	require.NoError(t, repo.UpsertBatch(ctx, "puuid-1", records))

	latest, err = repo.LatestGameCreation(ctx, "puuid-1")
	require.NoError(t, err)
	require.EqualValues(t, 1_700_000_600_000, latest)
}
