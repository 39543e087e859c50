package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog"

	"github.com/funfight/challenge-tracker/internal/db"
	"github.com/funfight/challenge-tracker/internal/domain"
)

type SummonerRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewSummonerRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *SummonerRepository {
	return &SummonerRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *SummonerRepository) GetByPuuid(ctx context.Context, puuid string) (*domain.Summoner, error) {
	row, err := r.queries.GetSummonerByPuuid(ctx, puuid)
	if err != nil {
		return nil, err
	}
	s := toDomainSummoner(row)
	return &s, nil
}

func (r *SummonerRepository) GetByNameTag(ctx context.Context, name, tag string) (*domain.Summoner, error) {
	row, err := r.queries.GetSummonerByNameTag(ctx, db.GetSummonerByNameTagParams{
		Name: name,
		Tag:  tag,
	})
	if err != nil {
		return nil, err
	}
	s := toDomainSummoner(row)
	return &s, nil
}

func (r *SummonerRepository) Upsert(ctx context.Context, summoner *domain.Summoner) error {
	now := time.Now()
	return r.queries.UpsertSummoner(ctx, db.UpsertSummonerParams{
		Puuid:         summoner.Puuid,
		Name:          summoner.Name,
		Tag:           summoner.Tag,
		ProfileIconID: int64(summoner.ProfileIconID),
		SummonerLevel: int64(summoner.SummonerLevel),
		LastFetchAt:   now,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

func (r *SummonerRepository) Search(ctx context.Context, query string, limit int) ([]domain.Summoner, error) {
	searchPattern := "%" + query + "%"
	rows, err := r.queries.SearchSummoners(ctx, db.SearchSummonersParams{
		Name:  searchPattern,
		Tag:   searchPattern,
		Limit: int64(limit),
	})
	if err != nil {
		return nil, err
	}

	result := make([]domain.Summoner, len(rows))
	for i, row := range rows {
		result[i] = toDomainSummoner(row)
	}
	return result, nil
}

// ShouldRefresh reports whether the cached profile is stale. An unknown
// puuid always refreshes.
func (r *SummonerRepository) ShouldRefresh(ctx context.Context, puuid string, ttl time.Duration) (bool, error) {
	lastFetchAt, err := r.queries.GetSummonerLastFetchAt(ctx, puuid)
	if err == sql.ErrNoRows {
		r.logger.Debug().Str("puuid", puuid).Msg("summoner not cached, should refresh")
		return true, nil
	}
	if err != nil {
		r.logger.Error().Err(err).Str("puuid", puuid).Msg("failed to read last fetch time")
		return false, err
	}

	timeSince := time.Since(lastFetchAt)
	shouldRefresh := timeSince > ttl
	r.logger.Debug().
		Str("puuid", puuid).
		Time("last_fetch_at", lastFetchAt).
		Dur("time_since", timeSince).
		Dur("ttl", ttl).
		Bool("should_refresh", shouldRefresh).
		Msg("checking if summoner should refresh")

	return shouldRefresh, nil
}

func (r *SummonerRepository) SetLastFetchAt(ctx context.Context, puuid string, lastFetchAt time.Time) error {
	return r.queries.UpdateSummonerLastFetchAt(ctx, db.UpdateSummonerLastFetchAtParams{
		LastFetchAt: lastFetchAt,
		UpdatedAt:   time.Now(),
		Puuid:       puuid,
	})
}

func toDomainSummoner(row db.Summoner) domain.Summoner {
	return domain.Summoner{
		Name:          row.Name,
		Tag:           row.Tag,
		Puuid:         row.Puuid,
		ProfileIconID: int(row.ProfileIconID),
		SummonerLevel: int(row.SummonerLevel),
	}
}
