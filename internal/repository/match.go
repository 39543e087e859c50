package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/funfight/challenge-tracker/internal/constants"
	"github.com/funfight/challenge-tracker/internal/db"
	"github.com/funfight/challenge-tracker/internal/domain"
)

type MatchRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewMatchRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *MatchRepository {
	return &MatchRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *MatchRepository) GetByPuuid(ctx context.Context, puuid string, limit int) ([]domain.MatchRecord, error) {
	rows, err := r.queries.GetMatchRecordsByPuuid(ctx, db.GetMatchRecordsByPuuidParams{
		Puuid: puuid,
		Limit: int64(limit),
	})
	if err != nil {
		return nil, err
	}

	records := make([]domain.MatchRecord, len(rows))
	for i, row := range rows {
		records[i] = r.toDomainRecord(row)
	}
	return records, nil
}

// UpsertBatch writes records in one transaction, chunked by DBBatchSize.
func (r *MatchRepository) UpsertBatch(ctx context.Context, puuid string, records []domain.MatchRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	now := time.Now()

	for i := 0; i < len(records); i += constants.DBBatchSize {
		end := i + constants.DBBatchSize
		if end > len(records) {
			end = len(records)
		}

		for _, record := range records[i:end] {
			items, err := json.Marshal(record.Items)
			if err != nil {
				return fmt.Errorf("failed to encode items for match %s: %w", record.MatchID, err)
			}

			err = qtx.UpsertMatchRecord(ctx, db.UpsertMatchRecordParams{
				MatchID:      record.MatchID,
				Puuid:        puuid,
				SummonerName: record.SummonerName,
				Champion:     record.Champion,
				GameMode:     record.GameMode,
				MapName:      record.MapName,
				Damage:       int64(record.Damage),
				Gold:         int64(record.Gold),
				Cs:           int64(record.CS),
				Kills:        int64(record.Kills),
				Deaths:       int64(record.Deaths),
				Assists:      int64(record.Assists),
				Win:          record.Win,
				ChampLevel:   int64(record.ChampLevel),
				Spell1ID:     int64(record.Spell1ID),
				Spell2ID:     int64(record.Spell2ID),
				Items:        string(items),
				GameCreation: record.Timestamp,
				CreatedAt:    now,
				UpdatedAt:    now,
			})
			if err != nil {
				return fmt.Errorf("failed to upsert match record %s: %w", record.MatchID, err)
			}
		}
	}

	return tx.Commit()
}

func (r *MatchRepository) HasCached(ctx context.Context, puuid string) (bool, error) {
	count, err := r.queries.CountMatchRecords(ctx, puuid)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MatchRepository) LatestGameCreation(ctx context.Context, puuid string) (int64, error) {
	ts, err := r.queries.GetLatestGameCreation(ctx, puuid)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return ts, nil
}

func (r *MatchRepository) toDomainRecord(row db.MatchRecord) domain.MatchRecord {
	var items []int
	if err := json.Unmarshal([]byte(row.Items), &items); err != nil {
		r.logger.Warn().Err(err).Str("match_id", row.MatchID).Msg("failed to decode cached items")
	}

	return domain.MatchRecord{
		MatchID:      row.MatchID,
		SummonerName: row.SummonerName,
		Champion:     row.Champion,
		Damage:       int(row.Damage),
		Gold:         int(row.Gold),
		CS:           int(row.Cs),
		Kills:        int(row.Kills),
		Deaths:       int(row.Deaths),
		Assists:      int(row.Assists),
		Win:          row.Win,
		Timestamp:    row.GameCreation,
		GameMode:     row.GameMode,
		MapName:      row.MapName,
		Items:        items,
		Spell1ID:     int(row.Spell1ID),
		Spell2ID:     int(row.Spell2ID),
		ChampLevel:   int(row.ChampLevel),
	}
}
