package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/funfight/challenge-tracker/internal/config"
	"github.com/funfight/challenge-tracker/internal/constants"
	"github.com/funfight/challenge-tracker/internal/domain"
	"github.com/funfight/challenge-tracker/internal/repository"
	"github.com/funfight/challenge-tracker/internal/riot"
)

type MatchService struct {
	riot         *riot.Client
	matchRepo    *repository.MatchRepository
	summonerRepo *repository.SummonerRepository
	cacheTTL     time.Duration
	logger       zerolog.Logger
}

func NewMatchService(client *riot.Client, matchRepo *repository.MatchRepository, summonerRepo *repository.SummonerRepository, cfg *config.Config, logger zerolog.Logger) *MatchService {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = constants.DefaultCacheTTL
	}
	return &MatchService{riot: client, matchRepo: matchRepo, summonerRepo: summonerRepo, cacheTTL: ttl, logger: logger}
}

// FetchMatches returns a summoner's recent match records, cache-first.
// A live fetch walks the match-ID list sequentially with a small delay per
// detail call and stops once it reaches the newest game already cached,
// failed individual matches are skipped rather than failing the whole
// batch.
func (s *MatchService) FetchMatches(ctx context.Context, puuid string, count int, refresh bool) ([]domain.MatchRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if count <= 0 {
		count = constants.DefaultMatchCount
	}

	if !refresh {
		cached, err := s.matchRepo.HasCached(ctx, puuid)
		if err != nil {
			return nil, err
		}
		if cached {
			stale, err := s.summonerRepo.ShouldRefresh(ctx, puuid, s.cacheTTL)
			if err != nil {
				return nil, err
			}
			if !stale {
				s.logger.Debug().Str("puuid", puuid).Msg("returning cached matches")
				return s.matchRepo.GetByPuuid(ctx, puuid, count)
			}
		}
	}

	s.logger.Info().Str("puuid", puuid).Int("count", count).Msg("fetching matches from Riot API")

	matchIDs, err := s.riot.GetMatchIDsByPUUID(ctx, puuid, count)
	if err != nil {
		s.logger.Error().Err(err).Str("puuid", puuid).Msg("failed to fetch match ids")
		return nil, fmt.Errorf("failed to fetch match ids: %w", err)
	}
	if len(matchIDs) == 0 {
		return []domain.MatchRecord{}, nil
	}

	latest, err := s.matchRepo.LatestGameCreation(ctx, puuid)
	if err != nil {
		return nil, err
	}

	matches := make([]*riot.Match, 0, len(matchIDs))
	for i, matchID := range matchIDs {
		match, err := s.riot.GetMatchByID(ctx, matchID)
		if err != nil {
			s.logger.Warn().Err(err).Str("match_id", matchID).Msg("failed to fetch match, skipping")
			continue
		}
		// match IDs arrive newest first, everything at or below the latest
		// cached game is already stored
		if latest > 0 && match.Info.GameCreation <= latest {
			s.logger.Debug().Str("puuid", puuid).Str("match_id", matchID).Msg("reached cached history, stopping fetch")
			break
		}
		matches = append(matches, match)

		if i < len(matchIDs)-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(constants.MatchFetchDelay):
			}
		}
	}

	records := riot.ToMatchRecords(matches, puuid)
	if len(records) > 0 {
		if err := s.matchRepo.UpsertBatch(ctx, puuid, records); err != nil {
			s.logger.Error().Err(err).Str("puuid", puuid).Msg("failed to cache match records")
			return nil, fmt.Errorf("failed to cache match records: %w", err)
		}
	}
	if err := s.summonerRepo.SetLastFetchAt(ctx, puuid, time.Now()); err != nil {
		s.logger.Warn().Err(err).Str("puuid", puuid).Msg("failed to update last fetch time")
	}

	s.logger.Info().Str("puuid", puuid).Int("records", len(records)).Msg("matches fetched successfully")
	return s.matchRepo.GetByPuuid(ctx, puuid, count)
}

// SummonerMatches pairs one summoner with their fetched history.
type SummonerMatches struct {
	Summoner domain.Summoner      `json:"summoner"`
	Matches  []domain.MatchRecord `json:"matches"`
}

// FetchForSummoners fans out across all registered summoners and collects
// whatever succeeded. One summoner failing does not sink the rest.
func (s *MatchService) FetchForSummoners(ctx context.Context, summoners []domain.Summoner, count int) []SummonerMatches {
	results := make([]*SummonerMatches, len(summoners))

	g, gCtx := errgroup.WithContext(ctx)
	for i, summoner := range summoners {
		if summoner.Puuid == "" {
			s.logger.Warn().Str("name", summoner.Name).Msg("summoner has no puuid, skipping")
			continue
		}
		g.Go(func() error {
			records, err := s.FetchMatches(gCtx, summoner.Puuid, count, false)
			if err != nil {
				s.logger.Error().Err(err).Str("name", summoner.Name).Msg("failed to fetch summoner matches")
				return nil
			}
			results[i] = &SummonerMatches{Summoner: summoner, Matches: records}
			return nil
		})
	}
	_ = g.Wait()

	collected := make([]SummonerMatches, 0, len(summoners))
	for _, r := range results {
		if r != nil {
			collected = append(collected, *r)
		}
	}
	return collected
}
