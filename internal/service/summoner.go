package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/funfight/challenge-tracker/internal/config"
	"github.com/funfight/challenge-tracker/internal/constants"
	"github.com/funfight/challenge-tracker/internal/domain"
	"github.com/funfight/challenge-tracker/internal/repository"
	"github.com/funfight/challenge-tracker/internal/riot"
)

type SummonerService struct {
	riot     *riot.Client
	repo     *repository.SummonerRepository
	cacheTTL time.Duration
	logger   zerolog.Logger
}

func NewSummonerService(client *riot.Client, repo *repository.SummonerRepository, cfg *config.Config, logger zerolog.Logger) *SummonerService {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = constants.DefaultCacheTTL
	}
	return &SummonerService{riot: client, repo: repo, cacheTTL: ttl, logger: logger}
}

// Search resolves "name#tag" input to a summoner profile, cache-first with
// a TTL so repeated lookups during registration don't hit the Riot bucket.
func (s *SummonerService) Search(ctx context.Context, riotID string) (*domain.Summoner, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	gameName, tagLine := riot.ParseRiotID(riotID, constants.DefaultTagLine)
	if gameName == "" {
		return nil, ErrEmptyName
	}

	s.logger.Info().Str("name", gameName).Str("tag", tagLine).Msg("searching summoner")

	cached, err := s.repo.GetByNameTag(ctx, gameName, tagLine)
	if err == nil && cached != nil {
		shouldRefresh, err := s.repo.ShouldRefresh(ctx, cached.Puuid, s.cacheTTL)
		if err != nil {
			return nil, err
		}
		if !shouldRefresh {
			s.logger.Debug().Str("puuid", cached.Puuid).Msg("returning cached summoner")
			return cached, nil
		}
	}

	apiCtx, apiCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer apiCancel()

	account, err := s.riot.GetAccountByRiotID(apiCtx, gameName, tagLine)
	if err != nil {
		s.logger.Error().Err(err).Str("name", gameName).Str("tag", tagLine).Msg("failed to fetch account")
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}

	profile, err := s.riot.GetSummonerByPUUID(apiCtx, account.Puuid)
	if err != nil {
		s.logger.Error().Err(err).Str("puuid", account.Puuid).Msg("failed to fetch summoner profile")
		return nil, fmt.Errorf("failed to fetch summoner profile: %w", err)
	}

	summoner := &domain.Summoner{
		Name:          account.GameName,
		Tag:           account.TagLine,
		Puuid:         account.Puuid,
		ProfileIconID: profile.ProfileIconID,
		SummonerLevel: profile.SummonerLevel,
	}

	if err := s.repo.Upsert(ctx, summoner); err != nil {
		s.logger.Error().Err(err).Str("puuid", summoner.Puuid).Msg("failed to cache summoner")
		return nil, fmt.Errorf("failed to cache summoner: %w", err)
	}

	s.logger.Info().Str("puuid", summoner.Puuid).Msg("summoner fetched successfully")
	return summoner, nil
}

// Suggestions matches previously seen summoners against a partial query.
// The LIKE scan narrows candidates, fuzzy ranking orders them.
func (s *SummonerService) Suggestions(ctx context.Context, query string) ([]domain.Summoner, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Summoner{}, nil
	}

	candidates, err := s.repo.Search(ctx, query, constants.SearchSuggestionLimit)
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("failed to search summoners")
		return nil, err
	}

	rankSuggestions(query, candidates)

	s.logger.Debug().Int("count", len(candidates)).Str("query", query).Msg("suggestion search completed")
	return candidates, nil
}

// rankSuggestions orders candidates by fuzzy closeness of their name to the
// query. The LIKE scan also matches on tag, so a candidate whose name the
// query does not fuzzy-match at all ranks behind every genuine match.
func rankSuggestions(query string, candidates []domain.Summoner) {
	rank := func(name string) int {
		r := fuzzy.RankMatchNormalizedFold(query, name)
		if r < 0 {
			return math.MaxInt
		}
		return r
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return rank(candidates[i].Name) < rank(candidates[j].Name)
	})
}

// RecentTeammates pulls summoners who shared a team with the given puuid
// over the last few matches, for quick registration.
func (s *SummonerService) RecentTeammates(ctx context.Context, puuid string) ([]domain.Summoner, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	matchIDs, err := s.riot.GetMatchIDsByPUUID(ctx, puuid, constants.RecentPlayersMatchCount)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match ids: %w", err)
	}
	if len(matchIDs) == 0 {
		return []domain.Summoner{}, nil
	}

	seen := make(map[string]bool)
	var teammates []domain.Summoner

	for _, matchID := range matchIDs {
		match, err := s.riot.GetMatchByID(ctx, matchID)
		if err != nil {
			s.logger.Warn().Err(err).Str("match_id", matchID).Msg("failed to fetch match, skipping")
			continue
		}

		teamID := -1
		for _, p := range match.Info.Participants {
			if p.Puuid == puuid {
				teamID = p.TeamID
				break
			}
		}
		if teamID < 0 {
			continue
		}

		for _, p := range match.Info.Participants {
			if p.TeamID != teamID || p.Puuid == puuid || seen[p.Puuid] {
				continue
			}
			seen[p.Puuid] = true

			name := p.RiotIDGameName
			if name == "" {
				name = p.SummonerName
			}
			teammates = append(teammates, domain.Summoner{
				Name:  name,
				Tag:   p.RiotIDTagline,
				Puuid: p.Puuid,
			})
			if len(teammates) >= constants.RecentPlayersLimit {
				break
			}
		}
		if len(teammates) >= constants.RecentPlayersLimit {
			break
		}
	}

	s.enrichProfiles(ctx, teammates)
	return teammates, nil
}

// enrichProfiles fills icon and level per teammate, cached profile first,
// live fetch otherwise, best effort. A failed fetch leaves the stub as-is.
func (s *SummonerService) enrichProfiles(ctx context.Context, summoners []domain.Summoner) {
	g, gCtx := errgroup.WithContext(ctx)
	for i := range summoners {
		g.Go(func() error {
			if cached, err := s.repo.GetByPuuid(gCtx, summoners[i].Puuid); err == nil {
				summoners[i].ProfileIconID = cached.ProfileIconID
				summoners[i].SummonerLevel = cached.SummonerLevel
				return nil
			}

			profile, err := s.riot.GetSummonerByPUUID(gCtx, summoners[i].Puuid)
			if err != nil {
				s.logger.Warn().Err(err).Str("puuid", summoners[i].Puuid).Msg("failed to fetch teammate profile")
				return nil
			}
			summoners[i].ProfileIconID = profile.ProfileIconID
			summoners[i].SummonerLevel = profile.SummonerLevel
			return nil
		})
	}
	_ = g.Wait()
}
