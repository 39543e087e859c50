package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/funfight/challenge-tracker/internal/constants"
)

func TestLoad_CacheTTL(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "test-key")
	t.Setenv("CACHE_TTL", "90s")

	cfg, err := Load(zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, 90*time.Second, cfg.CacheTTL)
}

func TestLoad_CacheTTLInvalidFallsBack(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "test-key")
	t.Setenv("CACHE_TTL", "soon")

	cfg, err := Load(zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, constants.DefaultCacheTTL, cfg.CacheTTL)
}

func TestLoad_RequiresAPIKey(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "")

	_, err := Load(zerolog.Nop())
	require.Error(t, err)
}
