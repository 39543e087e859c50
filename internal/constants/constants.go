package constants

import "time"

const (
	// fallback when CACHE_TTL is unset or unparseable
	DefaultCacheTTL = 5 * time.Minute
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second

	// pause between sequential match detail fetches, keeps the Riot
	// per-second bucket happy
	MatchFetchDelay = 100 * time.Millisecond
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBBatchSize       = 100
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	MaxSummoners = 5
	MinSummoners = 2

	DefaultTagLine = "KR1"

	DefaultMatchCount       = 20
	SearchSuggestionLimit   = 10
	RecentPlayersMatchCount = 3
	RecentPlayersLimit      = 10
)
