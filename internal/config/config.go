package config

import (
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

type ServerConfig struct {
	Scheme string `koanf:"scheme" default:"http"`
	Port   int    `koanf:"port" default:"8089"`
	Host   string `koanf:"host" default:"localhost"`

	ReadTimeout     time.Duration `koanf:"read_timeout" default:"5s"`
	WriteTimeout    time.Duration `koanf:"write_timeout" default:"30s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" default:"30s"`

	AllowOrigins []string `koanf:"alloworigins" default:"[]"`
	HealthCheck  bool     `koanf:"health_check" default:"true"`
}

func (s *ServerConfig) GetServerURL() string {
	return s.Scheme + "://" + s.Host + ":" + strconv.Itoa(s.Port)
}

type APPConfig struct {
	Environtment string        `koanf:"environtment" default:"development"`
	LogLevel     zerolog.Level `koanf:"log_level" default:"debug"`
}

// FetcherConfig bounds the single page fetch performed per scan.
type FetcherConfig struct {
	MaxRedirects int           `koanf:"max_redirects" default:"10"`
	MaxSize      int           `koanf:"max_size" default:"1048576"`
	UserAgent    string        `koanf:"user_agent" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"`
	TimeOut      time.Duration `koanf:"timeout" default:"10s"`
}

// ListsConfig holds the reference data every scan is matched against.
// Lists are data, not code: all of them can be replaced from the config
// file without touching the checks that consume them.
type ListsConfig struct {
	// Whitelist entries match the normalized domain exactly or any of its
	// parent label suffixes (a "gov.example" entry covers "a.gov.example").
	Whitelist []string `koanf:"whitelist" default:"[\"google.com\",\"facebook.com\",\"instagram.com\",\"apple.com\",\"microsoft.com\",\"amazon.com\",\"wikipedia.org\",\"github.com\"]"`

	// Blacklist entries match the normalized domain exactly.
	Blacklist []string `koanf:"blacklist" default:"[\"mvdlstw.net\"]"`

	// KnownDomains is the typo-similarity reference set. Exact members are
	// legitimate; near misses are typosquatting candidates.
	KnownDomains []string `koanf:"known_domains" default:"[\"google.com\",\"facebook.com\",\"instagram.com\",\"apple.com\",\"microsoft.com\",\"amazon.com\",\"paypal.com\",\"netflix.com\",\"github.com\",\"wikipedia.org\"]"`

	SuspiciousTLDs []string `koanf:"suspicious_tlds" default:"[\".xyz\",\".top\",\".club\",\".site\",\".online\",\".buzz\",\".info\",\".cn\",\".ru\"]"`

	Keywords []string `koanf:"keywords" default:"[\"login\",\"secure\",\"account\",\"update\",\"verify\",\"password\",\"signin\",\"banking\",\"confirm\"]"`

	// ReloadCron re-reads the config file and rebuilds the lists on a
	// schedule while serving. Empty disables reloading.
	ReloadCron string `koanf:"reload_cron" default:""`
}

// ScoringConfig carries every tunable weight and threshold of the scorer.
// Each weight belongs to exactly one check; changing a value never changes
// control flow.
type ScoringConfig struct {
	WeightBlacklisted   int `koanf:"weight_blacklisted" default:"100"`
	WeightUnparsableURL int `koanf:"weight_unparsable_url" default:"70"`
	WeightTyposquat     int `koanf:"weight_typosquat" default:"40"`
	WeightIPHost        int `koanf:"weight_ip_host" default:"30"`
	WeightPasswordField int `koanf:"weight_password_field" default:"30"`
	WeightNoHTTPS       int `koanf:"weight_no_https" default:"25"`
	WeightSuspiciousTLD int `koanf:"weight_suspicious_tld" default:"20"`
	WeightAtSymbol      int `koanf:"weight_at_symbol" default:"20"`
	WeightKeyword       int `koanf:"weight_keyword" default:"15"`
	WeightLongURL       int `koanf:"weight_long_url" default:"10"`

	LongURLThreshold int `koanf:"long_url_threshold" default:"75"`
	TypoMaxDistance  int `koanf:"typo_max_distance" default:"2"`

	WarningThreshold int `koanf:"warning_threshold" default:"70"`
	CautionThreshold int `koanf:"caution_threshold" default:"40"`
}

type Config struct {
	APP     APPConfig
	Server  ServerConfig
	Fetcher FetcherConfig
	Lists   ListsConfig
	Scoring ScoringConfig
}
