package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Discovery  DiscoveryConfig  `mapstructure:"discovery"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Security   SecurityConfig   `mapstructure:"security"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig points at the external content catalog. An empty URL selects
// the embedded fixture catalog.
type DatabaseConfig struct {
	URL            string        `mapstructure:"url"`
	MaxConnections int           `mapstructure:"max_connections"`
	MaxIdleTime    time.Duration `mapstructure:"max_idle_time"`
	MaxLifetime    time.Duration `mapstructure:"max_lifetime"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// RedisConfig points at the durable state store. An empty URL selects the
// in-process store.
type RedisConfig struct {
	URL        string        `mapstructure:"url"`
	MaxRetries int           `mapstructure:"max_retries"`
	PoolSize   int           `mapstructure:"pool_size"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topics  struct {
		ClickEvents string `mapstructure:"click_events"`
	} `mapstructure:"topics"`
}

type AuthConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
	APIKeys   []string      `mapstructure:"api_keys"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DiscoveryConfig carries the engine tunables. Defaults mirror the engine's
// documented behavior; overriding them is an operational decision, not an API
// surface.
type DiscoveryConfig struct {
	Search         SearchConfig         `mapstructure:"search"`
	Recommendation RecommendationConfig `mapstructure:"recommendation"`
	Feed           FeedConfig           `mapstructure:"feed"`
	Trending       TrendingConfig       `mapstructure:"trending"`
}

type SearchConfig struct {
	DefaultLimit int `mapstructure:"default_limit"`
}

type RecommendationConfig struct {
	MaxResults              int     `mapstructure:"max_results"`
	CollaborativeConfidence float64 `mapstructure:"collaborative_confidence"`
	SimilarityConfidence    float64 `mapstructure:"similarity_confidence"`
	TimeContextConfidence   float64 `mapstructure:"time_context_confidence"`
	DeviceContextConfidence float64 `mapstructure:"device_context_confidence"`
	CollaborativeFetchLimit int     `mapstructure:"collaborative_fetch_limit"`
	SimilarityFetchLimit    int     `mapstructure:"similarity_fetch_limit"`
	TimeContextFetchLimit   int     `mapstructure:"time_context_fetch_limit"`
	DeviceContextFetchLimit int     `mapstructure:"device_context_fetch_limit"`
}

type FeedConfig struct {
	MaxResults            int     `mapstructure:"max_results"`
	TrendingWeight        float64 `mapstructure:"trending_weight"`
	PersonalizedWeight    float64 `mapstructure:"personalized_weight"`
	RecentlyWatchedWeight float64 `mapstructure:"recently_watched_weight"`
	TrendingQueryCount    int     `mapstructure:"trending_query_count"`
	TrendingFetchLimit    int     `mapstructure:"trending_fetch_limit"`
	RecentSeedCount       int     `mapstructure:"recent_seed_count"`
}

type TrendingConfig struct {
	MaxEntries      int `mapstructure:"max_entries"`
	MaxHistory      int `mapstructure:"max_history"`
	SuggestTrending int `mapstructure:"suggest_trending"`
	SuggestTitles   int `mapstructure:"suggest_titles"`
}

type MonitoringConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	MetricsPath string `mapstructure:"metrics_path"`
}

type SecurityConfig struct {
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

func Load() (*Config, error) {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	setDefaults()

	// Environment variable overrides
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional, continue with env vars and defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "development")

	// Database defaults
	viper.SetDefault("database.url", "")
	viper.SetDefault("database.max_connections", 25)
	viper.SetDefault("database.max_idle_time", "15m")
	viper.SetDefault("database.max_lifetime", "1h")
	viper.SetDefault("database.connect_timeout", "10s")

	// Redis defaults
	viper.SetDefault("redis.url", "")
	viper.SetDefault("redis.max_retries", 3)
	viper.SetDefault("redis.pool_size", 10)
	viper.SetDefault("redis.timeout", "5s")

	// Kafka defaults
	viper.SetDefault("kafka.topics.click_events", "discovery-click-events")

	// Auth defaults
	viper.SetDefault("auth.enabled", false)
	viper.SetDefault("auth.token_ttl", "24h")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")

	// Search defaults
	viper.SetDefault("discovery.search.default_limit", 20)

	// Recommendation defaults
	viper.SetDefault("discovery.recommendation.max_results", 20)
	viper.SetDefault("discovery.recommendation.collaborative_confidence", 0.8)
	viper.SetDefault("discovery.recommendation.similarity_confidence", 0.7)
	viper.SetDefault("discovery.recommendation.time_context_confidence", 0.6)
	viper.SetDefault("discovery.recommendation.device_context_confidence", 0.5)
	viper.SetDefault("discovery.recommendation.collaborative_fetch_limit", 10)
	viper.SetDefault("discovery.recommendation.similarity_fetch_limit", 10)
	viper.SetDefault("discovery.recommendation.time_context_fetch_limit", 5)
	viper.SetDefault("discovery.recommendation.device_context_fetch_limit", 3)

	// Feed defaults
	viper.SetDefault("discovery.feed.max_results", 30)
	viper.SetDefault("discovery.feed.trending_weight", 0.3)
	viper.SetDefault("discovery.feed.personalized_weight", 0.5)
	viper.SetDefault("discovery.feed.recently_watched_weight", 0.2)
	viper.SetDefault("discovery.feed.trending_query_count", 5)
	viper.SetDefault("discovery.feed.trending_fetch_limit", 5)
	viper.SetDefault("discovery.feed.recent_seed_count", 3)

	// Trending defaults
	viper.SetDefault("discovery.trending.max_entries", 50)
	viper.SetDefault("discovery.trending.max_history", 100)
	viper.SetDefault("discovery.trending.suggest_trending", 3)
	viper.SetDefault("discovery.trending.suggest_titles", 5)

	// Monitoring defaults
	viper.SetDefault("monitoring.enabled", true)
	viper.SetDefault("monitoring.metrics_path", "/metrics")

	// Security defaults
	viper.SetDefault("security.cors.allowed_origins", []string{"*"})
	viper.SetDefault("security.cors.allowed_methods", []string{"GET", "POST", "DELETE", "OPTIONS"})
	viper.SetDefault("security.cors.allowed_headers", []string{"*"})
}

// Defaults returns a Config populated with the standard engine tunables,
// bypassing file and environment lookup. Used by tests and embedded callers.
func Defaults() *Config {
	return &Config{
		Server:  ServerConfig{Port: "8080", Mode: "development"},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Discovery: DiscoveryConfig{
			Search: SearchConfig{DefaultLimit: 20},
			Recommendation: RecommendationConfig{
				MaxResults:              20,
				CollaborativeConfidence: 0.8,
				SimilarityConfidence:    0.7,
				TimeContextConfidence:   0.6,
				DeviceContextConfidence: 0.5,
				CollaborativeFetchLimit: 10,
				SimilarityFetchLimit:    10,
				TimeContextFetchLimit:   5,
				DeviceContextFetchLimit: 3,
			},
			Feed: FeedConfig{
				MaxResults:            30,
				TrendingWeight:        0.3,
				PersonalizedWeight:    0.5,
				RecentlyWatchedWeight: 0.2,
				TrendingQueryCount:    5,
				TrendingFetchLimit:    5,
				RecentSeedCount:       3,
			},
			Trending: TrendingConfig{
				MaxEntries:      50,
				MaxHistory:      100,
				SuggestTrending: 3,
				SuggestTitles:   5,
			},
		},
		Monitoring: MonitoringConfig{Enabled: true, MetricsPath: "/metrics"},
		Security: SecurityConfig{CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"*"},
		}},
	}
}
