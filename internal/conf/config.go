package conf

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/lk2023060901/search-api-backend/internal/search/types"
)

type Config struct {
	Server    ServerConfig
	Log       LogConfig
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Search    SearchConfig
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Mode        string `mapstructure:"mode"`        // debug, release
	Environment string `mapstructure:"environment"` // deployment tag surfaced by /health
}

type LogConfig struct {
	Level            string        `mapstructure:"level"`
	Format           string        `mapstructure:"format"`
	Output           string        `mapstructure:"output"`
	File             FileLogConfig `mapstructure:"file"`
	EnableCaller     bool          `mapstructure:"enablecaller"`
	EnableStacktrace bool          `mapstructure:"enablestacktrace"`
}

type FileLogConfig struct {
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"maxsize"`
	MaxAge     int    `mapstructure:"maxage"`
	MaxBackups int    `mapstructure:"maxbackups"`
	Compress   bool   `mapstructure:"compress"`
}

type RateLimitConfig struct {
	WindowSeconds int `mapstructure:"window_seconds"`
	DefaultMax    int `mapstructure:"default_max"`
	SearchMax     int `mapstructure:"search_max"`      // GET /search
	SearchPathMax int `mapstructure:"search_path_max"` // GET /search/<query>
}

type SearchConfig struct {
	FallbackEnabled bool                 `mapstructure:"fallback_enabled"`
	Library         *types.LibraryConfig `mapstructure:"library"`
	Scrape          *types.ScrapeConfig  `mapstructure:"scrape"`
}

func LoadConfig(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("server.environment", "development")

	viper.SetDefault("ratelimit.window_seconds", 60)
	viper.SetDefault("ratelimit.default_max", 30)
	viper.SetDefault("ratelimit.search_max", 20)
	viper.SetDefault("ratelimit.search_path_max", 20)

	viper.SetDefault("search.fallback_enabled", true)
	viper.SetDefault("search.scrape.base_url", "https://www.google.com")
	viper.SetDefault("search.scrape.timeout", 10)
}
