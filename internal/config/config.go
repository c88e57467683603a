package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "TRENDS_CONFIG"
	listenAddrEnv     = "TRENDS_LISTEN_ADDR"
	logLevelEnv       = "TRENDS_LOG_LEVEL"
	telegramTokenEnv  = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv = "TELEGRAM_CHAT_ID"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging        LoggingConfig        `yaml:"logging"`
	Server         ServerConfig         `yaml:"server"`
	Pipeline       PipelineConfig       `yaml:"pipeline"`
	Sources        SourcesConfig        `yaml:"sources"`
	Refresh        RefreshConfig        `yaml:"refresh"`
	Notifications  NotificationConfig   `yaml:"notifications"`
	Regions        []RegionConfig       `yaml:"regions"`
	Cities         []CityConfig         `yaml:"cities"`
	ChartCountries []ChartCountryConfig `yaml:"chartCountries"`
}

// LoggingConfig selects log verbosity and output shape.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ServerConfig describes the HTTP responder surface.
type ServerConfig struct {
	ListenAddr      string `yaml:"listenAddr"`
	CacheTTLSeconds int    `yaml:"cacheTtlSeconds"`
}

// CacheTTL resolves the snapshot cache lifetime.
func (s ServerConfig) CacheTTL() time.Duration {
	if s.CacheTTLSeconds <= 0 {
		return time.Hour
	}
	return time.Duration(s.CacheTTLSeconds) * time.Second
}

// PipelineConfig bounds how an aggregation cycle executes.
type PipelineConfig struct {
	FetchConcurrency    int `yaml:"fetchConcurrency"`
	FetchTimeoutSeconds int `yaml:"fetchTimeoutSeconds"`
	CycleTimeoutSeconds int `yaml:"cycleTimeoutSeconds"`
}

// FetchTimeout bounds a single upstream request.
func (p PipelineConfig) FetchTimeout() time.Duration {
	if p.FetchTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(p.FetchTimeoutSeconds) * time.Second
}

// CycleTimeout bounds one full snapshot build.
func (p PipelineConfig) CycleTimeout() time.Duration {
	if p.CycleTimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(p.CycleTimeoutSeconds) * time.Second
}

// SourcesConfig points the pipeline at its upstream endpoints. Base URLs are
// overridable so tests can target local fixture servers.
type SourcesConfig struct {
	TrendsBaseURL string       `yaml:"trendsBaseUrl"`
	NewsBaseURL   string       `yaml:"newsBaseUrl"`
	ChartBaseURL  string       `yaml:"chartBaseUrl"`
	UserAgent     string       `yaml:"userAgent"`
	NewsLocale    LocaleConfig `yaml:"newsLocale"`
}

// LocaleConfig parameterizes the syndication search endpoint.
type LocaleConfig struct {
	HL   string `yaml:"hl"`
	GL   string `yaml:"gl"`
	CEID string `yaml:"ceid"`
}

// RefreshConfig defines the optional background refresh schedule.
type RefreshConfig struct {
	CronExpression string `yaml:"cronExpression"`
}

// NotificationConfig encapsulates outbound channels (Telegram, etc.).
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send digests.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// RegionConfig declares one tracked market.
type RegionConfig struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Geo     string   `yaml:"geo"`
	Flag    string   `yaml:"flag"`
	Artists []string `yaml:"artists"`
}

// CityConfig declares one audience city card.
type CityConfig struct {
	Name      string `yaml:"name"`
	Flag      string `yaml:"flag"`
	TopArtist string `yaml:"topArtist"`
	Searches  string `yaml:"searches"`
}

// ChartCountryConfig declares one chart page to scrape.
type ChartCountryConfig struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
	Flag string `yaml:"flag"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(listenAddrEnv); v != "" {
		c.Server.ListenAddr = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}

	if v := os.Getenv(telegramChatIDEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Server.ListenAddr != "" {
		base.Server.ListenAddr = override.Server.ListenAddr
	}
	if override.Server.CacheTTLSeconds > 0 {
		base.Server.CacheTTLSeconds = override.Server.CacheTTLSeconds
	}

	if override.Pipeline.FetchConcurrency > 0 {
		base.Pipeline.FetchConcurrency = override.Pipeline.FetchConcurrency
	}
	if override.Pipeline.FetchTimeoutSeconds > 0 {
		base.Pipeline.FetchTimeoutSeconds = override.Pipeline.FetchTimeoutSeconds
	}
	if override.Pipeline.CycleTimeoutSeconds > 0 {
		base.Pipeline.CycleTimeoutSeconds = override.Pipeline.CycleTimeoutSeconds
	}

	if override.Sources.TrendsBaseURL != "" {
		base.Sources.TrendsBaseURL = override.Sources.TrendsBaseURL
	}
	if override.Sources.NewsBaseURL != "" {
		base.Sources.NewsBaseURL = override.Sources.NewsBaseURL
	}
	if override.Sources.ChartBaseURL != "" {
		base.Sources.ChartBaseURL = override.Sources.ChartBaseURL
	}
	if override.Sources.UserAgent != "" {
		base.Sources.UserAgent = override.Sources.UserAgent
	}
	if override.Sources.NewsLocale.HL != "" {
		base.Sources.NewsLocale.HL = override.Sources.NewsLocale.HL
	}
	if override.Sources.NewsLocale.GL != "" {
		base.Sources.NewsLocale.GL = override.Sources.NewsLocale.GL
	}
	if override.Sources.NewsLocale.CEID != "" {
		base.Sources.NewsLocale.CEID = override.Sources.NewsLocale.CEID
	}

	if override.Refresh.CronExpression != "" {
		base.Refresh.CronExpression = override.Refresh.CronExpression
	}

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != "" {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}

	if len(override.Regions) > 0 {
		base.Regions = override.Regions
	}
	if len(override.Cities) > 0 {
		base.Cities = override.Cities
	}
	if len(override.ChartCountries) > 0 {
		base.ChartCountries = override.ChartCountries
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Server: ServerConfig{
			ListenAddr:      ":8080",
			CacheTTLSeconds: 3600,
		},
		Pipeline: PipelineConfig{
			FetchConcurrency:    4,
			FetchTimeoutSeconds: 10,
			CycleTimeoutSeconds: 60,
		},
		Sources: SourcesConfig{
			TrendsBaseURL: "https://trends.google.com",
			NewsBaseURL:   "https://news.google.com",
			ChartBaseURL:  "https://kworb.net",
			UserAgent:     "Mozilla/5.0 (compatible; africa-trends-live/1.0)",
			NewsLocale:    LocaleConfig{HL: "en-NG", GL: "NG", CEID: "NG:en"},
		},
		Refresh: RefreshConfig{CronExpression: "@hourly"},
	}
}
