package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"

	"homebook/services/booking"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Session storage: "memory" or "redis".
	SessionStore      string `mapstructure:"SESSION_STORE"`
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Simulation pacing, in milliseconds unless noted.
	DiscoveryCallingMs          int64 `mapstructure:"DISCOVERY_CALLING_MS"`
	DiscoveryTickMs             int64 `mapstructure:"DISCOVERY_TICK_MS"`
	DiscoveryNegotiatingStartMs int64 `mapstructure:"DISCOVERY_NEGOTIATING_START_MS"`
	DiscoveryDoneStartMs        int64 `mapstructure:"DISCOVERY_DONE_START_MS"`
	DiscoveryPriceRevealMs      int64 `mapstructure:"DISCOVERY_PRICE_REVEAL_MS"`
	DiscoveryPriceStep          int   `mapstructure:"DISCOVERY_PRICE_STEP"`
	TrackingTickMs              int64 `mapstructure:"TRACKING_TICK_MS"`
	ConversationIntroDelayMs    int64 `mapstructure:"CONVERSATION_INTRO_DELAY_MS"`

	// 0 seeds from the wall clock.
	RandomSeed int64 `mapstructure:"RANDOM_SEED"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("SESSION_STORE", "memory")
	v.SetDefault("SESSION_TTL_MINUTES", 30)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_SESSION_DB", 0)
	v.SetDefault("DISCOVERY_CALLING_MS", 1600)
	v.SetDefault("DISCOVERY_TICK_MS", 100)
	v.SetDefault("DISCOVERY_NEGOTIATING_START_MS", 2000)
	v.SetDefault("DISCOVERY_DONE_START_MS", 4000)
	v.SetDefault("DISCOVERY_PRICE_REVEAL_MS", 1200)
	v.SetDefault("DISCOVERY_PRICE_STEP", 5)
	v.SetDefault("TRACKING_TICK_MS", 8000)
	v.SetDefault("CONVERSATION_INTRO_DELAY_MS", 700)
	v.SetDefault("RANDOM_SEED", 0)
}

func LoadConfig() {
	if err := load(viper.GetViper(), &AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func load(v *viper.Viper, cfg *Config) error {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}
	if err := v.Unmarshal(cfg); err != nil {
		return err
	}
	return cfg.validate()
}

// validate rejects pacing that would make discovery skip a phase.
func (c Config) validate() error {
	if c.DiscoveryCallingMs <= 0 || c.DiscoveryTickMs <= 0 || c.TrackingTickMs <= 0 {
		return fmt.Errorf("DISCOVERY_CALLING_MS, DISCOVERY_TICK_MS and TRACKING_TICK_MS must be positive")
	}
	if c.DiscoveryNegotiatingStartMs >= c.DiscoveryDoneStartMs {
		return fmt.Errorf("DISCOVERY_NEGOTIATING_START_MS (%d) must be below DISCOVERY_DONE_START_MS (%d)",
			c.DiscoveryNegotiatingStartMs, c.DiscoveryDoneStartMs)
	}
	return nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// Simulation converts the pacing keys into booking settings.
func (c Config) Simulation() booking.Settings {
	ms := func(n int64) time.Duration { return time.Duration(n) * time.Millisecond }
	return booking.Settings{
		Discovery: booking.DiscoveryTimings{
			CallingDurationMs:  c.DiscoveryCallingMs,
			NegotiatingStartMs: c.DiscoveryNegotiatingStartMs,
			DoneStartMs:        c.DiscoveryDoneStartMs,
			PriceRevealMs:      c.DiscoveryPriceRevealMs,
		},
		DiscoveryTick: ms(c.DiscoveryTickMs),
		PriceStep:     c.DiscoveryPriceStep,
		TrackingTick:  ms(c.TrackingTickMs),
		IntroDelay:    ms(c.ConversationIntroDelayMs),
		SessionTTL:    time.Duration(c.SessionTTLMinutes) * time.Minute,
		RandomSeed:    c.RandomSeed,
	}
}
