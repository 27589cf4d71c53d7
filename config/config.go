package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// DefaultUserAgent is sent with every session and ping request
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"

// Config holds all configuration for the keepalive service
type Config struct {
	Heartbeat HeartbeatConfig
	Accounts  AccountsConfig
	Telegram  TelegramConfig
	Logging   LoggingConfig
	Service   ServiceConfig
}

// HeartbeatConfig holds session and ping endpoint configuration
type HeartbeatConfig struct {
	SessionURL     string
	PingURL        string
	RetryInterval  time.Duration
	RequestTimeout time.Duration
	UserAgent      string
	PinFallbackIDs bool
}

// AccountsConfig holds account tokens and their optional proxies.
// Proxies[i] belongs to Tokens[i]; missing or empty entries mean direct.
type AccountsConfig struct {
	Tokens  []string
	Proxies []string
}

// TelegramConfig holds Telegram notifier configuration
type TelegramConfig struct {
	Enabled    bool
	BotToken   string
	ChatID     string
	APIURL     string
	RatePerSec float64
	Burst      int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
	File  string
}

// ServiceConfig holds service configuration
type ServiceConfig struct {
	Name string
	Port string
}

// Result provides config parts for fx dependency injection using fx.Out pattern
type Result struct {
	fx.Out

	Config    *Config
	Heartbeat *HeartbeatConfig
	Accounts  *AccountsConfig
	Telegram  *TelegramConfig
	Logging   *LoggingConfig
	Service   *ServiceConfig
}

// Out loads configuration and returns Result for fx injection
func Out() (Result, error) {
	cfg, err := Load()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Config:    cfg,
		Heartbeat: &cfg.Heartbeat,
		Accounts:  &cfg.Accounts,
		Telegram:  &cfg.Telegram,
		Logging:   &cfg.Logging,
		Service:   &cfg.Service,
	}, nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	retryMillis, err := strconv.Atoi(getEnv("RETRY_INTERVAL", "30000"))
	if err != nil || retryMillis <= 0 {
		return nil, fmt.Errorf("invalid RETRY_INTERVAL: must be a positive number of milliseconds")
	}

	requestTimeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}

	pinIDs, err := strconv.ParseBool(getEnv("PIN_FALLBACK_IDS", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid PIN_FALLBACK_IDS: %w", err)
	}

	tgEnabled, err := strconv.ParseBool(getEnv("TELEGRAM_ENABLE_BOT", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_ENABLE_BOT: %w", err)
	}

	ratePerSec, err := strconv.ParseFloat(getEnv("TELEGRAM_RATE_PER_SEC", "1"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_RATE_PER_SEC: %w", err)
	}

	burst, err := strconv.Atoi(getEnv("TELEGRAM_BURST", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_BURST: %w", err)
	}

	tokens, err := loadList(getEnv("TOKENS", ""), getEnv("TOKENS_FILE", ""))
	if err != nil {
		return nil, fmt.Errorf("failed to load tokens: %w", err)
	}

	proxies, err := loadProxies(getEnv("PROXIES", ""), getEnv("PROXIES_FILE", ""))
	if err != nil {
		return nil, fmt.Errorf("failed to load proxies: %w", err)
	}

	cfg := &Config{
		Heartbeat: HeartbeatConfig{
			SessionURL:     getEnv("SESSION_URL", "https://api.nodepay.ai/api/auth/session"),
			PingURL:        getEnv("PING_URL", "https://nw.nodepay.ai/api/network/ping"),
			RetryInterval:  time.Duration(retryMillis) * time.Millisecond,
			RequestTimeout: requestTimeout,
			UserAgent:      getEnv("USER_AGENT", DefaultUserAgent),
			PinFallbackIDs: pinIDs,
		},
		Accounts: AccountsConfig{
			Tokens:  tokens,
			Proxies: proxies,
		},
		Telegram: TelegramConfig{
			Enabled:    tgEnabled,
			BotToken:   getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatID:     getEnv("TELEGRAM_CHAT_ID", ""),
			APIURL:     getEnv("TELEGRAM_API_URL", "https://api.telegram.org"),
			RatePerSec: ratePerSec,
			Burst:      burst,
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
		Service: ServiceConfig{
			Name: getEnv("SERVICE_NAME", "keepalive-service"),
			Port: os.Getenv("SERVICE_PORT"),
		},
	}
	if _, set := os.LookupEnv("SERVICE_PORT"); !set {
		cfg.Service.Port = "8085"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Heartbeat.SessionURL == "" {
		return fmt.Errorf("SESSION_URL is required")
	}

	if c.Heartbeat.PingURL == "" {
		return fmt.Errorf("PING_URL is required")
	}

	if len(c.Accounts.Tokens) == 0 {
		return fmt.Errorf("TOKENS or TOKENS_FILE is required")
	}

	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("TELEGRAM_BOT_TOKEN is required when TELEGRAM_ENABLE_BOT is set")
		}
		if c.Telegram.ChatID == "" {
			return fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_ENABLE_BOT is set")
		}
	}

	return nil
}

// loadList merges a comma separated value with the lines of an optional file.
// Blank lines and lines starting with # are skipped.
func loadList(inline, path string) ([]string, error) {
	items := []string{}
	for _, item := range strings.Split(inline, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	if path == "" {
		return items, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, line)
	}

	return items, scanner.Err()
}

// loadProxies is loadList for proxies, which pair with tokens by position:
// blank entries are kept as "no proxy" so later entries stay aligned.
// Only lines starting with # are skipped in the file.
func loadProxies(inline, path string) ([]string, error) {
	items := []string{}
	if strings.TrimSpace(inline) != "" {
		for _, item := range strings.Split(inline, ",") {
			items = append(items, strings.TrimSpace(item))
		}
	}

	if path == "" {
		return items, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, line)
	}

	return items, scanner.Err()
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
