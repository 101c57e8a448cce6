// Load envs from .env
// Load YAML config
// Override with env vars
// Provide default values

package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	APIBaseURL     string `yaml:"api_base_url" env:"JOBTRACK_API_URL"`
	TokenPath      string `yaml:"token_path" env:"JOBTRACK_TOKEN_PATH"`
	CachePath      string `yaml:"cache_path" env:"JOBTRACK_CACHE_PATH"`
	RequestTimeout int    `yaml:"request_timeout_seconds"`
	//Follow-up reminders (optional)
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	ReminderDays   int    `yaml:"reminder_days"`
}

// ReminderConfigured reports whether the optional Telegram channel is set up.
func (c *Config) ReminderConfigured() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	//Load yaml config
	path := os.Getenv("JOBTRACK_CONFIG")
	if path == "" {
		path = filepath.Join(configDir(), "config.yaml")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Could not read %s: %v", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", path, err)
		}
	}

	//Override with env vars
	if u := os.Getenv("JOBTRACK_API_URL"); u != "" {
		cfg.APIBaseURL = u
	}
	if p := os.Getenv("JOBTRACK_TOKEN_PATH"); p != "" {
		cfg.TokenPath = p
	}
	if p := os.Getenv("JOBTRACK_CACHE_PATH"); p != "" {
		cfg.CachePath = p
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:8000"
	}
	if cfg.TokenPath == "" {
		cfg.TokenPath = filepath.Join(configDir(), "token")
	}
	if cfg.CachePath == "" {
		cfg.CachePath = filepath.Join(configDir(), "cache")
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30
	}
	if cfg.ReminderDays <= 0 {
		cfg.ReminderDays = 3
	}

	return cfg
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jobtrack"
	}
	return filepath.Join(home, ".jobtrack")
}
