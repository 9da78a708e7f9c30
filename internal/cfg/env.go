package cfg

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type ExtractorMode string

const (
	ExtractorHeuristic ExtractorMode = "heuristic"
	ExtractorModel     ExtractorMode = "model"
)

func (m ExtractorMode) Validate() error {
	switch m {
	case ExtractorHeuristic, ExtractorModel:
		return nil
	default:
		return fmt.Errorf("invalid extractor mode: %q", string(m))
	}
}

type Port int

func (p Port) String() string {
	return fmt.Sprintf(":%d", p)
}

type OpenAI struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	Model   string `env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
	BaseURL string `env:"OPENAI_BASE_URL"`
}

type Telegram struct {
	BotToken string `env:"TELEGRAM_BOT_TOKEN" env-required:"true"`
	ChatID   string `env:"TELEGRAM_CHAT_ID" env-required:"true"`
	APIRoot  string `env:"TELEGRAM_API_ROOT" env-default:"https://api.telegram.org"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}

type Config struct {
	ApiPort           Port          `env:"API_PORT" env-default:"5000"`
	ExtractorMode     ExtractorMode `env:"EXTRACTOR_MODE" env-default:"heuristic"`
	HTTPClientTimeout time.Duration `env:"HTTP_CLIENT_TIMEOUT" env-default:"30s"`
	OpenAI            OpenAI
	Telegram          Telegram
	Log               Log
}

// Validate checks the cross-field rules cleanenv tags cannot express.
func (c Config) Validate() error {
	if err := c.ExtractorMode.Validate(); err != nil {
		return err
	}

	if c.ExtractorMode == ExtractorModel && strings.TrimSpace(c.OpenAI.APIKey) == "" {
		return fmt.Errorf("OPENAI_API_KEY is required when EXTRACTOR_MODE=%s", ExtractorModel)
	}

	if strings.TrimSpace(c.Telegram.BotToken) == "" || strings.TrimSpace(c.Telegram.ChatID) == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID are required")
	}

	if c.ApiPort <= 0 || c.ApiPort > 65535 {
		return fmt.Errorf("invalid API_PORT: %d", c.ApiPort)
	}

	if c.HTTPClientTimeout <= 0 {
		return fmt.Errorf("HTTP_CLIENT_TIMEOUT must be positive")
	}

	return nil
}

// Load reads the process environment once and validates the result.
func Load() (Config, error) {
	var c Config
	if err := cleanenv.ReadEnv(&c); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}
