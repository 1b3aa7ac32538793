package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/viper"
)

var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

const (
	DefaultPort              = "8000"
	DefaultGeminiModel       = "gemini-1.5-flash"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultQuizQuestionCount = 10
)

type Config struct {
	GeminiAPIKey      string `mapstructure:"gemini_api_key"`
	GeminiModel       string `mapstructure:"gemini_model"`
	Port              string `mapstructure:"port"`
	LogLevel          string `mapstructure:"log_level"`
	LogFormat         string `mapstructure:"log_format"`
	QuizStrictSchema  bool   `mapstructure:"quiz_strict_schema"`
	QuizQuestionCount int    `mapstructure:"quiz_question_count"`
}

// Load reads an optional .env file from dir and overlays the process
// environment on top of it. Environment variables always win.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, ".env"))
	v.SetConfigType("env")

	v.SetDefault("gemini_model", DefaultGeminiModel)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)
	v.SetDefault("quiz_strict_schema", true)
	v.SetDefault("quiz_question_count", DefaultQuizQuestionCount)

	for _, key := range []string{
		"gemini_api_key",
		"gemini_model",
		"port",
		"log_level",
		"log_format",
		"quiz_strict_schema",
		"quiz_question_count",
	} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.GeminiAPIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.QuizQuestionCount <= 0 {
		cfg.QuizQuestionCount = DefaultQuizQuestionCount
	}

	return &cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
