// ABOUTME: Runtime configuration from .env, an optional crmseed.yaml, and CRMSEED_* env vars.
// ABOUTME: Also builds the global zap logger.

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Seed   int64        `mapstructure:"seed"`
	Store  StoreConfig  `mapstructure:"store"`
	Server ServerConfig `mapstructure:"server"`
	AI     AIConfig     `mapstructure:"ai"`
	Log    LogConfig    `mapstructure:"log"`
}

// OutputConfig says where the JSON files live.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// StoreConfig configures the SQLite export.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// ServerConfig configures the read-only API.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// AIConfig configures optional OpenAI note rewriting.
type AIConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

// UseAI reports whether note rewriting should go through OpenAI.
func (c AIConfig) UseAI() bool {
	return c.Enabled && c.APIKey != ""
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// loadDotEnv loads .env from the current dir, its parents, or the home directory.
// Existing environment variables win; missing files are ignored.
func loadDotEnv() {
	for _, p := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(p); err == nil {
			break
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		_ = godotenv.Load(filepath.Join(home, ".env"))
	}
}

// Load reads configuration from .env, crmseed.yaml and the environment.
func Load() (*Config, error) {
	loadDotEnv()

	v := viper.New()

	v.SetConfigName("crmseed")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CRMSEED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("ai.api_key", "CRMSEED_AI_API_KEY", "OPENAI_API_KEY"); err != nil {
		return nil, eris.Wrap(err, "config: bind ai.api_key")
	}
	if err := v.BindEnv("ai.model", "CRMSEED_AI_MODEL", "OPENAI_MODEL"); err != nil {
		return nil, eris.Wrap(err, "config: bind ai.model")
	}

	v.SetDefault("output.dir", ".")
	v.SetDefault("seed", 0)
	v.SetDefault("store.path", "crmseed.db")
	v.SetDefault("server.port", 9000)
	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gpt-5-mini")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	return &cfg, nil
}

// NewLogger builds a zap logger. Format "json" gives production JSON lines,
// anything else a human-readable console encoder.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, eris.Wrap(err, "config: parse log level")
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.TimeKey = "timestamp"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, eris.Wrap(err, "config: build logger")
	}
	return logger, nil
}

// InitLogger builds the logger and installs it as the zap global.
func InitLogger(cfg LogConfig) error {
	logger, err := NewLogger(cfg)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}
