package config

// Configuration loading for the pchart CLI
// Sources, lowest to highest priority: defaults, config.yaml, .env, environment, flags

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"pchart/internal/infra/log"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Render   RenderConfig   `mapstructure:"render"`
	Barcode  BarcodeConfig  `mapstructure:"barcode"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Log      log.Options    `mapstructure:"log"`
}

type RenderConfig struct {
	OutputDir   string   `mapstructure:"output_dir"`
	Width       int      `mapstructure:"width"`
	Height      int      `mapstructure:"height"`
	Transparent bool     `mapstructure:"transparent"`
	FontPaths   []string `mapstructure:"font_paths"` // tried in order, first loadable wins
}

type BarcodeConfig struct {
	BasePath    string `mapstructure:"base_path"`
	EnableMod43 bool   `mapstructure:"enable_mod43"`
}

// TelegramConfig is only needed when rendered images are published.
type TelegramConfig struct {
	BotToken      string  `mapstructure:"bot_token"`
	ChatID        string  `mapstructure:"chat_id"`
	RatePerSecond float64 `mapstructure:"rate_per_second"`
	Burst         int     `mapstructure:"burst"`
	MaxRetries    int     `mapstructure:"max_retries"`
}

// Enabled reports whether both token and chat are configured.
func (t TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != ""
}

// Load reads configuration using the process command line.
func Load() (*Config, error) {
	RegisterFlags(pflag.CommandLine)
	pflag.Parse()
	return LoadWith(pflag.CommandLine, ".")
}

// LoadWith reads configuration from dir (config.yaml, .env), the environment and an already parsed flag set.
// flags may be nil.
func LoadWith(flags *pflag.FlagSet, dir string) (*Config, error) {
	godotenv.Load(filepath.Join(dir, ".env"))

	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	}

	v.AutomaticEnv()
	setupEnvAliases(v)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// font paths from .env arrive as one comma separated string
	if raw, ok := v.Get("render.font_paths").(string); ok {
		cfg.Render.FontPaths = splitList(raw)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setupEnvAliases(v *viper.Viper) {
	v.BindEnv("render.output_dir", "PCHART_OUTPUT_DIR")
	v.BindEnv("render.width", "PCHART_WIDTH")
	v.BindEnv("render.height", "PCHART_HEIGHT")
	v.BindEnv("render.transparent", "PCHART_TRANSPARENT")
	v.BindEnv("render.font_paths", "PCHART_FONT_PATHS")

	v.BindEnv("barcode.base_path", "PCHART_BARCODE_BASE_PATH")
	v.BindEnv("barcode.enable_mod43", "PCHART_BARCODE_MOD43")

	v.BindEnv("telegram.bot_token", "TELEGRAM_BOT_TOKEN")
	v.BindEnv("telegram.chat_id", "TELEGRAM_CHAT_ID")
	v.BindEnv("telegram.rate_per_second", "PCHART_TELEGRAM_RATE")
	v.BindEnv("telegram.burst", "PCHART_TELEGRAM_BURST")
	v.BindEnv("telegram.max_retries", "PCHART_TELEGRAM_MAX_RETRIES")

	v.BindEnv("log.dir", "PCHART_LOG_DIR")
	v.BindEnv("log.level", "PCHART_LOG_LEVEL")
	v.BindEnv("log.console", "PCHART_LOG_CONSOLE")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("render.output_dir", "etc/charts")
	v.SetDefault("render.width", 800)
	v.SetDefault("render.height", 600)
	v.SetDefault("render.transparent", false)
	v.SetDefault("render.font_paths", DefaultFontPaths)

	v.SetDefault("barcode.base_path", "")
	v.SetDefault("barcode.enable_mod43", false)

	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.chat_id", "")
	v.SetDefault("telegram.rate_per_second", 1.0) // Telegram allows ~1 msg/s per chat
	v.SetDefault("telegram.burst", 1)
	v.SetDefault("telegram.max_retries", 3)

	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.console", true)
}

// RegisterFlags adds the config override flags to flags. Registering twice is a no-op.
func RegisterFlags(flags *pflag.FlagSet) {
	if flags.Lookup("render.output_dir") != nil {
		return
	}
	flags.String("render.output_dir", "etc/charts", "Directory for rendered PNG files (env: PCHART_OUTPUT_DIR)")
	flags.Int("render.width", 800, "Default canvas width (env: PCHART_WIDTH)")
	flags.Int("render.height", 600, "Default canvas height (env: PCHART_HEIGHT)")
	flags.Bool("render.transparent", false, "Transparent canvas background (env: PCHART_TRANSPARENT)")
	flags.String("barcode.base_path", "", "Barcode resource directory (env: PCHART_BARCODE_BASE_PATH)")
	flags.Bool("barcode.enable_mod43", false, "Append Code 39 mod 43 check digit (env: PCHART_BARCODE_MOD43)")
	flags.String("telegram.chat_id", "", "Chat to publish rendered images to (env: TELEGRAM_CHAT_ID)")
	flags.String("log.level", "debug", "Log level (env: PCHART_LOG_LEVEL)")
}

// Validate rejects configurations the renderer cannot use.
func Validate(cfg *Config) error {
	if cfg.Render.Width <= 0 || cfg.Render.Height <= 0 {
		return fmt.Errorf("render size must be positive, got %dx%d", cfg.Render.Width, cfg.Render.Height)
	}
	if (cfg.Telegram.BotToken == "") != (cfg.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	if cfg.Telegram.RatePerSecond <= 0 {
		return fmt.Errorf("telegram.rate_per_second must be positive")
	}
	if cfg.Telegram.Burst < 1 {
		cfg.Telegram.Burst = 1
	}
	return nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
