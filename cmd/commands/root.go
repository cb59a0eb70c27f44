package commands

// Root command for Cobra CLI
// Registers subcommands (types, render, barcode) and the config override flags

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pchart/internal/infra/config"
	logging "pchart/internal/infra/log"
	"pchart/internal/publish"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "pchart",
	Short: "pchart - render charts and barcodes to PNG",
	Long: `pchart builds charts (bar, line, pie, stock, radar and more) and Code 39 / Code 128
barcodes from JSON series files, saves them as PNG and can publish them to Telegram.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(barcodeCmd)
}

// setup loads configuration for cmd and initializes logging.
func setup(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadWith(cmd.Flags(), ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logging.Init(cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}
	return cfg, nil
}

// publishImage sends a rendered file to the configured Telegram chat.
func publishImage(cfg *config.Config, path, caption string) error {
	if !cfg.Telegram.Enabled() {
		return fmt.Errorf("publishing requires TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID")
	}
	chatID, err := publish.ParseChatID(cfg.Telegram.ChatID)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	p, err := publish.NewTelegram(cfg.Telegram.BotToken, publish.Options{
		ChatID:        chatID,
		RatePerSecond: cfg.Telegram.RatePerSecond,
		Burst:         cfg.Telegram.Burst,
		MaxRetries:    cfg.Telegram.MaxRetries,
	})
	if err != nil {
		logging.LogError("Failed to connect to Telegram", zap.Error(err))
		return err
	}
	return p.PublishPhoto(ctx, path, caption)
}
