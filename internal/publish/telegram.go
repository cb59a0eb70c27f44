package publish

// Publishing of rendered images to a Telegram chat
// Each send waits on a rate limiter, runs through a circuit breaker
// and is retried with backoff on 429 and 5xx answers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"pchart/internal/infra/fs"
	logging "pchart/internal/infra/log"
	"pchart/internal/infra/retry"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Sender is the part of tgbotapi.BotAPI the publisher uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Options struct {
	ChatID        int64
	RatePerSecond float64
	Burst         int
	MaxRetries    int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	FileWait      time.Duration // how long to wait for the image file to appear
}

type Publisher struct {
	sender   Sender
	chatID   int64
	limiter  *rate.Limiter
	breaker  *gobreaker.CircuitBreaker
	retry    retry.Options
	fileWait time.Duration
}

// NewTelegram connects a bot with token and wraps it in a Publisher.
func NewTelegram(token string, opts Options) (*Publisher, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	logging.LogInfo("Telegram bot authorized", zap.String("username", bot.Self.UserName))
	return New(bot, opts), nil
}

func New(sender Sender, opts Options) *Publisher {
	if opts.RatePerSecond <= 0 {
		opts.RatePerSecond = 1
	}
	if opts.Burst < 1 {
		opts.Burst = 1
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = 500 * time.Millisecond
	}
	if opts.MaxDelay <= 0 {
		opts.MaxDelay = 30 * time.Second
	}
	if opts.FileWait <= 0 {
		opts.FileWait = 5 * time.Second
	}

	return &Publisher{
		sender:  sender,
		chatID:  opts.ChatID,
		limiter: rate.NewLimiter(rate.Limit(opts.RatePerSecond), opts.Burst),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "TelegramPublish",
			MaxRequests: 1,
			Interval:    60 * time.Second,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 5
			},
		}),
		retry: retry.Options{
			MaxRetries: opts.MaxRetries,
			BaseDelay:  opts.BaseDelay,
			MaxDelay:   opts.MaxDelay,
		},
		fileWait: opts.FileWait,
	}
}

// PublishPhoto sends the PNG at path with caption to the configured chat.
func (p *Publisher) PublishPhoto(ctx context.Context, path, caption string) error {
	requestID := logging.GenerateRequestID()
	logger := logging.RequestLogger(requestID)
	start := time.Now()

	if err := fs.WaitForFile(ctx, path, p.fileWait); err != nil {
		return fmt.Errorf("image not ready: %w", err)
	}

	err := retry.Do(ctx, p.retry, func() error {
		if err := p.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter wait failed: %w", err)
		}
		_, err := p.breaker.Execute(func() (interface{}, error) {
			photo := tgbotapi.NewPhoto(p.chatID, tgbotapi.FilePath(path))
			photo.Caption = caption
			msg, err := p.sender.Send(photo)
			if err != nil {
				return nil, classify(err)
			}
			return msg, nil
		})
		if err != nil {
			logger.Warn("Publish attempt failed", zap.String("path", path), zap.Error(err))
		}
		return err
	})
	if err != nil {
		logging.LogError("Failed to publish image",
			zap.String("request_id", requestID),
			zap.String("path", path),
			zap.Error(err))
		return err
	}

	logging.LogSuccess("Image published",
		zap.String("request_id", requestID),
		zap.Int64("chat_id", p.chatID),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}

// classify turns Telegram API errors into retry.StatusError so transient ones are retried.
func classify(err error) error {
	var tgErr *tgbotapi.Error
	if errors.As(err, &tgErr) {
		return &retry.StatusError{
			StatusCode: tgErr.Code,
			Message:    tgErr.Message,
			RetryAfter: time.Duration(tgErr.RetryAfter) * time.Second,
		}
	}
	return err
}

// ParseChatID parses a numeric chat id such as "-1001234567890".
func ParseChatID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid chat id %q: %w", s, err)
	}
	return id, nil
}
