package publish

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"pchart/internal/infra/retry"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	mu     sync.Mutex
	sent   []tgbotapi.Chattable
	errors []error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	if len(f.errors) > 0 {
		err := f.errors[0]
		f.errors = f.errors[1:]
		return tgbotapi.Message{}, err
	}
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func writePNG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG fake"), 0644))
	return path
}

func fastOptions() Options {
	return Options{
		ChatID:        -100,
		RatePerSecond: 1000,
		Burst:         10,
		MaxRetries:    2,
		BaseDelay:     time.Millisecond,
		MaxDelay:      2 * time.Millisecond,
		FileWait:      50 * time.Millisecond,
	}
}

func TestPublishPhoto_SendsPhotoWithCaption(t *testing.T) {
	sender := &fakeSender{}
	p := New(sender, fastOptions())
	path := writePNG(t)

	require.NoError(t, p.PublishPhoto(context.Background(), path, "weekly volume"))

	require.Len(t, sender.sent, 1)
	photo, ok := sender.sent[0].(tgbotapi.PhotoConfig)
	require.True(t, ok)
	assert.Equal(t, int64(-100), photo.ChatID)
	assert.Equal(t, "weekly volume", photo.Caption)
	assert.Equal(t, tgbotapi.FilePath(path), photo.File)
}

func TestPublishPhoto_RetriesTransientErrors(t *testing.T) {
	sender := &fakeSender{errors: []error{
		&tgbotapi.Error{Code: 429, Message: "Too Many Requests", ResponseParameters: tgbotapi.ResponseParameters{RetryAfter: 0}},
		&tgbotapi.Error{Code: 502, Message: "Bad Gateway"},
	}}
	p := New(sender, fastOptions())

	require.NoError(t, p.PublishPhoto(context.Background(), writePNG(t), ""))
	assert.Len(t, sender.sent, 3)
}

func TestPublishPhoto_PermanentErrorIsNotRetried(t *testing.T) {
	sender := &fakeSender{errors: []error{&tgbotapi.Error{Code: 400, Message: "chat not found"}}}
	p := New(sender, fastOptions())

	err := p.PublishPhoto(context.Background(), writePNG(t), "")
	var se *retry.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 400, se.StatusCode)
	assert.Len(t, sender.sent, 1)
}

func TestPublishPhoto_MissingFile(t *testing.T) {
	sender := &fakeSender{}
	p := New(sender, fastOptions())

	err := p.PublishPhoto(context.Background(), filepath.Join(t.TempDir(), "nope.png"), "")
	assert.Error(t, err)
	assert.Empty(t, sender.sent)
}

func TestClassify(t *testing.T) {
	plain := errors.New("network down")
	assert.Same(t, plain, classify(plain))

	err := classify(&tgbotapi.Error{Code: 429, ResponseParameters: tgbotapi.ResponseParameters{RetryAfter: 3}})
	var se *retry.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 3*time.Second, se.RetryAfter)
	assert.True(t, retry.IsRetryable(err))
}

func TestParseChatID(t *testing.T) {
	id, err := ParseChatID("-1001234567890")
	require.NoError(t, err)
	assert.Equal(t, int64(-1001234567890), id)

	_, err = ParseChatID("@channel")
	assert.Error(t, err)
}
