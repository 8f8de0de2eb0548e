package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alicia-green/storefront/internal/config"
)

const (
	defaultAPIURL  = "https://api.telegram.org"
	maxErrorBody   = 512
	defaultTimeout = 10 * time.Second
)

// ErrNotConfigured is returned when the bot token or chat id is missing
var ErrNotConfigured = errors.New("telegram notifier not configured")

// APIError is returned when the Bot API answers with a non-success status
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram API error: status=%d body=%s", e.StatusCode, e.Body)
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// TelegramNotifier sends messages to one chat through the Telegram Bot API.
// It holds no mutable state and is safe for concurrent use.
type TelegramNotifier struct {
	botToken string
	chatID   string
	apiURL   string
	client   *http.Client
}

// NewTelegramNotifier creates a notifier from cfg. Missing credentials are
// not an error here; Notify reports ErrNotConfigured instead.
func NewTelegramNotifier(cfg config.TelegramConfig) *TelegramNotifier {
	apiURL := strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	timeout := defaultTimeout
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}

	return &TelegramNotifier{
		botToken: strings.TrimSpace(cfg.BotToken),
		chatID:   strings.TrimSpace(cfg.ChatID),
		apiURL:   apiURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Notify posts text to the configured chat with HTML parse mode
func (n *TelegramNotifier) Notify(ctx context.Context, text string) error {
	if n.botToken == "" || n.chatID == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:                n.chatID,
		Text:                  text,
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	})
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.apiURL, n.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
