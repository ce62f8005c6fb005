package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/quickbite/backend/internal/infrastructure/config"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramSender posts notifications to one or more admin chats via the
// Telegram Bot API.
type TelegramSender struct {
	httpClient *http.Client
	token      string
	chatIDs    []int64
	baseURL    string
}

// NewTelegramSender creates a sender from the notify configuration. Returns
// nil when notifications are disabled or not configured, which the
// Dispatcher treats as "do nothing".
func NewTelegramSender(cfg config.NotifyConfig) *TelegramSender {
	if !cfg.Enabled || cfg.BotToken == "" || len(cfg.AdminChatIDs) == 0 {
		return nil
	}
	return &TelegramSender{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		token:      cfg.BotToken,
		chatIDs:    cfg.AdminChatIDs,
		baseURL:    telegramAPIBase,
	}
}

// Send posts the text to every configured chat, reporting the first failure
func (s *TelegramSender) Send(ctx context.Context, text string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.token)

	for _, chatID := range s.chatIDs {
		payload, err := json.Marshal(map[string]any{
			"chat_id": chatID,
			"text":    text,
		})
		if err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return err
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("telegram sendMessage returned status %d", resp.StatusCode)
		}
	}
	return nil
}

// Ensure TelegramSender implements Sender
var _ Sender = (*TelegramSender)(nil)
