package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/IsaacDSC/hotelhook/internal/cfg"
	"github.com/IsaacDSC/hotelhook/internal/domain"
	"github.com/IsaacDSC/hotelhook/pkg/ctxlogger"
	"github.com/IsaacDSC/hotelhook/pkg/httpclient"
)

const parseModeMarkdown = "Markdown"

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageAck struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}

// Telegram delivers task notifications through the Bot API sendMessage method.
type Telegram struct {
	client *http.Client
	url    string
	chatID string
}

func NewTelegram(conf cfg.Telegram, client *http.Client) *Telegram {
	root := strings.TrimRight(conf.APIRoot, "/")
	if root == "" {
		root = "https://api.telegram.org"
	}

	return &Telegram{
		client: client,
		url:    fmt.Sprintf("%s/bot%s/sendMessage", root, conf.BotToken),
		chatID: conf.ChatID,
	}
}

// Notify sends message once and reports the outcome; it never returns an error.
func (t *Telegram) Notify(ctx context.Context, message string) domain.Delivery {
	l := ctxlogger.GetLogger(ctx)

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    t.chatID,
		Text:      message,
		ParseMode: parseModeMarkdown,
	})
	if err != nil {
		return domain.DeliveryError(domain.DeliveryFailed, fmt.Sprintf("marshal message: %s", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(payload))
	if err != nil {
		return domain.DeliveryError(domain.DeliveryFailed, httpclient.RedactURL(fmt.Sprintf("create request: %s", err)))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		details := httpclient.RedactURL(err.Error())
		l.Error("telegram request failed", "error", details)
		return domain.DeliveryError(domain.DeliveryFailed, details)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		l.Error("failed to read telegram response", "error", err.Error())
		return domain.DeliveryError(domain.DeliveryFailed, fmt.Sprintf("read response: %s", err))
	}

	var ack sendMessageAck
	decodeErr := json.Unmarshal(body, &ack)

	if resp.StatusCode > 299 || decodeErr != nil || !ack.OK {
		l.Warn("telegram rejected message", "status_code", resp.StatusCode, "description", ack.Description)
		return domain.DeliveryError(domain.DeliveryRejected, rejectionDetails(body, decodeErr))
	}

	return domain.Delivered(json.RawMessage(body))
}

// rejectionDetails keeps a JSON body as structured data and falls back to plain text.
func rejectionDetails(body []byte, decodeErr error) any {
	if decodeErr == nil {
		return json.RawMessage(body)
	}
	return string(body)
}
