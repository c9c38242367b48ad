// Package notifier fans checkout events out to the operator chat gateway.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"shopbot-checkout/internal/pkg/config"
	"shopbot-checkout/internal/usecase/commands"
)

// GatewayNotifier posts one message per operator chat to the gateway HTTP
// endpoint. Delivery is best-effort: a failed recipient is logged and
// skipped, never surfaced to the checkout flow.
type GatewayNotifier struct {
	client  *http.Client
	baseURL string
	chatIDs []int64
}

func NewGatewayNotifier(cfg config.OperatorsConfig) *GatewayNotifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &GatewayNotifier{
		client:  &http.Client{Timeout: timeout},
		baseURL: cfg.GatewayURL,
		chatIDs: cfg.ChatIDs,
	}
}

type gatewayMessage struct {
	ChatID   int64  `json:"chat_id"`
	Text     string `json:"text"`
	FileRef  string `json:"file_ref,omitempty"`
	FileKind string `json:"file_kind,omitempty"`
}

func (n *GatewayNotifier) NotifyOperators(ctx context.Context, notice commands.Notice) {
	if n.baseURL == "" || len(n.chatIDs) == 0 {
		return
	}

	for _, chatID := range n.chatIDs {
		msg := gatewayMessage{
			ChatID:  chatID,
			Text:    notice.Text,
			FileRef: notice.FileRef,
		}
		if notice.FileKind.IsFile() {
			msg.FileKind = string(notice.FileKind)
		}
		if err := n.send(ctx, msg); err != nil {
			slog.Warn("operator notification failed",
				"chat_id", chatID,
				"error", err.Error())
		}
	}
}

func (n *GatewayNotifier) send(ctx context.Context, msg gatewayMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("gateway returned %d", resp.StatusCode)
	}
	return nil
}

// NopNotifier drops all notices; used when no gateway is configured.
type NopNotifier struct{}

func (NopNotifier) NotifyOperators(context.Context, commands.Notice) {}

var _ commands.Notifier = (*GatewayNotifier)(nil)
var _ commands.Notifier = NopNotifier{}
