package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Notifier POSTs new submissions to a webhook. Delivery failures are logged
// and never reach the visitor.
type Notifier struct {
	url    string
	client *http.Client
	logger *zap.Logger
	wg     sync.WaitGroup
}

// NewNotifier returns nil when url is empty; a nil Notifier does nothing.
func NewNotifier(url string, logger *zap.Logger) *Notifier {
	if url == "" {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type leadEvent struct {
	Event      string     `json:"event"`
	Submission Submission `json:"submission"`
}

// Notify sends sub and waits for the webhook to answer.
func (n *Notifier) Notify(ctx context.Context, sub Submission) error {
	if n == nil {
		return nil
	}
	payload, err := json.Marshal(leadEvent{Event: "lead.created", Submission: sub})
	if err != nil {
		return fmt.Errorf("encoding lead: %w", err)
	}
	return n.send(ctx, payload)
}

// NotifyAsync sends sub in the background. Wait blocks until every pending
// delivery has finished.
func (n *Notifier) NotifyAsync(sub Submission) {
	if n == nil {
		return
	}
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		if err := n.Notify(context.Background(), sub); err != nil {
			n.logger.Warn("lead webhook failed", zap.String("id", sub.ID), zap.Error(err))
			return
		}
		n.logger.Debug("lead webhook delivered", zap.String("id", sub.ID))
	}()
}

// Wait blocks until background deliveries are done.
func (n *Notifier) Wait() {
	if n == nil {
		return
	}
	n.wg.Wait()
}

func (n *Notifier) send(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
