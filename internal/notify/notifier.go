package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Notifier posts submission announcements to a chat webhook. Delivery is
// best-effort: sends run on a single worker goroutine, failures are logged
// and dropped, and a full queue drops the message rather than blocking the
// request that triggered it. A nil *Notifier is a valid no-op.
type Notifier struct {
	webhookURL string
	httpClient *http.Client
	queue      chan string
	done       chan struct{}
}

func New(webhookURL string) *Notifier {
	if webhookURL == "" {
		return nil
	}
	return &Notifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		queue:      make(chan string, 64),
		done:       make(chan struct{}),
	}
}

func (n *Notifier) Start() {
	if n == nil {
		return
	}
	go func() {
		defer close(n.done)
		for text := range n.queue {
			if err := n.post(text); err != nil {
				log.Printf("webhook notify: %v", err)
			}
		}
	}()
}

// Notify enqueues a message without blocking.
func (n *Notifier) Notify(text string) {
	if n == nil {
		return
	}
	select {
	case n.queue <- text:
	default:
		log.Printf("webhook notify: queue full, dropping message")
	}
}

// Close stops accepting messages and waits for the worker to drain.
func (n *Notifier) Close() {
	if n == nil {
		return
	}
	close(n.queue)
	<-n.done
}

func (n *Notifier) post(text string) error {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	resp, err := n.httpClient.Post(n.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned %s", resp.Status)
	}
	return nil
}
