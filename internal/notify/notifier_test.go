package notify

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierPostsToWebhook(t *testing.T) {
	received := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload map[string]string
		_ = json.Unmarshal(body, &payload)
		received <- payload["text"]
	}))
	defer server.Close()

	n := New(server.URL)
	n.Start()

	n.Notify("新しいLT申請: 「Go in five minutes」 by alice (5分)")

	select {
	case text := <-received:
		assert.Contains(t, text, "Go in five minutes")
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was never called")
	}

	n.Close()
}

func TestNotifierSurvivesServerErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	n := New(server.URL)
	n.Start()
	n.Notify("this delivery fails")
	// Close drains the queue; the failed send must not wedge the worker.
	n.Close()
}

func TestNilNotifierIsNoOp(t *testing.T) {
	var n *Notifier
	require.Nil(t, New(""))

	n.Start()
	n.Notify("dropped")
	n.Close()
}
