package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestSend_PostsPayload(t *testing.T) {
	var got emailPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := NewEmailSender(srv.URL, zerolog.Nop())
	sender.Send(context.Background(), "donor@example.com", "Thanks", "We got it")

	if got.To != "donor@example.com" || got.Subject != "Thanks" || got.Message != "We got it" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestSend_WebhookFailureDoesNotPanic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sender := NewEmailSender(srv.URL, zerolog.Nop())
	sender.Send(context.Background(), "donor@example.com", "Thanks", "We got it")
}

func TestSend_MissingURLSkips(t *testing.T) {
	sender := NewEmailSender("", zerolog.Nop())
	sender.Send(context.Background(), "donor@example.com", "Thanks", "We got it")
}
