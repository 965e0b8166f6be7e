package tent

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestHooksPostToWebhook(t *testing.T) {
	var (
		mu  sync.Mutex
		got []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("webhook body is not JSON: %v", err)
		}
		mu.Lock()
		got = append(got, payload["content"])
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()
	h := &hooks{url: server.URL, client: server.Client()}
	s := NewSitter(h, &strings.Builder{})

	if err := s.Run(strings.NewReader("add 1, 2\nempty\nquit")); err != nil {
		t.Fatalf("Run() = %v, want <nil>", err)
	}

	mu.Lock()
	defer mu.Unlock()
	want := []string{
		"Added A = { 1, 2 } (simple set)\n```\nA = { 1, 2 }\n```",
		"File A was emptied",
		"Session is over",
	}
	if !cmp.Equal(got, want) {
		t.Errorf("webhook messages: -want +got\n%s", cmp.Diff(want, got))
	}
}

func TestParseFloatToSecondsOrDefault(t *testing.T) {
	t.Setenv("HOOK_TEST_SECONDS", "")
	if got, want := parseFloatToSecondsOrDefault("HOOK_TEST_SECONDS", 5), 5*time.Second; got != want {
		t.Errorf("unset = %v, want %v", got, want)
	}
	t.Setenv("HOOK_TEST_SECONDS", "0.5")
	if got, want := parseFloatToSecondsOrDefault("HOOK_TEST_SECONDS", 5), 500*time.Millisecond; got != want {
		t.Errorf("0.5 = %v, want %v", got, want)
	}
	t.Setenv("HOOK_TEST_SECONDS", "soon")
	if got, want := parseFloatToSecondsOrDefault("HOOK_TEST_SECONDS", 5), 5*time.Second; got != want {
		t.Errorf("invalid = %v, want %v", got, want)
	}
}
