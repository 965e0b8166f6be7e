package tent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"readySet/venn"
)

// hooks mirrors console activity to a Discord-style webhook. Without a URL
// it only logs.
type hooks struct {
	url    string
	client *http.Client
}

func NewHooks() *hooks {
	return &hooks{
		url:    os.Getenv("WEBHOOK_URL"),
		client: &http.Client{Timeout: parseFloatToSecondsOrDefault("WEBHOOK_TIMEOUT_SECONDS", 5)},
	}
}

func parseFloatToSecondsOrDefault(key string, def float64) time.Duration {
	value := def
	str := os.Getenv(key)
	if str != "" {
		parsed, err := strconv.ParseFloat(str, 64)
		if err != nil {
			slog.Warn("Invalid float", "key", key, "value", str, "err", err)
		} else {
			value = parsed
		}
	}
	return time.Duration(value * float64(time.Second))
}

func (h *hooks) send(message string) {
	slog.Info("Webhook", "msg", message)
	if h.url == "" {
		return
	}
	payload := map[string]string{"content": message}
	body, _ := json.Marshal(payload)
	response, err := h.client.Post(h.url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		slog.Error("Webhook error", "err", err)
		return
	}
	defer response.Body.Close()
	if response.StatusCode/100 != 2 {
		slog.Error("Webhook error", "status", response.Status)
	}
}

func (h *hooks) onAdded(set string, cue venn.Cue, outline string) {
	h.send(fmt.Sprintf("Added %s (%s)\n```\n%s\n```", set, cue, outline))
}

func (h *hooks) onEmptied(file string) {
	h.send(fmt.Sprintf("%s was emptied", file))
}

func (h *hooks) onQuit() {
	h.send("Session is over")
}
