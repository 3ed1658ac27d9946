package discord

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string     `json:"status"`
	Uptime           string     `json:"uptime"`
	Connected        bool       `json:"connected"`
	CommandsReceived int64      `json:"commands_received"`
	LastCommandTime  *time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool       `json:"api_reachable"`
}

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandUnix atomic.Int64
)

// RecordCommand counts a handled slash command
func RecordCommand() {
	commandCounter.Add(1)
	lastCommandUnix.Store(time.Now().Unix())
}

func currentHealth(connected, apiReachable bool) HealthStatus {
	status := "healthy"
	if !connected || !apiReachable {
		status = "degraded"
	}

	health := HealthStatus{
		Status:           status,
		Uptime:           time.Since(startTime).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: commandCounter.Load(),
		APIReachable:     apiReachable,
	}
	if unix := lastCommandUnix.Load(); unix > 0 {
		last := time.Unix(unix, 0).UTC()
		health.LastCommandTime = &last
	}
	return health
}

// HandleHealth reports gateway and API reachability
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := h.bot.Session != nil && h.bot.Session.DataReady

	apiReachable := false
	if h.bot.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		apiReachable = h.bot.Client.Healthy(ctx)
		cancel()
	}

	health := currentHealth(connected, apiReachable)

	w.Header().Set("Content-Type", "application/json")
	if health.Status != "healthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(health); err != nil {
		slog.Debug("Failed to write health response", "error", err)
	}
}
