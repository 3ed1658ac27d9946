package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// stubIssuer hands out a fixed token and remembers who asked
type stubIssuer struct {
	mu      sync.Mutex
	callers []domain.Caller
}

func (s *stubIssuer) Issue(caller domain.Caller) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callers = append(s.callers, caller)
	return "test-token", nil
}

// TestContext wires a fake inventory API and an intercepted Discord session
type TestContext struct {
	Server       *httptest.Server
	Mux          *http.ServeMux
	APIClient    *APIClient
	Issuer       *stubIssuer
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper

	mu    sync.Mutex
	edits []discordgo.WebhookEdit
}

// SetupTestContext starts the fake API and captures every response edit the
// handlers send to Discord
func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)

	issuer := &stubIssuer{}
	client := NewAPIClient(server.URL, issuer)
	client.retryDelay = time.Millisecond
	client.maxRetries = 1

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}

	ctx := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: client,
		Issuer:    issuer,
		Session:   session,
	}

	ctx.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			if req.Method == http.MethodPatch && req.Body != nil {
				var edit discordgo.WebhookEdit
				if err := json.NewDecoder(req.Body).Decode(&edit); err == nil {
					ctx.mu.Lock()
					ctx.edits = append(ctx.edits, edit)
					ctx.mu.Unlock()
				}
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}
	session.Client = &http.Client{Transport: ctx.DiscordMocks}

	t.Cleanup(server.Close)

	return ctx
}

// LastEmbed returns the most recent embed sent to Discord, or nil
func (c *TestContext) LastEmbed() *discordgo.MessageEmbed {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.edits) - 1; i >= 0; i-- {
		if e := c.edits[i].Embeds; e != nil && len(*e) > 0 {
			return (*e)[0]
		}
	}
	return nil
}

// LastContent returns the most recent plain-text edit, or ""
func (c *TestContext) LastContent() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.edits) - 1; i >= 0; i-- {
		if c.edits[i].Content != nil {
			return *c.edits[i].Content
		}
	}
	return ""
}

// HandleRegister answers user provisioning with a fixed game user id
func (c *TestContext) HandleRegister(id int64) {
	c.Mux.HandleFunc("POST /api/v1/users", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, domain.User{ID: id, Username: "discord:test-user", Role: domain.RolePlayer})
	})
}

// commandInteraction builds a slash command invocation by user "test-user"
func commandInteraction(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-id",
			AppID: "app-id",
			Token: "interaction-token",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "test-user", Username: "Tester"},
			},
		},
	}
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func intOption(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

// WriteJSON writes data as a JSON body
func WriteJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError writes an API error body with status
func WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
