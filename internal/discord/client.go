package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/handler"
)

// TokenIssuer mints bearer tokens for API calls
type TokenIssuer interface {
	Issue(caller domain.Caller) (string, error)
}

// APIError is a non-2xx answer from the inventory API
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return "API error: " + e.Message
}

// APIClient handles communication with the inventory API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	tokens     TokenIssuer
	maxRetries uint64
	retryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string, tokens TokenIssuer) *APIClient {
	return &APIClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: DefaultHTTPTimeout,
		},
		tokens:     tokens,
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
	}
}

// doRequest sends one API call as caller and decodes a 2xx body into out.
// Idempotent calls retry transport failures and 5xx answers with exponential
// backoff. Other calls are sent once: the server may have committed before the
// failure was seen.
func (c *APIClient) doRequest(ctx context.Context, caller domain.Caller, method, path string, idempotent bool, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	token, err := c.tokens.Issue(caller)
	if err != nil {
		return err
	}

	var resp *http.Response
	attempt := 0
	operation := func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		r, err := c.Client.Do(req)
		if err != nil {
			slog.Warn("API request failed", "error", err, "attempt", attempt, "path", path)
			return err
		}
		if r.StatusCode >= http.StatusInternalServerError {
			r.Body.Close()
			slog.Warn("Server error, will retry", "status", r.StatusCode, "attempt", attempt, "path", path)
			return &APIError{Status: r.StatusCode, Message: handler.ErrMsgGenericServerError}
		}
		resp = r
		return nil
	}

	retries := c.maxRetries
	if !idempotent {
		retries = 0
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retryDelay
	if err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(b, retries), ctx)); err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		var errResp handler.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error == "" {
			errResp.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: errResp.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

var adminCaller = domain.Caller{Role: domain.RoleAdmin}

func playerCaller(userID int64) domain.Caller {
	return domain.Caller{Role: domain.RolePlayer, UserID: userID}
}

// RegisterUser provisions the game user behind a Discord account. Repeated
// calls return the same user, so it is safe to retry.
func (c *APIClient) RegisterUser(ctx context.Context, discordID string) (*domain.User, error) {
	req := handler.ProvisionUserRequest{
		Username: DiscordUsernamePrefix + discordID,
		Role:     string(domain.RolePlayer),
	}
	var user domain.User
	if err := c.doRequest(ctx, adminCaller, http.MethodPost, "/api/v1/users", true, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListItems returns the catalog
func (c *APIClient) ListItems(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	if err := c.doRequest(ctx, adminCaller, http.MethodGet, "/api/v1/items", true, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FindItem resolves an item by name, ignoring case
func (c *APIClient) FindItem(ctx context.Context, name string) (*domain.Item, error) {
	items, err := c.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	for i := range items {
		if strings.EqualFold(items[i].Name, name) {
			return &items[i], nil
		}
	}
	return nil, &APIError{Status: http.StatusNotFound, Message: handler.ErrMsgItemNotFoundError}
}

// GetInventory lists what userID holds
func (c *APIClient) GetInventory(ctx context.Context, userID int64) ([]domain.InventorySlot, error) {
	var resp handler.InventoryResponse
	path := fmt.Sprintf("/api/v1/users/%d/inventory", userID)
	if err := c.doRequest(ctx, playerCaller(userID), http.MethodGet, path, true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// GetStats returns userID's stats
func (c *APIClient) GetStats(ctx context.Context, userID int64) (*domain.UserStats, error) {
	var stats domain.UserStats
	path := fmt.Sprintf("/api/v1/users/%d/stats", userID)
	if err := c.doRequest(ctx, playerCaller(userID), http.MethodGet, path, true, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ActOnItem applies action to quantity units of itemID as the owning player
func (c *APIClient) ActOnItem(ctx context.Context, userID, itemID int64, action domain.Action, quantity int) (*domain.ActionResult, error) {
	req := handler.ActOnItemRequest{Action: string(action), Quantity: quantity}
	path := fmt.Sprintf("/api/v1/users/%d/inventory/%d/actions", userID, itemID)

	var result domain.ActionResult
	if err := c.doRequest(ctx, playerCaller(userID), http.MethodPost, path, false, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AssignItem grants units of itemID to userID as admin and returns the new total
func (c *APIClient) AssignItem(ctx context.Context, userID, itemID int64, quantity int) (int, error) {
	req := handler.AssignItemRequest{ItemID: itemID, Quantity: quantity}
	path := fmt.Sprintf("/api/v1/users/%d/inventory", userID)

	var resp handler.AssignItemResponse
	if err := c.doRequest(ctx, adminCaller, http.MethodPost, path, false, req, &resp); err != nil {
		return 0, err
	}
	return resp.Total, nil
}

// Healthy reports whether the API answers its liveness probe
func (c *APIClient) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/healthz", nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
