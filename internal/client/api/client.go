// Package api implements the HTTP client for the LifeTracker backend.
// It wraps the REST endpoints, carries the session token between calls, and
// maps error payloads onto *Error values.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/lifetracker/internal/common"
)

// Client talks to the LifeTracker HTTP API. It is safe to reuse across calls;
// the session token set by Register/Login is attached to later requests.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewClient constructs a Client for the API at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Token returns the current session token, empty when logged out.
func (c *Client) Token() string { return c.token }

// SetToken installs a previously obtained session token.
func (c *Client) SetToken(token string) { c.token = token }

// Logout drops the session token.
func (c *Client) Logout() { c.token = "" }

// do performs one API round trip: marshals body (when non-nil), attaches the
// bearer token (when present), and unmarshals a 2xx response into out. Error
// responses are decoded into *Error.
func (c *Client) do(ctx context.Context, method string, path string, body any, out any) error {
	var rd *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error marshalling request: %w", err)
		}
		rd = bytes.NewReader(data)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+" "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		if payload.Error == "" {
			payload.Error = http.StatusText(resp.StatusCode)
		}
		return &Error{Status: resp.StatusCode, Message: payload.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Ping checks that the server is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/", nil, nil)
}

// Register creates an account and stores the returned session token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp.User, nil
}

// Login verifies credentials and stores the returned session token.
func (c *Client) Login(ctx context.Context, email string, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp.User, nil
}

// Me returns the account behind the current session.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// ListNutrition returns all entries owned by the current user.
func (c *Client) ListNutrition(ctx context.Context) ([]Nutrition, error) {
	var resp struct {
		Nutritions []Nutrition `json:"nutritions"`
	}
	if err := c.do(ctx, http.MethodGet, "/nutrition", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Nutritions, nil
}

// CreateNutrition records a new entry for the current user.
func (c *Client) CreateNutrition(ctx context.Context, req CreateNutritionRequest) (*Nutrition, error) {
	body := map[string]CreateNutritionRequest{"nutrition": req}
	var resp struct {
		Nutrition Nutrition `json:"nutrition"`
	}
	if err := c.do(ctx, http.MethodPost, "/nutrition", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Nutrition, nil
}

// GetNutrition returns one entry by id; the entry must belong to the current
// user.
func (c *Client) GetNutrition(ctx context.Context, id int64) (*Nutrition, error) {
	var resp struct {
		Nutrition Nutrition `json:"nutrition"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/nutrition/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Nutrition, nil
}

// ActivityStats returns the calorie summary for the current user.
func (c *Client) ActivityStats(ctx context.Context) (*CalorieStats, error) {
	var resp struct {
		Stats struct {
			Nutrition struct {
				Calories CalorieStats `json:"calories"`
			} `json:"nutrition"`
		} `json:"stats"`
	}
	if err := c.do(ctx, http.MethodGet, "/activity", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Stats.Nutrition.Calories, nil
}
