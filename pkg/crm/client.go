package crm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"tradenomi-backend/config"
)

var ErrNotConfigured = errors.New("crm: CRM_* parameters not configured")

// Client reads the title catalogs owned by the member CRM.
type Client struct {
	baseURL    string
	auth       string
	customer   string
	user       string
	password   string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:    cfg.CRMBaseURL,
		auth:       cfg.CRMAuth,
		customer:   cfg.CRMCustomer,
		user:       cfg.CRMUser,
		password:   cfg.CRMPassword,
		httpClient: &http.Client{Timeout: cfg.CRMTimeout},
	}
}

func (c *Client) IsConfigured() bool {
	return c.baseURL != "" && c.customer != "" && c.user != "" && c.password != ""
}

func (c *Client) PositionTitles(ctx context.Context) (map[string]string, error) {
	return c.titles(ctx, "/positiontitles")
}

func (c *Client) DomainTitles(ctx context.Context) (map[string]string, error) {
	return c.titles(ctx, "/domaintitles")
}

func (c *Client) titles(ctx context.Context, path string) (map[string]string, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("crm: build request: %w", err)
	}
	req.SetBasicAuth(c.user, c.password)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Customer", c.customer)
	if c.auth != "" {
		req.Header.Set("X-Auth", c.auth)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("crm: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("crm: GET %s returned %d after %s: %s", path, resp.StatusCode, time.Since(start).Round(time.Millisecond), snippet)
	}

	var titles map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&titles); err != nil {
		return nil, fmt.Errorf("crm: decode %s: %w", path, err)
	}
	if titles == nil {
		titles = map[string]string{}
	}
	return titles, nil
}
