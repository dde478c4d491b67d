package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client talks to the membership oracle over HTTP. Failures are returned
// as-is; retry policy belongs to the caller.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) GetMembers(ctx context.Context, corporationID int64) ([]Member, error) {
	var members []Member
	url := fmt.Sprintf("%s/corporations/%d/members", c.baseURL, corporationID)
	if err := c.getJSON(ctx, url, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *Client) GetCEO(ctx context.Context, corporationID int64) (int64, error) {
	var corp struct {
		CEOID int64 `json:"ceo_id"`
	}
	url := fmt.Sprintf("%s/corporations/%d", c.baseURL, corporationID)
	if err := c.getJSON(ctx, url, &corp); err != nil {
		return 0, err
	}
	return corp.CEOID, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("oracle request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("oracle returned status %d for %s", resp.StatusCode, url)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("oracle response decode failed: %w", err)
	}
	return nil
}
