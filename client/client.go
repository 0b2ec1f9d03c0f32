// Package client talks to the external identity provider. Every call is
// best-effort from the caller's point of view; the provider being down must
// never take a request down with it, so the timeout here is short and hard.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	defaultTimeout = 3 * time.Second
	statusCacheTTL = time.Minute
)

type Client struct {
	client     *http.Client
	cache      *cache.Cache
	baseURL    string
	serviceKey string
}

func New(baseURL, serviceKey string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: defaultTimeout,
		},
		cache:      cache.New(statusCacheTTL, 5*time.Minute),
		baseURL:    baseURL,
		serviceKey: serviceKey,
	}
}

type providerUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	BannedAt  string `json:"banned_until,omitempty"`
	DeletedAt string `json:"deleted_at,omitempty"`
}

// SubjectActive reports whether the provider still considers the subject a
// valid, active account. Results are cached briefly to bound repeat lookups
// within bursts of requests from the same user.
func (c *Client) SubjectActive(ctx context.Context, subject string) (bool, error) {
	if cached, ok := c.cache.Get(subject); ok {
		return cached.(bool), nil
	}

	url := fmt.Sprintf("%s/auth/v1/admin/users/%s", c.baseURL, subject)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return false, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var user providerUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return false, err
	}

	active := user.ID != "" && user.BannedAt == "" && user.DeletedAt == ""
	c.cache.Set(subject, active, cache.DefaultExpiration)
	return active, nil
}
