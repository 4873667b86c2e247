// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package stats

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/hashicorp/go-cleanhttp"

	"github.com/skurvinen/assignmentinfo/internal/assignment"
	"github.com/skurvinen/assignmentinfo/internal/cache"
)

const (
	DefaultBaseURL  = "http://api.bf3stats.com"
	DefaultPlatform = "pc"
	DefaultTimeout  = 30 * time.Second
)

// Client posts player lookups to the stats API.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	Platform  string
	UserAgent string
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API root. Empty values are ignored.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.BaseURL = u
		}
	}
}

// WithPlatform selects the platform path segment (pc, 360, ps3).
func WithPlatform(p string) Option {
	return func(c *Client) {
		if p != "" {
			c.Platform = p
		}
	}
}

// WithTimeout bounds each request. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.HTTP.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.HTTP = h
		}
	}
}

func NewClient(opts ...Option) *Client {
	h := cleanhttp.DefaultClient()
	h.Timeout = DefaultTimeout

	c := &Client{
		HTTP:      h,
		BaseURL:   DefaultBaseURL,
		Platform:  DefaultPlatform,
		UserAgent: "assignmentinfo",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the player lookup URL.
func (c *Client) Endpoint() string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + c.Platform + "/player/"
}

// Form builds the request body for player. Only assignment data, with
// display names, is requested.
func Form(player string) url.Values {
	return url.Values{
		"player":               {player},
		"opt[clear]":           {"true"},
		"opt[assignments]":     {"true"},
		"opt[assignmentsName]": {"true"},
	}
}

// Fetch blocks until the player's assignments are returned. A player the
// provider has not indexed yet yields an empty set and no error.
func (c *Client) Fetch(ctx context.Context, player string) (assignment.Set, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(),
		strings.NewReader(Form(player).Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)

	log.Debugf("POST %s player=%s", req.URL, player)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	var doc bytes.Buffer
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("stats API returned %s for %s", resp.Status, player)
	}

	set, indexed, err := Flatten(doc.Bytes())
	if err != nil {
		return nil, err
	}
	if !indexed {
		log.Infof("player %s not updated", player)
	}
	return set.WithCompletion(), nil
}

// FetchFunc adapts Fetch for the assignment cache.
func (c *Client) FetchFunc() cache.FetchFunc {
	return c.Fetch
}
