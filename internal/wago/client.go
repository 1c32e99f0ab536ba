// Package wago fetches DB2 table exports and build metadata from the
// wago.tools API.
package wago

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aliensearust/LootWishlist/internal/config"
)

const userAgent = "LootWishlist-trackdata/0.1"

// ---------------------------------------------------------------------------
// Client
// ---------------------------------------------------------------------------

// Client talks to wago.tools. Table exports can be multi-megabyte CSV files
// while the builds listing is a small JSON document, so each endpoint gets
// its own HTTP client with its own timeout.
type Client struct {
	baseURL   string
	buildsURL string
	channel   string

	tableClient *http.Client
	buildClient *http.Client

	log *slog.Logger
}

// NewClient builds a Client from the wago section of the configuration.
func NewClient(cfg config.Wago) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		buildsURL: cfg.BuildsURL,
		channel:   cfg.BuildChannel,
		tableClient: &http.Client{
			Timeout: time.Duration(cfg.TableTimeoutSec) * time.Second,
		},
		buildClient: &http.Client{
			Timeout: time.Duration(cfg.BuildTimeoutSec) * time.Second,
		},
		log: slog.Default().With("source", "wago"),
	}
}

// ---------------------------------------------------------------------------
// Table exports
// ---------------------------------------------------------------------------

// FetchTable retrieves the named DB2 table as CSV and parses it into rows.
// Any failure along the way (transport, status, unreadable body) is logged
// as a warning and yields no rows: a missing table degrades the run rather
// than aborting it.
func (c *Client) FetchTable(ctx context.Context, name string) []Row {
	url := c.baseURL + "/" + name + "/csv"
	c.log.Info("fetching table", "table", name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.log.Warn("building table request", "table", name, "error", err)
		return nil
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.tableClient.Do(req)
	if err != nil {
		c.log.Warn("fetching table", "table", name, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("fetching table", "table", name, "status", resp.StatusCode)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn("reading table body", "table", name, "error", err)
		return nil
	}

	rows := ParseTable(string(body))
	c.log.Info("fetched table", "table", name, "rows", len(rows))
	return rows
}

// ---------------------------------------------------------------------------
// Build metadata
// ---------------------------------------------------------------------------

// buildEntry is one build in the listing; only the version field matters here.
type buildEntry struct {
	Version string `json:"version"`
}

// LatestBuild returns the newest build version for the configured channel.
// The builds endpoint serves a JSON object keyed by channel name, each value
// an array of builds ordered newest first.
func (c *Client) LatestBuild(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildsURL, nil)
	if err != nil {
		return "", fmt.Errorf("building builds request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.buildClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching builds: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching builds: status %d", resp.StatusCode)
	}

	var channels map[string][]buildEntry
	if err := json.NewDecoder(resp.Body).Decode(&channels); err != nil {
		return "", fmt.Errorf("decoding builds: %w", err)
	}

	builds := channels[c.channel]
	if len(builds) == 0 {
		return "", fmt.Errorf("no builds listed for channel %q", c.channel)
	}
	version := strings.TrimSpace(builds[0].Version)
	if version == "" {
		return "", fmt.Errorf("newest %q build has no version", c.channel)
	}
	return version, nil
}
