package arr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golift.io/starr/sonarr"

	"watchsweep/pkg/models"
)

// SonarrClient implements the Client interface for the Sonarr API.
// Authentication uses the apikey query parameter, which every Sonarr v3
// endpoint accepts alongside the header form.
type SonarrClient struct {
	host       string
	apiKey     string
	httpClient *http.Client
	logger     Logger
}

// NewSonarrClient creates a new Sonarr client
func NewSonarrClient(host, apiKey string, timeout time.Duration, logger Logger) Client {
	return &SonarrClient{
		host:   strings.TrimRight(host, "/"),
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// GetName returns the service name
func (c *SonarrClient) GetName() string {
	return "sonarr"
}

// TestConnection verifies the connection to Sonarr
func (c *SonarrClient) TestConnection(ctx context.Context) error {
	resp, err := c.makeRequest(ctx, http.MethodGet, "/api/v3/system/status", nil)
	if err != nil {
		return fmt.Errorf("failed to connect to Sonarr: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Sonarr returned status %d", resp.StatusCode)
	}

	c.logger.Info("✅ Successfully connected to Sonarr")
	return nil
}

// GetLibrary returns every series known to Sonarr
func (c *SonarrClient) GetLibrary(ctx context.Context) ([]models.LibraryEntry, error) {
	resp, err := c.makeRequest(ctx, http.MethodGet, "/api/v3/series/", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch series: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch series, status: %d", resp.StatusCode)
	}

	var series []*sonarr.Series
	if err := json.NewDecoder(resp.Body).Decode(&series); err != nil {
		return nil, fmt.Errorf("failed to decode series response: %w", err)
	}

	c.logger.Debug("Fetched %d series from Sonarr", len(series))
	return mapSeriesToEntryList(series, c), nil
}

// DeleteMedia deletes a series together with its files. The API reports
// success with status 200 exactly.
func (c *SonarrClient) DeleteMedia(ctx context.Context, id int) error {
	path := fmt.Sprintf("/api/v3/series/%d", id)
	resp, err := c.makeRequest(ctx, http.MethodDelete, path, url.Values{"deleteFiles": []string{"true"}})
	if err != nil {
		return fmt.Errorf("failed to delete series %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to delete series %d, status: %d", id, resp.StatusCode)
	}

	c.logger.Debug("Successfully deleted series %d", id)
	return nil
}

// MediaURL returns the deep link for a series page
func (c *SonarrClient) MediaURL(titleSlug string) string {
	return c.host + "/series/" + titleSlug
}

// makeRequest makes an HTTP request to the Sonarr API
func (c *SonarrClient) makeRequest(ctx context.Context, method, path string, params url.Values) (*http.Response, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, method, c.host+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug("Making %s request to %s", method, c.host+path)

	return c.httpClient.Do(req)
}
