package arr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golift.io/starr/radarr"

	"watchsweep/pkg/models"
)

// RadarrClient implements the Client interface for the Radarr API
type RadarrClient struct {
	host       string
	apiKey     string
	httpClient *http.Client
	logger     Logger
}

// NewRadarrClient creates a new Radarr client
func NewRadarrClient(host, apiKey string, timeout time.Duration, logger Logger) Client {
	return &RadarrClient{
		host:   strings.TrimRight(host, "/"),
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// GetName returns the service name
func (c *RadarrClient) GetName() string {
	return "radarr"
}

// TestConnection verifies the connection to Radarr
func (c *RadarrClient) TestConnection(ctx context.Context) error {
	resp, err := c.makeRequest(ctx, http.MethodGet, "/api/v3/system/status", nil)
	if err != nil {
		return fmt.Errorf("failed to connect to Radarr: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Radarr returned status %d", resp.StatusCode)
	}

	c.logger.Info("✅ Successfully connected to Radarr")
	return nil
}

// GetLibrary returns every movie known to Radarr
func (c *RadarrClient) GetLibrary(ctx context.Context) ([]models.LibraryEntry, error) {
	resp, err := c.makeRequest(ctx, http.MethodGet, "/api/v3/movie/", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movies: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch movies, status: %d", resp.StatusCode)
	}

	var movies []*radarr.Movie
	if err := json.NewDecoder(resp.Body).Decode(&movies); err != nil {
		return nil, fmt.Errorf("failed to decode movie response: %w", err)
	}

	c.logger.Debug("Fetched %d movies from Radarr", len(movies))
	return mapMoviesToEntryList(movies, c), nil
}

// DeleteMedia deletes a movie together with its files. The API reports
// success with status 200 exactly.
func (c *RadarrClient) DeleteMedia(ctx context.Context, id int) error {
	path := fmt.Sprintf("/api/v3/movie/%d", id)
	resp, err := c.makeRequest(ctx, http.MethodDelete, path, url.Values{"deleteFiles": []string{"true"}})
	if err != nil {
		return fmt.Errorf("failed to delete movie %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to delete movie %d, status: %d", id, resp.StatusCode)
	}

	c.logger.Debug("Successfully deleted movie %d", id)
	return nil
}

// MediaURL returns the deep link for a movie page
func (c *RadarrClient) MediaURL(titleSlug string) string {
	return c.host + "/movie/" + titleSlug
}

// makeRequest makes an HTTP request to the Radarr API
func (c *RadarrClient) makeRequest(ctx context.Context, method, path string, params url.Values) (*http.Response, error) {
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
