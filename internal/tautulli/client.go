package tautulli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"watchsweep/internal/arr"
	"watchsweep/pkg/models"
)

// ErrNotFound is returned when Tautulli has no metadata for a rating key.
var ErrNotFound = errors.New("no metadata for rating key")

// Client talks to the Tautulli v2 API. Every command goes through the
// single /api/v2 endpoint, selected by the cmd query parameter.
type Client struct {
	host       string
	apiKey     string
	pageLength int
	httpClient *http.Client
	logger     arr.Logger
}

// NewClient creates a new Tautulli client
func NewClient(host, apiKey string, pageLength int, timeout time.Duration, logger arr.Logger) *Client {
	return &Client{
		host:       strings.TrimRight(host, "/"),
		apiKey:     apiKey,
		pageLength: pageLength,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// mediaInfoResponse is the envelope of cmd=get_library_media_info
type mediaInfoResponse struct {
	Response struct {
		Data struct {
			Data []mediaInfoRow `json:"data"`
		} `json:"data"`
	} `json:"response"`
}

// mediaInfoRow is one listing row. Tautulli is loose about number
// formatting here: rating keys and timestamps arrive as JSON numbers or
// as strings depending on version, and never-stamped timestamps show up
// as null or "".
type mediaInfoRow struct {
	RatingKey  json.Number `json:"rating_key"`
	Title      string      `json:"title"`
	LastPlayed epoch       `json:"last_played"`
	AddedAt    epoch       `json:"added_at"`
}

// metadataResponse is the envelope of cmd=get_metadata. Data stays raw so
// an empty object (the service's "not found") can be told apart from a
// real payload before unmarshaling.
type metadataResponse struct {
	Response struct {
		Data json.RawMessage `json:"data"`
	} `json:"response"`
}

type metadataPayload struct {
	MediaType string   `json:"media_type"`
	Title     string   `json:"title"`
	GUIDs     []string `json:"guids"`
}

// GetLibraryMediaInfo returns the full media listing of one library section
func (c *Client) GetLibraryMediaInfo(ctx context.Context, sectionID int) ([]models.WatchHistoryEntry, error) {
	params := url.Values{}
	params.Set("cmd", "get_library_media_info")
	params.Set("section_id", strconv.Itoa(sectionID))
	params.Set("length", strconv.Itoa(c.pageLength))

	resp, err := c.makeRequest(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch media info for section %d: %w", sectionID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch media info for section %d, status: %d", sectionID, resp.StatusCode)
	}

	var envelope mediaInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode media info response for section %d: %w", sectionID, err)
	}

	rows := envelope.Response.Data.Data
	entries := make([]models.WatchHistoryEntry, 0, len(rows))
	for _, row := range rows {
		entry := models.WatchHistoryEntry{
			RatingKey:  row.RatingKey.String(),
			Title:      row.Title,
			LastPlayed: row.LastPlayed.value,
		}
		if row.AddedAt.value != nil {
			entry.AddedAt = *row.AddedAt.value
		}
		entries = append(entries, entry)
	}

	c.logger.Debug("Fetched %d entries from Tautulli section %d", len(entries), sectionID)
	return entries, nil
}

// GetMetadata returns the watch metadata for one rating key, or
// ErrNotFound when the service has no data for it.
func (c *Client) GetMetadata(ctx context.Context, ratingKey string) (*models.WatchMetadata, error) {
	params := url.Values{}
	params.Set("cmd", "get_metadata")
	params.Set("rating_key", ratingKey)

	resp, err := c.makeRequest(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata for rating key %s: %w", ratingKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch metadata for rating key %s, status: %d", ratingKey, resp.StatusCode)
	}

	var envelope metadataResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode metadata response for rating key %s: %w", ratingKey, err)
	}

	data := bytes.TrimSpace(envelope.Response.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) ||
		bytes.Equal(data, []byte("{}")) || bytes.Equal(data, []byte("[]")) {
		return nil, fmt.Errorf("rating key %s: %w", ratingKey, ErrNotFound)
	}

	var payload metadataPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode metadata payload for rating key %s: %w", ratingKey, err)
	}

	return &models.WatchMetadata{
		MediaType: payload.MediaType,
		Title:     payload.Title,
		GUIDs:     payload.GUIDs,
	}, nil
}

// makeRequest makes a GET request to the Tautulli v2 API
func (c *Client) makeRequest(ctx context.Context, params url.Values) (*http.Response, error) {
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+"/api/v2?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug("Making GET request to %s/api/v2 (cmd=%s)", c.host, params.Get("cmd"))

	return c.httpClient.Do(req)
}
