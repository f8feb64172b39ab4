package arr

import (
	"context"

	"watchsweep/pkg/models"
)

// Client defines the interface for *arr API clients (Sonarr, Radarr).
type Client interface {
	// GetName returns the name of the service (e.g., "sonarr", "radarr")
	GetName() string

	// TestConnection verifies the connection to the *arr instance
	TestConnection(ctx context.Context) error

	// GetLibrary returns the full catalog of the service
	GetLibrary(ctx context.Context) ([]models.LibraryEntry, error)

	// DeleteMedia removes one item and its files from the service
	DeleteMedia(ctx context.Context, id int) error

	// MediaURL returns the deep-link URL for a title slug
	MediaURL(titleSlug string) string
}

// Logger defines the interface for logging operations
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}
