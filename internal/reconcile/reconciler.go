package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"watchsweep/internal/arr"
	"watchsweep/internal/tautulli"
	"watchsweep/pkg/models"
)

// ErrInvalidMediaKind reports a media type that maps to neither library.
// Unlike a per-item miss this aborts the whole run; the caller decides
// the process exit.
var ErrInvalidMediaKind = errors.New("invalid media type")

// protectedMarker exempts a path from deletion consideration.
const protectedMarker = "(Do Not Delete)"

// minAge is how long an item must have been in the library before it is
// considered for deletion, regardless of watch status.
const minAge = 60 * 24 * time.Hour

// MetadataSource provides per-item watch metadata.
type MetadataSource interface {
	GetMetadata(ctx context.Context, ratingKey string) (*models.WatchMetadata, error)
}

// Libraries holds the full catalogs fetched once per run.
type Libraries struct {
	Movies []models.LibraryEntry
	Shows  []models.LibraryEntry
}

// Reconciler matches never-watched history entries to library entries.
type Reconciler struct {
	metadata MetadataSource
	logger   arr.Logger
	progress ProgressReporter
	now      func() time.Time
}

// NewReconciler creates a new Reconciler
func NewReconciler(metadata MetadataSource, logger arr.Logger, progress ProgressReporter) *Reconciler {
	return &Reconciler{
		metadata: metadata,
		logger:   logger,
		progress: progress,
		now:      time.Now,
	}
}

// FindUnwatched walks the watch-history entries and returns one
// UnwatchedItem per never-watched, old-enough, matched, non-protected
// media item. Per-item misses are logged and skipped; transport failures
// and unknown media kinds abort the run.
func (r *Reconciler) FindUnwatched(ctx context.Context, libs Libraries, entries []models.WatchHistoryEntry) ([]models.UnwatchedItem, *models.ReconcileStats, error) {
	stats := &models.ReconcileStats{}
	cutoff := r.now().Add(-minAge)

	var items []models.UnwatchedItem
	for _, entry := range entries {
		stats.Checked++

		// A zero added_at means the history service never stamped the
		// entry; treat it as old enough rather than exempting it forever.
		if entry.AddedAt != 0 && time.Unix(entry.AddedAt, 0).After(cutoff) {
			stats.SkippedRecent++
			r.logger.Debug("Skipping recently added: %s", entry.Title)
			continue
		}

		if entry.LastPlayed != nil && *entry.LastPlayed != 0 {
			stats.SkippedWatched++
			continue
		}

		meta, err := r.metadata.GetMetadata(ctx, entry.RatingKey)
		if err != nil {
			if errors.Is(err, tautulli.ErrNotFound) {
				stats.SkippedNoMeta++
				r.logger.Info("No item found for rating key: %s", entry.RatingKey)
				continue
			}
			return nil, stats, err
		}

		library, err := selectLibrary(libs, meta.MediaType)
		if err != nil {
			return nil, stats, err
		}

		match, fuzzy := matchEntry(library, meta)
		if match == nil {
			stats.SkippedNoMatch++
			r.logger.Info("No match found for: %s", meta.Title)
			continue
		}
		if fuzzy {
			stats.FuzzyMatches++
			r.logger.Info("Fuzzy title search match for: %s", meta.Title)
		}

		if strings.Contains(match.Path, protectedMarker) {
			stats.SkippedProtected++
			r.logger.Debug("Skipping protected path: %s", match.Path)
			continue
		}

		item := models.UnwatchedItem{
			Title: entry.Title,
			Path:  match.Path,
			ID:    match.ID,
			Kind:  models.MediaKind(meta.MediaType),
			URL:   match.URL,
			Year:  match.Year,
		}
		items = append(items, item)
		stats.Unwatched++
		if r.progress != nil {
			r.progress.ReportUnwatched(item)
		}
	}

	if r.progress != nil {
		r.progress.Finish(*stats)
	}

	return items, stats, nil
}

// selectLibrary picks the catalog matching the entry's media kind
func selectLibrary(libs Libraries, mediaType string) ([]models.LibraryEntry, error) {
	switch models.MediaKind(mediaType) {
	case models.MediaKindMovie:
		return libs.Movies, nil
	case models.MediaKindShow:
		return libs.Shows, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMediaKind, mediaType)
	}
}

// matchEntry scans the library once. An external-ID hit returns
// immediately, so the first such entry wins; the fuzzy candidate keeps
// being overwritten, so the last title match wins. The asymmetry matches
// the behavior of the deployed tool and must not be reordered.
func matchEntry(library []models.LibraryEntry, meta *models.WatchMetadata) (match *models.LibraryEntry, fuzzy bool) {
	ids := guidIDs(meta.GUIDs)
	want := CleanTitle(meta.Title)

	var titleMatch *models.LibraryEntry
	for i := range library {
		entry := &library[i]

		if CleanTitle(entry.Title) == want {
			titleMatch = entry
		}

		for _, id := range []string{entry.ImdbID, entry.TmdbID, entry.TvdbID} {
			if id == "" {
				continue
			}
			if _, ok := ids[id]; ok {
				return entry, false
			}
		}
	}

	if titleMatch != nil {
		return titleMatch, true
	}
	return nil, false
}

// guidIDs extracts the identifier segment from GUID strings of the form
// "scheme//id".
func guidIDs(guids []string) map[string]struct{} {
	ids := make(map[string]struct{}, len(guids))
	for _, guid := range guids {
		parts := strings.SplitN(guid, "//", 2)
		if len(parts) < 2 || parts[1] == "" {
			continue
		}
		ids[parts[1]] = struct{}{}
	}
	return ids
}
