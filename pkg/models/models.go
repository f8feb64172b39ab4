package models

// MediaKind identifies which library-management service owns an item.
type MediaKind string

const (
	MediaKindMovie MediaKind = "movie"
	MediaKindShow  MediaKind = "show"
)

// LibraryEntry is one title as known to Sonarr or Radarr. External IDs
// are carried as strings so they compare directly against the identifier
// segment of a watch-history GUID; an empty string means the service has
// no such ID for the title.
type LibraryEntry struct {
	ID        int
	Title     string
	Path      string
	TitleSlug string
	Year      int
	ImdbID    string
	TmdbID    string
	TvdbID    string
	Kind      MediaKind
	URL       string
}

// WatchHistoryEntry is one row of a Tautulli library section listing.
type WatchHistoryEntry struct {
	RatingKey  string
	Title      string
	LastPlayed *int64 // nil or 0 means never watched
	AddedAt    int64  // epoch seconds; 0 when Tautulli never stamped it
}

// WatchMetadata is the per-item detail fetched for one rating key.
type WatchMetadata struct {
	MediaType string
	Title     string
	GUIDs     []string
}

// UnwatchedItem is one confirmed-unwatched, non-protected media item as
// persisted to the result store and consumed by the deletion workflow.
type UnwatchedItem struct {
	Title string    `json:"title"`
	Path  string    `json:"path"`
	ID    int       `json:"id"`
	Kind  MediaKind `json:"type"`
	URL   string    `json:"url"`
	Year  int       `json:"year"`
}

// ReconcileStats tracks reconciliation outcomes for the final summary.
type ReconcileStats struct {
	Checked          int
	SkippedRecent    int
	SkippedWatched   int
	SkippedNoMeta    int
	SkippedNoMatch   int
	SkippedProtected int
	FuzzyMatches     int
	Unwatched        int
}

// DeleteStats tracks deletion workflow outcomes.
type DeleteStats struct {
	Prompted int
	Deleted  int
	Declined int
	Failed   int
}
