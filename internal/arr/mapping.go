package arr

import (
	"strconv"

	"golift.io/starr/radarr"
	"golift.io/starr/sonarr"

	"watchsweep/pkg/models"
)

// formatExternalID renders a numeric external ID the way it appears in
// the identifier segment of a watch-history GUID. Zero means the service
// has no such ID for the title.
func formatExternalID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

// mapSeriesToEntry converts a starr Series to our models.LibraryEntry
func mapSeriesToEntry(s *sonarr.Series, c Client) models.LibraryEntry {
	if s == nil {
		return models.LibraryEntry{}
	}

	return models.LibraryEntry{
		ID:        int(s.ID),
		Title:     s.Title,
		Path:      s.Path,
		TitleSlug: s.TitleSlug,
		Year:      s.Year,
		ImdbID:    s.ImdbID,
		TvdbID:    formatExternalID(s.TvdbID),
		Kind:      models.MediaKindShow,
		URL:       c.MediaURL(s.TitleSlug),
	}
}

// mapSeriesToEntryList converts a slice of starr Series to models.LibraryEntry
func mapSeriesToEntryList(series []*sonarr.Series, c Client) []models.LibraryEntry {
	result := make([]models.LibraryEntry, len(series))
	for i, s := range series {
		result[i] = mapSeriesToEntry(s, c)
	}
	return result
}

// mapMovieToEntry converts a starr Movie to our models.LibraryEntry
func mapMovieToEntry(m *radarr.Movie, c Client) models.LibraryEntry {
	if m == nil {
		return models.LibraryEntry{}
	}

	return models.LibraryEntry{
		ID:        int(m.ID),
		Title:     m.Title,
		Path:      m.Path,
		TitleSlug: m.TitleSlug,
		Year:      m.Year,
		ImdbID:    m.ImdbID,
		TmdbID:    formatExternalID(m.TmdbID),
		Kind:      models.MediaKindMovie,
		URL:       c.MediaURL(m.TitleSlug),
	}
}

// mapMoviesToEntryList converts a slice of starr Movies to models.LibraryEntry
func mapMoviesToEntryList(movies []*radarr.Movie, c Client) []models.LibraryEntry {
	result := make([]models.LibraryEntry, len(movies))
	for i, m := range movies {
		result[i] = mapMovieToEntry(m, c)
	}
	return result
}
