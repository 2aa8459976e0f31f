package catalog

import (
	"strings"

	"vidloop-backend/internal/models"
)

// SearchSongs returns songs whose title or artist contains the query,
// case-insensitively. An empty query matches everything. A limit <= 0 means
// no limit.
func SearchSongs(songs []*models.Song, query string, limit int) []*models.Song {
	query = strings.ToLower(strings.TrimSpace(query))
	matched := make([]*models.Song, 0)
	for _, s := range songs {
		if query != "" &&
			!strings.Contains(strings.ToLower(s.Title), query) &&
			!strings.Contains(strings.ToLower(s.Artist), query) {
			continue
		}
		matched = append(matched, s)
		if limit > 0 && len(matched) >= limit {
			break
		}
	}
	return matched
}
