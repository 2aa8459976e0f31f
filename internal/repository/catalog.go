package repository

import (
	"errors"

	"vidloop-backend/internal/models"
)

// ErrUserNotFound is returned when a user id is not in the catalog.
var ErrUserNotFound = errors.New("user not found")

// CatalogStore holds the shared catalogs built once at startup: users,
// the music library and the effect list. Everything here is read-only
// after construction and safe to read concurrently without coordination.
type CatalogStore struct {
	users   []*models.User
	byID    map[string]*models.User
	songs   []*models.Song
	effects []*models.Effect
}

// NewCatalogStore indexes the given catalogs.
func NewCatalogStore(users []*models.User, songs []*models.Song, effects []*models.Effect) *CatalogStore {
	byID := make(map[string]*models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return &CatalogStore{
		users:   users,
		byID:    byID,
		songs:   songs,
		effects: effects,
	}
}

// Users returns the full user catalog, main user first.
func (s *CatalogStore) Users() []*models.User {
	return s.users
}

// UserByID looks up a user by id.
func (s *CatalogStore) UserByID(id string) (*models.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Songs returns the full music library.
func (s *CatalogStore) Songs() []*models.Song {
	return s.songs
}

// Effects returns the effect list window [offset, offset+limit). A limit
// <= 0 returns everything from offset on.
func (s *CatalogStore) Effects(limit, offset int) []*models.Effect {
	if offset < 0 || offset >= len(s.effects) {
		return nil
	}
	end := len(s.effects)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return s.effects[offset:end]
}
