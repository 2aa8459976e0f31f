package handlers

import (
	"net/http"
	"strconv"

	"vidloop-backend/internal/catalog"
	"vidloop-backend/internal/middleware"
	"vidloop-backend/internal/repository"
	"vidloop-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// defaultSongLimit caps song search responses when the client does not ask
// for a specific page size.
const defaultSongLimit = 50

// CatalogHandler serves the shared catalogs: users, songs, effects, and
// the session's stories and notifications.
type CatalogHandler struct {
	catalogStore        *repository.CatalogStore
	storyService        *services.StoryService
	notificationService *services.NotificationService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	catalogStore *repository.CatalogStore,
	storyService *services.StoryService,
	notificationService *services.NotificationService,
) *CatalogHandler {
	return &CatalogHandler{
		catalogStore:        catalogStore,
		storyService:        storyService,
		notificationService: notificationService,
	}
}

// SearchSongs handles GET /api/v1/songs?q=&limit=
func (h *CatalogHandler) SearchSongs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit := defaultSongLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}

	songs := catalog.SearchSongs(h.catalogStore.Songs(), query, limit)
	respondJSON(w, http.StatusOK, map[string]any{
		"songs": songs,
		"total": len(songs),
	})
}

// GetEffects handles GET /api/v1/effects?limit=&offset=
func (h *CatalogHandler) GetEffects(w http.ResponseWriter, r *http.Request) {
	limit := 0
	offset := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if parsed, err := strconv.Atoi(offsetStr); err == nil {
			offset = parsed
		}
	}

	effects := h.catalogStore.Effects(limit, offset)
	respondJSON(w, http.StatusOK, map[string]any{
		"effects": effects,
		"total":   len(effects),
	})
}

// GetUser handles GET /api/v1/users/{user_id}
func (h *CatalogHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	user, err := h.catalogStore.UserByID(userID)
	if err != nil {
		respondError(w, err.Error(), serviceErrorStatus(err))
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// GetStories handles GET /api/v1/stories
func (h *CatalogHandler) GetStories(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	stories, err := h.storyService.List(sessionID)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to list stories")
		respondError(w, err.Error(), serviceErrorStatus(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"stories": stories,
		"total":   len(stories),
	})
}

// GetNotifications handles GET /api/v1/notifications
func (h *CatalogHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	notifications, err := h.notificationService.List(sessionID)
	if err != nil {
		respondError(w, err.Error(), serviceErrorStatus(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"notifications": notifications,
		"total":         len(notifications),
	})
}

// MarkNotificationsRead handles POST /api/v1/notifications/read
func (h *CatalogHandler) MarkNotificationsRead(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	marked, err := h.notificationService.MarkAllRead(sessionID)
	if err != nil {
		respondError(w, err.Error(), serviceErrorStatus(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"marked": marked})
}
