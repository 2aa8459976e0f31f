package handlers

import (
	"net/http"

	"vidloop-backend/internal/models"
	"vidloop-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// SessionHandler handles session-related HTTP requests
type SessionHandler struct {
	sessionService *services.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// SessionResponse is the payload returned on session creation.
type SessionResponse struct {
	SessionID string       `json:"session_id"`
	Token     string       `json:"token"`
	User      *models.User `json:"user"`
}

// CreateSession handles POST /api/v1/sessions. Each session gets its own
// freshly generated content.
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	data, token, err := h.sessionService.Create()
	if err != nil {
		log.Error().Err(err).Msg("Failed to create session")
		respondError(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("session_id", data.ID).
		Int("feed_videos", len(data.FeedVideos)).
		Int("shorts_videos", len(data.ShortsVideos)).
		Msg("Session created")

	respondJSON(w, http.StatusOK, SessionResponse{
		SessionID: data.ID,
		Token:     token,
		User:      h.sessionService.User(),
	})
}
