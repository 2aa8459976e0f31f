package handlers

import (
	"encoding/json"
	"net/http"

	"vidloop-backend/internal/middleware"
	"vidloop-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// FeedHandler handles feed and video interaction HTTP requests
type FeedHandler struct {
	feedService *services.FeedService
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(feedService *services.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// GetFeed handles GET /api/v1/feed
func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	videos, err := h.feedService.Feed(sessionID)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to get feed")
		respondError(w, err.Error(), serviceErrorStatus(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"videos": videos,
		"total":  len(videos),
	})
}

// GetShorts handles GET /api/v1/shorts
func (h *FeedHandler) GetShorts(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	videos, err := h.feedService.Shorts(sessionID)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to get shorts")
		respondError(w, err.Error(), serviceErrorStatus(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"videos": videos,
		"total":  len(videos),
	})
}

// ToggleLike handles POST /api/v1/videos/{video_id}/like
func (h *FeedHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	videoID := chi.URLParam(r, "video_id")

	liked, likes, err := h.feedService.ToggleLike(sessionID, videoID)
	if err != nil {
		respondError(w, err.Error(), serviceErrorStatus(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"liked": liked,
		"likes": likes,
	})
}

// CommentRequest is the body for posting a comment.
type CommentRequest struct {
	Text string `json:"text"`
}

// AddComment handles POST /api/v1/videos/{video_id}/comments
func (h *FeedHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	videoID := chi.URLParam(r, "video_id")

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	comment, err := h.feedService.AddComment(sessionID, videoID, req.Text)
	if err != nil {
		respondError(w, err.Error(), serviceErrorStatus(err))
		return
	}

	log.Info().
		Str("session_id", sessionID).
		Str("video_id", videoID).
		Str("comment_id", comment.ID).
		Msg("Comment added")

	respondJSON(w, http.StatusOK, comment)
}

// DeleteComment handles DELETE /api/v1/videos/{video_id}/comments/{comment_id}
func (h *FeedHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	videoID := chi.URLParam(r, "video_id")
	commentID := chi.URLParam(r, "comment_id")

	if err := h.feedService.DeleteComment(sessionID, videoID, commentID); err != nil {
		respondError(w, err.Error(), serviceErrorStatus(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
