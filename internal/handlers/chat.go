package handlers

import (
	"encoding/json"
	"net/http"

	"vidloop-backend/internal/middleware"
	"vidloop-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// ChatHandler handles direct-message HTTP requests
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// GetChats handles GET /api/v1/chats. Threads with unread messages are
// listed first.
func (h *ChatHandler) GetChats(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	chats, err := h.chatService.List(sessionID)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to list chats")
		respondError(w, err.Error(), serviceErrorStatus(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"chats": chats,
		"total": len(chats),
	})
}

// GetChat handles GET /api/v1/chats/{chat_id}. Opening a thread marks it
// read.
func (h *ChatHandler) GetChat(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	chatID := chi.URLParam(r, "chat_id")

	chat, err := h.chatService.Get(sessionID, chatID)
	if err != nil {
		respondError(w, err.Error(), serviceErrorStatus(err))
		return
	}

	respondJSON(w, http.StatusOK, chat)
}

// MessageRequest is the body for sending a message.
type MessageRequest struct {
	Text string `json:"text"`
}

// SendMessage handles POST /api/v1/chats/{chat_id}/messages
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	chatID := chi.URLParam(r, "chat_id")

	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := h.chatService.SendMessage(sessionID, chatID, req.Text)
	if err != nil {
		respondError(w, err.Error(), serviceErrorStatus(err))
		return
	}

	log.Info().
		Str("session_id", sessionID).
		Str("chat_id", chatID).
		Str("message_id", msg.ID).
		Msg("Message sent")

	respondJSON(w, http.StatusOK, msg)
}
