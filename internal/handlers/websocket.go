package handlers

import (
	"encoding/json"
	"net/http"

	"vidloop-backend/internal/middleware"
	"vidloop-backend/internal/services"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for MVP
	},
}

// WebSocketHandler handles WebSocket connections
type WebSocketHandler struct {
	hub            *services.WSHub
	sessionService *services.SessionService
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(hub *services.WSHub, sessionService *services.SessionService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:            hub,
		sessionService: sessionService,
	}
}

// HandleWebSocket handles GET /ws?token=. The channel carries the story
// viewer interactions and the autoplay visibility reports.
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	sessionID, err := middleware.ValidateWebSocketToken(token, h.sessionService)
	if err != nil {
		respondError(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade WebSocket connection")
		return
	}

	h.hub.Register(sessionID, conn)
	defer h.hub.Unregister(sessionID)

	log.Info().Str("session_id", sessionID).Msg("WebSocket connection established")

	for {
		_, messageBytes, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error().Err(err).Str("session_id", sessionID).Msg("WebSocket error")
			}
			break
		}

		var msg services.WSMessage
		if err := json.Unmarshal(messageBytes, &msg); err != nil {
			log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to parse WebSocket message")
			h.sendError(sessionID, "Invalid message format")
			continue
		}

		if err := h.handleMessage(sessionID, msg); err != nil {
			log.Error().Err(err).Str("session_id", sessionID).Str("type", msg.Type).Msg("Failed to handle message")
			h.sendError(sessionID, err.Error())
		}
	}
}

// handleMessage processes incoming WebSocket messages
func (h *WebSocketHandler) handleMessage(sessionID string, msg services.WSMessage) error {
	switch msg.Type {
	case "story_open":
		return h.hub.OpenStoryViewer(sessionID, msg.UserID)
	case "story_pause", "story_resume", "story_next", "story_prev",
		"story_close", "story_like", "story_reply":
		return h.hub.ControlStoryViewer(sessionID, msg)
	case "visibility":
		h.hub.HandleVisibility(sessionID, msg.Reports)
		return nil
	default:
		return h.sendError(sessionID, "Unknown message type")
	}
}

// sendError sends an error message to a session
func (h *WebSocketHandler) sendError(sessionID, message string) error {
	return h.hub.SendToSession(sessionID, services.WSMessage{
		Type:    "error",
		Message: message,
	})
}
