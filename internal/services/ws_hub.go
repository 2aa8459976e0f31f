package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"vidloop-backend/internal/playback"
	"vidloop-backend/internal/stories"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// tickInterval is the cadence of story viewer progress updates.
const tickInterval = 50 * time.Millisecond

// WSMessage represents a WebSocket message in either direction.
type WSMessage struct {
	Type     string                      `json:"type"`
	UserID   string                      `json:"user_id,omitempty"`
	ItemID   string                      `json:"item_id,omitempty"`
	Muted    *bool                       `json:"muted,omitempty"`
	Position *float64                    `json:"position,omitempty"`
	Index    *int                        `json:"index,omitempty"`
	Status   string                      `json:"status,omitempty"`
	Liked    *bool                       `json:"liked,omitempty"`
	Text     string                      `json:"text,omitempty"`
	Progress []float64                   `json:"progress,omitempty"`
	Reports  []playback.VisibilityReport `json:"reports,omitempty"`
	Message  string                      `json:"message,omitempty"`
}

// wsConn pairs a connection with the mutex serializing writes to it.
// gorilla/websocket allows only one concurrent writer per connection, and
// both the read-loop handlers and the viewer tick goroutine send here.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// write sends one text message under the connection's write lock.
func (c *wsConn) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// storyViewer is one session's running story viewer: the playback state
// machine plus the cancel handle of its tick loop.
type storyViewer struct {
	mu         sync.Mutex
	player     *stories.Player
	cancel     context.CancelFunc
	closedSent bool
}

// WSHub manages WebSocket connections and the per-session realtime state
// behind them: the story viewer tick loop and the autoplay controller.
type WSHub struct {
	mu           sync.RWMutex
	connections  map[string]*wsConn
	viewers      map[string]*storyViewer
	controllers  map[string]*playback.Controller
	storyService *StoryService
}

// NewWSHub creates a new WebSocket hub.
func NewWSHub(storyService *StoryService) *WSHub {
	return &WSHub{
		connections:  make(map[string]*wsConn),
		viewers:      make(map[string]*storyViewer),
		controllers:  make(map[string]*playback.Controller),
		storyService: storyService,
	}
}

// Register registers a new WebSocket connection for a session.
func (h *WSHub) Register(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	if existing, exists := h.connections[sessionID]; exists {
		existing.conn.Close()
	}
	h.connections[sessionID] = &wsConn{conn: conn}
	h.mu.Unlock()

	log.Info().Str("session_id", sessionID).Msg("WebSocket connection registered")
}

// Unregister removes a session's connection and tears down its viewer and
// controller. Safe to call on all exit paths; repeated calls are no-ops.
func (h *WSHub) Unregister(sessionID string) {
	h.mu.Lock()
	if c, exists := h.connections[sessionID]; exists {
		c.conn.Close()
		delete(h.connections, sessionID)
		log.Info().Str("session_id", sessionID).Msg("WebSocket connection unregistered")
	}
	viewer := h.viewers[sessionID]
	delete(h.viewers, sessionID)
	delete(h.controllers, sessionID)
	h.mu.Unlock()

	if viewer != nil {
		viewer.cancel()
	}
}

// SendToSession sends a message to a session's connection. Writes from the
// tick goroutine and the read-loop handlers are serialized per connection.
func (h *WSHub) SendToSession(sessionID string, message WSMessage) error {
	h.mu.RLock()
	c, exists := h.connections[sessionID]
	h.mu.RUnlock()

	if !exists {
		return fmt.Errorf("session %s is not connected", sessionID)
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := c.write(data); err != nil {
		h.Unregister(sessionID)
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

// OpenStoryViewer opens the story viewer on one user's story sequence and
// starts its tick loop. Opening on a user with no stories closes the viewer
// immediately; that is a degenerate state, not an error.
func (h *WSHub) OpenStoryViewer(sessionID, userID string) error {
	seq, err := h.storyService.ForUser(sessionID, userID)
	if errors.Is(err, ErrNoStories) {
		return h.SendToSession(sessionID, WSMessage{Type: "story_closed"})
	}
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	viewer := &storyViewer{player: stories.NewPlayer(seq), cancel: cancel}

	h.mu.Lock()
	if old := h.viewers[sessionID]; old != nil {
		old.cancel()
	}
	h.viewers[sessionID] = viewer
	h.mu.Unlock()

	h.publishViewerState(sessionID, viewer)
	go h.runViewer(ctx, sessionID, viewer)

	log.Info().
		Str("session_id", sessionID).
		Str("user_id", userID).
		Int("stories", len(seq)).
		Msg("Story viewer opened")
	return nil
}

// runViewer drives one viewer's playback until it closes or its context is
// cancelled. The ticker is released on every exit path.
func (h *WSHub) runViewer(ctx context.Context, sessionID string, viewer *storyViewer) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			viewer.mu.Lock()
			viewer.player.Tick(tickInterval)
			closed := viewer.player.Closed()
			viewer.mu.Unlock()

			h.publishViewerState(sessionID, viewer)
			if closed {
				h.dropViewer(sessionID, viewer)
				return
			}
		}
	}
}

// ControlStoryViewer applies a user interaction to the session's open
// viewer. Unknown interactions and interactions without an open viewer are
// reported back as errors.
func (h *WSHub) ControlStoryViewer(sessionID string, msg WSMessage) error {
	h.mu.RLock()
	viewer := h.viewers[sessionID]
	h.mu.RUnlock()

	if viewer == nil {
		return fmt.Errorf("no story viewer is open")
	}

	viewer.mu.Lock()
	switch msg.Type {
	case "story_pause":
		viewer.player.Pause()
	case "story_resume":
		viewer.player.Resume()
	case "story_next":
		viewer.player.Next()
	case "story_prev":
		viewer.player.Prev()
	case "story_close":
		viewer.player.Close()
	case "story_like":
		viewer.player.ToggleLike()
	case "story_reply":
		viewer.player.SetReplyDraft(msg.Text)
	default:
		viewer.mu.Unlock()
		return fmt.Errorf("unknown story interaction %q", msg.Type)
	}
	closed := viewer.player.Closed()
	viewer.mu.Unlock()

	h.publishViewerState(sessionID, viewer)
	if closed {
		h.dropViewer(sessionID, viewer)
	}
	return nil
}

// publishViewerState pushes the viewer's current progress, or the close
// notification exactly once after it closes.
func (h *WSHub) publishViewerState(sessionID string, viewer *storyViewer) {
	viewer.mu.Lock()
	if viewer.player.Closed() {
		alreadySent := viewer.closedSent
		viewer.closedSent = true
		viewer.mu.Unlock()
		if !alreadySent {
			if err := h.SendToSession(sessionID, WSMessage{Type: "story_closed"}); err != nil {
				log.Debug().Err(err).Str("session_id", sessionID).Msg("Failed to send story_closed")
			}
		}
		return
	}
	index := viewer.player.Index()
	liked := viewer.player.Liked()
	msg := WSMessage{
		Type:     "story_progress",
		Index:    &index,
		Status:   viewer.player.Status().String(),
		Liked:    &liked,
		Progress: viewer.player.Progress(),
	}
	viewer.mu.Unlock()

	if err := h.SendToSession(sessionID, msg); err != nil {
		log.Debug().Err(err).Str("session_id", sessionID).Msg("Failed to send story progress")
	}
}

// dropViewer cancels a finished viewer and removes it from the hub, unless
// a newer viewer has already replaced it.
func (h *WSHub) dropViewer(sessionID string, viewer *storyViewer) {
	viewer.cancel()
	h.mu.Lock()
	if h.viewers[sessionID] == viewer {
		delete(h.viewers, sessionID)
	}
	h.mu.Unlock()
}

// HandleVisibility feeds the latest visibility reports into the session's
// autoplay controller, which plays the dominant on-screen video and pauses
// and rewinds the rest via play/pause/rewind messages back to the client.
func (h *WSHub) HandleVisibility(sessionID string, reports []playback.VisibilityReport) {
	h.mu.Lock()
	controller, exists := h.controllers[sessionID]
	if !exists {
		controller = playback.NewController(log.Logger)
		h.controllers[sessionID] = controller
	}
	h.mu.Unlock()

	for _, r := range reports {
		controller.Register(r.ItemID, &remotePlayer{hub: h, sessionID: sessionID, itemID: r.ItemID})
	}
	controller.Apply(reports)
}

// remotePlayer drives one mounted client video element over the session's
// WebSocket connection.
type remotePlayer struct {
	hub       *WSHub
	sessionID string
	itemID    string
}

// Play asks the client to start muted playback. A send failure is returned
// so the controller can treat it like any other rejected play attempt.
func (p *remotePlayer) Play(muted bool) error {
	return p.hub.SendToSession(p.sessionID, WSMessage{
		Type:   "play",
		ItemID: p.itemID,
		Muted:  &muted,
	})
}

// Pause asks the client to pause the element. Failures are expected during
// teardown and carry no recovery action.
func (p *remotePlayer) Pause() {
	if err := p.hub.SendToSession(p.sessionID, WSMessage{Type: "pause", ItemID: p.itemID}); err != nil {
		log.Debug().Err(err).Str("item_id", p.itemID).Msg("Failed to send pause")
	}
}

// Seek asks the client to move the element's playhead.
func (p *remotePlayer) Seek(seconds float64) {
	if err := p.hub.SendToSession(p.sessionID, WSMessage{
		Type:     "rewind",
		ItemID:   p.itemID,
		Position: &seconds,
	}); err != nil {
		log.Debug().Err(err).Str("item_id", p.itemID).Msg("Failed to send rewind")
	}
}
