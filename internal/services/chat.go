package services

import (
	"errors"

	"vidloop-backend/internal/models"
	"vidloop-backend/internal/repository"

	"github.com/google/uuid"
)

var (
	// ErrChatNotFound is returned when a chat id is not in the session.
	ErrChatNotFound = errors.New("chat not found")
	// ErrEmptyMessage is returned when a sent message has no text.
	ErrEmptyMessage = errors.New("message text is required")
)

// ChatService serves a session's direct-message threads.
type ChatService struct {
	store *repository.SessionStore
}

// NewChatService creates a new chat service.
func NewChatService(store *repository.SessionStore) *ChatService {
	return &ChatService{store: store}
}

// List returns the session's chats with unread threads first. Relative
// order within the unread and read groups is preserved.
func (s *ChatService) List(sessionID string) ([]*models.Chat, error) {
	var chats []*models.Chat
	err := s.store.View(sessionID, func(data *repository.SessionData) error {
		chats = PartitionUnreadFirst(data.Chats)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return chats, nil
}

// PartitionUnreadFirst orders chats so every thread with unread messages
// comes before every fully-read one, keeping relative order inside each
// group. The input is not mutated.
func PartitionUnreadFirst(chats []*models.Chat) []*models.Chat {
	ordered := make([]*models.Chat, 0, len(chats))
	for _, c := range chats {
		if c.UnreadCount > 0 {
			ordered = append(ordered, c)
		}
	}
	for _, c := range chats {
		if c.UnreadCount == 0 {
			ordered = append(ordered, c)
		}
	}
	return ordered
}

// Get returns one chat and marks it read: opening a thread clears its
// unread count.
func (s *ChatService) Get(sessionID, chatID string) (*models.Chat, error) {
	var chat *models.Chat
	err := s.store.Update(sessionID, func(data *repository.SessionData) error {
		chat = findChat(data, chatID)
		if chat == nil {
			return ErrChatNotFound
		}
		chat.UnreadCount = 0
		return nil
	})
	if err != nil {
		return nil, err
	}
	return chat, nil
}

// SendMessage appends an outgoing text message to the chat and updates its
// last-message summary.
func (s *ChatService) SendMessage(sessionID, chatID, text string) (*models.Message, error) {
	if text == "" {
		return nil, ErrEmptyMessage
	}
	msg := &models.Message{
		ID:        uuid.New().String(),
		Kind:      models.MessageText,
		Text:      text,
		Sender:    "me",
		Timestamp: "now",
	}
	err := s.store.Update(sessionID, func(data *repository.SessionData) error {
		chat := findChat(data, chatID)
		if chat == nil {
			return ErrChatNotFound
		}
		chat.Messages = append(chat.Messages, *msg)
		chat.LastMessage = text
		chat.LastMessageTime = msg.Timestamp
		chat.UnreadCount = 0
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

func findChat(data *repository.SessionData, chatID string) *models.Chat {
	for _, c := range data.Chats {
		if c.ID == chatID {
			return c
		}
	}
	return nil
}
