package services

import (
	"testing"
	"time"

	"vidloop-backend/internal/models"
	"vidloop-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatSession(t *testing.T, chats []*models.Chat) (*repository.SessionStore, string) {
	t.Helper()
	store := repository.NewSessionStore()
	store.Create(&repository.SessionData{
		ID:        "session1",
		CreatedAt: time.Now(),
		Chats:     chats,
		Liked:     make(map[string]bool),
	})
	return store, "session1"
}

func unreadChats(counts []int) []*models.Chat {
	user := &models.User{ID: "user1", Username: "TechGoddess"}
	chats := make([]*models.Chat, len(counts))
	for i, n := range counts {
		chats[i] = &models.Chat{
			ID:          string(rune('a' + i)),
			User:        user,
			UnreadCount: n,
			LastMessage: "hi",
		}
	}
	return chats
}

func TestPartitionUnreadFirst(t *testing.T) {
	ordered := PartitionUnreadFirst(unreadChats([]int{0, 2, 0, 5}))

	require.Len(t, ordered, 4)
	// Unread threads first, relative order preserved within each group.
	assert.Equal(t, "b", ordered[0].ID)
	assert.Equal(t, "d", ordered[1].ID)
	assert.Equal(t, "a", ordered[2].ID)
	assert.Equal(t, "c", ordered[3].ID)
}

func TestPartitionUnreadFirstAllRead(t *testing.T) {
	ordered := PartitionUnreadFirst(unreadChats([]int{0, 0}))
	require.Len(t, ordered, 2)
	assert.Equal(t, "a", ordered[0].ID)
	assert.Equal(t, "b", ordered[1].ID)
}

func TestChatListPartitions(t *testing.T) {
	store, sessionID := newChatSession(t, unreadChats([]int{0, 2, 0, 5}))
	svc := NewChatService(store)

	chats, err := svc.List(sessionID)
	require.NoError(t, err)
	assert.Equal(t, "b", chats[0].ID)
	assert.Equal(t, "d", chats[1].ID)
}

func TestChatListUnknownSession(t *testing.T) {
	svc := NewChatService(repository.NewSessionStore())
	_, err := svc.List("nope")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestChatGetMarksRead(t *testing.T) {
	store, sessionID := newChatSession(t, unreadChats([]int{3}))
	svc := NewChatService(store)

	chat, err := svc.Get(sessionID, "a")
	require.NoError(t, err)
	assert.Zero(t, chat.UnreadCount)
}

func TestChatSendMessageUpdatesSummary(t *testing.T) {
	store, sessionID := newChatSession(t, unreadChats([]int{2}))
	svc := NewChatService(store)

	msg, err := svc.SendMessage(sessionID, "a", "see you there!")
	require.NoError(t, err)
	assert.Equal(t, models.MessageText, msg.Kind)
	assert.Equal(t, "me", msg.Sender)

	chat, err := svc.Get(sessionID, "a")
	require.NoError(t, err)
	require.Len(t, chat.Messages, 1)
	assert.Equal(t, "see you there!", chat.LastMessage)
	assert.Zero(t, chat.UnreadCount)
}

func TestChatSendMessageValidation(t *testing.T) {
	store, sessionID := newChatSession(t, unreadChats([]int{0}))
	svc := NewChatService(store)

	_, err := svc.SendMessage(sessionID, "a", "")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = svc.SendMessage(sessionID, "missing", "hello")
	assert.ErrorIs(t, err, ErrChatNotFound)
}
