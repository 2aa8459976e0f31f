package services

import (
	"vidloop-backend/internal/models"
	"vidloop-backend/internal/repository"
)

// NotificationService serves a session's activity feed.
type NotificationService struct {
	store *repository.SessionStore
}

// NewNotificationService creates a new notification service.
func NewNotificationService(store *repository.SessionStore) *NotificationService {
	return &NotificationService{store: store}
}

// List returns the session's notifications in generated order.
func (s *NotificationService) List(sessionID string) ([]*models.Notification, error) {
	var notifications []*models.Notification
	err := s.store.View(sessionID, func(data *repository.SessionData) error {
		notifications = data.Notifications
		return nil
	})
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkAllRead marks every notification in the session read and returns how
// many were unread.
func (s *NotificationService) MarkAllRead(sessionID string) (int, error) {
	marked := 0
	err := s.store.Update(sessionID, func(data *repository.SessionData) error {
		for _, n := range data.Notifications {
			if !n.Read {
				n.Read = true
				marked++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return marked, nil
}
