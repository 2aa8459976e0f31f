package services

import (
	"errors"

	"vidloop-backend/internal/models"
	"vidloop-backend/internal/repository"
)

// ErrNoStories is returned when a user has no stories to open a viewer on.
var ErrNoStories = errors.New("user has no stories")

// StoryService serves a session's story carousel and resolves the ordered
// sequences the viewer plays through.
type StoryService struct {
	store *repository.SessionStore
}

// NewStoryService creates a new story service.
func NewStoryService(store *repository.SessionStore) *StoryService {
	return &StoryService{store: store}
}

// List returns the session's stories in carousel order.
func (s *StoryService) List(sessionID string) ([]*models.Story, error) {
	var stories []*models.Story
	err := s.store.View(sessionID, func(data *repository.SessionData) error {
		stories = data.Stories
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stories, nil
}

// ForUser returns one user's ordered story sequence for the viewer.
func (s *StoryService) ForUser(sessionID, userID string) ([]*models.Story, error) {
	var stories []*models.Story
	err := s.store.View(sessionID, func(data *repository.SessionData) error {
		for _, st := range data.Stories {
			if st.User.ID == userID {
				stories = append(stories, st)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(stories) == 0 {
		return nil, ErrNoStories
	}
	return stories, nil
}
