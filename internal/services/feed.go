package services

import (
	"errors"

	"vidloop-backend/internal/feed"
	"vidloop-backend/internal/models"
	"vidloop-backend/internal/repository"

	"github.com/google/uuid"
)

var (
	// ErrVideoNotFound is returned when a video id is not in the session.
	ErrVideoNotFound = errors.New("video not found")
	// ErrCommentNotFound is returned when a comment id is not on the video.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrNotAllowed is returned when the actor may not perform the action.
	ErrNotAllowed = errors.New("not allowed")
	// ErrEmptyComment is returned when a posted comment has no text.
	ErrEmptyComment = errors.New("comment text is required")
)

// FeedService serves a session's generated videos and handles the
// interactions on them: like toggles, comment posting and deletion.
type FeedService struct {
	store *repository.SessionStore
	user  *models.User // the profile session actions are attributed to
}

// NewFeedService creates a new feed service.
func NewFeedService(store *repository.SessionStore, user *models.User) *FeedService {
	return &FeedService{store: store, user: user}
}

// Feed returns the long-form part of the session's feed batch.
func (s *FeedService) Feed(sessionID string) ([]*models.Video, error) {
	var long []*models.Video
	err := s.store.View(sessionID, func(data *repository.SessionData) error {
		long, _ = feed.SplitByDuration(data.FeedVideos)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return long, nil
}

// Shorts returns the short-form part of the session's shorts batch.
func (s *FeedService) Shorts(sessionID string) ([]*models.Video, error) {
	var short []*models.Video
	err := s.store.View(sessionID, func(data *repository.SessionData) error {
		_, short = feed.SplitByDuration(data.ShortsVideos)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return short, nil
}

// ToggleLike flips the session user's like on a video and returns the new
// state and the adjusted display count. The generated like count itself is
// never mutated; the toggle lives beside it.
func (s *FeedService) ToggleLike(sessionID, videoID string) (liked bool, likes int, err error) {
	err = s.store.Update(sessionID, func(data *repository.SessionData) error {
		video := findVideo(data, videoID)
		if video == nil {
			return ErrVideoNotFound
		}
		data.Liked[videoID] = !data.Liked[videoID]
		liked = data.Liked[videoID]
		likes = video.Likes
		if liked {
			likes++
		}
		return nil
	})
	return liked, likes, err
}

// AddComment prepends a comment by the session user to the video.
func (s *FeedService) AddComment(sessionID, videoID, text string) (*models.Comment, error) {
	if text == "" {
		return nil, ErrEmptyComment
	}
	comment := &models.Comment{
		ID:        uuid.New().String(),
		User:      s.user,
		Text:      text,
		Timestamp: "now",
	}
	err := s.store.Update(sessionID, func(data *repository.SessionData) error {
		video := findVideo(data, videoID)
		if video == nil {
			return ErrVideoNotFound
		}
		video.Comments = append([]models.Comment{*comment}, video.Comments...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment. Only the comment's author or the video
// owner may delete it; the session user is the acting party.
func (s *FeedService) DeleteComment(sessionID, videoID, commentID string) error {
	return s.store.Update(sessionID, func(data *repository.SessionData) error {
		video := findVideo(data, videoID)
		if video == nil {
			return ErrVideoNotFound
		}
		for i, c := range video.Comments {
			if c.ID != commentID {
				continue
			}
			if c.User.ID != s.user.ID && video.User.ID != s.user.ID {
				return ErrNotAllowed
			}
			video.Comments = append(video.Comments[:i:i], video.Comments[i+1:]...)
			return nil
		}
		return ErrCommentNotFound
	})
}

// findVideo looks a video up in either of the session's batches.
func findVideo(data *repository.SessionData, videoID string) *models.Video {
	for _, batch := range [][]*models.Video{data.FeedVideos, data.ShortsVideos} {
		for _, v := range batch {
			if v.ID == videoID {
				return v
			}
		}
	}
	return nil
}
