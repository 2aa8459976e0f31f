package services

import (
	"testing"
	"time"

	"vidloop-backend/internal/models"
	"vidloop-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionUser = &models.User{ID: "user_main", Username: "CodeNinja"}

func newFeedSession(t *testing.T, feedVideos, shortsVideos []*models.Video) (*FeedService, string) {
	t.Helper()
	store := repository.NewSessionStore()
	store.Create(&repository.SessionData{
		ID:           "session1",
		CreatedAt:    time.Now(),
		FeedVideos:   feedVideos,
		ShortsVideos: shortsVideos,
		Liked:        make(map[string]bool),
	})
	return NewFeedService(store, sessionUser), "session1"
}

func TestFeedReturnsLongFormOnly(t *testing.T) {
	svc, sessionID := newFeedSession(t, []*models.Video{
		{ID: "long1", Duration: 300},
		{ID: "short1", Duration: 30},
		{ID: "long2", Duration: 120},
	}, nil)

	videos, err := svc.Feed(sessionID)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "long1", videos[0].ID)
	assert.Equal(t, "long2", videos[1].ID)
}

func TestShortsReturnsShortFormOnly(t *testing.T) {
	svc, sessionID := newFeedSession(t, nil, []*models.Video{
		{ID: "long1", Duration: 300},
		{ID: "short1", Duration: 30},
	})

	videos, err := svc.Shorts(sessionID)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "short1", videos[0].ID)
}

func TestToggleLikeRoundTrip(t *testing.T) {
	svc, sessionID := newFeedSession(t, []*models.Video{
		{ID: "v1", Duration: 120, Likes: 100},
	}, nil)

	liked, likes, err := svc.ToggleLike(sessionID, "v1")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 101, likes)

	// Toggling again removes the like and restores the generated count.
	liked, likes, err = svc.ToggleLike(sessionID, "v1")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 100, likes)
}

func TestToggleLikeUnknownVideo(t *testing.T) {
	svc, sessionID := newFeedSession(t, nil, nil)
	_, _, err := svc.ToggleLike(sessionID, "missing")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestAddCommentPrepends(t *testing.T) {
	owner := &models.User{ID: "user2", Username: "TechGoddess"}
	svc, sessionID := newFeedSession(t, []*models.Video{
		{
			ID:       "v1",
			Duration: 120,
			User:     owner,
			Comments: []models.Comment{{ID: "c1", User: owner, Text: "first"}},
		},
	}, nil)

	comment, err := svc.AddComment(sessionID, "v1", "great edit!")
	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, sessionUser, comment.User)
	assert.Equal(t, "now", comment.Timestamp)

	videos, err := svc.Feed(sessionID)
	require.NoError(t, err)
	require.Len(t, videos[0].Comments, 2)
	assert.Equal(t, "great edit!", videos[0].Comments[0].Text)
	assert.Equal(t, "c1", videos[0].Comments[1].ID)
}

func TestAddCommentEmptyText(t *testing.T) {
	svc, sessionID := newFeedSession(t, nil, nil)
	_, err := svc.AddComment(sessionID, "v1", "")
	assert.ErrorIs(t, err, ErrEmptyComment)
}

func TestDeleteCommentByAuthor(t *testing.T) {
	owner := &models.User{ID: "user2", Username: "TechGoddess"}
	svc, sessionID := newFeedSession(t, []*models.Video{
		{
			ID:       "v1",
			Duration: 120,
			User:     owner,
			Comments: []models.Comment{
				{ID: "mine", User: sessionUser, Text: "oops"},
				{ID: "theirs", User: owner, Text: "keep"},
			},
		},
	}, nil)

	require.NoError(t, svc.DeleteComment(sessionID, "v1", "mine"))

	videos, err := svc.Feed(sessionID)
	require.NoError(t, err)
	require.Len(t, videos[0].Comments, 1)
	assert.Equal(t, "theirs", videos[0].Comments[0].ID)
}

func TestDeleteCommentByVideoOwner(t *testing.T) {
	other := &models.User{ID: "user3", Username: "StarGazer"}
	svc, sessionID := newFeedSession(t, []*models.Video{
		{
			ID:       "v1",
			Duration: 120,
			User:     sessionUser, // session user owns the video
			Comments: []models.Comment{{ID: "c1", User: other, Text: "spam"}},
		},
	}, nil)

	require.NoError(t, svc.DeleteComment(sessionID, "v1", "c1"))
}

func TestDeleteCommentForbidden(t *testing.T) {
	owner := &models.User{ID: "user2", Username: "TechGoddess"}
	other := &models.User{ID: "user3", Username: "StarGazer"}
	svc, sessionID := newFeedSession(t, []*models.Video{
		{
			ID:       "v1",
			Duration: 120,
			User:     owner,
			Comments: []models.Comment{{ID: "c1", User: other, Text: "hands off"}},
		},
	}, nil)

	err := svc.DeleteComment(sessionID, "v1", "c1")
	assert.ErrorIs(t, err, ErrNotAllowed)
}

func TestDeleteCommentNotFound(t *testing.T) {
	svc, sessionID := newFeedSession(t, []*models.Video{
		{ID: "v1", Duration: 120, User: sessionUser},
	}, nil)

	err := svc.DeleteComment(sessionID, "v1", "missing")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}
