package handlers

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vidloop-backend/internal/catalog"
	"vidloop-backend/internal/config"
	"vidloop-backend/internal/middleware"
	"vidloop-backend/internal/repository"
	"vidloop-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the REST surface the way the server does, minus the
// provider-backed admin routes.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	pools := catalog.DefaultPools()
	gen := catalog.NewGenerator(pools, rand.New(rand.NewSource(7)))
	catalogStore := repository.NewCatalogStore(pools.Users, gen.Songs(100), gen.Effects(50))
	sessionStore := repository.NewSessionStore()

	cfg := config.CatalogConfig{FeedVideos: 10, ShortsVideos: 10, Notifications: 5}
	sessionService := services.NewSessionService(sessionStore, pools, cfg, "test-secret",
		func() *rand.Rand { return rand.New(rand.NewSource(7)) })
	feedService := services.NewFeedService(sessionStore, pools.MainUser)
	chatService := services.NewChatService(sessionStore)
	storyService := services.NewStoryService(sessionStore)
	notificationService := services.NewNotificationService(sessionStore)

	sessionHandler := NewSessionHandler(sessionService)
	feedHandler := NewFeedHandler(feedService)
	chatHandler := NewChatHandler(chatService)
	catalogHandler := NewCatalogHandler(catalogStore, storyService, notificationService)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sessions", sessionHandler.CreateSession)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(sessionService))

			r.Get("/feed", feedHandler.GetFeed)
			r.Get("/shorts", feedHandler.GetShorts)
			r.Post("/videos/{video_id}/like", feedHandler.ToggleLike)
			r.Get("/chats", chatHandler.GetChats)
			r.Get("/songs", catalogHandler.SearchSongs)
		})
	})
	return r
}

func createSession(t *testing.T, router http.Handler) string {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)
	require.NotEmpty(t, resp.SessionID)
	return resp.Token
}

func authedGet(router http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSessionThenFeedFlow(t *testing.T) {
	router := newTestRouter(t)
	token := createSession(t, router)

	rec := authedGet(router, "/api/v1/feed", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Videos []json.RawMessage `json:"videos"`
		Total  int               `json:"total"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.NotEmpty(t, body.Videos)
	assert.Equal(t, len(body.Videos), body.Total)
}

func TestFeedRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = authedGet(router, "/api/v1/feed", "bogus-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestToggleLikeEndpoint(t *testing.T) {
	router := newTestRouter(t)
	token := createSession(t, router)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/videos/video_pinned_welcome/like", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Liked bool `json:"liked"`
		Likes int  `json:"likes"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Liked)
	assert.Equal(t, 12301, body.Likes)
}

func TestToggleLikeUnknownVideo(t *testing.T) {
	router := newTestRouter(t)
	token := createSession(t, router)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/videos/missing/like", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSongSearchEndpoint(t *testing.T) {
	router := newTestRouter(t)
	token := createSession(t, router)

	rec := authedGet(router, "/api/v1/songs?q=tycho&limit=5", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Songs []struct {
			Artist string `json:"artist"`
		} `json:"songs"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotEmpty(t, body.Songs)
	assert.LessOrEqual(t, len(body.Songs), 5)
	for _, s := range body.Songs {
		assert.True(t, strings.EqualFold("Tycho", s.Artist))
	}
}
