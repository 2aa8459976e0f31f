package middleware

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidloop-backend/internal/catalog"
	"vidloop-backend/internal/config"
	"vidloop-backend/internal/repository"
	"vidloop-backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*services.SessionService, string, string) {
	t.Helper()
	store := repository.NewSessionStore()
	svc := services.NewSessionService(store, catalog.DefaultPools(), config.CatalogConfig{}, "test-secret",
		func() *rand.Rand { return rand.New(rand.NewSource(1)) })
	data, token, err := svc.Create()
	require.NoError(t, err)
	return svc, data.ID, token
}

func serve(svc *services.SessionService, header string) (*httptest.ResponseRecorder, string) {
	var gotSessionID string
	handler := AuthMiddleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSessionID = GetSessionID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, gotSessionID
}

func TestAuthMiddlewarePassesSessionID(t *testing.T) {
	svc, sessionID, token := newAuthService(t)

	rec, gotSessionID := serve(svc, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sessionID, gotSessionID)
}

func TestAuthMiddlewareRejections(t *testing.T) {
	svc, _, token := newAuthService(t)

	for _, header := range []string{"", "Basic " + token, "Bearer", "Bearer bogus"} {
		rec, _ := serve(svc, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)

		// Error bodies are well-formed JSON.
		var body struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body), "header %q", header)
		assert.NotEmpty(t, body.Error)
	}
}
