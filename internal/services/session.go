package services

import (
	"fmt"
	"math/rand"
	"time"

	"vidloop-backend/internal/catalog"
	"vidloop-backend/internal/config"
	"vidloop-backend/internal/models"
	"vidloop-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const jwtExpDays = 30

// SessionService mints anonymous sessions and generates their content.
// Content is generated client-session-side, never persisted: every session
// gets a fresh randomized catalog, exactly as the app regenerates its feed
// on every load.
type SessionService struct {
	store     *repository.SessionStore
	pools     *catalog.Pools
	cfg       config.CatalogConfig
	jwtSecret string
	newRand   func() *rand.Rand
}

// NewSessionService creates a session service. newRand supplies the random
// source for each session's generator; production wiring seeds from the
// clock, tests inject fixed seeds.
func NewSessionService(
	store *repository.SessionStore,
	pools *catalog.Pools,
	cfg config.CatalogConfig,
	jwtSecret string,
	newRand func() *rand.Rand,
) *SessionService {
	return &SessionService{
		store:     store,
		pools:     pools,
		cfg:       cfg,
		jwtSecret: jwtSecret,
		newRand:   newRand,
	}
}

// Create generates a new anonymous session with its own randomized content
// and returns the session data together with a signed bearer token.
func (s *SessionService) Create() (*repository.SessionData, string, error) {
	sessionID := uuid.New().String()

	token, err := s.GenerateJWT(sessionID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	gen := catalog.NewGenerator(s.pools, s.newRand())
	data := &repository.SessionData{
		ID:            sessionID,
		CreatedAt:     time.Now(),
		FeedVideos:    gen.GenerateVideos(s.cfg.FeedVideos),
		ShortsVideos:  gen.GenerateVideos(s.cfg.ShortsVideos),
		Stories:       gen.Stories(),
		Chats:         gen.Chats(),
		Notifications: gen.Notifications(s.cfg.Notifications),
		Liked:         make(map[string]bool),
	}

	s.store.Create(data)
	return data, token, nil
}

// User returns the profile the session acts as.
func (s *SessionService) User() *models.User {
	return s.pools.MainUser
}

// GenerateJWT generates a signed bearer token for a session.
func (s *SessionService) GenerateJWT(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().AddDate(0, 0, jwtExpDays).Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateJWT validates a bearer token and returns the session id. The
// session must still exist in the store.
func (s *SessionService) ValidateJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok {
		return "", fmt.Errorf("session_id not found in token")
	}

	if !s.store.Exists(sessionID) {
		return "", repository.ErrSessionNotFound
	}
	return sessionID, nil
}
