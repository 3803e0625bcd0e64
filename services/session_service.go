package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"time"

	"buyfish/models"
	"buyfish/shopapi"
	"buyfish/utils"

	"github.com/redis/go-redis/v9"
)

// SessionService owns the persisted client state: one Session record per
// browser, stored in Redis under the session cookie's id. When Redis is down
// every visitor is simply unauthenticated.
type SessionService struct {
	client *shopapi.Client
	store  *redis.Client
	ttl    time.Duration
}

func NewSessionService(client *shopapi.Client, store *redis.Client, ttl time.Duration) *SessionService {
	return &SessionService{client: client, store: store, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// NewSessionID mints an opaque id for the session cookie.
func NewSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return hex.EncodeToString([]byte(time.Now().String()))[:32]
	}
	return hex.EncodeToString(buf)
}

func (s *SessionService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	if s.store == nil || sessionID == "" {
		return nil, nil
	}

	raw, err := s.store.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *SessionService) put(ctx context.Context, sessionID string, session *models.Session) error {
	if s.store == nil {
		return nil
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, sessionKey(sessionID), raw, s.ttl).Err()
}

// Establish stores the issued token and user after a successful login or
// register.
func (s *SessionService) Establish(ctx context.Context, sessionID, token string, user models.User) error {
	return s.put(ctx, sessionID, &models.Session{
		UserID:          user.ID,
		UserName:        user.UserName,
		Email:           user.Email,
		Token:           token,
		IsAuthenticated: true,
	})
}

func (s *SessionService) Destroy(ctx context.Context, sessionID string) error {
	if s.store == nil || sessionID == "" {
		return nil
	}
	return s.store.Del(ctx, sessionKey(sessionID)).Err()
}

// Restore consults the persisted credentials once. A missing or locally
// expired token means unauthenticated; otherwise the token is verified with
// the backend's check-auth. A backend rejection clears the stored session.
// This is a guard, not a retry: there is no second attempt.
func (s *SessionService) Restore(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil || session == nil {
		return nil, err
	}
	if !session.IsAuthenticated || session.Token == "" {
		return nil, nil
	}

	if utils.TokenExpired(session.Token) {
		if err := s.Destroy(ctx, sessionID); err != nil {
			log.Println("Failed to drop expired session:", err)
		}
		return nil, nil
	}

	user, err := s.client.CheckAuth(ctx, session.Token)
	if err != nil {
		var apiErr *shopapi.APIError
		if errors.As(err, &apiErr) {
			if derr := s.Destroy(ctx, sessionID); derr != nil {
				log.Println("Failed to drop rejected session:", derr)
			}
			return nil, nil
		}
		return nil, err
	}

	session.UserID = user.ID
	session.UserName = user.UserName
	session.Email = user.Email
	if err := s.put(ctx, sessionID, session); err != nil {
		log.Println("Failed to refresh session:", err)
	}
	return session, nil
}

// SelectAddress remembers the checkout address selection for this session.
func (s *SessionService) SelectAddress(ctx context.Context, sessionID string, session *models.Session, addressID string) error {
	session.SelectedAddress = addressID
	return s.put(ctx, sessionID, session)
}

// RefreshCredentials swaps in a new token and user, as handed back by the
// payment-capture call.
func (s *SessionService) RefreshCredentials(ctx context.Context, sessionID string, session *models.Session, token string, user *models.User) error {
	if token != "" {
		session.Token = token
	}
	if user != nil {
		session.UserID = user.ID
		session.UserName = user.UserName
		session.Email = user.Email
	}
	return s.put(ctx, sessionID, session)
}
