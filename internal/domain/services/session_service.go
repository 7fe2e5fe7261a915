package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pharmacy-admin-service/internal/domain/models"
	"pharmacy-admin-service/internal/infrastructure/config"
	"pharmacy-admin-service/pkg/logger"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Principal is the user resolved for one request. A nil User is anonymous.
type Principal struct {
	User *models.User
}

// Anonymous returns the unauthenticated principal
func Anonymous() Principal {
	return Principal{}
}

// IsAuthenticated reports whether a user is logged in
func (p Principal) IsAuthenticated() bool {
	return p.User != nil
}

// IsAdmin reports whether the logged in user is an admin
func (p Principal) IsAdmin() bool {
	return p.User != nil && p.User.IsAdmin
}

// SessionClaims is the payload of the signed session cookie.
// The registered ID (jti) is the server-side session id.
type SessionClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// InterfaceSessionService establishes and resolves login sessions
type InterfaceSessionService interface {
	Login(ctx context.Context, user *models.User) (string, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) Principal
	TTL() time.Duration
}

// SessionService signs session tokens with HS256 and keeps the session
// itself in a SessionStore so logout is effective immediately.
type SessionService struct {
	Store  SessionStore
	Users  InterfaceUserService
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewSessionService creates a session service
func NewSessionService(cfg *config.Config, store SessionStore, users InterfaceUserService) InterfaceSessionService {
	return &SessionService{
		Store:  store,
		Users:  users,
		secret: []byte(cfg.SessionSecretKey),
		issuer: "pharmacy-admin-service",
		ttl:    cfg.SessionTTL,
	}
}

// TTL returns the session lifetime
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// 1 Login opens a session for user and returns its signed token
func (s *SessionService) Login(ctx context.Context, user *models.User) (string, error) {
	if user == nil || user.ID == 0 {
		return "", ErrUserNotFound
	}

	sessionID := uuid.NewString()
	if err := s.Store.Save(ctx, sessionID, user.ID, s.ttl); err != nil {
		return "", err
	}

	now := time.Now()
	claims := &SessionClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		_ = s.Store.Delete(ctx, sessionID)
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// 2 Logout deletes the session behind token. Expired or unknown tokens are ignored.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := s.parse(token, false)
	if err != nil {
		return nil
	}
	return s.Store.Delete(ctx, claims.ID)
}

// 3 CurrentUser re-reads the user behind token. Any failure yields Anonymous.
func (s *SessionService) CurrentUser(ctx context.Context, token string) Principal {
	if token == "" {
		return Anonymous()
	}

	claims, err := s.parse(token, true)
	if err != nil {
		return Anonymous()
	}

	userID, err := s.Store.Find(ctx, claims.ID)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			logger.Warning("session lookup failed: %v", err)
		}
		return Anonymous()
	}
	if userID != claims.UserID {
		return Anonymous()
	}

	user, err := s.Users.GetUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			logger.Warning("resolve session user %d failed: %v", userID, err)
		}
		return Anonymous()
	}
	return Principal{User: user}
}

func (s *SessionService) parse(token string, validate bool) (*SessionClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if !validate {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	claims := &SessionClaims{}
	parsed, err := jwt.NewParser(opts...).ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.ID == "" {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}
