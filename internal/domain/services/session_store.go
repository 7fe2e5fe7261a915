package services

import (
	"context"
	"errors"
	"time"

	"pharmacy-admin-service/internal/domain/models"

	"gorm.io/gorm"
)

// SessionStore persists login sessions keyed by session id.
type SessionStore interface {
	Save(ctx context.Context, id string, userID uint, ttl time.Duration) error
	Find(ctx context.Context, id string) (uint, error)
	Delete(ctx context.Context, id string) error
	PurgeExpired(ctx context.Context) (int64, error)
}

// DBSessionStore keeps sessions in the sessions table.
type DBSessionStore struct {
	DB  *gorm.DB
	Now func() time.Time
}

// NewDBSessionStore creates a database backed session store
func NewDBSessionStore(db *gorm.DB) SessionStore {
	return &DBSessionStore{DB: db, Now: time.Now}
}

// 1 Save inserts the session row
func (s *DBSessionStore) Save(ctx context.Context, id string, userID uint, ttl time.Duration) error {
	session := &models.Session{
		ID:        id,
		UserID:    userID,
		ExpiresAt: s.Now().Add(ttl),
	}
	if err := s.DB.WithContext(ctx).Create(session).Error; err != nil {
		return storageError("save session", err)
	}
	return nil
}

// 2 Find returns the user id of an unexpired session
func (s *DBSessionStore) Find(ctx context.Context, id string) (uint, error) {
	var session models.Session
	err := s.DB.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, s.Now()).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrSessionNotFound
		}
		return 0, storageError("find session", err)
	}
	return session.UserID, nil
}

// 3 Delete removes the session row if present
func (s *DBSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Session{}).Error; err != nil {
		return storageError("delete session", err)
	}
	return nil
}

// 4 PurgeExpired deletes every expired session row
func (s *DBSessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	res := s.DB.WithContext(ctx).Where("expires_at <= ?", s.Now()).Delete(&models.Session{})
	if res.Error != nil {
		return 0, storageError("purge sessions", res.Error)
	}
	return res.RowsAffected, nil
}
