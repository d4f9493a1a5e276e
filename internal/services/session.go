package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heenakousar16/beauty/internal/models"
	"github.com/heenakousar16/beauty/internal/utils"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists chat sessions keyed by session ID.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.ChatSession, error)
	Save(ctx context.Context, session *models.ChatSession) error
}

// RedisSessionStore keeps sessions in Redis as JSON values with a TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(id string) string {
	return "session:" + id
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.ChatSession, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var session models.ChatSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.ChatSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// MemorySessionStore holds sessions in process memory. Used when no Redis is
// configured, and in tests.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.ChatSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*models.ChatSession),
	}
}

func (s *MemorySessionStore) Get(ctx context.Context, id string) (*models.ChatSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	// Copy out so callers never alias the stored conversation.
	session := *stored
	session.Conversation = append([]models.Turn(nil), stored.Conversation...)
	return &session, nil
}

func (s *MemorySessionStore) Save(ctx context.Context, session *models.ChatSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *session
	stored.Conversation = append([]models.Turn(nil), session.Conversation...)
	s.sessions[session.ID] = &stored
	return nil
}

// SessionService manages chat session lifecycle on top of a SessionStore.
type SessionService struct {
	store SessionStore
}

func NewSessionService(store SessionStore) *SessionService {
	return &SessionService{store: store}
}

// GetOrCreate loads the stored session or creates a fresh one seeded with
// Sofi's welcome turn. A client-provided ID that is missing from the store
// recreates the session under the same ID.
func (s *SessionService) GetOrCreate(ctx context.Context, id, gender string) (*models.ChatSession, error) {
	if id != "" {
		session, err := s.store.Get(ctx, id)
		if err == nil {
			if gender != "" && gender != session.Gender {
				session.Gender = gender
			}
			return session, nil
		}
		if !errors.Is(err, ErrSessionNotFound) {
			return nil, err
		}
		utils.LogInfo(ctx, "session not found, creating new session with same ID",
			slog.String("session_id", id),
		)
	} else {
		id = uuid.New().String()
	}

	now := time.Now()
	session := &models.ChatSession{
		ID:        id,
		Gender:    gender,
		CreatedAt: now,
		UpdatedAt: now,
	}
	session.Append(models.RoleAssistant, WelcomeMessage)

	return session, nil
}

// Get loads an existing session.
func (s *SessionService) Get(ctx context.Context, id string) (*models.ChatSession, error) {
	return s.store.Get(ctx, id)
}

func (s *SessionService) Save(ctx context.Context, session *models.ChatSession) error {
	session.UpdatedAt = time.Now()
	return s.store.Save(ctx, session)
}
