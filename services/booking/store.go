package booking

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"homebook/clock"
	"homebook/models"
)

// SnapshotStore keeps the latest snapshot of each booking attempt for a
// limited time, so finished or cancelled attempts stay readable.
type SnapshotStore interface {
	Save(ctx context.Context, session models.BookingSession) error
	Load(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Delete(ctx context.Context, sessionID string) error
}

type memoryEntry struct {
	session   models.BookingSession
	expiresAt time.Time
}

// MemorySnapshotStore is the in-process store used by default and in tests.
type MemorySnapshotStore struct {
	mu      sync.RWMutex
	clk     clock.Clock
	ttl     time.Duration
	entries map[string]memoryEntry
}

func NewMemorySnapshotStore(clk clock.Clock, ttl time.Duration) *MemorySnapshotStore {
	return &MemorySnapshotStore{clk: clk, ttl: ttl, entries: make(map[string]memoryEntry)}
}

func (s *MemorySnapshotStore) Save(_ context.Context, session models.BookingSession) error {
	// round-trip through JSON so stored snapshots share nothing with the caller
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	var stored models.BookingSession
	if err := json.Unmarshal(b, &stored); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[session.SessionID] = memoryEntry{session: stored, expiresAt: s.clk.Now().Add(s.ttl)}
	return nil
}

func (s *MemorySnapshotStore) Load(_ context.Context, sessionID string) (*models.BookingSession, error) {
	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.ttl > 0 && !s.clk.Now().Before(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, sessionID)
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	session := entry.session
	return &session, nil
}

func (s *MemorySnapshotStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}

// Sweep drops expired snapshots and returns how many were removed.
func (s *MemorySnapshotStore) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	now := s.clk.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

const bookingSessionPrefix = "booking:session:"

// RedisSnapshotStore keeps snapshots as JSON with a TTL.
type RedisSnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client, ttl: ttl}
}

func (s *RedisSnapshotStore) Save(ctx context.Context, session models.BookingSession) error {
	key := bookingSessionPrefix + session.SessionID
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisSnapshotStore) Load(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	key := bookingSessionPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSnapshotStore) Delete(ctx context.Context, sessionID string) error {
	key := bookingSessionPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}
