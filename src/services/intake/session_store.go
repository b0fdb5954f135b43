package intake

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("intake session not found")

// SessionStore keeps in-flight forms between HTTP requests so the server
// itself stays stateless.
type SessionStore interface {
	Save(ctx context.Context, f *Form) error
	Get(ctx context.Context, id string) (*Form, error)
	Delete(ctx context.Context, id string) error
}

// SessionTTL bounds how long an abandoned form survives.
const SessionTTL = 24 * time.Hour

// RedisStore is the production session store.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(id string) string {
	return "intake:" + id
}

func (r *RedisStore) Save(ctx context.Context, f *Form) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey(f.ID), data, SessionTTL).Err()
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Form, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	var f Form
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKey(id)).Err()
}

// MemoryStore backs development setups without redis, and tests. Sessions do
// not survive a restart and the TTL is not enforced.
type MemoryStore struct {
	mu    sync.Mutex
	forms map[string]*Form
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{forms: map[string]*Form{}}
}

func (m *MemoryStore) Save(_ context.Context, f *Form) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	var cp Form
	if err := json.Unmarshal(data, &cp); err != nil {
		return err
	}
	m.forms[f.ID] = &cp
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Form, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.forms[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	// Same JSON round-trip as Save: a shallow copy would alias the stored
	// form's slices.
	data, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	var cp Form
	if err := json.Unmarshal(data, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.forms, id)
	return nil
}
