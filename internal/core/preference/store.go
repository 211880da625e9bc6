// Package preference holds the client's dietary-preference document: a single
// JSON value under a fixed key, replaced wholesale on save and read on every
// suggestion request.
package preference

import (
	"context"
	"strings"
	"sync"

	"gluca-api/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Backend is the key-value storage for the preference document.
type Backend interface {
	Get(ctx context.Context) (string, bool, error)
	Set(ctx context.Context, doc string) error
}

// RedisBackend stores the document in Redis under a fixed key.
type RedisBackend struct {
	client *redis.Client
	key    string
}

// NewRedisBackend connects to Redis and verifies the connection.
func NewRedisBackend(ctx context.Context, addr, key string) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisBackend{client: client, key: key}, nil
}

func (b *RedisBackend) Get(ctx context.Context) (string, bool, error) {
	doc, err := b.client.Get(ctx, b.key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return doc, true, nil
}

func (b *RedisBackend) Set(ctx context.Context, doc string) error {
	return b.client.Set(ctx, b.key, doc, 0).Err()
}

// MemoryBackend keeps the document in memory. It is the fallback when Redis
// is disabled and the backend used by tests.
type MemoryBackend struct {
	mu  sync.Mutex
	doc string
	set bool
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Get(ctx context.Context) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.doc, b.set, nil
}

func (b *MemoryBackend) Set(ctx context.Context, doc string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.doc = doc
	b.set = true
	return nil
}

// Store is an observable single-value preference store: a cached snapshot
// initialized from the backend once, mutated only through Replace, with a
// synchronous Snapshot read and explicit subscribe/unsubscribe. It is
// injected per context rather than shared as a global.
type Store struct {
	mu          sync.RWMutex
	backend     Backend
	snapshot    common.DietaryPreferences
	subscribers map[int]func(common.DietaryPreferences)
	nextID      int
}

// NewStore creates a store hydrated from the backend. An absent or corrupt
// document silently falls back to defaults; corruption is never surfaced.
func NewStore(ctx context.Context, backend Backend) *Store {
	s := &Store{
		backend:     backend,
		snapshot:    common.DefaultPreferences(),
		subscribers: make(map[int]func(common.DietaryPreferences)),
	}

	doc, ok, err := backend.Get(ctx)
	if err != nil {
		common.LogWarn("failed to read preference document, using defaults",
			zap.Error(err),
		)
		return s
	}
	if !ok {
		return s
	}

	var prefs common.DietaryPreferences
	if err := common.ParseJSONStrict(doc, &prefs); err != nil {
		common.LogWarn("corrupt preference document, using defaults")
		return s
	}
	s.snapshot = normalize(prefs)

	return s
}

// Snapshot returns the current preference document.
func (s *Store) Snapshot() common.DietaryPreferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Replace persists the whole document, updates the snapshot and notifies
// subscribers. The document is normalized first: list entries are
// deduplicated and exclusions lowercased.
func (s *Store) Replace(ctx context.Context, prefs common.DietaryPreferences) error {
	normalized := normalize(prefs)

	doc, err := common.ToJSON(normalized)
	if err != nil {
		return err
	}
	if err := s.backend.Set(ctx, doc); err != nil {
		return err
	}

	s.mu.Lock()
	s.snapshot = normalized
	subscribers := make([]func(common.DietaryPreferences), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(normalized)
	}

	return nil
}

// Subscribe registers fn to be called on every replace. The returned function
// unsubscribes.
func (s *Store) Subscribe(fn func(common.DietaryPreferences)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func normalize(prefs common.DietaryPreferences) common.DietaryPreferences {
	return common.DietaryPreferences{
		Diet:               strings.TrimSpace(prefs.Diet),
		Intolerances:       dedupe(prefs.Intolerances, false),
		ExcludeIngredients: dedupe(prefs.ExcludeIngredients, true),
	}
}

func dedupe(items []string, lowercase bool) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, item := range items {
		cleaned := strings.TrimSpace(item)
		if lowercase {
			cleaned = strings.ToLower(cleaned)
		}
		if cleaned == "" {
			continue
		}
		key := strings.ToLower(cleaned)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, cleaned)
	}
	return out
}
