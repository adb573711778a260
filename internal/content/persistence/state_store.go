package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"cms-console/internal/content/domain"
	"cms-console/internal/content/state"
	"cms-console/internal/content/usecases"
	"cms-console/internal/infra/cache"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	ErrStateNotStored  = errors.New("session state could not be stored")
	ErrCorruptedState  = errors.New("session state is corrupted")
	errCacheIsRequired = errors.New("cache instance is required")
)

type CacheStateStoreConfig struct {
	Cache     cache.Cache
	KeyPrefix string
	TTL       time.Duration
}

func DefaultCacheStateStoreConfig() *CacheStateStoreConfig {
	return &CacheStateStoreConfig{
		KeyPrefix: "console:state:",
		TTL:       12 * time.Hour,
	}
}

var _ usecases.StateStore = &CacheStateStore{}

// CacheStateStore keeps each user's console state msgpack encoded in a cache.
// Writers for the same user are serialized, so Dispatch never loses an update
// made by a concurrent request of the same instance.
type CacheStateStore struct {
	cache     cache.Cache
	keyPrefix string
	ttl       time.Duration
	locks     sync.Map
}

func NewCacheStateStore(config *CacheStateStoreConfig) (*CacheStateStore, error) {
	if config == nil {
		config = DefaultCacheStateStoreConfig()
	}
	if config.Cache == nil {
		return nil, errCacheIsRequired
	}

	slog.Info("console state store initialized",
		slog.String("key_prefix", config.KeyPrefix),
		slog.Duration("ttl", config.TTL))

	return &CacheStateStore{
		cache:     config.Cache,
		keyPrefix: config.KeyPrefix,
		ttl:       config.TTL,
	}, nil
}

func (s *CacheStateStore) Snapshot(ctx context.Context, userID domain.UserID) (state.ConsoleState, error) {
	return s.load(ctx, userID)
}

func (s *CacheStateStore) Dispatch(ctx context.Context, userID domain.UserID, action state.Action) (state.ConsoleState, error) {
	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	current, err := s.load(ctx, userID)
	if err != nil {
		return state.ConsoleState{}, err
	}

	next := state.Reduce(current, action)
	if err := s.save(ctx, userID, next); err != nil {
		return state.ConsoleState{}, err
	}
	return next, nil
}

func (s *CacheStateStore) Discard(ctx context.Context, userID domain.UserID) error {
	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	s.cache.Delete(ctx, s.key(userID))
	return nil
}

func (s *CacheStateStore) load(ctx context.Context, userID domain.UserID) (state.ConsoleState, error) {
	value, found := s.cache.Get(ctx, s.key(userID))
	if !found {
		return state.New(), nil
	}

	data, ok := value.([]byte)
	if !ok {
		return state.ConsoleState{}, fmt.Errorf("%w: unexpected %T", ErrCorruptedState, value)
	}

	var current state.ConsoleState
	if err := msgpack.Unmarshal(data, &current); err != nil {
		return state.ConsoleState{}, fmt.Errorf("%w: %w", ErrCorruptedState, err)
	}
	return current, nil
}

func (s *CacheStateStore) save(ctx context.Context, userID domain.UserID, current state.ConsoleState) error {
	data, err := msgpack.Marshal(current)
	if err != nil {
		return fmt.Errorf("encoding session state: %w", err)
	}
	if !s.cache.Set(ctx, s.key(userID), data, s.ttl) {
		return ErrStateNotStored
	}
	return nil
}

func (s *CacheStateStore) lockFor(userID domain.UserID) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func (s *CacheStateStore) key(userID domain.UserID) string {
	return s.keyPrefix + userID.String()
}
