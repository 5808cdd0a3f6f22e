package tuning

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/sasha-s/go-deadlock"
)

// Source hands out the tuning in effect for the current tick.
type Source interface {
	Get() Tuning
}

// Store is a Source whose value can be swapped while the simulation runs,
// e.g. from a file watcher goroutine.
type Store struct {
	mu      deadlock.RWMutex
	current Tuning
	name    string
}

// NewStore wraps an already validated tuning.
func NewStore(t Tuning) *Store {
	return &Store{current: t}
}

// Open loads the named prefab into a new store that can Reload it later.
func Open(name string) (*Store, error) {
	t, err := Load(name)
	if err != nil {
		return nil, err
	}
	return &Store{current: t, name: name}, nil
}

func (s *Store) Get() Tuning {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set validates and installs t. An invalid tuning leaves the store as is.
func (s *Store) Set(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.current = t
	s.mu.Unlock()
	return nil
}

// Name is the prefab the store was opened from, if any.
func (s *Store) Name() string {
	return s.name
}

// Reload re-reads the prefab the store was opened from.
func (s *Store) Reload() error {
	if s.name == "" {
		return nil
	}
	t, err := Load(s.name)
	if err != nil {
		return err
	}
	return s.Set(t)
}

// Watch reloads the store whenever a changed path names its prefab. It
// returns when ctx is done or events is closed. Reload failures are logged
// and the previous tuning stays active.
func (s *Store) Watch(ctx context.Context, events <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-events:
			if !ok {
				return
			}
			if s.name == "" || filepath.Base(path) != filepath.Base(s.name) {
				continue
			}
			if err := s.Reload(); err != nil {
				log.Warn().Err(err).Str("prefab", s.name).Msg("tuning reload rejected")
				continue
			}
			log.Info().Str("prefab", s.name).Msg("tuning reloaded")
		}
	}
}
