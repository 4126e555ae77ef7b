package inmemkv

import (
	"context"
	"sync"

	"github.com/trezcool/gradebook/core"
)

// Store keeps values in memory; nothing survives the process.
type Store struct {
	mutex sync.RWMutex
	table map[string]string
}

var _ core.KVStore = (*Store)(nil) // interface compliance check

func Open() *Store {
	return &Store{table: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	val, ok := s.table[key]
	if !ok {
		return "", core.ErrKeyNotFound
	}
	return val, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.table[key] = value
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.table, key)
	return nil
}

func (s *Store) Close() error { return nil }
