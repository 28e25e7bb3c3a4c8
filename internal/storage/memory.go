package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// MemoryStorage is an in-memory implementation of ObjectStorage for testing
type MemoryStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte

	// Moves records every src->dst move for assertions
	Moves [][2]string
}

// NewMemoryStorage creates a new empty MemoryStorage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		objects: make(map[string][]byte),
	}
}

// Put stores an object directly, bypassing the presign/upload flow
func (m *MemoryStorage) Put(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = append([]byte(nil), data...)
}

// Exists reports whether an object is present
func (m *MemoryStorage) Exists(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.objects[key]
	return ok
}

// PresignUpload implements ObjectStorage.PresignUpload
func (m *MemoryStorage) PresignUpload(_ context.Context, key string, expiry time.Duration) (string, error) {
	if key == "" {
		return "", fmt.Errorf("key cannot be empty")
	}
	return fmt.Sprintf("https://storage.invalid/%s?expires=%d", key, int(expiry.Seconds())), nil
}

// Open implements ObjectStorage.Open
func (m *MemoryStorage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.objects[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

// Move implements ObjectStorage.Move
func (m *MemoryStorage) Move(_ context.Context, srcKey, dstKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.objects[srcKey]
	if !ok {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, srcKey)
	}

	m.objects[dstKey] = data
	delete(m.objects, srcKey)
	m.Moves = append(m.Moves, [2]string{srcKey, dstKey})
	return nil
}

// Delete implements ObjectStorage.Delete
func (m *MemoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.objects, key)
	return nil
}
