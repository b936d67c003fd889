package repository

import (
	"context"
	"sync"
	"time"
)

type memoryWindow struct {
	start time.Time
	count int64
}

// MemoryWindowCounter is an in-process WindowCounter.
type MemoryWindowCounter struct {
	mu      sync.Mutex
	now     func() time.Time
	windows map[string]*memoryWindow
}

func NewMemoryWindowCounter() *MemoryWindowCounter {
	return &MemoryWindowCounter{
		now:     time.Now,
		windows: make(map[string]*memoryWindow),
	}
}

func (m *MemoryWindowCounter) Increment(_ context.Context, key string, window time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	w, ok := m.windows[key]
	if !ok || now.Sub(w.start) >= window {
		w = &memoryWindow{start: now}
		m.windows[key] = w
	}
	w.count++
	return w.count, nil
}
