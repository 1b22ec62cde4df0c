package screenstate

import (
	"encoding/json"
	"sync"
	"time"

	"ulascansenturk/weather-lookup/internal/weather"
)

type Store interface {
	Current(screen string) (*weather.Report, bool, error)
	Replace(screen string, report weather.Report) error
	Close(screen string)
}

type entry struct {
	data       []byte
	expiration time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiration.IsZero() && now.After(e.expiration)
}

// InMemoryStore keeps the report each screen is currently showing. A screen that
// is neither replaced nor read for its idle TTL counts as closed and loses its
// report. A non-positive TTL keeps reports until Close.
type InMemoryStore struct {
	screens         map[string]entry
	mutex           sync.Mutex
	idleTTL         time.Duration
	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

func NewInMemoryStore(idleTTL, cleanupInterval time.Duration) *InMemoryStore {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}

	store := &InMemoryStore{
		screens:         make(map[string]entry),
		idleTTL:         idleTTL,
		cleanupInterval: cleanupInterval,
		stop:            make(chan struct{}),
	}

	go store.startCleanup()

	return store
}

func (m *InMemoryStore) Current(screen string) (*weather.Report, bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	e, exists := m.screens[screen]
	if !exists {
		return nil, false, nil
	}

	now := time.Now()
	if e.expired(now) {
		delete(m.screens, screen)
		return nil, false, nil
	}

	e.expiration = m.expiration(now)
	m.screens[screen] = e

	var report weather.Report
	if err := json.Unmarshal(e.data, &report); err != nil {
		return nil, false, err
	}

	return &report, true, nil
}

// Replace swaps the screen's report wholesale. Last writer wins.
func (m *InMemoryStore) Replace(screen string, report weather.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.screens[screen] = entry{
		data:       data,
		expiration: m.expiration(time.Now()),
	}

	return nil
}

func (m *InMemoryStore) expiration(now time.Time) time.Time {
	if m.idleTTL <= 0 {
		return time.Time{}
	}
	return now.Add(m.idleTTL)
}

func (m *InMemoryStore) Close(screen string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.screens, screen)
}

func (m *InMemoryStore) Stop() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
}

func (m *InMemoryStore) startCleanup() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.mutex.Lock()
			now := time.Now()
			for k, v := range m.screens {
				if v.expired(now) {
					delete(m.screens, k)
				}
			}
			m.mutex.Unlock()
		}
	}
}
