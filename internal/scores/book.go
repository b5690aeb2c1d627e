package scores

import (
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"
)

// StorageKey is the single key all records are stored under.
const StorageKey = "kids-arcade-scores"

// KV is the persistent key/value collaborator. Get returns nil, nil for a
// missing key.
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// MemoryKV is an in-process KV, used when no database is configured and in
// tests.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryKV returns an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryKV) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Book reads and updates the records document. One mutex serialises every
// read-modify-write, so concurrent rounds cannot lose each other's updates.
type Book struct {
	mu     sync.Mutex
	kv     KV
	logger *log.Logger
}

// NewBook returns a Book over kv. A nil kv keeps records in memory; a nil
// logger uses the default logger.
func NewBook(kv KV, logger *log.Logger) *Book {
	if kv == nil {
		kv = NewMemoryKV()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Book{kv: kv, logger: logger}
}

// All returns every game's record.
func (b *Book) All() map[string]Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.load()
}

// Get returns one game's record, or the zero record.
func (b *Book) Get(gameID string) Record {
	return b.All()[gameID]
}

// Submit merges a finished round into the game's record and returns the
// updated record. The record is returned even when it could not be saved.
func (b *Book) Submit(gameID string, score, stars int, dir Direction) Record {
	b.mu.Lock()
	defer b.mu.Unlock()

	all := b.load()
	next := all[gameID].Merge(score, stars, dir)
	all[gameID] = next
	b.save(all)
	return next
}

func (b *Book) load() map[string]Record {
	all := make(map[string]Record)
	raw, err := b.kv.Get(StorageKey)
	if err != nil {
		b.logger.Warn("could not read scores", "error", err)
		return all
	}
	if len(raw) == 0 {
		return all
	}
	if err := json.Unmarshal(raw, &all); err != nil {
		b.logger.Warn("ignoring malformed scores", "error", err)
		return make(map[string]Record)
	}
	return all
}

func (b *Book) save(all map[string]Record) {
	raw, err := json.Marshal(all)
	if err != nil {
		b.logger.Warn("could not encode scores", "error", err)
		return
	}
	if err := b.kv.Put(StorageKey, raw); err != nil {
		b.logger.Warn("could not save scores", "error", err)
	}
}
