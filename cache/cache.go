// Package cache holds search responses between collaborator calls so
// repeated queries stop hitting the network. The pipeline itself is
// cache-oblivious: decisions are identical with or without one.
package cache

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gosimple/slug"
	jsoniter "github.com/json-iterator/go"
	"github.com/wavecrossed/tubefy/entity"
	"github.com/wavecrossed/tubefy/util"
)

const (
	DefaultTTL = time.Hour
	filename   = "search-cache.json"
	flushEvery = 10
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Cache is the injected query-result store consulted by the metadata
// search collaborator before making network calls.
type Cache interface {
	Get(key string) ([]entity.Track, bool)
	Put(key string, tracks []entity.Track)
}

// Key derives the cache key for a query/limit pair. Queries differing
// only in case or surrounding whitespace share an entry.
func Key(query string, limit int) string {
	return fmt.Sprintf("%s-limit-%d", slug.Make(query), limit)
}

type record struct {
	Tracks    []entity.Track `json:"tracks"`
	Timestamp int64          `json:"timestamp"`
}

// Memory is a TTL-bound in-memory cache, optionally persisted to the
// user cache directory so entries survive across runs.
type Memory struct {
	mutex   sync.Mutex
	ttl     time.Duration
	records map[string]record
	path    string // empty for purely in-memory caches
	puts    int
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{ttl: ttl, records: map[string]record{}}
}

// NewPersistent loads whatever non-expired entries a previous run left
// on disk. A missing or corrupt cache file is a fresh cache, not an
// error.
func NewPersistent(ttl time.Duration) *Memory {
	memory := NewMemory(ttl)
	memory.path = util.CacheFile(filename)

	data, err := os.ReadFile(memory.path)
	if err != nil {
		return memory
	}

	var stored map[string]record
	if err := json.Unmarshal(data, &stored); err != nil {
		return memory
	}
	for key, entry := range stored {
		if !memory.expired(entry) {
			memory.records[key] = entry
		}
	}
	return memory
}

func (memory *Memory) Get(key string) ([]entity.Track, bool) {
	memory.mutex.Lock()
	defer memory.mutex.Unlock()

	entry, ok := memory.records[key]
	if !ok {
		return nil, false
	}
	if memory.expired(entry) {
		delete(memory.records, key)
		return nil, false
	}
	return entry.Tracks, true
}

func (memory *Memory) Put(key string, tracks []entity.Track) {
	memory.mutex.Lock()
	defer memory.mutex.Unlock()

	memory.records[key] = record{
		Tracks:    tracks,
		Timestamp: time.Now().Unix(),
	}

	memory.puts++
	if memory.path != "" && memory.puts%flushEvery == 0 {
		memory.flush()
	}
}

// Flush persists the current entries, dropping expired ones.
func (memory *Memory) Flush() error {
	memory.mutex.Lock()
	defer memory.mutex.Unlock()
	return memory.flush()
}

func (memory *Memory) flush() error {
	if memory.path == "" {
		return nil
	}

	valid := make(map[string]record, len(memory.records))
	for key, entry := range memory.records {
		if !memory.expired(entry) {
			valid[key] = entry
		}
	}

	data, err := json.Marshal(valid)
	if err != nil {
		return err
	}
	return os.WriteFile(memory.path, data, 0o600)
}

func (memory *Memory) expired(entry record) bool {
	return time.Since(time.Unix(entry.Timestamp, 0)) >= memory.ttl
}
