// Package dedupe suppresses repeated (role, player, season) rows at ingestion.
package dedupe

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/okian/scout/internal/domain/model"
)

// Deduper records seen record keys so only the first occurrence is kept.
type Deduper interface {
	// SeenAndRecord atomically checks if key was seen and records it if not.
	// Returns true if key was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, key string) bool

	// Reset forgets every recorded key.
	Reset()

	Size() int64
}

// Key builds the identity of a record: role, player code and season.
func Key(role model.Role, playerCode string, season int) string {
	var b strings.Builder
	b.Grow(len(role) + len(playerCode) + 8)
	b.WriteString(string(role))
	b.WriteByte('|')
	b.WriteString(playerCode)
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(season))
	return b.String()
}

// RecordKey is Key for a raw record.
func RecordKey(r *model.RawStatRecord) string {
	return Key(r.Role, r.PlayerCode, r.Season)
}

// inMemoryDeduper keeps every key of one load in a map.
type inMemoryDeduper struct {
	mu   sync.Mutex
	seen map[string]struct{}
	size atomic.Int64
}

// NewInMemoryDeduper creates a new in-memory deduper.
func NewInMemoryDeduper() Deduper {
	return &inMemoryDeduper{seen: make(map[string]struct{})}
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.seen[key]; exists {
		return true
	}

	d.seen[key] = struct{}{}
	d.size.Add(1)
	return false
}

func (d *inMemoryDeduper) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen = make(map[string]struct{})
	d.size.Store(0)
}

// Size returns the current number of entries in the deduper.
func (d *inMemoryDeduper) Size() int64 {
	return d.size.Load()
}
