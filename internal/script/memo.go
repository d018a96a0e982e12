package script

import (
	"strconv"
	"strings"
	"sync"
)

// CacheKeyer is implemented by values that can stand in a cache key. ok=false
// marks the value as unsuitable and the call is recomputed instead.
type CacheKeyer interface {
	CacheKey() (key string, ok bool)
}

// memo is the per-Play result cache keyed by operation name and argument tuple.
// Entries are only ever added; recomputing a missing entry is always safe.
type memo struct {
	mu      sync.Mutex
	entries map[string]any
}

func newMemo() *memo {
	return &memo{entries: make(map[string]any)}
}

func (m *memo) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// cacheKey encodes op and args into a single string. It reports false when an
// argument has no stable key, in which case the caller bypasses the cache.
func cacheKey(op string, args ...any) (string, bool) {
	var b strings.Builder
	b.WriteString(op)
	for _, arg := range args {
		b.WriteByte(0x1f)
		switch v := arg.(type) {
		case nil:
			b.WriteString("n")
		case string:
			b.WriteString("s")
			b.WriteString(strconv.Quote(v))
		case int:
			b.WriteString("i")
			b.WriteString(strconv.Itoa(v))
		case bool:
			b.WriteString("b")
			b.WriteString(strconv.FormatBool(v))
		case float64:
			b.WriteString("f")
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		case CacheKeyer:
			key, ok := v.CacheKey()
			if !ok {
				return "", false
			}
			b.WriteString("k")
			b.WriteString(strconv.Quote(key))
		default:
			return "", false
		}
	}
	return b.String(), true
}

// memoize returns the cached result of op(args) or computes and stores it.
// compute runs outside the lock; concurrent misses may both compute, and the
// first stored value wins.
func memoize[T any](m *memo, op string, compute func() T, args ...any) T {
	key, ok := cacheKey(op, args...)
	if !ok {
		return compute()
	}

	m.mu.Lock()
	if cached, hit := m.entries[key]; hit {
		m.mu.Unlock()
		return cached.(T)
	}
	m.mu.Unlock()

	value := compute()

	m.mu.Lock()
	defer m.mu.Unlock()
	if cached, hit := m.entries[key]; hit {
		return cached.(T)
	}
	m.entries[key] = value
	return value
}
