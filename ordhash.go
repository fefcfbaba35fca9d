package ordhash

import "github.com/djdv/go-ordhash/internal/ring"

type (
	// tag records the stamp a key was given when
	// it was pushed or refreshed.
	tag[Key comparable] struct {
		key   Key
		stamp uint64
	}
	// Map is an ordered hash map with queue-like semantics.
	// Keys are ordered by their most recent [Map.PushBack]
	// or [Map.Refresh].
	// Concurrent access must be guarded by the caller.
	// The zero value is an empty map ready to use.
	//
	// Values are returned by copy. If Value holds references,
	// they must not be retained across a subsequent mutating call.
	//
	// Keys must be equal to themselves; [Map.PushBack] panics
	// with [ErrInvalidKey] for keys such as a floating-point NaN.
	Map[Key comparable, Value any] struct {
		values     store[Key, Value]
		order      ring.Buffer[tag[Key]]
		generation uint64
		live       int
	}
)

// New creates an empty [Map].
func New[Key comparable, Value any]() *Map[Key, Value] {
	return new(Map[Key, Value])
}

// NewWithCapacity creates an empty [Map] with
// room for at least capacity entries.
// Capacity is only a hint; non-positive values are ignored.
// It panics under the same conditions as [Map.Reserve].
func NewWithCapacity[Key comparable, Value any](capacity int) *Map[Key, Value] {
	m := new(Map[Key, Value])
	m.Reserve(capacity)
	return m
}

// Reserve grows the backing storage to hold
// at least additional more entries.
// Storage that was already reserved is not reallocated.
// If the total exceeds what the order queue can address,
// Reserve panics with [ErrCapacity].
func (m *Map[_, _]) Reserve(additional int) {
	if additional > ring.MaximumCapacity-m.order.Len() {
		panic(capacityOverflow(m.order.Len(), additional))
	}
	m.order.Grow(additional)
	m.values.grow(additional)
}

// PushBack inserts or updates key with value
// and moves key to the back of the order.
// A key previously disabled by [Map.MarkUnused] becomes live again.
func (m *Map[Key, Value]) PushBack(key Key, value Value) {
	if key != key {
		panic(invalidKey(key))
	}
	stamp := m.nextStamp()
	if m.values.put(key, value, stamp) {
		m.live++
	}
	m.order.PushBack(tag[Key]{key: key, stamp: stamp})
	m.check()
}

// Get returns the value for key if it is live;
// otherwise it returns the zero value and false.
func (m *Map[Key, Value]) Get(key Key) (Value, bool) {
	return m.values.get(key)
}

// Contains reports if key is live.
func (m *Map[Key, _]) Contains(key Key) bool {
	return m.values.contains(key)
}

// PopFront removes and returns the oldest live entry.
// Stale and disabled order entries encountered
// on the way are discarded.
func (m *Map[Key, Value]) PopFront() (Key, Value, bool) {
	for {
		entry, ok := m.order.PopFront()
		if !ok {
			break
		}
		if _, current := m.values.current(entry.key, entry.stamp); !current {
			continue
		}
		value, removed := m.values.remove(entry.key)
		if !removed {
			panic(inconsistent(
				"order entry for %v matched a slot that could not be removed",
				entry.key))
		}
		if m.live--; m.live < 0 {
			panic(inconsistent("live count dropped below zero"))
		}
		m.check()
		return entry.key, value, true
	}
	if m.live != 0 {
		panic(inconsistent(
			"order queue drained with %d live entries remaining",
			m.live))
	}
	var (
		key   Key
		value Value
	)
	return key, value, false
}

// PeekFront returns the oldest live entry without removing it.
// Unlike [Map.PopFront], stale order entries are not discarded,
// so repeated calls re-scan them.
func (m *Map[Key, Value]) PeekFront() (Key, Value, bool) {
	key, value, _, ok := m.scanFront()
	return key, value, ok
}

// scanFront returns the first live entry in the order queue
// along with the number of order entries visited to find it.
func (m *Map[Key, Value]) scanFront() (key Key, value Value, scanned int, ok bool) {
	for entry := range m.order.All() {
		scanned++
		if value, ok = m.values.current(entry.key, entry.stamp); ok {
			return entry.key, value, scanned, true
		}
	}
	return key, value, scanned, false
}

// IsEmpty reports if there are no live entries.
func (m *Map[_, _]) IsEmpty() bool { return m.live == 0 }

// Len returns the number of live entries.
func (m *Map[_, _]) Len() int { return m.live }

// UsedEntries returns the number of order entries,
// including stale ones left behind by updates, refreshes,
// and disabled keys.
// It is never less than [Map.Len].
func (m *Map[_, _]) UsedEntries() int { return m.order.Len() }

// MarkUnused disables key and returns its value.
// The value is kept; [Map.Get] and the front operations
// ignore key until it is passed to [Map.Refresh] or [Map.PushBack].
// If key is missing or already disabled, it returns the zero value and false.
func (m *Map[Key, Value]) MarkUnused(key Key) (Value, bool) {
	value, ok := m.values.disable(key)
	if ok {
		m.live--
		m.check()
	}
	return value, ok
}

// Refresh moves key to the back of the order,
// re-enabling it if it was disabled, and returns its value.
// If key was never inserted (or has been popped),
// it returns the zero value and false.
func (m *Map[Key, Value]) Refresh(key Key) (Value, bool) {
	stamp := m.generation + 1
	value, wasDisabled, ok := m.values.reactivate(key, stamp)
	if !ok {
		return value, false
	}
	m.generation = stamp
	if wasDisabled {
		m.live++
	}
	m.order.PushBack(tag[Key]{key: key, stamp: stamp})
	m.check()
	return value, true
}

// nextStamp advances the generation counter.
// Stamps start at 1; [unused] is never returned.
func (m *Map[_, _]) nextStamp() uint64 {
	m.generation++
	return m.generation
}

func (m *Map[_, _]) check() {
	if debugging {
		assert(m.live >= 0,
			"negative live count")
		assert(m.live <= m.order.Len(),
			"more live entries than order entries")
		assert(m.live <= m.values.len(),
			"more live entries than slots")
	}
}
