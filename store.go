package ordhash

import "maps"

type (
	// slot is the keyed record for a value.
	// A stamp of [unused] means the slot is disabled.
	slot[Value any] struct {
		value Value
		stamp uint64
	}
	// store maps keys to their current slot.
	// The zero value is empty; put allocates on demand.
	store[Key comparable, Value any] struct {
		slots map[Key]slot[Value]
		// reserved is the size hint slots was last made with.
		reserved int
	}
)

// unused is the stamp of a disabled slot.
// The generation counter never produces it.
const unused = 0

func (s *store[Key, Value]) len() int { return len(s.slots) }

// put creates or overwrites the slot for key.
// activated reports if the key was absent or disabled
// before the call (i.e. it was not counted as live).
func (s *store[Key, Value]) put(key Key, value Value, stamp uint64) (activated bool) {
	if s.slots == nil {
		s.slots = make(map[Key]slot[Value])
	}
	previous, found := s.slots[key]
	s.slots[key] = slot[Value]{value: value, stamp: stamp}
	return !found || previous.stamp == unused
}

func (s *store[Key, Value]) get(key Key) (Value, bool) {
	if slot, ok := s.slots[key]; ok &&
		slot.stamp != unused {
		return slot.value, true
	}
	var zero Value
	return zero, false
}

// current returns the value for key if the
// slot exists and carries exactly this stamp.
func (s *store[Key, Value]) current(key Key, stamp uint64) (Value, bool) {
	if slot, ok := s.slots[key]; ok &&
		slot.stamp != unused &&
		slot.stamp == stamp {
		return slot.value, true
	}
	var zero Value
	return zero, false
}

// disable clears the stamp of a live slot, keeping its value.
func (s *store[Key, Value]) disable(key Key) (Value, bool) {
	slot, ok := s.slots[key]
	if !ok || slot.stamp == unused {
		var zero Value
		return zero, false
	}
	slot.stamp = unused
	s.slots[key] = slot
	return slot.value, true
}

// reactivate assigns a new stamp to an existing slot.
// wasDisabled reports if the slot had been disabled.
func (s *store[Key, Value]) reactivate(key Key, stamp uint64) (value Value, wasDisabled, ok bool) {
	slot, found := s.slots[key]
	if !found {
		return value, false, false
	}
	wasDisabled = slot.stamp == unused
	slot.stamp = stamp
	s.slots[key] = slot
	return slot.value, wasDisabled, true
}

func (s *store[Key, Value]) contains(key Key) bool {
	slot, ok := s.slots[key]
	return ok && slot.stamp != unused
}

func (s *store[Key, Value]) remove(key Key) (Value, bool) {
	slot, ok := s.slots[key]
	if !ok {
		return slot.value, false
	}
	delete(s.slots, key)
	return slot.value, true
}

// grow rebuilds the map with room for additional more slots,
// unless an earlier hint already covers them.
// The caller bounds additional so the sum cannot overflow.
func (s *store[Key, Value]) grow(additional int) {
	if additional <= 0 {
		return
	}
	need := len(s.slots) + additional
	if need <= s.reserved {
		return
	}
	grown := make(map[Key]slot[Value], need)
	maps.Copy(grown, s.slots)
	s.slots = grown
	s.reserved = need
}
