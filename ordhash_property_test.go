package ordhash_test

import (
	"testing"

	"github.com/djdv/go-ordhash"
)

type (
	// modelSlot mirrors the state of a single key.
	modelSlot struct {
		value, stamp int
		live         bool
	}
	// model is a naive reference for [ordhash.Map].
	// The oldest live key is found by scanning for the
	// smallest stamp instead of keeping an order queue.
	model struct {
		slots      map[int]*modelSlot
		generation int
	}
)

func (md *model) push(key, value int) {
	md.generation++
	md.slots[key] = &modelSlot{value: value, stamp: md.generation, live: true}
}

func (md *model) refresh(key int) (int, bool) {
	slot, ok := md.slots[key]
	if !ok {
		return 0, false
	}
	md.generation++
	slot.stamp = md.generation
	slot.live = true
	return slot.value, true
}

func (md *model) disable(key int) (int, bool) {
	slot, ok := md.slots[key]
	if !ok || !slot.live {
		return 0, false
	}
	slot.live = false
	return slot.value, true
}

func (md *model) front() (key int, slot *modelSlot) {
	for k, s := range md.slots {
		if s.live && (slot == nil || s.stamp < slot.stamp) {
			key, slot = k, s
		}
	}
	return key, slot
}

func (md *model) len() (n int) {
	for _, slot := range md.slots {
		if slot.live {
			n++
		}
	}
	return n
}

func randomOperations(t *testing.T) {
	t.Parallel()
	const (
		operations = 1 << 14
		keySpace   = 32
		resetEvery = 256
	)
	var (
		rng = newReproducibleRNG()
		m   = ordhash.New[int, int]()
		md  = model{slots: make(map[int]*modelSlot)}
		// fresh is true while every push since the last
		// full drain inserted a key with no slot.
		fresh = true
	)
	for i := range operations {
		if i%resetEvery == 0 {
			reset(t, m, &md)
			fresh = true
		}
		key := rng.Intn(keySpace)
		switch rng.Intn(6) {
		case 0, 1:
			var (
				before = m.UsedEntries()
				live   = m.Contains(key)
			)
			if _, exists := md.slots[key]; exists {
				fresh = false
			}
			m.PushBack(key, i)
			md.push(key, i)
			if live && m.UsedEntries() != before+1 {
				t.Fatalf("op %d: update of live key must add exactly one order entry", i)
			}
		case 2:
			got, gotOK := m.MarkUnused(key)
			want, wantOK := md.disable(key)
			if wantOK {
				fresh = false
			}
			if got != want || gotOK != wantOK {
				t.Fatalf("op %d: MarkUnused(%d) = %d,%t; want %d,%t",
					i, key, got, gotOK, want, wantOK)
			}
		case 3:
			got, gotOK := m.Refresh(key)
			want, wantOK := md.refresh(key)
			if wantOK {
				fresh = false
			}
			if got != want || gotOK != wantOK {
				t.Fatalf("op %d: Refresh(%d) = %d,%t; want %d,%t",
					i, key, got, gotOK, want, wantOK)
			}
		case 4:
			gotKey, gotValue, gotOK := m.PopFront()
			wantKey, slot := md.front()
			if gotOK != (slot != nil) {
				t.Fatalf("op %d: PopFront ok=%t; model has live entries: %t",
					i, gotOK, slot != nil)
			}
			if slot == nil {
				break
			}
			if gotKey != wantKey || gotValue != slot.value {
				t.Fatalf("op %d: PopFront = %d=%d; want %d=%d",
					i, gotKey, gotValue, wantKey, slot.value)
			}
			delete(md.slots, wantKey)
			if m.Contains(gotKey) {
				t.Fatalf("op %d: popped key %d still present", i, gotKey)
			}
		case 5:
			gotKey, gotValue, gotOK := m.PeekFront()
			wantKey, slot := md.front()
			if gotOK != (slot != nil) ||
				(slot != nil && (gotKey != wantKey || gotValue != slot.value)) {
				t.Fatalf("op %d: PeekFront = %d=%d (%t); want %d",
					i, gotKey, gotValue, gotOK, wantKey)
			}
		}
		if got, want := m.Len(), md.len(); got != want {
			t.Fatalf("op %d: Len = %d; want %d", i, got, want)
		}
		if m.UsedEntries() < m.Len() {
			t.Fatalf("op %d: UsedEntries (%d) < Len (%d)",
				i, m.UsedEntries(), m.Len())
		}
		if fresh && m.UsedEntries() != m.Len() {
			t.Fatalf("op %d: only fresh keys were pushed but UsedEntries (%d) != Len (%d)",
				i, m.UsedEntries(), m.Len())
		}
		if value, ok := m.Get(key); ok {
			if slot := md.slots[key]; slot == nil || !slot.live || slot.value != value {
				t.Fatalf("op %d: Get(%d) = %d; model disagrees", i, key, value)
			}
		}
	}
	reset(t, m, &md)
}

// reset re-enables every disabled key, then drains both
// the map and the model, leaving no slots or order entries behind.
func reset(t *testing.T, m *ordhash.Map[int, int], md *model) {
	t.Helper()
	for key, slot := range md.slots {
		if slot.live {
			continue
		}
		got, ok := m.Refresh(key)
		if want, _ := md.refresh(key); !ok || got != want {
			t.Fatalf("Refresh(%d) of disabled key = %d (%t); want %d",
				key, got, ok, want)
		}
	}
	drain(t, m, md)
	if used := m.UsedEntries(); used != 0 {
		t.Fatalf("expected no order entries after reset, %d remain", used)
	}
	clear(md.slots)
}

// drain pops everything, checking that stamps only increase
// and that no key is returned twice.
func drain(t *testing.T, m *ordhash.Map[int, int], md *model) {
	t.Helper()
	var (
		seen      = make(map[int]struct{}, m.Len())
		lastStamp = 0
	)
	for {
		key, _, ok := m.PopFront()
		if !ok {
			break
		}
		if _, dup := seen[key]; dup {
			t.Fatalf("key %d popped twice", key)
		}
		seen[key] = struct{}{}
		slot := md.slots[key]
		if slot == nil || !slot.live {
			t.Fatalf("popped key %d is not live in the model", key)
		}
		if slot.stamp <= lastStamp {
			t.Fatalf("pop order regressed: stamp %d after %d", slot.stamp, lastStamp)
		}
		lastStamp = slot.stamp
	}
	if want := md.len(); len(seen) != want {
		t.Fatalf("drained %d keys; want %d", len(seen), want)
	}
	if !m.IsEmpty() {
		t.Fatal("expected map to be empty after draining")
	}
}
