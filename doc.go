// Package ordhash implements [Map], an ordered hash map with queue-like semantics.
//
// A [Map] combines a hash map for key lookups with a FIFO order queue
// that records when each key was last pushed or refreshed.
// It is intended as a building block for things like LRU caches
// and keyed work queues, which need both "find by key" and
// "find the oldest live entry" in amortized O(1).
//
// The following is a summary (intended for maintainers).
//
// Glossary and invariants:
//
//   - Slot
//
//     The hash map record for a key: its value and its current stamp.
//
//   - Stamp
//
//     A value of the generation counter. Every push and refresh
//     increments the counter and writes the result into both the slot
//     and a new order entry. Stamps are never reused.
//     Stamp 0 is never produced and marks a disabled slot.
//
//   - Order entry
//
//     A (key, stamp) pair in the order queue.
//     Entries are appended at the back and removed from the front,
//     never modified in place.
//
//   - Live
//
//     A key whose slot stamp is non-zero. Counted by [Map.Len].
//
//   - Stale
//
//     An order entry whose stamp does not match its key's slot.
//     At most one order entry per key is current; all others are stale
//     and only cost memory until [Map.PopFront] reaches them.
//
// Operations:
//
//   - Move to back
//
//     Updating or refreshing a key never searches or relinks the queue.
//     A new current entry is appended and the previous one becomes stale.
//
//   - Disable
//
//     [Map.MarkUnused] zeros the slot's stamp. The value stays in the map,
//     and no order entry can match the slot until it is refreshed.
//     Disabled slots are never selected (or removed) by [Map.PopFront].
//
//   - Pop
//
//     Removes entries from the front of the queue until one is current,
//     then deletes that slot. Every order entry is discarded at most once,
//     so the cost is amortized O(1) per push or refresh.
//
//   - Peek
//
//     Scans from the front like pop, but discards nothing.
//     Its cost is proportional to the stale prefix of the queue;
//     repeated peeks without an intervening pop re-scan that prefix.
//
// Counts:
//
//   - [Map.Len] <= [Map.UsedEntries].
//
//     UsedEntries counts stale order entries too.
package ordhash
