package cyarg

import "strconv"

// Key identifies an argument in a SynMap. Exactly one of the two forms
// holds: a name (flag arguments, possibly one of several synonyms) or a
// 1-based positional slot.
type Key struct {
	name string
	slot int
}

// NameKey returns the key for a named argument. Dashes are not part of
// the name ("o", "out" — never "-o" or "--out").
func NameKey(name string) Key { return Key{name: name} }

// SlotKey returns the key for the positional argument at the given
// 1-based slot.
func SlotKey(slot int) Key { return Key{slot: slot} }

// IsSlot reports whether the key addresses a positional slot.
func (k Key) IsSlot() bool { return k.slot != 0 }

// Name returns the argument name, or "" for positional keys.
func (k Key) Name() string { return k.name }

// Slot returns the 1-based positional slot, or 0 for named keys.
func (k Key) Slot() int { return k.slot }

// String renders the key for error messages: names as-is, slots as "#N".
func (k Key) String() string {
	if k.slot != 0 {
		return "#" + strconv.Itoa(k.slot)
	}
	return k.name
}

// SynMap is a key-value store where sets of keys can be registered as
// mutually interchangeable: writing or deleting through any key in a
// registered set applies to every key in that set. Keys that were never
// registered behave as an ordinary map. It backs both the descriptor
// registry and the output accumulator so that -a/--all always carry one
// shared value.
type SynMap[V any] struct {
	items map[Key]V
	syns  [][]Key
}

// NewSynMap creates an empty SynMap with no registered synonyms.
func NewSynMap[V any]() *SynMap[V] {
	return &SynMap[V]{
		items: make(map[Key]V),
		syns:  make([][]Key, 0, 4),
	}
}

// Register records that the given keys must always carry equal values
// when mutated through this map. Multiple disjoint sets may be
// registered.
func (m *SynMap[V]) Register(keys ...Key) {
	set := make([]Key, len(keys))
	copy(set, keys)
	m.syns = append(m.syns, set)
}

// Set writes value under key and, if key belongs to a registered
// synonym set, under every key in that set.
func (m *SynMap[V]) Set(key Key, value V) {
	for _, k := range m.expand(key) {
		m.items[k] = value
	}
}

// Get returns the value stored under key.
func (m *SynMap[V]) Get(key Key) (V, bool) {
	v, ok := m.items[key]
	return v, ok
}

// Has reports whether key has a stored value.
func (m *SynMap[V]) Has(key Key) bool {
	_, ok := m.items[key]
	return ok
}

// Delete removes key and all its registered synonyms.
func (m *SynMap[V]) Delete(key Key) {
	for _, k := range m.expand(key) {
		delete(m.items, k)
	}
}

// Len returns the number of stored keys, counting each synonym
// separately.
func (m *SynMap[V]) Len() int { return len(m.items) }

// Snapshot returns a plain copy of the stored entries. The copy is not
// synonym-aware; mutating it does not affect the SynMap.
func (m *SynMap[V]) Snapshot() map[Key]V {
	out := make(map[Key]V, len(m.items))
	for k, v := range m.items {
		out[k] = v
	}
	return out
}

// expand returns key plus every registered synonym of key. Entries may
// repeat; callers only use it for idempotent map writes and deletes.
func (m *SynMap[V]) expand(key Key) []Key {
	keys := []Key{key}
	for _, set := range m.syns {
		for _, k := range set {
			if k == key {
				keys = append(keys, set...)
				break
			}
		}
	}
	return keys
}
