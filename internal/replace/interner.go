package replace

// Interner assigns stable, dense, zero-based identifiers to structural
// keys: the same key always maps to the same id, and ids are handed out
// in order of first reference. Per spec.md §4.1, it never deletes or
// rehashes in a way that would invalidate an id already issued.
type Interner[K comparable] struct {
	keys []K
	ids  map[K]int
}

// NewInterner returns an empty interner.
func NewInterner[K comparable]() *Interner[K] {
	return &Interner[K]{ids: make(map[K]int)}
}

// FindID returns the existing id for k, or assigns and returns the next
// unused id if k has not been seen before.
func (in *Interner[K]) FindID(k K) int {
	if id, ok := in.ids[k]; ok {
		return id
	}
	id := len(in.keys)
	in.keys = append(in.keys, k)
	in.ids[k] = id
	return id
}

// FindKey returns the key interned at id. Callers must only pass ids this
// interner has issued; under normal engine use this always holds.
func (in *Interner[K]) FindKey(id int) K {
	return in.keys[id]
}

// Len returns the number of distinct keys interned so far — the highwater
// mark of issued identifiers.
func (in *Interner[K]) Len() int {
	return len(in.keys)
}
