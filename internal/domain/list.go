package domain

// Entry is one record of an ordered list: a stable identifier plus payload.
type Entry[T any] struct {
	ID    int
	Value T
}

// List is an ordered collection of entries keyed by a unique integer ID.
// Insertion order is display order. The zero value is an empty list; use
// NewList to get one that satisfies the "never empty" invariant.
//
// Mutations build a new backing slice and index and swap them in, so a
// slice previously returned by Entries is never modified underneath a caller.
type List[T any] struct {
	entries []Entry[T]
	index   map[int]int
}

// NewList returns a list holding a single zero-valued entry with ID 1.
func NewList[T any]() List[T] {
	var l List[T]
	l.Add()
	return l
}

// Len returns the number of entries.
func (l *List[T]) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries in insertion order.
func (l *List[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(l.entries))
	copy(out, l.entries)
	return out
}

// Get returns the entry with the given ID.
func (l *List[T]) Get(id int) (Entry[T], bool) {
	i, ok := l.index[id]
	if !ok {
		return Entry[T]{}, false
	}
	return l.entries[i], true
}

// Position returns the zero-based position of id, or -1.
func (l *List[T]) Position(id int) int {
	i, ok := l.index[id]
	if !ok {
		return -1
	}
	return i
}

// MaxID returns the largest live identifier, or 0 for an empty list.
func (l *List[T]) MaxID() int {
	max := 0
	for _, e := range l.entries {
		if e.ID > max {
			max = e.ID
		}
	}
	return max
}

// Add appends an empty entry whose ID is one greater than the current
// maximum. Gaps left by removals are never reused.
func (l *List[T]) Add() Entry[T] {
	e := Entry[T]{ID: l.MaxID() + 1}
	next := make([]Entry[T], len(l.entries), len(l.entries)+1)
	copy(next, l.entries)
	next = append(next, e)
	l.swap(next)
	return e
}

// Update applies fn to the payload of the entry with the given ID.
// The entry keeps its ID and position.
func (l *List[T]) Update(id int, fn func(*T)) error {
	i, ok := l.index[id]
	if !ok {
		return ErrEntryNotFound
	}
	next := make([]Entry[T], len(l.entries))
	copy(next, l.entries)
	fn(&next[i].Value)
	next[i].ID = id
	l.swap(next)
	return nil
}

// Remove deletes the entry with the given ID. It refuses to remove the
// last remaining entry.
func (l *List[T]) Remove(id int) error {
	i, ok := l.index[id]
	if !ok {
		return ErrEntryNotFound
	}
	if len(l.entries) <= 1 {
		return ErrLastEntry
	}
	next := make([]Entry[T], 0, len(l.entries)-1)
	next = append(next, l.entries[:i]...)
	next = append(next, l.entries[i+1:]...)
	l.swap(next)
	return nil
}

// Clone returns an independent copy of the list.
func (l *List[T]) Clone() List[T] {
	var c List[T]
	c.swap(l.Entries())
	return c
}

func (l *List[T]) swap(entries []Entry[T]) {
	index := make(map[int]int, len(entries))
	for i, e := range entries {
		index[e.ID] = i
	}
	l.entries = entries
	l.index = index
}
