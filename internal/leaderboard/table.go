package leaderboard

import (
	"errors"
	"fmt"
)

// Capacity is the number of ranks kept per category.
const Capacity = 10

var (
	ErrCategory = errors.New("unknown leaderboard category")
	ErrPosition = errors.New("rank position out of range")
)

type ranking struct {
	entries [Capacity]Entry
	n       int
}

// Table holds one bounded ranking per category, each sorted by
// non-increasing score.
type Table struct {
	lists map[Category]*ranking
}

func NewTable() *Table {
	t := &Table{lists: make(map[Category]*ranking)}
	for _, c := range Categories() {
		t.lists[c] = &ranking{}
	}
	return t
}

// Len is the number of occupied ranks in c.
func (t *Table) Len(c Category) int {
	if l, ok := t.lists[c]; ok {
		return l.n
	}
	return 0
}

// Entries returns a copy of the occupied ranks of c, best first.
func (t *Table) Entries(c Category) []Entry {
	l, ok := t.lists[c]
	if !ok {
		return nil
	}
	out := make([]Entry, l.n)
	copy(out, l.entries[:l.n])
	return out
}

// Records is the number of whole records the table spans on disk.
func (t *Table) Records() int {
	n := 0
	for _, l := range t.lists {
		n = max(n, l.n)
	}
	return n
}

func (t *Table) Full() bool {
	return t.Records() >= Capacity
}

// Rank returns the position score would take in c. A full category only
// accepts a score above its last entry. Otherwise the first slot that is
// empty or holds a score no greater than score wins, so a tie ranks ahead of
// the older equal entry.
func (t *Table) Rank(c Category, score uint16) (int, bool) {
	l, ok := t.lists[c]
	if !ok {
		return 0, false
	}
	if l.n == Capacity && score <= l.entries[Capacity-1].Score {
		return 0, false
	}
	for i := 0; i < Capacity; i++ {
		if i >= l.n || l.entries[i].Score <= score {
			return i, true
		}
	}
	return 0, false
}

// Insert writes e at pos in c, shifting lower ranks down and dropping the
// last one when c is already full.
func (t *Table) Insert(c Category, pos int, e Entry) error {
	l, ok := t.lists[c]
	if !ok {
		return fmt.Errorf("insert into %s: %w", c, ErrCategory)
	}
	if pos < 0 || pos >= Capacity || pos > l.n {
		return fmt.Errorf("insert into %s at %d: %w", c, pos, ErrPosition)
	}
	l.n = min(l.n+1, Capacity)
	copy(l.entries[pos+1:l.n], l.entries[pos:l.n-1])
	l.entries[pos] = e
	return nil
}
