// Package rank orders contributions deterministically
package rank

import (
	"sort"
	"time"
)

// Key carries everything the comparator looks at. Featured entries sort
// first, then higher score, then newer, then id descending so equal rows
// from different replicas land in the same order.
type Key struct {
	Featured  bool
	Score     int
	CreatedAt time.Time
	ID        string
}

// Less reports whether a ranks strictly before b
func Less(a, b Key) bool {
	if a.Featured != b.Featured {
		return a.Featured
	}
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// Sort orders items in place by their keys. The comparator is a strict
// total order over distinct ids, so the result does not depend on the
// incoming order and stability is irrelevant.
func Sort[T any](items []T, key func(T) Key) {
	sort.Slice(items, func(i, j int) bool {
		return Less(key(items[i]), key(items[j]))
	})
}
