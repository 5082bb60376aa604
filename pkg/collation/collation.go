// Package collation orders display strings by the alphabetic rules of a
// locale instead of by byte value, so "Ökynomi" lands where a Finnish reader
// expects it (after Z) and "aino" sorts before "Bertta".
package collation

import (
	"bytes"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sorter is safe for concurrent use. A collate.Collator is not, so every
// call builds its own.
type Sorter struct {
	tag language.Tag
}

var supported = language.NewMatcher(collate.Supported())

// New parses a BCP 47 locale ("fi", "sv-FI"). A locale that does not parse
// or that has no collation table is an error, since collate would quietly
// fall back to root order.
func New(locale string) (*Sorter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}
	if _, _, confidence := supported.Match(tag); confidence == language.No {
		return nil, fmt.Errorf("collation: no collation rules for locale %q", locale)
	}
	return &Sorter{tag: tag}, nil
}

// MustNew is New for constants known to be valid.
func MustNew(locale string) *Sorter {
	s, err := New(locale)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Sorter) Tag() language.Tag {
	return s.tag
}

func (s *Sorter) collator() *collate.Collator {
	return collate.New(s.tag, collate.IgnoreWidth)
}

// Compare returns -1, 0 or 1.
func (s *Sorter) Compare(a, b string) int {
	return s.collator().CompareString(a, b)
}

// Strings sorts values in place in ascending collation order.
func (s *Sorter) Strings(values []string) {
	c := s.collator()
	sort.SliceStable(values, func(i, j int) bool {
		return c.CompareString(values[i], values[j]) < 0
	})
}

// SortFunc sorts items by key in collation order. Items with equal keys
// are ordered by tie, which must be a strict ordering. With desc the whole
// ordering, ties included, is reversed.
func SortFunc[T any](s *Sorter, items []T, key func(T) string, tie func(a, b T) bool, desc bool) {
	c := s.collator()
	keys := make([][]byte, len(items))
	var buf collate.Buffer
	for i, item := range items {
		// Key returns a slice into buf; copy before the next call reuses it.
		keys[i] = append([]byte(nil), c.KeyFromString(&buf, key(item))...)
		buf.Reset()
	}

	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	less := func(i, j int) bool {
		if cmp := bytes.Compare(keys[i], keys[j]); cmp != 0 {
			return cmp < 0
		}
		return tie(items[i], items[j])
	}
	sort.Slice(idx, func(a, b int) bool {
		if desc {
			return less(idx[b], idx[a])
		}
		return less(idx[a], idx[b])
	})

	sorted := make([]T, len(items))
	for pos, i := range idx {
		sorted[pos] = items[i]
	}
	copy(items, sorted)
}
