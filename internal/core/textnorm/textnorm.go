// Package textnorm folds user text into a canonical form so the content
// policy matcher cannot be dodged with lookalike glyphs or stray marks.
//
// A folded string is valid UTF-8, NFKC-normalized, case-folded, stripped
// of combining and format runes, width-folded to ASCII, and has its
// whitespace runs collapsed.
package textnorm

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer folds text. Safe for concurrent use.
type Normalizer struct {
	chains sync.Pool
}

// New constructs a Normalizer.
func New() *Normalizer {
	n := &Normalizer{}
	n.chains.New = func() any { return newChain() }
	return n
}

// newChain builds one transformer pipeline. Transformers carry state, so
// each goroutine borrows its own from the pool.
func newChain() transform.Transformer {
	return transform.Chain(
		norm.NFKC,
		cases.Fold(),
		runes.Remove(runes.In(unicode.Mn)), // combining marks
		runes.Remove(runes.In(unicode.Cf)), // ZWJ, ZWNJ, BOM and friends
		width.Fold,
	)
}

// Normalize returns the folded form of s.
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}
	folded := n.fold(strings.ToValidUTF8(s, ""))
	return collapseSpaces(folded)
}

func (n *Normalizer) fold(s string) string {
	tr := n.chains.Get().(transform.Transformer)
	defer func() {
		tr.Reset()
		n.chains.Put(tr)
	}()
	out, _, err := transform.String(tr, s)
	if err != nil {
		// a chain of pure rune transforms does not fail on valid UTF-8;
		// if it somehow does, match on the raw input rather than drop it
		return s
	}
	return out
}

// collapseSpaces squeezes each whitespace run down to a single byte: a
// newline when the run contained one, a space otherwise. Edges are
// trimmed entirely.
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	run := 0 // 0 none, 1 spaces only, 2 saw newline
	for _, r := range s {
		if unicode.IsSpace(r) {
			if run < 2 && (r == '\n' || r == '\r') {
				run = 2
			} else if run == 0 {
				run = 1
			}
			continue
		}
		if run > 0 && b.Len() > 0 {
			if run == 2 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		run = 0
		b.WriteRune(r)
	}
	return b.String()
}
