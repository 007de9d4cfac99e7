// internal/candidate/candidate.go
//
// Reduces a dictionary to the words consistent with a constraint set.
//
// A word w is a candidate iff, after normalization:
//   1. it has exactly n letters;
//   2. none of its letters is in Missing;
//   3. for every Available letter, the first occurrence of that letter in w
//      exists and is not at one of the excluded positions;
//   4. for every InPlace letter, its first occurrence is at the required
//      position, or the letter occurs more than once in w.
//
// Rule 2 rejects words where a letter is both missing (from one guess) and
// present (from another); repeated target letters are therefore not handled.
// Rule 4 tolerates repeated letters instead of checking every occurrence.
//
// Sample mode skips the constraints and takes the first SampleSize words of
// the right length, in dictionary order.
package candidate

import (
	"iter"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/robalobadob/wordle/apps/go-helper/internal/constraint"
	"github.com/robalobadob/wordle/apps/go-helper/internal/words"
)

// SampleSize caps the number of words returned by Sample.
const SampleSize = 500

// Lines is a lazy, ordered view over dictionary words.
type Lines interface {
	Lines() iter.Seq[string]
}

// List adapts an in-memory word slice to Lines.
type List []string

// Lines yields the words in order.
func (l List) Lines() iter.Seq[string] { return slices.Values(l) }

// Filter returns, in dictionary order, every word of src that satisfies set.
// A nil set constrains nothing beyond the length.
func Filter(src Lines, n int, set *constraint.Set) []string {
	f := words.NewFolder()
	set = foldKeys(f, set)
	out := []string{}
	for w := range src.Lines() {
		if matches(f, w, n, set) {
			out = append(out, w)
		}
	}
	return out
}

// Match reports whether a single word satisfies set.
func Match(word string, n int, set *constraint.Set) bool {
	f := words.NewFolder()
	return matches(f, word, n, foldKeys(f, set))
}

// Sample returns up to SampleSize words of length n, unfiltered and in
// dictionary order.
func Sample(src Lines, n int) []string {
	f := words.NewFolder()
	out := []string{}
	for w := range src.Lines() {
		if len(out) == SampleSize {
			break
		}
		if len([]rune(f.String(w))) == n {
			out = append(out, w)
		}
	}
	return out
}

// Join renders a word list as one newline-separated block.
func Join(ws []string) string { return strings.Join(ws, "\n") }

func matches(f *words.Folder, word string, n int, set *constraint.Set) bool {
	w := []rune(f.String(word))
	if len(w) != n {
		return false
	}
	for _, r := range w {
		if set.Missing.Contains(r) {
			return false
		}
	}
	for ch, excluded := range set.Available {
		i := slices.Index(w, ch)
		if i < 0 || excluded.Contains(i) {
			return false
		}
	}
	for ch, col := range set.InPlace {
		i := slices.Index(w, ch)
		if i < 0 {
			return false
		}
		if i != col && count(w, ch) < 2 {
			return false
		}
	}
	return true
}

// foldKeys returns a copy of set with every letter key normalized.
func foldKeys(f *words.Folder, set *constraint.Set) *constraint.Set {
	out := constraint.New()
	if set == nil {
		return out
	}
	if set.Missing != nil {
		for _, r := range set.Missing.ToSlice() {
			out.Missing.Add(f.Rune(r))
		}
	}
	for r, pos := range set.Available {
		key := f.Rune(r)
		if _, ok := out.Available[key]; !ok {
			out.Available[key] = mapset.NewThreadUnsafeSet[int]()
		}
		if pos != nil {
			out.Available[key].Append(pos.ToSlice()...)
		}
	}
	for r, col := range set.InPlace {
		out.InPlace[f.Rune(r)] = col
	}
	return out
}

func count(w []rune, ch rune) int {
	n := 0
	for _, r := range w {
		if r == ch {
			n++
		}
	}
	return n
}
