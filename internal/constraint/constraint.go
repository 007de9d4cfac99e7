// internal/constraint/constraint.go
//
// Folds the classified letters of a grid into a compact constraint set.
//
// Aggregation rules, applied in row-major order:
//   - Missing   → letter added to Missing.
//   - Available → column added to Available[letter] (positions the letter is
//                 known not to occupy).
//   - InPlace   → InPlace[letter] = column; a later occurrence overwrites an
//                 earlier one.
//   - Empty     → ignored.
//
// Letters are normalized (case + diacritic fold) before they become keys.
package constraint

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/robalobadob/wordle/apps/go-helper/internal/grid"
	"github.com/robalobadob/wordle/apps/go-helper/internal/words"
)

// Board is anything that can enumerate its letters in row-major order.
type Board interface {
	Each(fn func(row, col int, l grid.Letter))
}

// Set is the aggregated knowledge about the target word.
type Set struct {
	Missing   mapset.Set[rune]
	Available map[rune]mapset.Set[int]
	InPlace   map[rune]int
}

// New returns an empty constraint set.
func New() *Set {
	return &Set{
		Missing:   mapset.NewThreadUnsafeSet[rune](),
		Available: make(map[rune]mapset.Set[int]),
		InPlace:   make(map[rune]int),
	}
}

// Aggregate scans b once and returns its constraint set. b is not modified.
func Aggregate(b Board) *Set {
	s := New()
	f := words.NewFolder()
	b.Each(func(_, col int, l grid.Letter) {
		if l.IsEmpty() {
			return
		}
		ch := f.Rune(l.Char)
		switch l.Class {
		case grid.Missing:
			s.Missing.Add(ch)
		case grid.Available:
			s.Exclude(ch, col)
		case grid.InPlace:
			s.InPlace[ch] = col
		}
	})
	return s
}

// Exclude records that ch is present but not at col.
func (s *Set) Exclude(ch rune, col int) {
	pos, ok := s.Available[ch]
	if !ok {
		pos = mapset.NewThreadUnsafeSet[int]()
		s.Available[ch] = pos
	}
	pos.Add(col)
}

// IsEmpty reports whether the set constrains nothing.
func (s *Set) IsEmpty() bool {
	return s == nil || (s.Missing.Cardinality() == 0 && len(s.Available) == 0 && len(s.InPlace) == 0)
}

// Equal reports whether two sets carry the same constraints.
func (s *Set) Equal(o *Set) bool {
	if s.IsEmpty() || o.IsEmpty() {
		return s.IsEmpty() == o.IsEmpty()
	}
	if !s.Missing.Equal(o.Missing) || !maps.Equal(s.InPlace, o.InPlace) {
		return false
	}
	return maps.EqualFunc(s.Available, o.Available, func(a, b mapset.Set[int]) bool {
		return a.Equal(b)
	})
}

// String renders the set deterministically, e.g.
// "missing=[a x] available=[e:{0,3}] in_place=[r:1]".
func (s *Set) String() string {
	if s == nil {
		s = New()
	}
	var b strings.Builder

	missing := s.Missing.ToSlice()
	slices.Sort(missing)
	b.WriteString("missing=[")
	for i, r := range missing {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	b.WriteString("] available=[")
	for i, r := range slices.Sorted(maps.Keys(s.Available)) {
		if i > 0 {
			b.WriteByte(' ')
		}
		pos := s.Available[r].ToSlice()
		slices.Sort(pos)
		cols := make([]string, len(pos))
		for j, p := range pos {
			cols[j] = fmt.Sprint(p)
		}
		fmt.Fprintf(&b, "%c:{%s}", r, strings.Join(cols, ","))
	}

	b.WriteString("] in_place=[")
	for i, r := range slices.Sorted(maps.Keys(s.InPlace)) {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%c:%d", r, s.InPlace[r])
	}
	b.WriteByte(']')
	return b.String()
}
