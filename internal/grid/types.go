// internal/grid/types.go
//
// Core type definitions for the guess grid.
// Defines:
//   - Classification: what a guess revealed about one letter slot.
//   - Letter: a character slot plus its classification.
//   - Word: a fixed-size row of Letters (one guess).

package grid

// Classification is the tri-state judgement of a typed letter, plus Empty for
// an untyped slot.
type Classification uint8

const (
	Empty     Classification = iota // no character typed
	Missing                         // absent from the target
	Available                       // present in the target, elsewhere
	InPlace                         // present at exactly this position
)

// ParseClassification converts an integer received from the UI into a
// Classification. Values outside [Empty, InPlace] normalize to Missing.
func ParseClassification(v int) Classification {
	if v < int(Empty) || v > int(InPlace) {
		return Missing
	}
	return Classification(v)
}

// Valid reports whether c is one of the four known tags.
func (c Classification) Valid() bool { return c <= InPlace }

func (c Classification) String() string {
	switch c {
	case Empty:
		return "empty"
	case Missing:
		return "missing"
	case Available:
		return "available"
	case InPlace:
		return "in_place"
	}
	return "invalid"
}

// Letter is one slot of a Word.
// Char == 0 iff Class == Empty.
type Letter struct {
	Char  rune
	Class Classification
}

// IsEmpty reports whether no character has been typed into the slot.
func (l Letter) IsEmpty() bool { return l.Class == Empty }

// Set types r into the slot. A freshly typed letter is judged Missing until
// toggled. Setting 0 clears the slot.
func (l *Letter) Set(r rune) {
	if r == 0 {
		l.Clear()
		return
	}
	l.Char = r
	l.Class = Missing
}

// Clear resets the slot to Empty.
func (l *Letter) Clear() {
	l.Char = 0
	l.Class = Empty
}

// SetClassification changes the judgement of a typed letter.
// Invalid tags normalize to Missing; Empty clears the slot. Untyped slots are
// left alone so they never carry a judgement without a character.
func (l *Letter) SetClassification(c Classification) {
	if !c.Valid() {
		c = Missing
	}
	if c == Empty {
		l.Clear()
		return
	}
	if l.Char == 0 {
		return
	}
	l.Class = c
}

// Word is one guess row. Its length is fixed at construction.
type Word struct {
	letters []Letter
}

// NewWord returns a row of n Empty letters.
func NewWord(n int) Word {
	return Word{letters: make([]Letter, n)}
}

// Len returns the number of slots.
func (w Word) Len() int { return len(w.letters) }

// At returns the letter at col; ok is false when col is out of range.
func (w Word) At(col int) (Letter, bool) {
	if col < 0 || col >= len(w.letters) {
		return Letter{}, false
	}
	return w.letters[col], true
}

// Letters returns a copy of the row.
func (w Word) Letters() []Letter {
	out := make([]Letter, len(w.letters))
	copy(out, w.letters)
	return out
}

// String returns the typed characters, skipping Empty slots.
func (w Word) String() string {
	rs := make([]rune, 0, len(w.letters))
	for _, l := range w.letters {
		if !l.IsEmpty() {
			rs = append(rs, l.Char)
		}
	}
	return string(rs)
}

// Full reports whether every slot holds a character.
func (w Word) Full() bool {
	for _, l := range w.letters {
		if l.IsEmpty() {
			return false
		}
	}
	return true
}

// Blank reports whether no slot holds a character.
func (w Word) Blank() bool {
	for _, l := range w.letters {
		if !l.IsEmpty() {
			return false
		}
	}
	return true
}

// push types r into the first Empty slot; false when the row is full.
func (w *Word) push(r rune) bool {
	for i := range w.letters {
		if w.letters[i].IsEmpty() {
			w.letters[i].Set(r)
			return true
		}
	}
	return false
}

// pop clears the last non-Empty slot; false when the row is blank.
func (w *Word) pop() bool {
	for i := len(w.letters) - 1; i >= 0; i-- {
		if !w.letters[i].IsEmpty() {
			w.letters[i].Clear()
			return true
		}
	}
	return false
}

func (w *Word) clear() {
	for i := range w.letters {
		w.letters[i].Clear()
	}
}
