// internal/grid/grid.go
//
// Input state machine for a grid of guesses.
// Responsibilities:
//   - Own every Word and Letter (arena addressed by row/column index).
//   - Route typed characters into the current row and advance the cursor
//     once a row fills up.
//   - Handle backspace, including stepping back to the previous row.
//   - Apply classification toggles and the auto-judge.
//
// Notes:
//   - Row/column indices outside the grid are ignored, never errors.
//   - The cursor only moves forward on its own (row filled); it moves back
//     only through Backspace on a blank row or SelectRow.
package grid

import (
	"unicode"

	"github.com/robalobadob/wordle/apps/go-helper/internal/words"
)

const (
	DefaultRows = 5
	DefaultCols = 5
)

// Grid holds every guess row plus the cursor.
type Grid struct {
	rows    []Word
	cols    int
	current int
}

// New constructs an empty grid. Non-positive sizes fall back to the defaults.
func New(rows, cols int) *Grid {
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}
	g := &Grid{rows: make([]Word, rows), cols: cols}
	for i := range g.rows {
		g.rows[i] = NewWord(cols)
	}
	return g
}

// Rows returns the number of rows (M).
func (g *Grid) Rows() int { return len(g.rows) }

// Cols returns the word length (N).
func (g *Grid) Cols() int { return g.cols }

// CurrentRow returns the cursor.
func (g *Grid) CurrentRow() int { return g.current }

// Row returns a copy of row i; ok is false when i is out of range.
func (g *Grid) Row(i int) (Word, bool) {
	if !g.inRows(i) {
		return Word{}, false
	}
	return Word{letters: g.rows[i].Letters()}, true
}

// Letter returns the letter at (row, col).
func (g *Grid) Letter(row, col int) (Letter, bool) {
	if !g.inRows(row) {
		return Letter{}, false
	}
	return g.rows[row].At(col)
}

// Each visits every letter in row-major order.
func (g *Grid) Each(fn func(row, col int, l Letter)) {
	for r := range g.rows {
		for c, l := range g.rows[r].letters {
			fn(r, c, l)
		}
	}
}

// SelectRow moves the cursor to row i.
func (g *Grid) SelectRow(i int) {
	if g.inRows(i) {
		g.current = i
	}
}

// Input types r into the first Empty slot of the current row. When that
// fills the row and it is not the last one, the cursor advances.
// Control characters (including 0) are not letters and are ignored.
func (g *Grid) Input(r rune) {
	if unicode.IsControl(r) {
		return
	}
	w := &g.rows[g.current]
	if !w.push(r) {
		return
	}
	if w.Full() && g.current < len(g.rows)-1 {
		g.current++
	}
}

// Backspace clears the last typed letter of the current row, or steps back
// one row when the current row is blank.
func (g *Grid) Backspace() {
	w := &g.rows[g.current]
	if w.Blank() {
		if g.current > 0 {
			g.current--
		}
		return
	}
	w.pop()
}

// Classify writes c into the letter at (row, col).
func (g *Grid) Classify(row, col int, c Classification) {
	if !g.inRows(row) || col < 0 || col >= g.cols {
		return
	}
	g.rows[row].letters[col].SetClassification(c)
}

// ClearAll empties every letter and returns the cursor to the first row.
func (g *Grid) ClearAll() {
	for i := range g.rows {
		g.rows[i].clear()
	}
	g.current = 0
}

// Judge classifies a full row against a known answer using two-pass scoring.
// Rows that are not full, or answers of a different length, are ignored.
func (g *Grid) Judge(row int, answer string) {
	if !g.inRows(row) {
		return
	}
	w := &g.rows[row]
	if !w.Full() {
		return
	}
	marks := words.Score(w.String(), answer)
	if len(marks) != g.cols {
		return
	}
	for i, m := range marks {
		w.letters[i].SetClassification(fromScore(m))
	}
}

// fromScore maps a words.Score mark onto a Classification.
func fromScore(m int) Classification {
	switch m {
	case words.ScoreHit:
		return InPlace
	case words.ScorePresent:
		return Available
	}
	return Missing
}

func (g *Grid) inRows(i int) bool { return i >= 0 && i < len(g.rows) }
