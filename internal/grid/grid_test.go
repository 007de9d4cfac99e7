package grid

import (
	"testing"
)

func typeWord(g *Grid, s string) {
	for _, r := range s {
		g.Input(r)
	}
}

func TestParseClassification(t *testing.T) {
	tests := []struct {
		in   int
		want Classification
	}{
		{0, Empty},
		{1, Missing},
		{2, Available},
		{3, InPlace},
		{4, Missing},
		{42, Missing},
		{-1, Missing},
	}
	for _, tt := range tests {
		if got := ParseClassification(tt.in); got != tt.want {
			t.Errorf("ParseClassification(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLetterClearThenSetMatchesFresh(t *testing.T) {
	for _, r := range "abcяё" {
		var used Letter
		used.Set('z')
		used.SetClassification(InPlace)
		used.Clear()
		used.Set(r)

		var fresh Letter
		fresh.Set(r)

		if used != fresh {
			t.Errorf("clear+set(%q) = %+v, fresh set = %+v", r, used, fresh)
		}
	}
}

func TestLetterInvariant(t *testing.T) {
	var l Letter
	l.SetClassification(Available)
	if !l.IsEmpty() || l.Char != 0 {
		t.Errorf("classifying an untyped slot changed it: %+v", l)
	}

	l.Set('a')
	if l.Class != Missing {
		t.Errorf("typed letter class = %v, want missing", l.Class)
	}
	l.SetClassification(Classification(9))
	if l.Class != Missing {
		t.Errorf("invalid class normalized to %v, want missing", l.Class)
	}
	l.SetClassification(Empty)
	if l.Char != 0 || l.Class != Empty {
		t.Errorf("toggle to empty left %+v", l)
	}
}

func TestInputFillsRowAndAdvances(t *testing.T) {
	g := New(5, 5)
	typeWord(g, "gra")
	if g.CurrentRow() != 0 {
		t.Fatalf("cursor moved early to %d", g.CurrentRow())
	}
	typeWord(g, "pe")
	if g.CurrentRow() != 1 {
		t.Fatalf("cursor = %d, want 1", g.CurrentRow())
	}
	row, _ := g.Row(0)
	if row.String() != "grape" {
		t.Errorf("row 0 = %q, want grape", row.String())
	}
	for c := 0; c < 5; c++ {
		l, _ := g.Letter(0, c)
		if l.Class != Missing {
			t.Errorf("letter %d class = %v, want missing", c, l.Class)
		}
	}
}

func TestInputLastRowStays(t *testing.T) {
	g := New(2, 3)
	typeWord(g, "abc")
	typeWord(g, "def")
	if g.CurrentRow() != 1 {
		t.Fatalf("cursor = %d, want 1", g.CurrentRow())
	}
	typeWord(g, "xyz")
	row, _ := g.Row(1)
	if row.String() != "def" {
		t.Errorf("full last row changed to %q", row.String())
	}
}

func TestBackspaceOnEmptyFirstRow(t *testing.T) {
	g := New(5, 5)
	g.Backspace()
	if g.CurrentRow() != 0 {
		t.Errorf("cursor = %d, want 0", g.CurrentRow())
	}
	row, _ := g.Row(0)
	if !row.Blank() {
		t.Error("row 0 not blank")
	}
}

func TestBackspaceOnFullLastRow(t *testing.T) {
	g := New(2, 5)
	typeWord(g, "apple")
	typeWord(g, "grape")
	g.Backspace()
	if g.CurrentRow() != 1 {
		t.Errorf("cursor = %d, want 1", g.CurrentRow())
	}
	row, _ := g.Row(1)
	if row.String() != "grap" {
		t.Errorf("row 1 = %q, want grap", row.String())
	}
}

func TestBackspaceStepsBack(t *testing.T) {
	g := New(3, 2)
	typeWord(g, "ab")
	if g.CurrentRow() != 1 {
		t.Fatalf("cursor = %d, want 1", g.CurrentRow())
	}
	g.Backspace()
	if g.CurrentRow() != 0 {
		t.Fatalf("cursor = %d, want 0", g.CurrentRow())
	}
	row, _ := g.Row(0)
	if row.String() != "ab" {
		t.Errorf("stepping back removed a letter: %q", row.String())
	}
	g.Backspace()
	row, _ = g.Row(0)
	if row.String() != "a" {
		t.Errorf("row 0 = %q, want a", row.String())
	}
}

func TestBackspaceClearsLastTypedSlot(t *testing.T) {
	g := New(1, 5)
	typeWord(g, "abc")
	g.Backspace()
	if l, _ := g.Letter(0, 2); !l.IsEmpty() {
		t.Errorf("slot 2 = %+v, want empty", l)
	}
	if l, _ := g.Letter(0, 1); l.Char != 'b' {
		t.Errorf("slot 1 = %+v, want b", l)
	}
}

func TestClassifyOutOfBounds(t *testing.T) {
	g := New(2, 2)
	typeWord(g, "ab")
	g.Classify(-1, 0, InPlace)
	g.Classify(5, 0, InPlace)
	g.Classify(0, 7, InPlace)
	g.Classify(0, -1, InPlace)
	g.Each(func(row, col int, l Letter) {
		if l.Class == InPlace {
			t.Errorf("(%d,%d) changed by out-of-range toggle", row, col)
		}
	})
	g.Classify(0, 1, InPlace)
	if l, _ := g.Letter(0, 1); l.Class != InPlace {
		t.Errorf("toggle not applied: %+v", l)
	}
}

func TestSelectRow(t *testing.T) {
	g := New(3, 5)
	g.SelectRow(2)
	if g.CurrentRow() != 2 {
		t.Errorf("cursor = %d, want 2", g.CurrentRow())
	}
	g.SelectRow(3)
	g.SelectRow(-1)
	if g.CurrentRow() != 2 {
		t.Errorf("out-of-range select moved cursor to %d", g.CurrentRow())
	}
}

func TestClearAll(t *testing.T) {
	g := New(3, 2)
	typeWord(g, "abcd")
	g.Classify(0, 0, InPlace)
	g.ClearAll()
	if g.CurrentRow() != 0 {
		t.Errorf("cursor = %d, want 0", g.CurrentRow())
	}
	g.Each(func(row, col int, l Letter) {
		if !l.IsEmpty() || l.Char != 0 {
			t.Errorf("(%d,%d) = %+v after clear", row, col, l)
		}
	})
	if g.Rows() != 3 || g.Cols() != 2 {
		t.Errorf("dimensions changed: %dx%d", g.Rows(), g.Cols())
	}
}

func TestEachRowMajor(t *testing.T) {
	g := New(2, 2)
	typeWord(g, "abcd")
	var got []rune
	g.Each(func(row, col int, l Letter) { got = append(got, l.Char) })
	if string(got) != "abcd" {
		t.Errorf("Each order = %q, want abcd", string(got))
	}
}

func TestJudge(t *testing.T) {
	g := New(2, 5)
	typeWord(g, "grape")
	g.Judge(0, "crane")
	want := []Classification{Missing, InPlace, InPlace, Missing, InPlace}
	for c, w := range want {
		if l, _ := g.Letter(0, c); l.Class != w {
			t.Errorf("col %d = %v, want %v", c, l.Class, w)
		}
	}
}

func TestJudgeIgnoresPartialRowAndBadAnswer(t *testing.T) {
	g := New(2, 5)
	typeWord(g, "gra")
	g.Judge(0, "crane")
	if l, _ := g.Letter(0, 1); l.Class != Missing {
		t.Errorf("partial row judged: %+v", l)
	}
	typeWord(g, "pe")
	g.Judge(0, "cranes")
	if l, _ := g.Letter(0, 1); l.Class != Missing {
		t.Errorf("wrong-length answer judged: %+v", l)
	}
	g.Judge(9, "crane")
}

func TestNewDefaults(t *testing.T) {
	g := New(0, -1)
	if g.Rows() != DefaultRows || g.Cols() != DefaultCols {
		t.Errorf("New(0,-1) = %dx%d, want defaults", g.Rows(), g.Cols())
	}
}

func TestInputIgnoresControlRunes(t *testing.T) {
	g := New(1, 3)
	typeWord(g, "a")
	g.Input(0)
	g.Input('\n')
	typeWord(g, "b")
	row, _ := g.Row(0)
	if row.String() != "ab" {
		t.Errorf("row 0 = %q, want ab", row.String())
	}
	if l, _ := g.Letter(0, 0); l.Char != 'a' || l.Class != Missing {
		t.Errorf("slot 0 = %+v", l)
	}
}
