package solver

import (
	"fmt"
	"slices"
	"testing"

	"github.com/robalobadob/wordle/apps/go-helper/internal/candidate"
	"github.com/robalobadob/wordle/apps/go-helper/internal/grid"
)

type fakeView struct {
	grids  []Snapshot
	blocks []string
}

func (v *fakeView) GridChanged(s Snapshot)         { v.grids = append(v.grids, s) }
func (v *fakeView) CandidatesChanged(block string) { v.blocks = append(v.blocks, block) }

type fakeRecorder struct{ searches []Search }

func (r *fakeRecorder) Searched(s Search) { r.searches = append(r.searches, s) }

var fruit = candidate.List{"APPLE", "GRAPE", "BRAVE", "CRANE", "PEAR"}

func press(s *Session, keys string) {
	for _, r := range keys {
		s.KeyPressed(string(r))
	}
}

func TestEnterRecomputes(t *testing.T) {
	v := &fakeView{}
	rec := &fakeRecorder{}
	s := New(fruit, Options{View: v, Recorder: rec})
	press(s, "grape")
	for c := 0; c < 5; c++ {
		s.LetterClassificationChanged(0, c, int(grid.InPlace))
	}
	s.KeyPressed(KeyEnter)

	if got := s.Candidates(); !slices.Equal(got, []string{"GRAPE"}) {
		t.Errorf("Candidates = %v, want [GRAPE]", got)
	}
	if len(v.blocks) == 0 || v.blocks[len(v.blocks)-1] != "GRAPE" {
		t.Errorf("view blocks = %v", v.blocks)
	}
	if len(rec.searches) != 1 || rec.searches[0].Kind != KindSearch || rec.searches[0].Matches != 1 {
		t.Errorf("recorded = %+v", rec.searches)
	}
}

func TestRecomputeEmptyGrid(t *testing.T) {
	s := New(fruit, Options{})
	if got := s.Recompute(); len(got) != 0 {
		t.Errorf("Recompute on empty grid = %v", got)
	}
	if s.Block() != "" {
		t.Errorf("Block = %q", s.Block())
	}
}

func TestTypedLettersDefaultToMissing(t *testing.T) {
	s := New(fruit, Options{})
	press(s, "xyz")
	got := s.Recompute()
	want := []string{"APPLE", "GRAPE", "BRAVE", "CRANE"}
	if !slices.Equal(got, want) {
		t.Errorf("Recompute = %v, want %v", got, want)
	}
}

func TestBackspaceTokens(t *testing.T) {
	s := New(fruit, Options{})
	press(s, "ab")
	s.KeyPressed(KeyBackspace)
	s.KeyPressed(KeyBackspaceAlias)
	snap := s.Snapshot()
	if snap.Rows[0][0].Char != "" || snap.Rows[0][1].Char != "" {
		t.Errorf("row 0 = %+v", snap.Rows[0])
	}
}

func TestMultiCharacterTokensIgnored(t *testing.T) {
	s := New(fruit, Options{})
	s.KeyPressed("Shift")
	s.KeyPressed("")
	s.KeyPressed("ё")
	snap := s.Snapshot()
	if snap.Rows[0][0].Char != "ё" || snap.Rows[0][1].Char != "" {
		t.Errorf("row 0 = %+v", snap.Rows[0])
	}
}

func TestClassificationClamp(t *testing.T) {
	s := New(fruit, Options{})
	press(s, "a")
	s.LetterClassificationChanged(0, 0, 17)
	if c := s.Snapshot().Rows[0][0].Classification; c != int(grid.Missing) {
		t.Errorf("classification = %d, want missing", c)
	}
	s.LetterClassificationChanged(9, 9, int(grid.InPlace))
}

func TestClearAllResetsCandidates(t *testing.T) {
	v := &fakeView{}
	s := New(fruit, Options{View: v})
	s.SampleRequest()
	press(s, "grape")
	s.ClearAll()
	if len(s.Candidates()) != 0 {
		t.Errorf("candidates survived clear: %v", s.Candidates())
	}
	if v.blocks[len(v.blocks)-1] != "" {
		t.Errorf("view not cleared: %q", v.blocks[len(v.blocks)-1])
	}
	snap := s.Snapshot()
	if snap.CurrentRow != 0 || snap.Rows[0][0].Char != "" {
		t.Errorf("grid not cleared: %+v", snap)
	}
}

func TestSampleRequest(t *testing.T) {
	var dict candidate.List
	for i := 0; i < 600; i++ {
		dict = append(dict, fmt.Sprintf("w%04d", i))
	}
	rec := &fakeRecorder{}
	s := New(dict, Options{Recorder: rec})
	s.SampleRequest()
	got := s.Candidates()
	if len(got) != candidate.SampleSize || got[0] != "w0000" || got[499] != "w0499" {
		t.Errorf("sample = %d words, first %q", len(got), got[0])
	}
	if len(rec.searches) != 1 || rec.searches[0].Kind != KindSample {
		t.Errorf("recorded = %+v", rec.searches)
	}
}

func TestSelectRowAndJudge(t *testing.T) {
	s := New(fruit, Options{Rows: 3})
	s.SelectRow(2)
	press(s, "crane")
	s.Judge(2, "grape")
	snap := s.Snapshot()
	if snap.CurrentRow != 2 {
		t.Errorf("cursor = %d, want 2", snap.CurrentRow)
	}
	want := []grid.Classification{grid.Missing, grid.InPlace, grid.InPlace, grid.Missing, grid.InPlace}
	for c, w := range want {
		if snap.Rows[2][c].Classification != int(w) {
			t.Errorf("col %d = %d, want %d", c, snap.Rows[2][c].Classification, w)
		}
	}
}

func TestCandidatesIsACopy(t *testing.T) {
	s := New(fruit, Options{})
	s.SampleRequest()
	got := s.Candidates()
	got[0] = "XXXXX"
	if s.Candidates()[0] == "XXXXX" {
		t.Error("Candidates exposes internal slice")
	}
}

func TestControlKeysIgnored(t *testing.T) {
	s := New(fruit, Options{})
	press(s, "ab")
	for _, k := range []string{"\x00", "\t", "\n", "\x7f"} {
		s.KeyPressed(k)
	}
	row := s.Snapshot().Rows[0]
	if row[0].Char != "a" || row[1].Char != "b" || row[2].Char != "" {
		t.Errorf("row 0 = %+v, want [a b]", row)
	}
}
