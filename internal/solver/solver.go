// internal/solver/solver.go
//
// Top-level core that the UI layer drives.
// Responsibilities:
//   - Translate UI events (Events) into grid mutations.
//   - Recompute the candidate list on "Enter", or sample on request.
//   - Push grid and candidate updates to an optional View.
//   - Report each search to an optional Recorder.
//
// A Session is single-threaded: callers deliver one event at a time.
package solver

import (
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-helper/internal/candidate"
	"github.com/robalobadob/wordle/apps/go-helper/internal/constraint"
	"github.com/robalobadob/wordle/apps/go-helper/internal/grid"
)

// Reserved key tokens.
const (
	KeyBackspace      = "⟵"
	KeyBackspaceAlias = "Backspace"
	KeyEnter          = "Enter"
)

// Search kinds reported to a Recorder.
const (
	KindSearch = "search"
	KindSample = "sample"
)

// Events is the command surface the UI layer calls, one method per event.
type Events interface {
	KeyPressed(key string)
	LetterClassificationChanged(row, col, classification int)
	ClearAll()
	SampleRequest()
}

// View receives the core's outputs.
type View interface {
	GridChanged(s Snapshot)
	CandidatesChanged(block string)
}

// Recorder is told about every candidate query.
type Recorder interface {
	Searched(s Search)
}

// Search describes one candidate query.
type Search struct {
	Kind        string
	Constraints string
	Matches     int
}

// Options configures a Session. Zero values use the grid defaults.
type Options struct {
	Rows     int
	Cols     int
	View     View
	Recorder Recorder
}

// Session owns one grid and the latest candidate list.
type Session struct {
	grid       *grid.Grid
	dict       candidate.Lines
	view       View
	rec        Recorder
	candidates []string
}

var _ Events = (*Session)(nil)

// New constructs a Session over a shared, read-only dictionary.
func New(dict candidate.Lines, opts Options) *Session {
	return &Session{
		grid:       grid.New(opts.Rows, opts.Cols),
		dict:       dict,
		view:       opts.View,
		rec:        opts.Recorder,
		candidates: []string{},
	}
}

// KeyPressed handles backspace, Enter, and single-character input.
// Any other multi-character token, and any control character, is ignored.
func (s *Session) KeyPressed(key string) {
	switch key {
	case KeyBackspace, KeyBackspaceAlias:
		s.grid.Backspace()
	case KeyEnter:
		s.Recompute()
		return
	default:
		r, size := utf8.DecodeRuneInString(key)
		if r == utf8.RuneError || size != len(key) || unicode.IsControl(r) {
			log.Debug().Str("key", key).Msg("ignored key")
			return
		}
		s.grid.Input(r)
	}
	s.gridChanged()
}

// LetterClassificationChanged toggles the classification of one letter.
func (s *Session) LetterClassificationChanged(row, col, classification int) {
	s.grid.Classify(row, col, grid.ParseClassification(classification))
	s.gridChanged()
}

// ClearAll empties the grid and the displayed candidates.
func (s *Session) ClearAll() {
	s.grid.ClearAll()
	s.candidates = []string{}
	s.gridChanged()
	s.candidatesChanged()
}

// SampleRequest shows an unfiltered sample of words of the right length.
func (s *Session) SampleRequest() {
	s.candidates = candidate.Sample(s.dict, s.grid.Cols())
	s.record(KindSample, "", len(s.candidates))
	s.candidatesChanged()
}

// SelectRow moves the input cursor.
func (s *Session) SelectRow(row int) {
	s.grid.SelectRow(row)
	s.gridChanged()
}

// Judge classifies a full row against a known answer.
func (s *Session) Judge(row int, answer string) {
	s.grid.Judge(row, answer)
	s.gridChanged()
}

// Recompute aggregates the grid and filters the dictionary.
// A grid with no classified letters yields an empty list.
func (s *Session) Recompute() []string {
	set := constraint.Aggregate(s.grid)
	if set.IsEmpty() {
		s.candidates = []string{}
	} else {
		s.candidates = candidate.Filter(s.dict, s.grid.Cols(), set)
	}
	log.Debug().Str("constraints", set.String()).Int("matches", len(s.candidates)).Msg("recompute")
	s.record(KindSearch, set.String(), len(s.candidates))
	s.candidatesChanged()
	return s.Candidates()
}

// Constraints returns the constraint set for the current grid.
func (s *Session) Constraints() *constraint.Set { return constraint.Aggregate(s.grid) }

// Candidates returns a copy of the latest candidate or sample list.
func (s *Session) Candidates() []string {
	out := make([]string, len(s.candidates))
	copy(out, s.candidates)
	return out
}

// Block returns the latest list as one newline-joined block.
func (s *Session) Block() string { return candidate.Join(s.candidates) }

// Snapshot returns the render data for the grid.
func (s *Session) Snapshot() Snapshot { return snapshotOf(s.grid) }

func (s *Session) gridChanged() {
	if s.view != nil {
		s.view.GridChanged(s.Snapshot())
	}
}

func (s *Session) candidatesChanged() {
	if s.view != nil {
		s.view.CandidatesChanged(s.Block())
	}
}

func (s *Session) record(kind, constraints string, matches int) {
	if s.rec != nil {
		s.rec.Searched(Search{Kind: kind, Constraints: constraints, Matches: matches})
	}
}
