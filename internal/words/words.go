// internal/words/words.go
//
// Dictionary source for the candidate search.
//
// Responsibilities:
//   - Load the dictionary from an environment-provided file or fall back to the
//     embedded default list.
//   - Keep the raw bytes immutable for the process lifetime.
//   - Expose a lazy, line-by-line view (Lines) that the filter scans on demand.
//
// Format:
//   - One word per line, UTF-8 encoded.
//   - Lines are trimmed; blank lines are ignored.
//   - Lines that are not valid UTF-8 are skipped and counted, never fatal.

package words

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"iter"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/wordle/apps/go-helper/assets"
)

// ErrEmpty is returned when a dictionary holds no usable lines.
var ErrEmpty = errors.New("words: dictionary is empty")

// Source is an immutable word list backed by its raw bytes.
// Safe for concurrent readers: nothing mutates it after construction.
type Source struct {
	raw     []byte
	count   int // usable lines
	skipped int // lines rejected as malformed UTF-8
}

// Load reads the dictionary from path, or from the embedded list when path is empty.
func Load(path string) (*Source, error) {
	if path == "" {
		return NewSource(assets.Dictionary())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	return NewSource(b)
}

// NewSource wraps raw dictionary bytes.
// The slice is copied so later writes by the caller cannot leak in.
func NewSource(raw []byte) (*Source, error) {
	s := &Source{raw: bytes.Clone(raw)}
	sc := newScanner(s.raw)
	for sc.Scan() {
		line := sc.Bytes()
		if !utf8.Valid(line) {
			s.skipped++
			continue
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		s.count++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan dictionary: %w", err)
	}
	if s.count == 0 {
		return nil, ErrEmpty
	}
	return s, nil
}

// Lines yields every usable word in dictionary order.
// Each call starts a fresh scan over the raw bytes.
func (s *Source) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		sc := newScanner(s.raw)
		for sc.Scan() {
			line := sc.Bytes()
			if !utf8.Valid(line) {
				continue
			}
			w := strings.TrimSpace(string(line))
			if w == "" {
				continue
			}
			if !yield(w) {
				return
			}
		}
	}
}

// Len returns the number of usable words.
func (s *Source) Len() int { return s.count }

// Skipped returns how many malformed lines were ignored at load.
func (s *Source) Skipped() int { return s.skipped }

func newScanner(b []byte) *bufio.Scanner {
	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	return sc
}
