package words

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Diacritic letter variants folded to their base letter before matching.
var diacriticFolds = map[rune]rune{
	'ё': 'е',
}

// Folder normalizes words and letters for comparison: each letter is
// lowercased, then diacritic-folded. Folding is letter for letter, so a word
// keeps its length. A Folder is not safe for concurrent use; create one per
// scan.
type Folder struct {
	t transform.Transformer
}

// NewFolder returns a ready Folder.
func NewFolder() *Folder {
	return &Folder{t: runes.Map(foldRune)}
}

// String returns the normalized form of s.
func (f *Folder) String(s string) string {
	out, _, err := transform.String(f.t, s)
	if err != nil {
		return s
	}
	return out
}

// Rune returns the normalized form of a single letter.
func (f *Folder) Rune(r rune) rune { return foldRune(r) }

// Normalize is a one-shot helper around Folder.String.
func Normalize(s string) string { return NewFolder().String(s) }

func foldRune(r rune) rune {
	r = unicode.ToLower(r)
	if base, ok := diacriticFolds[r]; ok {
		return base
	}
	return r
}
