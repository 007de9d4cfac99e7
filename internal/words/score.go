// internal/words/score.go
//
// Wordle-style evaluation used by the auto-judge:
//   0 = miss (letter not in answer)
//   1 = present (letter in answer, wrong position)
//   2 = hit (letter in correct position)
//
// Standard two-pass scoring:
//   Pass 1: mark exact matches (hits) and count remaining answer letters.
//   Pass 2: for non-hits, mark present while unused letters remain.
//
// Both words are normalized first, and compared letter by letter (not byte by
// byte) so multi-byte alphabets score correctly.

package words

const (
	ScoreMiss    = 0
	ScorePresent = 1
	ScoreHit     = 2
)

// Score compares guess vs. answer and returns one mark per letter.
// Returns nil when the normalized lengths differ.
func Score(guess, answer string) []int {
	f := NewFolder()
	g := []rune(f.String(guess))
	a := []rune(f.String(answer))
	if len(g) != len(a) {
		return nil
	}
	n := len(a)
	out := make([]int, n)

	// Pass 1: hits and frequency counts
	freq := make(map[rune]int, n)
	for i := 0; i < n; i++ {
		if g[i] == a[i] {
			out[i] = ScoreHit
		} else {
			freq[a[i]]++
		}
	}

	// Pass 2: presents where applicable
	for i := 0; i < n; i++ {
		if out[i] == ScoreHit {
			continue
		}
		if freq[g[i]] > 0 {
			out[i] = ScorePresent
			freq[g[i]]--
		}
	}
	return out
}
