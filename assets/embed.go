// Package assets bundles the default dictionary into the binary.
package assets

import (
	_ "embed"
)

//go:embed nouns.txt
var nouns []byte

// Dictionary returns the embedded default word list, one word per line.
// Callers must not modify the returned slice.
func Dictionary() []byte {
	return nouns
}
