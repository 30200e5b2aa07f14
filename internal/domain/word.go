package domain

import "strings"

// WordPair is an immutable foreign/native term association.
// Foreign is the term the player types, Native is the prompt shown on the bubble.
type WordPair struct {
	Foreign string
	Native  string
}

// Answer returns the case-folded term a typed input is compared against
func (p WordPair) Answer() string {
	return NormalizeAnswer(p.Foreign)
}

// WordBank is a named, ordered collection of word pairs
type WordBank struct {
	Key   string
	Name  string
	Words []WordPair
}

// Len returns number of pairs in the bank
func (b WordBank) Len() int {
	return len(b.Words)
}

// NormalizeAnswer trims surrounding whitespace and case-folds
func NormalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
