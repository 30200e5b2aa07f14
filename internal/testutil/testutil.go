package testutil

import (
	"fmt"

	"wordfall/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestPair creates a word pair
func NewTestPair(foreign, native string) domain.WordPair {
	return domain.WordPair{Foreign: foreign, Native: native}
}

// NewTestBank creates a bank of n distinct pairs: word1/詞1, word2/詞2, ...
func NewTestBank(key string, n int) domain.WordBank {
	words := make([]domain.WordPair, n)
	for i := range words {
		words[i] = NewTestPair(fmt.Sprintf("word%d", i+1), fmt.Sprintf("詞%d", i+1))
	}
	return domain.WordBank{Key: key, Name: "Test " + key, Words: words}
}
