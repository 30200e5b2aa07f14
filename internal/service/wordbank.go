package service

import (
	"fmt"
	"strings"

	"wordfall/internal/domain"
	"wordfall/internal/repository"

	"go.uber.org/zap"
)

// WordBankService gathers playable word banks from every source
type WordBankService struct {
	repos  []repository.WordBankRepository
	logger *zap.Logger
}

// NewWordBankService creates a new word bank service
func NewWordBankService(logger *zap.Logger, repos ...repository.WordBankRepository) *WordBankService {
	return &WordBankService{
		repos:  repos,
		logger: logger,
	}
}

// Banks returns all usable banks in repository order.
// Pairs with a blank term and repeated answers are dropped; banks left empty are omitted.
func (s *WordBankService) Banks() ([]domain.WordBank, error) {
	var banks []domain.WordBank
	seenKeys := make(map[string]bool)

	for _, repo := range s.repos {
		listed, err := repo.ListBanks()
		if err != nil {
			return nil, fmt.Errorf("failed to list word banks: %w", err)
		}

		for _, bank := range listed {
			if seenKeys[bank.Key] {
				s.logger.Warn("Duplicate word bank key, keeping first", zap.String("bank", bank.Key))
				continue
			}

			clean := cleanBank(bank)
			if dropped := bank.Len() - clean.Len(); dropped > 0 {
				s.logger.Info("Dropped unusable word pairs",
					zap.String("bank", bank.Key),
					zap.Int("dropped", dropped),
				)
			}
			if clean.Len() == 0 {
				s.logger.Warn("Word bank has no playable words, skipping", zap.String("bank", bank.Key))
				continue
			}

			seenKeys[bank.Key] = true
			banks = append(banks, clean)
		}
	}

	return banks, nil
}

// Bank returns the bank with the given key
func (s *WordBankService) Bank(key string) (domain.WordBank, error) {
	banks, err := s.Banks()
	if err != nil {
		return domain.WordBank{}, err
	}
	for _, b := range banks {
		if b.Key == key {
			return b, nil
		}
	}
	return domain.WordBank{}, fmt.Errorf("word bank %q not found", key)
}

// cleanBank trims terms and keeps the first pair for each answer
func cleanBank(bank domain.WordBank) domain.WordBank {
	out := domain.WordBank{
		Key:   bank.Key,
		Name:  bank.Name,
		Words: make([]domain.WordPair, 0, len(bank.Words)),
	}

	seen := make(map[string]bool, len(bank.Words))
	for _, w := range bank.Words {
		pair := domain.WordPair{
			Foreign: strings.TrimSpace(w.Foreign),
			Native:  strings.TrimSpace(w.Native),
		}
		if pair.Foreign == "" || pair.Native == "" {
			continue
		}
		answer := pair.Answer()
		if seen[answer] {
			continue
		}
		seen[answer] = true
		out.Words = append(out.Words, pair)
	}
	return out
}
