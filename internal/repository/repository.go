package repository

import (
	"wordfall/internal/domain"
)

// WordBankRepository supplies word banks for the game
type WordBankRepository interface {
	ListBanks() ([]domain.WordBank, error)
}
