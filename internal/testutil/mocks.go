package testutil

import (
	"wordfall/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordBankRepository is a mock for WordBankRepository
type MockWordBankRepository struct {
	mock.Mock
}

func (m *MockWordBankRepository) ListBanks() ([]domain.WordBank, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordBank), args.Error(1)
}
