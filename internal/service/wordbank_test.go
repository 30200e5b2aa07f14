package service

import (
	"fmt"
	"testing"

	"wordfall/internal/domain"
	"wordfall/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestWordBankService_Banks(t *testing.T) {
	tests := []struct {
		name          string
		first         []domain.WordBank
		second        []domain.WordBank
		secondError   error
		expectedKeys  []string
		expectedWords map[string]int
		expectedError bool
	}{
		{
			name:          "banks from every repository",
			first:         []domain.WordBank{testutil.NewTestBank("1200", 3), testutil.NewTestBank("2000", 2)},
			second:        []domain.WordBank{testutil.NewTestBank("saved", 4)},
			expectedKeys:  []string{"1200", "2000", "saved"},
			expectedWords: map[string]int{"1200": 3, "2000": 2, "saved": 4},
		},
		{
			name:  "blank and duplicate pairs dropped",
			first: []domain.WordBank{testutil.NewTestBank("1200", 1)},
			second: []domain.WordBank{{
				Key: "saved",
				Words: []domain.WordPair{
					testutil.NewTestPair("hello", "привет"),
					testutil.NewTestPair(" Hello ", "здравствуй"),
					testutil.NewTestPair("", "пусто"),
					testutil.NewTestPair("empty", "  "),
					testutil.NewTestPair("world", "мир"),
				},
			}},
			expectedKeys:  []string{"1200", "saved"},
			expectedWords: map[string]int{"1200": 1, "saved": 2},
		},
		{
			name:          "empty bank omitted",
			first:         []domain.WordBank{testutil.NewTestBank("1200", 2)},
			second:        []domain.WordBank{{Key: "saved"}},
			expectedKeys:  []string{"1200"},
			expectedWords: map[string]int{"1200": 2},
		},
		{
			name:          "duplicate key keeps first",
			first:         []domain.WordBank{testutil.NewTestBank("1200", 2)},
			second:        []domain.WordBank{testutil.NewTestBank("1200", 5)},
			expectedKeys:  []string{"1200"},
			expectedWords: map[string]int{"1200": 2},
		},
		{
			name:          "repository error",
			first:         []domain.WordBank{testutil.NewTestBank("1200", 2)},
			secondError:   fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := new(testutil.MockWordBankRepository)
			first.On("ListBanks").Return(tt.first, nil)

			second := new(testutil.MockWordBankRepository)
			if tt.secondError != nil {
				second.On("ListBanks").Return(nil, tt.secondError)
			} else {
				second.On("ListBanks").Return(tt.second, nil)
			}

			service := NewWordBankService(testutil.NewTestLogger(), first, second)

			banks, err := service.Banks()

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, banks)
			} else {
				assert.NoError(t, err)
				keys := make([]string, 0, len(banks))
				for _, b := range banks {
					keys = append(keys, b.Key)
					assert.Equal(t, tt.expectedWords[b.Key], b.Len(), "bank %s", b.Key)
				}
				assert.Equal(t, tt.expectedKeys, keys)
			}

			first.AssertExpectations(t)
			second.AssertExpectations(t)
		})
	}
}

func TestWordBankService_CleanedTerms(t *testing.T) {
	repo := new(testutil.MockWordBankRepository)
	repo.On("ListBanks").Return([]domain.WordBank{{
		Key:   "saved",
		Words: []domain.WordPair{testutil.NewTestPair("  Apple ", " 蘋果")},
	}}, nil)

	service := NewWordBankService(testutil.NewTestLogger(), repo)

	banks, err := service.Banks()

	assert.NoError(t, err)
	assert.Equal(t, []domain.WordPair{{Foreign: "Apple", Native: "蘋果"}}, banks[0].Words)
	repo.AssertExpectations(t)
}

func TestWordBankService_Bank(t *testing.T) {
	repo := new(testutil.MockWordBankRepository)
	repo.On("ListBanks").Return([]domain.WordBank{testutil.NewTestBank("1200", 3)}, nil)

	service := NewWordBankService(testutil.NewTestLogger(), repo)

	bank, err := service.Bank("1200")
	assert.NoError(t, err)
	assert.Equal(t, 3, bank.Len())

	_, err = service.Bank("9999")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "9999")

	repo.AssertExpectations(t)
}
