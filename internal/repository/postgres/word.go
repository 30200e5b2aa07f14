package postgres

import (
	"database/sql"
	"fmt"

	"wordfall/internal/domain"
)

// SavedBankKey is the key of the bank built from the player's vocabulary
const SavedBankKey = "saved"

// WordRepo reads the player's saved vocabulary and implements repository.WordBankRepository
type WordRepo struct {
	db     *sql.DB
	userID int64
}

// NewWordRepo creates a new word repository for one player
func NewWordRepo(db *sql.DB, userID int64) *WordRepo {
	return &WordRepo{db: db, userID: userID}
}

// GetPlayableWords returns the user's words in the order they were saved.
// Excludes words that are hidden forever or hidden until a future date.
func (r *WordRepo) GetPlayableWords(userID int64) ([]domain.WordPair, error) {
	query := `
		SELECT word, translation
		FROM words
		WHERE user_id = $1
			AND (hidden_forever = FALSE OR hidden_forever IS NULL)
			AND (hidden_until IS NULL OR hidden_until <= NOW())
		ORDER BY created_at
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.WordPair
	for rows.Next() {
		var p domain.WordPair
		if err := rows.Scan(&p.Foreign, &p.Native); err != nil {
			return nil, err
		}
		words = append(words, p)
	}

	return words, rows.Err()
}

// ListBanks returns a single bank holding the player's playable words
func (r *WordRepo) ListBanks() ([]domain.WordBank, error) {
	words, err := r.GetPlayableWords(r.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved words: %w", err)
	}

	return []domain.WordBank{{
		Key:   SavedBankKey,
		Name:  "My saved words",
		Words: words,
	}}, nil
}
