package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirphl/cvm-forms/models"
	"gorm.io/gorm"
)

// incrementSequenceSQL is a single-statement find-increment-or-create. Concurrent
// callers serialize on the row lock taken by ON CONFLICT, so no two of them can
// observe the same seq.
const incrementSequenceSQL = `INSERT INTO sequence_counters (name, seq, created_at, updated_at)
VALUES (?, 1, CURRENT_TIMESTAMP AT TIME ZONE 'UTC', CURRENT_TIMESTAMP AT TIME ZONE 'UTC')
ON CONFLICT (name) DO UPDATE
SET seq = sequence_counters.seq + 1, updated_at = EXCLUDED.updated_at
RETURNING seq`

// SequenceCounterRepositoryImpl implements SequenceCounterRepository interface
type SequenceCounterRepositoryImpl struct {
	*BaseRepository[models.SequenceCounter, struct{}]
}

// NewSequenceCounterRepository creates a new sequence counter repository
func NewSequenceCounterRepository(db *gorm.DB) SequenceCounterRepository {
	return &SequenceCounterRepositoryImpl{
		BaseRepository: NewBaseRepository[models.SequenceCounter, struct{}](db),
	}
}

// Increment implements SequenceCounterRepository
func (r *SequenceCounterRepositoryImpl) Increment(ctx context.Context, name string) (int64, error) {
	db := r.getDB(ctx)

	var seq int64
	result := db.Raw(incrementSequenceSQL, name).Scan(&seq)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to increment sequence %q: %w", name, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, fmt.Errorf("failed to increment sequence %q: no row returned", name)
	}

	return seq, nil
}

// Current implements SequenceCounterRepository
func (r *SequenceCounterRepositoryImpl) Current(ctx context.Context, name string) (int64, error) {
	db := r.getDB(ctx)

	var counter models.SequenceCounter
	err := db.Where("name = ?", name).Take(&counter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read sequence %q: %w", name, err)
	}

	return counter.Seq, nil
}
