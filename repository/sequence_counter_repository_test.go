package repository_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/amirphl/cvm-forms/repository"
	testingutil "github.com/amirphl/cvm-forms/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceCounterRepository(t *testing.T) {
	testDB := testingutil.RequireTestDB(t)
	repo := repository.NewSequenceCounterRepository(testDB.DB)
	ctx := testingutil.CreateTestContext()

	t.Run("CreatesCounterOnFirstIncrement", func(t *testing.T) {
		current, err := repo.Current(ctx, "fresh")
		require.NoError(t, err)
		assert.Zero(t, current)

		seq, err := repo.Increment(ctx, "fresh")
		require.NoError(t, err)
		assert.Equal(t, int64(1), seq)

		seq, err = repo.Increment(ctx, "fresh")
		require.NoError(t, err)
		assert.Equal(t, int64(2), seq)

		current, err = repo.Current(ctx, "fresh")
		require.NoError(t, err)
		assert.Equal(t, int64(2), current)
	})

	t.Run("ConcurrentIncrementsAreDistinctAndGapless", func(t *testing.T) {
		const n = 40

		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			seqs []int64
		)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				seq, err := repo.Increment(ctx, "concurrent")
				if !assert.NoError(t, err) {
					return
				}
				mu.Lock()
				seqs = append(seqs, seq)
				mu.Unlock()
			}()
		}
		wg.Wait()

		require.Len(t, seqs, n)
		sort.Slice(seqs, func(i, j int) bool { return seqs[i] < seqs[j] })
		for i, seq := range seqs {
			assert.Equal(t, int64(i+1), seq)
		}
	})

	t.Run("RolledBackIncrementIsNotConsumed", func(t *testing.T) {
		_, err := repo.Increment(ctx, "rollback")
		require.NoError(t, err)

		boom := errors.New("insert failed")
		err = repository.NewTransactor(testDB.DB).WithTransaction(ctx, func(txCtx context.Context) error {
			seq, err := repo.Increment(txCtx, "rollback")
			require.NoError(t, err)
			assert.Equal(t, int64(2), seq)
			return boom
		})
		require.ErrorIs(t, err, boom)

		current, err := repo.Current(ctx, "rollback")
		require.NoError(t, err)
		assert.Equal(t, int64(1), current)
	})
}
