package businessflow

import (
	"context"
	"strings"

	"github.com/amirphl/cvm-forms/repository"
)

// SequenceAllocator hands out the next value of a named monotonic counter.
// Two callers never receive the same value for the same name.
type SequenceAllocator interface {
	Next(ctx context.Context, name string) (int64, error)
}

// SequenceAllocatorImpl delegates atomicity to the counter store's increment-and-fetch
type SequenceAllocatorImpl struct {
	counterRepo repository.SequenceCounterRepository
}

// NewSequenceAllocator creates a new sequence allocator
func NewSequenceAllocator(counterRepo repository.SequenceCounterRepository) SequenceAllocator {
	return &SequenceAllocatorImpl{
		counterRepo: counterRepo,
	}
}

// Next returns the post-increment value. No retries are attempted.
func (a *SequenceAllocatorImpl) Next(ctx context.Context, name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, &AllocationError{Sequence: name, Err: ErrInvalidSequenceName}
	}

	seq, err := a.counterRepo.Increment(ctx, name)
	if err != nil {
		sequenceAllocationFailuresTotal.WithLabelValues(name).Inc()
		return 0, &AllocationError{Sequence: name, Err: err}
	}

	return seq, nil
}
