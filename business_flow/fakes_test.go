package businessflow

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/amirphl/cvm-forms/models"
	"gorm.io/gorm"
)

// memorySubmissionRepo is an in-memory FormSubmissionRepository enforcing the
// same uniqueness rules as the database schema
type memorySubmissionRepo struct {
	mu      sync.Mutex
	rows    []*models.FormSubmission
	nextID  uint
	saveErr error
}

func newMemorySubmissionRepo() *memorySubmissionRepo {
	return &memorySubmissionRepo{}
}

func (r *memorySubmissionRepo) ByID(ctx context.Context, id uint) (*models.FormSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.ID == id {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memorySubmissionRepo) ByUserID(ctx context.Context, userID string) (*models.FormSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.UserID == userID {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memorySubmissionRepo) ByFilter(ctx context.Context, filter models.FormSubmissionFilter, orderBy string, limit, offset int) ([]*models.FormSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*models.FormSubmission
	for _, row := range r.rows {
		if matches(row, filter) {
			cp := *row
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].SubmissionDate.Equal(out[j].SubmissionDate) {
			return out[i].SubmissionDate.After(out[j].SubmissionDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *memorySubmissionRepo) Save(ctx context.Context, entity *models.FormSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	for _, row := range r.rows {
		if row.Email == entity.Email || row.Mobile == entity.Mobile || row.UserID == entity.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	entity.ID = r.nextID
	cp := *entity
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *memorySubmissionRepo) Count(ctx context.Context, filter models.FormSubmissionFilter) (int64, error) {
	rows, _ := r.ByFilter(ctx, filter, "", 0, 0)
	return int64(len(rows)), nil
}

func (r *memorySubmissionRepo) Exists(ctx context.Context, filter models.FormSubmissionFilter) (bool, error) {
	n, _ := r.Count(ctx, filter)
	return n > 0, nil
}

func (r *memorySubmissionRepo) ExistsByEmailOrMobile(ctx context.Context, email, mobile string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if strings.EqualFold(row.Email, email) || row.Mobile == mobile {
			return true, nil
		}
	}
	return false, nil
}

func (r *memorySubmissionRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, row := range r.rows {
		if !row.SubmissionDate.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *memorySubmissionRepo) TopDistricts(ctx context.Context, limit int) ([]models.DistrictCount, error) {
	r.mu.Lock()
	counts := map[string]int64{}
	for _, row := range r.rows {
		counts[row.NativeDistrict]++
	}
	r.mu.Unlock()

	out := make([]models.DistrictCount, 0, len(counts))
	for d, c := range counts {
		out = append(out, models.DistrictCount{District: d, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].District < out[j].District
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// seed stores a row directly, bypassing the flow
func (r *memorySubmissionRepo) seed(district string, submittedAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.rows = append(r.rows, &models.FormSubmission{
		ID:             r.nextID,
		UserID:         fmt.Sprintf("SEED%04d", r.nextID),
		NativeDistrict: district,
		Email:          fmt.Sprintf("seed.%d@seed.test", r.nextID),
		Mobile:         fmt.Sprintf("0%09d", r.nextID),
		SubmissionDate: submittedAt,
	})
}

func matches(row *models.FormSubmission, f models.FormSubmissionFilter) bool {
	contains := func(field string, needle *string) bool {
		return needle == nil || strings.Contains(strings.ToLower(field), strings.ToLower(*needle))
	}
	return contains(row.NativeDistrict, f.District) && contains(row.AssemblyConstituency, f.Constituency)
}

// memoryCounterRepo is an in-memory SequenceCounterRepository
type memoryCounterRepo struct {
	mu       sync.Mutex
	counters map[string]int64
	calls    int
	err      error
}

func newMemoryCounterRepo() *memoryCounterRepo {
	return &memoryCounterRepo{counters: map[string]int64{}}
}

func (r *memoryCounterRepo) Increment(ctx context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return 0, r.err
	}
	r.counters[name]++
	return r.counters[name], nil
}

func (r *memoryCounterRepo) Current(ctx context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counters[name], nil
}

func (r *memoryCounterRepo) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// passThroughTransactor runs fn on the caller's context
type passThroughTransactor struct{}

func (passThroughTransactor) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
