// Package repository provides data access layer implementations and interfaces for database operations
package repository

//go:generate mockgen -destination=mocks/interfaces_mock.go -package=mocks github.com/amirphl/cvm-forms/repository Transactor,SequenceCounterRepository,FormSubmissionRepository,AdminRepository

import (
	"context"
	"time"

	"github.com/amirphl/cvm-forms/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	Count(ctx context.Context, filter F) (int64, error)
	Exists(ctx context.Context, filter F) (bool, error)
}

// Transactor runs fn inside a single unit of work; repositories called with the
// context passed to fn participate in it
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}

// SequenceCounterRepository defines operations for named monotonic counters
type SequenceCounterRepository interface {
	// Increment atomically bumps the counter named name by one, creating it at 1
	// when absent, and returns the post-increment value
	Increment(ctx context.Context, name string) (int64, error)
	// Current returns the last allocated value, or 0 when the counter does not exist yet
	Current(ctx context.Context, name string) (int64, error)
}

// FormSubmissionRepository defines operations for form submissions
type FormSubmissionRepository interface {
	Repository[models.FormSubmission, models.FormSubmissionFilter]
	ByUserID(ctx context.Context, userID string) (*models.FormSubmission, error)
	ExistsByEmailOrMobile(ctx context.Context, email, mobile string) (bool, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	TopDistricts(ctx context.Context, limit int) ([]models.DistrictCount, error)
}

// AdminRepository defines operations for admin accounts
type AdminRepository interface {
	Repository[models.Admin, models.AdminFilter]
	ByUsername(ctx context.Context, username string) (*models.Admin, error)
	TouchLastLogin(ctx context.Context, id uint, at time.Time) error
}
