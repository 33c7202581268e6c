package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirphl/cvm-forms/models"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// FormSubmissionRepositoryImpl implements FormSubmissionRepository interface
type FormSubmissionRepositoryImpl struct {
	*BaseRepository[models.FormSubmission, models.FormSubmissionFilter]
}

// NewFormSubmissionRepository creates a new form submission repository
func NewFormSubmissionRepository(db *gorm.DB) FormSubmissionRepository {
	return &FormSubmissionRepositoryImpl{
		BaseRepository: NewBaseRepository[models.FormSubmission, models.FormSubmissionFilter](db),
	}
}

// ByUserID retrieves a submission by its generated identifier
func (r *FormSubmissionRepositoryImpl) ByUserID(ctx context.Context, userID string) (*models.FormSubmission, error) {
	rows, err := r.ByFilter(ctx, models.FormSubmissionFilter{UserID: &userID}, "", 1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to find submission by user id: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// ExistsByEmailOrMobile reports whether any stored submission shares the email or the mobile
func (r *FormSubmissionRepositoryImpl) ExistsByEmailOrMobile(ctx context.Context, email, mobile string) (bool, error) {
	db := r.getDB(ctx)

	var row models.FormSubmission
	err := db.Model(&models.FormSubmission{}).
		Select("id").
		Where("email = ? OR mobile = ?", email, mobile).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check duplicate submission: %w", err)
	}
	return true, nil
}

// CountSince counts submissions with submission_date at or after since
func (r *FormSubmissionRepositoryImpl) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return r.Count(ctx, models.FormSubmissionFilter{SubmittedAfter: &since})
}

// TopDistricts groups submissions by native district, largest first
func (r *FormSubmissionRepositoryImpl) TopDistricts(ctx context.Context, limit int) ([]models.DistrictCount, error) {
	db := r.getDB(ctx)

	query := db.Model(&models.FormSubmission{}).
		Select("native_district AS district, COUNT(*) AS count").
		Group("native_district").
		Order("count DESC, district ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []models.DistrictCount
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate districts: %w", err)
	}
	return rows, nil
}

// applyFilter applies filter criteria to a GORM query
func (r *FormSubmissionRepositoryImpl) applyFilter(query *gorm.DB, filter models.FormSubmissionFilter) *gorm.DB {
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Email != nil {
		query = query.Where("email = ?", *filter.Email)
	}
	if filter.Mobile != nil {
		query = query.Where("mobile = ?", *filter.Mobile)
	}
	if filter.District != nil && *filter.District != "" {
		query = query.Where("native_district ILIKE ?", containsPattern(*filter.District))
	}
	if filter.Constituency != nil && *filter.Constituency != "" {
		query = query.Where("assembly_constituency ILIKE ?", containsPattern(*filter.Constituency))
	}
	if filter.SubmittedAfter != nil {
		query = query.Where("submission_date >= ?", *filter.SubmittedAfter)
	}
	if filter.SubmittedBefore != nil {
		query = query.Where("submission_date < ?", *filter.SubmittedBefore)
	}
	return query
}

// ByFilter retrieves submissions based on filter criteria, newest first by default
func (r *FormSubmissionRepositoryImpl) ByFilter(ctx context.Context, filter models.FormSubmissionFilter, orderBy string, limit, offset int) ([]*models.FormSubmission, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.FormSubmission{})

	query = r.applyFilter(query, filter)

	if orderBy == "" {
		orderBy = "submission_date DESC, id DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.FormSubmission
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns number of submissions matching filter
func (r *FormSubmissionRepositoryImpl) Count(ctx context.Context, filter models.FormSubmissionFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.FormSubmission{})
	query = r.applyFilter(query, filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any submission matches the filter
func (r *FormSubmissionRepositoryImpl) Exists(ctx context.Context, filter models.FormSubmissionFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// containsPattern turns free text into an ILIKE substring pattern with wildcards escaped
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
