package businessflow

//go:generate mockgen -source=form_flow.go -destination=mocks/form_flow_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/amirphl/cvm-forms/app/dto"
	"github.com/amirphl/cvm-forms/models"
	"github.com/amirphl/cvm-forms/repository"
	"github.com/amirphl/cvm-forms/utils"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	statsCacheKey      = "forms:stats:summary"
	statsGenerationKey = "forms:stats:generation"
)

// FormFlow handles form submission, lookup and aggregate reporting
type FormFlow interface {
	Submit(ctx context.Context, req *dto.FormSubmissionRequest, metadata *ClientMetadata) (*dto.FormSubmissionResponse, error)
	List(ctx context.Context, filter dto.ListFormSubmissionsFilter) ([]dto.FormSubmissionDTO, error)
	Get(ctx context.Context, userID string) (*dto.FormSubmissionDTO, error)
	Stats(ctx context.Context) (*dto.FormStatsResponse, error)
}

// FormFlowConfig holds identifier and caching settings for the form flow
type FormFlowConfig struct {
	IDPrefix      string
	SequenceName  string
	StatsCacheTTL time.Duration
	CachePrefix   string
}

// FormFlowImpl implements the form business flow
type FormFlowImpl struct {
	submissionRepo repository.FormSubmissionRepository
	allocator      SequenceAllocator
	tx             repository.Transactor
	rc             *redis.Client
	cfg            FormFlowConfig
	now            utils.Clock
}

// NewFormFlow creates a new form flow instance. rc may be nil, which disables stats caching.
func NewFormFlow(
	submissionRepo repository.FormSubmissionRepository,
	allocator SequenceAllocator,
	tx repository.Transactor,
	rc *redis.Client,
	cfg FormFlowConfig,
) FormFlow {
	if cfg.IDPrefix == "" {
		cfg.IDPrefix = utils.DefaultUserIDPrefix
	}
	if cfg.SequenceName == "" {
		cfg.SequenceName = utils.DefaultSequenceName
	}
	return &FormFlowImpl{
		submissionRepo: submissionRepo,
		allocator:      allocator,
		tx:             tx,
		rc:             rc,
		cfg:            cfg,
		now:            utils.SystemClock,
	}
}

// Submit checks for duplicates, mints the identifier and persists the submission.
// Allocation and insert share one transaction so a failed insert leaves neither a
// record nor a consumed counter value behind.
func (f *FormFlowImpl) Submit(ctx context.Context, req *dto.FormSubmissionRequest, metadata *ClientMetadata) (*dto.FormSubmissionResponse, error) {
	if req == nil {
		return nil, NewBusinessError("FORM_VALIDATION_FAILED", "Form validation failed", ErrNilRequest)
	}

	submission, err := f.buildSubmission(req, metadata)
	if err != nil {
		return nil, NewBusinessError("FORM_VALIDATION_FAILED", "Form validation failed", errors.Join(ErrInvalidSubmission, err))
	}

	exists, err := f.submissionRepo.ExistsByEmailOrMobile(ctx, submission.Email, submission.Mobile)
	if err != nil {
		return nil, NewBusinessError("DUPLICATE_CHECK_FAILED", "Failed to check for duplicate submission", errors.Join(ErrPersistenceFailed, err))
	}
	if exists {
		formDuplicateSubmissionsTotal.Inc()
		return nil, NewBusinessError("DUPLICATE_SUBMISSION", "Duplicate submission", ErrDuplicateSubmission)
	}

	err = f.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		seq, err := f.allocator.Next(txCtx, f.cfg.SequenceName)
		if err != nil {
			return err
		}

		now := f.now()
		submission.UserID = utils.FormatUserID(f.cfg.IDPrefix, now.Year(), seq)
		submission.SubmissionDate = now

		if err := f.submissionRepo.Save(txCtx, submission); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateSubmission
			}
			return errors.Join(ErrPersistenceFailed, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case IsDuplicateSubmission(err):
			formDuplicateSubmissionsTotal.Inc()
			return nil, NewBusinessError("DUPLICATE_SUBMISSION", "Duplicate submission", err)
		case IsSequenceAllocationFailed(err):
			return nil, NewBusinessError("SEQUENCE_ALLOCATION_FAILED", "Failed to allocate form identifier", err)
		default:
			if !IsPersistenceFailed(err) {
				err = errors.Join(ErrPersistenceFailed, err)
			}
			return nil, NewBusinessError("FORM_SUBMISSION_FAILED", "Form submission failed", err)
		}
	}

	formSubmissionsTotal.Inc()
	f.invalidateStats(ctx)

	requestID := ""
	if metadata != nil {
		requestID = metadata.RequestID
	}
	log.Printf(`{"level":"info","event":"form_submitted","user_id":"%s","request_id":"%s"}`, submission.UserID, requestID)

	return &dto.FormSubmissionResponse{
		Message:        "Form submitted successfully",
		ID:             submission.UserID,
		SubmissionDate: submission.SubmissionDate,
	}, nil
}

// List returns submissions matching the optional district/constituency filters, newest first
func (f *FormFlowImpl) List(ctx context.Context, filter dto.ListFormSubmissionsFilter) ([]dto.FormSubmissionDTO, error) {
	rows, err := f.submissionRepo.ByFilter(ctx, toSubmissionFilter(filter), "", 0, 0)
	if err != nil {
		return nil, NewBusinessError("FETCH_FORMS_FAILED", "Failed to fetch forms", errors.Join(ErrPersistenceFailed, err))
	}

	out := make([]dto.FormSubmissionDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToFormSubmissionDTO(*r))
	}
	return out, nil
}

// Get returns one submission by its generated identifier
func (f *FormFlowImpl) Get(ctx context.Context, userID string) (*dto.FormSubmissionDTO, error) {
	row, err := f.submissionRepo.ByUserID(ctx, userID)
	if err != nil {
		return nil, NewBusinessError("FETCH_FORM_FAILED", "Failed to fetch form", errors.Join(ErrPersistenceFailed, err))
	}
	if row == nil {
		return nil, NewBusinessError("FORM_NOT_FOUND", "Form not found", ErrSubmissionNotFound)
	}

	res := ToFormSubmissionDTO(*row)
	return &res, nil
}

// Stats returns total, today's and per-district counts. "Today" starts at local
// midnight at query time.
func (f *FormFlowImpl) Stats(ctx context.Context) (*dto.FormStatsResponse, error) {
	now := f.now()
	key := f.statsKey(ctx, now)
	if cached := f.cachedStats(ctx, key); cached != nil {
		return cached, nil
	}

	var (
		total     int64
		today     int64
		districts []models.DistrictCount
	)

	// The three aggregates are independent reads
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = f.submissionRepo.Count(gctx, models.FormSubmissionFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		today, err = f.submissionRepo.CountSince(gctx, utils.StartOfDay(now))
		return err
	})
	g.Go(func() error {
		var err error
		districts, err = f.submissionRepo.TopDistricts(gctx, utils.TopDistrictsLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, NewBusinessError("FETCH_STATS_FAILED", "Failed to fetch form statistics", errors.Join(ErrPersistenceFailed, err))
	}

	res := &dto.FormStatsResponse{
		TotalSubmissions: total,
		TodaySubmissions: today,
		TopDistricts:     ToDistrictCountDTOs(districts),
	}
	f.storeStats(ctx, key, res)

	return res, nil
}

func (f *FormFlowImpl) buildSubmission(req *dto.FormSubmissionRequest, metadata *ClientMetadata) (*models.FormSubmission, error) {
	dob, err := utils.ParseDate(strings.TrimSpace(req.DOB))
	if err != nil {
		return nil, fmt.Errorf("invalid date of birth: %w", err)
	}

	s := &models.FormSubmission{
		UUID:                 uuid.New(),
		Name:                 strings.TrimSpace(req.Name),
		Gender:               strings.TrimSpace(req.Gender),
		DOB:                  dob,
		GuardianName:         strings.TrimSpace(req.GuardianName),
		PermanentAddress:     strings.TrimSpace(req.PermanentAddress),
		NativeDistrict:       strings.TrimSpace(req.NativeDistrict),
		AssemblyConstituency: strings.TrimSpace(req.AssemblyConstituency),
		Qualification:        strings.TrimSpace(req.Qualification),
		YearOfCompletion:     req.YearOfCompletion,
		InstitutionName:      strings.TrimSpace(req.InstitutionName),
		InstitutionLocation:  strings.TrimSpace(req.InstitutionLocation),
		Mobile:               strings.TrimSpace(req.Mobile),
		Email:                strings.ToLower(strings.TrimSpace(req.Email)),
	}
	if metadata != nil {
		s.IPAddress = metadata.IPAddress
		s.UserAgent = metadata.UserAgent
	}
	return s, nil
}

func toSubmissionFilter(filter dto.ListFormSubmissionsFilter) models.FormSubmissionFilter {
	var out models.FormSubmissionFilter
	if v := strings.TrimSpace(filter.District); v != "" {
		out.District = &v
	}
	if v := strings.TrimSpace(filter.Constituency); v != "" {
		out.Constituency = &v
	}
	return out
}

// statsKey scopes cached stats to the local day and to the submission generation
// read before the aggregates. A result computed before a submission committed is
// stored under the previous generation and never served again. An empty key
// means caching is off for this call.
func (f *FormFlowImpl) statsKey(ctx context.Context, now time.Time) string {
	if f.rc == nil || f.cfg.StatsCacheTTL <= 0 {
		return ""
	}
	gen, err := f.rc.Get(ctx, f.cfg.CachePrefix+statsGenerationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		log.Printf(`{"level":"warn","event":"stats_cache_generation_failed","error":%q}`, err.Error())
		return ""
	}
	return fmt.Sprintf("%s%s:%s:%d", f.cfg.CachePrefix, statsCacheKey, utils.StartOfDay(now).Format("20060102"), gen)
}

func (f *FormFlowImpl) cachedStats(ctx context.Context, key string) *dto.FormStatsResponse {
	if key == "" {
		return nil
	}
	bs, err := f.rc.Get(ctx, key).Bytes()
	if err != nil || len(bs) == 0 {
		return nil
	}
	var res dto.FormStatsResponse
	if err := json.Unmarshal(bs, &res); err != nil {
		return nil
	}
	return &res
}

func (f *FormFlowImpl) storeStats(ctx context.Context, key string, res *dto.FormStatsResponse) {
	if key == "" {
		return
	}
	bs, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := f.rc.Set(ctx, key, bs, f.cfg.StatsCacheTTL).Err(); err != nil {
		log.Printf(`{"level":"warn","event":"stats_cache_set_failed","error":%q}`, err.Error())
	}
}

// invalidateStats moves readers to a new generation; entries of older
// generations expire on their own TTL
func (f *FormFlowImpl) invalidateStats(ctx context.Context) {
	if f.rc == nil {
		return
	}
	if err := f.rc.Incr(ctx, f.cfg.CachePrefix+statsGenerationKey).Err(); err != nil {
		log.Printf(`{"level":"warn","event":"stats_cache_invalidate_failed","error":%q}`, err.Error())
	}
}
