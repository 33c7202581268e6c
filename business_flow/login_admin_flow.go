package businessflow

//go:generate mockgen -source=login_admin_flow.go -destination=mocks/login_admin_flow_mock.go -package=mocks

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/amirphl/cvm-forms/app/dto"
	"github.com/amirphl/cvm-forms/app/services"
	"github.com/amirphl/cvm-forms/models"
	"github.com/amirphl/cvm-forms/repository"
	"github.com/amirphl/cvm-forms/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	minAdminUsernameLen = 3
	minAdminPasswordLen = 8
	// bcrypt ignores input past 72 bytes
	maxAdminPasswordLen = 72
)

// dummyPasswordHash is compared against on unknown usernames so both failure
// paths cost one bcrypt comparison
var dummyPasswordHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("cvm-forms-unknown-admin"), bcrypt.DefaultCost)
	return hash
})

// AdminAuthFlow authenticates the operators allowed to export submissions
type AdminAuthFlow interface {
	InitCaptcha(ctx context.Context) (*dto.AdminCaptchaInitResponse, error)
	Login(ctx context.Context, req *dto.AdminLoginRequest, metadata *ClientMetadata) (*dto.AdminLoginResponse, error)
	CreateAdmin(ctx context.Context, username, password string) (*dto.AdminDTO, error)
}

// AdminAuthFlowImpl checks the captcha first, then the bcrypt password hash
type AdminAuthFlowImpl struct {
	adminRepo    repository.AdminRepository
	tokenService services.TokenService
	captchaSvc   services.CaptchaService
	tokenTTL     time.Duration
	now          utils.Clock
	compareHash  func(hash, password []byte) error
}

// NewAdminAuthFlow creates the admin authentication flow. captchaSvc may be nil
// for command line use, in which case logins are refused.
func NewAdminAuthFlow(
	adminRepo repository.AdminRepository,
	tokenService services.TokenService,
	captchaSvc services.CaptchaService,
	tokenTTL time.Duration,
) AdminAuthFlow {
	return &AdminAuthFlowImpl{
		adminRepo:    adminRepo,
		tokenService: tokenService,
		captchaSvc:   captchaSvc,
		tokenTTL:     tokenTTL,
		now:          utils.UTCNow,
		compareHash:  bcrypt.CompareHashAndPassword,
	}
}

func (af *AdminAuthFlowImpl) InitCaptcha(ctx context.Context) (*dto.AdminCaptchaInitResponse, error) {
	if af.captchaSvc == nil {
		return nil, NewBusinessError("CAPTCHA_NOT_AVAILABLE", "Captcha service not available", ErrCaptchaNotAvailable)
	}
	ch, err := af.captchaSvc.GenerateRotate(ctx)
	if err != nil {
		return nil, NewBusinessError("CAPTCHA_INIT_FAILED", "Failed to initialize captcha", err)
	}
	return &dto.AdminCaptchaInitResponse{
		ChallengeID:       ch.ID,
		MasterImageBase64: ch.MasterImageBase64,
		ThumbImageBase64:  ch.ThumbImageBase64,
	}, nil
}

func (af *AdminAuthFlowImpl) Login(ctx context.Context, req *dto.AdminLoginRequest, metadata *ClientMetadata) (*dto.AdminLoginResponse, error) {
	if req == nil {
		return nil, NewBusinessError("ADMIN_LOGIN_VALIDATION_FAILED", "Admin login validation failed", ErrNilRequest)
	}
	if req.ChallengeID == "" {
		return nil, af.loginFailed("captcha", NewBusinessError("CAPTCHA_INVALID", "Captcha challenge missing", ErrInvalidCaptcha))
	}

	// The challenge is consumed before credentials are looked at
	if af.captchaSvc == nil || !af.captchaSvc.VerifyRotate(ctx, req.ChallengeID, req.UserAngle) {
		return nil, af.loginFailed("captcha", NewBusinessError("CAPTCHA_INVALID", "Captcha validation failed", ErrInvalidCaptcha))
	}

	admin, err := af.adminRepo.ByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, NewBusinessError("ADMIN_LOOKUP_FAILED", "Failed to lookup admin", err)
	}
	if admin == nil {
		_ = af.compareHash(dummyPasswordHash(), []byte(req.Password))
		return nil, af.loginFailed("credentials", NewBusinessError("ADMIN_NOT_FOUND", "Admin not found", ErrAdminNotFound))
	}
	if !utils.IsTrue(admin.IsActive) {
		return nil, af.loginFailed("inactive", NewBusinessError("ADMIN_INACTIVE", "Admin account is inactive", ErrAdminInactive))
	}
	if err := af.compareHash([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, af.loginFailed("credentials", NewBusinessError("ADMIN_INCORRECT_PASSWORD", "Incorrect password", ErrIncorrectPassword))
	}

	accessToken, err := af.tokenService.GenerateAdminToken(admin.ID)
	if err != nil {
		return nil, NewBusinessError("TOKEN_GENERATION_FAILED", "Failed to generate tokens", err)
	}

	loginAt := af.now()
	if err := af.adminRepo.TouchLastLogin(ctx, admin.ID, loginAt); err != nil {
		log.Printf(`{"level":"warn","event":"admin_last_login_update_failed","admin_id":%d,"error":%q}`, admin.ID, err.Error())
	} else {
		admin.LastLoginAt = &loginAt
	}

	adminLoginsTotal.WithLabelValues("success").Inc()
	ip := ""
	if metadata != nil {
		ip = metadata.IPAddress
	}
	log.Printf(`{"level":"info","event":"admin_login","admin_id":%d,"ip":%q}`, admin.ID, ip)

	return &dto.AdminLoginResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(af.tokenTTL.Seconds()),
		Admin:       ToAdminDTO(*admin),
	}, nil
}

// CreateAdmin provisions an active admin account with a bcrypt password hash
func (af *AdminAuthFlowImpl) CreateAdmin(ctx context.Context, username, password string) (*dto.AdminDTO, error) {
	username = strings.TrimSpace(username)
	if len(username) < minAdminUsernameLen || len(password) < minAdminPasswordLen || len(password) > maxAdminPasswordLen {
		return nil, NewBusinessError("ADMIN_VALIDATION_FAILED", "Admin validation failed", ErrInvalidCredentials)
	}

	existing, err := af.adminRepo.ByUsername(ctx, username)
	if err != nil {
		return nil, NewBusinessError("ADMIN_LOOKUP_FAILED", "Failed to lookup admin", err)
	}
	if existing != nil {
		return nil, NewBusinessError("ADMIN_ALREADY_EXISTS", "Admin already exists", ErrAdminAlreadyExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewBusinessError("PASSWORD_HASH_FAILED", "Failed to hash password", err)
	}

	admin := &models.Admin{
		UUID:         uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		IsActive:     utils.ToPtr(true),
	}
	if err := af.adminRepo.Save(ctx, admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewBusinessError("ADMIN_ALREADY_EXISTS", "Admin already exists", ErrAdminAlreadyExists)
		}
		return nil, NewBusinessError("ADMIN_CREATE_FAILED", "Failed to create admin", err)
	}

	res := ToAdminDTO(*admin)
	return &res, nil
}

func (af *AdminAuthFlowImpl) loginFailed(result string, err *BusinessError) error {
	adminLoginsTotal.WithLabelValues(result).Inc()
	return err
}

// ToAdminDTO converts an admin account to its public view
func ToAdminDTO(a models.Admin) dto.AdminDTO {
	return dto.AdminDTO{
		ID:          a.ID,
		UUID:        a.UUID.String(),
		Username:    a.Username,
		IsActive:    utils.IsTrue(a.IsActive),
		CreatedAt:   a.CreatedAt,
		LastLoginAt: a.LastLoginAt,
	}
}
