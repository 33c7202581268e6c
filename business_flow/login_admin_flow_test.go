package businessflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirphl/cvm-forms/app/dto"
	"github.com/amirphl/cvm-forms/app/services"
	servicemocks "github.com/amirphl/cvm-forms/app/services/mocks"
	"github.com/amirphl/cvm-forms/models"
	"github.com/amirphl/cvm-forms/repository/mocks"
	"github.com/amirphl/cvm-forms/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type adminFlowDeps struct {
	repo    *mocks.MockAdminRepository
	tokens  *servicemocks.MockTokenService
	captcha *servicemocks.MockCaptchaService
	flow    *AdminAuthFlowImpl
}

func newAdminFlowDeps(t *testing.T) adminFlowDeps {
	ctrl := gomock.NewController(t)
	d := adminFlowDeps{
		repo:    mocks.NewMockAdminRepository(ctrl),
		tokens:  servicemocks.NewMockTokenService(ctrl),
		captcha: servicemocks.NewMockCaptchaService(ctrl),
	}
	d.flow = NewAdminAuthFlow(d.repo, d.tokens, d.captcha, 2*time.Hour).(*AdminAuthFlowImpl)
	return d
}

func testAdmin(t *testing.T, password string, active bool) *models.Admin {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.Admin{
		ID:           9,
		UUID:         uuid.New(),
		Username:     "registrar",
		PasswordHash: string(hash),
		IsActive:     utils.ToPtr(active),
	}
}

func loginRequest() *dto.AdminLoginRequest {
	return &dto.AdminLoginRequest{
		ChallengeID: "challenge-1",
		Username:    " registrar ",
		Password:    "correct-horse",
		UserAngle:   42,
	}
}

func TestAdminAuthFlow_Login(t *testing.T) {
	ctx := context.Background()
	meta := &ClientMetadata{IPAddress: "10.0.0.1"}

	t.Run("Success", func(t *testing.T) {
		d := newAdminFlowDeps(t)
		loginAt := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
		d.flow.now = fixedClock(loginAt)
		admin := testAdmin(t, "correct-horse", true)

		gomock.InOrder(
			d.captcha.EXPECT().VerifyRotate(gomock.Any(), "challenge-1", float64(42)).Return(true),
			d.repo.EXPECT().ByUsername(gomock.Any(), "registrar").Return(admin, nil),
			d.tokens.EXPECT().GenerateAdminToken(uint(9)).Return("signed.jwt.token", nil),
			d.repo.EXPECT().TouchLastLogin(gomock.Any(), uint(9), loginAt).Return(nil),
		)

		res, err := d.flow.Login(ctx, loginRequest(), meta)
		require.NoError(t, err)
		assert.Equal(t, "signed.jwt.token", res.AccessToken)
		assert.Equal(t, "Bearer", res.TokenType)
		assert.Equal(t, 7200, res.ExpiresIn)
		assert.Equal(t, "registrar", res.Admin.Username)
		require.NotNil(t, res.Admin.LastLoginAt)
		assert.True(t, res.Admin.LastLoginAt.Equal(loginAt))
	})

	t.Run("LastLoginFailureDoesNotBlockLogin", func(t *testing.T) {
		d := newAdminFlowDeps(t)
		admin := testAdmin(t, "correct-horse", true)

		d.captcha.EXPECT().VerifyRotate(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
		d.repo.EXPECT().ByUsername(gomock.Any(), "registrar").Return(admin, nil)
		d.tokens.EXPECT().GenerateAdminToken(uint(9)).Return("signed.jwt.token", nil)
		d.repo.EXPECT().TouchLastLogin(gomock.Any(), uint(9), gomock.Any()).Return(errors.New("connection reset"))

		res, err := d.flow.Login(ctx, loginRequest(), nil)
		require.NoError(t, err)
		assert.Nil(t, res.Admin.LastLoginAt)
	})

	t.Run("NilRequest", func(t *testing.T) {
		d := newAdminFlowDeps(t)
		_, err := d.flow.Login(ctx, nil, meta)
		assert.ErrorIs(t, err, ErrNilRequest)
	})

	t.Run("CaptchaRejectedBeforeLookup", func(t *testing.T) {
		d := newAdminFlowDeps(t)
		d.captcha.EXPECT().VerifyRotate(gomock.Any(), "challenge-1", float64(42)).Return(false)

		_, err := d.flow.Login(ctx, loginRequest(), meta)
		require.Error(t, err)
		assert.True(t, IsInvalidCaptcha(err))
		assert.False(t, IsBadCredentials(err))
	})

	t.Run("MissingChallenge", func(t *testing.T) {
		d := newAdminFlowDeps(t)
		req := loginRequest()
		req.ChallengeID = ""

		_, err := d.flow.Login(ctx, req, meta)
		assert.True(t, IsInvalidCaptcha(err))
	})

	t.Run("UnknownUsername", func(t *testing.T) {
		d := newAdminFlowDeps(t)
		d.captcha.EXPECT().VerifyRotate(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
		d.repo.EXPECT().ByUsername(gomock.Any(), "registrar").Return(nil, nil)

		_, err := d.flow.Login(ctx, loginRequest(), meta)
		assert.ErrorIs(t, err, ErrAdminNotFound)
		assert.True(t, IsBadCredentials(err))
	})

	t.Run("UnknownUsernameStillComparesPassword", func(t *testing.T) {
		d := newAdminFlowDeps(t)
		var compared [][]byte
		d.flow.compareHash = func(hash, password []byte) error {
			compared = append(compared, hash)
			return bcrypt.CompareHashAndPassword(hash, password)
		}
		d.captcha.EXPECT().VerifyRotate(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
		d.repo.EXPECT().ByUsername(gomock.Any(), "registrar").Return(nil, nil)

		_, err := d.flow.Login(ctx, loginRequest(), meta)
		assert.True(t, IsBadCredentials(err))
		require.Len(t, compared, 1)

		cost, err := bcrypt.Cost(compared[0])
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		d := newAdminFlowDeps(t)
		d.captcha.EXPECT().VerifyRotate(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
		d.repo.EXPECT().ByUsername(gomock.Any(), "registrar").Return(testAdmin(t, "another-secret", true), nil)

		_, err := d.flow.Login(ctx, loginRequest(), meta)
		assert.ErrorIs(t, err, ErrIncorrectPassword)
		assert.True(t, IsBadCredentials(err))
	})

	t.Run("InactiveAdmin", func(t *testing.T) {
		d := newAdminFlowDeps(t)
		d.captcha.EXPECT().VerifyRotate(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
		d.repo.EXPECT().ByUsername(gomock.Any(), "registrar").Return(testAdmin(t, "correct-horse", false), nil)

		_, err := d.flow.Login(ctx, loginRequest(), meta)
		assert.True(t, IsAdminInactive(err))
		assert.False(t, IsBadCredentials(err))
	})

	t.Run("LookupFailure", func(t *testing.T) {
		d := newAdminFlowDeps(t)
		d.captcha.EXPECT().VerifyRotate(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
		d.repo.EXPECT().ByUsername(gomock.Any(), "registrar").Return(nil, errors.New("db down"))

		_, err := d.flow.Login(ctx, loginRequest(), meta)
		require.Error(t, err)
		assert.False(t, IsBadCredentials(err))
		var be *BusinessError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, "ADMIN_LOOKUP_FAILED", be.Code)
	})

	t.Run("NoCaptchaServiceRefusesLogin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAdminRepository(ctrl)
		flow := NewAdminAuthFlow(repo, servicemocks.NewMockTokenService(ctrl), nil, time.Hour)

		_, err := flow.Login(ctx, loginRequest(), meta)
		assert.True(t, IsInvalidCaptcha(err))
	})
}

func TestAdminAuthFlow_InitCaptcha(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		d := newAdminFlowDeps(t)
		d.captcha.EXPECT().GenerateRotate(gomock.Any()).Return(&services.RotateChallenge{
			ID:                "abc",
			MasterImageBase64: "data:image/jpeg;base64,AAA",
			ThumbImageBase64:  "data:image/png;base64,BBB",
		}, nil)

		res, err := d.flow.InitCaptcha(ctx)
		require.NoError(t, err)
		assert.Equal(t, "abc", res.ChallengeID)
		assert.Equal(t, "data:image/jpeg;base64,AAA", res.MasterImageBase64)
		assert.Equal(t, "data:image/png;base64,BBB", res.ThumbImageBase64)
	})

	t.Run("GeneratorFailure", func(t *testing.T) {
		d := newAdminFlowDeps(t)
		d.captcha.EXPECT().GenerateRotate(gomock.Any()).Return(nil, errors.New("store unavailable"))

		_, err := d.flow.InitCaptcha(ctx)
		var be *BusinessError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, "CAPTCHA_INIT_FAILED", be.Code)
	})

	t.Run("NotConfigured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		flow := NewAdminAuthFlow(mocks.NewMockAdminRepository(ctrl), servicemocks.NewMockTokenService(ctrl), nil, time.Hour)

		_, err := flow.InitCaptcha(ctx)
		assert.ErrorIs(t, err, ErrCaptchaNotAvailable)
	})
}

func TestAdminAuthFlow_CreateAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("HashesPassword", func(t *testing.T) {
		d := newAdminFlowDeps(t)
		d.repo.EXPECT().ByUsername(gomock.Any(), "registrar").Return(nil, nil)
		d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *models.Admin) error {
			assert.NotEqual(t, "correct-horse", a.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("correct-horse")))
			assert.True(t, utils.IsTrue(a.IsActive))
			a.ID = 3
			return nil
		})

		res, err := d.flow.CreateAdmin(ctx, " registrar ", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, uint(3), res.ID)
		assert.Equal(t, "registrar", res.Username)
		assert.True(t, res.IsActive)
		assert.NotEmpty(t, res.UUID)
	})

	t.Run("RejectsWeakInput", func(t *testing.T) {
		d := newAdminFlowDeps(t)
		cases := []struct{ username, password string }{
			{"ab", "correct-horse"},
			{"registrar", "short"},
			{"registrar", string(make([]byte, 73))},
		}
		for _, c := range cases {
			_, err := d.flow.CreateAdmin(ctx, c.username, c.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		}
	})

	t.Run("ExistingUsername", func(t *testing.T) {
		d := newAdminFlowDeps(t)
		d.repo.EXPECT().ByUsername(gomock.Any(), "registrar").Return(testAdmin(t, "whatever-pass", true), nil)

		_, err := d.flow.CreateAdmin(ctx, "registrar", "correct-horse")
		assert.True(t, IsAdminAlreadyExists(err))
	})

	t.Run("ConcurrentInsertMapsToExisting", func(t *testing.T) {
		d := newAdminFlowDeps(t)
		d.repo.EXPECT().ByUsername(gomock.Any(), "registrar").Return(nil, nil)
		d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)

		_, err := d.flow.CreateAdmin(ctx, "registrar", "correct-horse")
		assert.True(t, IsAdminAlreadyExists(err))
	})
}
