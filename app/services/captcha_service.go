package services

//go:generate mockgen -source=captcha_service.go -destination=mocks/captcha_service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/wenlng/go-captcha/v2/rotate"
	xdraw "golang.org/x/image/draw"
)

const (
	defaultCaptchaTTL       = 2 * time.Minute
	defaultCaptchaImageSize = 220
	captchaBackgroundCount  = 3
)

// CaptchaService issues and checks rotate captchas guarding the admin login.
// The client rotates the thumb image until it lines up with the master image
// and submits the angle together with the challenge id.
type CaptchaService interface {
	GenerateRotate(ctx context.Context) (*RotateChallenge, error)
	// VerifyRotate consumes the challenge whether or not the angle matches
	VerifyRotate(ctx context.Context, challengeID string, userAngle float64) bool
}

type RotateChallenge struct {
	ID                string
	MasterImageBase64 string
	ThumbImageBase64  string
}

// ChallengeStore keeps the target angle of an issued challenge until it is answered or expires
type ChallengeStore interface {
	Put(ctx context.Context, id string, angle int, ttl time.Duration) error
	// Take returns and removes the angle; ok is false for unknown or expired ids
	Take(ctx context.Context, id string) (angle int, ok bool)
}

type captchaServiceImpl struct {
	rotator rotate.Captcha
	store   ChallengeStore
	ttl     time.Duration
	padding int
}

// NewCaptchaServiceRotate builds a rotate captcha. padding is the accepted angle
// difference in degrees; imgSizePx is the square image size.
func NewCaptchaServiceRotate(store ChallengeStore, ttl time.Duration, padding int, imgSizePx int) (CaptchaService, error) {
	if store == nil {
		return nil, errors.New("captcha challenge store is required")
	}
	if ttl <= 0 {
		ttl = defaultCaptchaTTL
	}
	if imgSizePx <= 0 {
		imgSizePx = defaultCaptchaImageSize
	}

	builder := rotate.NewBuilder(rotate.WithImageSquareSize(imgSizePx))
	builder.SetResources(rotate.WithImages(generateRotateBackgrounds(captchaBackgroundCount, imgSizePx)))

	return &captchaServiceImpl{
		rotator: builder.Make(),
		store:   store,
		ttl:     ttl,
		padding: padding,
	}, nil
}

func (s *captchaServiceImpl) GenerateRotate(ctx context.Context) (*RotateChallenge, error) {
	captData, err := s.rotator.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate captcha: %w", err)
	}

	block := captData.GetData()
	if block == nil {
		return nil, errors.New("captcha generator returned no data")
	}

	masterB64, err := captData.GetMasterImage().ToBase64()
	if err != nil {
		return nil, fmt.Errorf("failed to encode captcha master image: %w", err)
	}
	thumbB64, err := captData.GetThumbImage().ToBase64()
	if err != nil {
		return nil, fmt.Errorf("failed to encode captcha thumb image: %w", err)
	}

	challengeID := uuid.NewString()
	if err := s.store.Put(ctx, challengeID, block.Angle, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to store captcha challenge: %w", err)
	}

	return &RotateChallenge{
		ID:                challengeID,
		MasterImageBase64: masterB64,
		ThumbImageBase64:  thumbB64,
	}, nil
}

func (s *captchaServiceImpl) VerifyRotate(ctx context.Context, challengeID string, userAngle float64) bool {
	target, ok := s.store.Take(ctx, challengeID)
	if !ok {
		return false
	}
	return rotate.Validate(int(math.Round(userAngle)), target, s.padding)
}

// memoryChallengeStore is a process-local ChallengeStore. Expired entries are
// pruned on write.
type memoryChallengeStore struct {
	mu      sync.Mutex
	entries map[string]challengeEntry
	now     func() time.Time
}

type challengeEntry struct {
	angle     int
	expiresAt time.Time
}

// NewMemoryChallengeStore creates an in-process challenge store
func NewMemoryChallengeStore() ChallengeStore {
	return &memoryChallengeStore{
		entries: make(map[string]challengeEntry),
		now:     time.Now,
	}
}

func (m *memoryChallengeStore) Put(ctx context.Context, id string, angle int, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for k, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, k)
		}
	}
	m.entries[id] = challengeEntry{angle: angle, expiresAt: now.Add(ttl)}
	return nil
}

func (m *memoryChallengeStore) Take(ctx context.Context, id string) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[id]
	if !ok {
		return 0, false
	}
	delete(m.entries, id)
	if m.now().After(e.expiresAt) {
		return 0, false
	}
	return e.angle, true
}

// redisChallengeStore shares challenges between instances behind a load balancer
type redisChallengeStore struct {
	rc     *redis.Client
	prefix string
}

// NewRedisChallengeStore creates a challenge store backed by Redis keys with TTL
func NewRedisChallengeStore(rc *redis.Client, prefix string) ChallengeStore {
	return &redisChallengeStore{rc: rc, prefix: prefix}
}

func (r *redisChallengeStore) key(id string) string {
	return r.prefix + "captcha:" + id
}

func (r *redisChallengeStore) Put(ctx context.Context, id string, angle int, ttl time.Duration) error {
	return r.rc.Set(ctx, r.key(id), strconv.Itoa(angle), ttl).Err()
}

func (r *redisChallengeStore) Take(ctx context.Context, id string) (int, bool) {
	angle, err := r.rc.GetDel(ctx, r.key(id)).Int()
	if err != nil {
		return 0, false
	}
	return angle, true
}

// generateRotateBackgrounds returns n smooth color fields, each upscaled from a
// small random tile
func generateRotateBackgrounds(n int, size int) []image.Image {
	imgs := make([]image.Image, 0, n)
	for i := 0; i < n; i++ {
		imgs = append(imgs, newSmoothNoiseImage(size))
	}
	return imgs
}

func newSmoothNoiseImage(size int) image.Image {
	tile := image.NewRGBA(image.Rect(0, 0, 6, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			tile.Set(x, y, color.RGBA{
				R: uint8(60 + rand.IntN(160)),
				G: uint8(60 + rand.IntN(160)),
				B: uint8(120 + rand.IntN(130)),
				A: 255,
			})
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), tile, tile.Bounds(), xdraw.Src, nil)
	return dst
}
