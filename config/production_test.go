package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *ProductionConfig {
	return &ProductionConfig{
		Database: DatabaseConfig{Host: "localhost", Port: 5432, Name: "cvm_forms", User: "postgres", Password: "secret"},
		Server:   ServerConfig{Port: 8080, ReadTimeout: time.Second, WriteTimeout: time.Second, IdleTimeout: time.Second},
		Security: SecurityConfig{
			GlobalRateLimit:           300,
			FormRateLimit:             5,
			FormRateLimitWindow:       15 * time.Minute,
			AdminLoginRateLimit:       10,
			AdminLoginRateLimitWindow: 15 * time.Minute,
			CaptchaTTL:                2 * time.Minute,
			CaptchaPadding:            15,
			CaptchaImageSize:          300,
		},
		JWT:      JWTConfig{SecretKey: "0123456789abcdef0123456789abcdef", AccessTokenTTL: time.Hour},
		Logging:  LoggingConfig{Level: "info", Output: "stdout"},
		Cache:    CacheConfig{Enabled: true, RedisURL: "redis://localhost:6379"},
		Form:     FormConfig{IDPrefix: "CVM", SequenceName: "formUserId", StatsCacheTTL: 30 * time.Second},
	}
}

func TestValidateProductionConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProductionConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(*ProductionConfig) {}},
		{name: "missing db password", mutate: func(c *ProductionConfig) { c.Database.Password = "" }, wantErr: "DB_PASSWORD is required"},
		{name: "short jwt secret", mutate: func(c *ProductionConfig) { c.JWT.SecretKey = "short" }, wantErr: "JWT_SECRET_KEY must be at least 32 characters long"},
		{name: "rsa without keys", mutate: func(c *ProductionConfig) { c.JWT.UseRSAKeys = true }, wantErr: "JWT_PRIVATE_KEY and JWT_PUBLIC_KEY are required"},
		{name: "zero form rate limit", mutate: func(c *ProductionConfig) { c.Security.FormRateLimit = 0 }, wantErr: "FORM_RATE_LIMIT_MAX must be positive"},
		{name: "zero login rate limit", mutate: func(c *ProductionConfig) { c.Security.AdminLoginRateLimit = 0 }, wantErr: "ADMIN_LOGIN_RATE_LIMIT_MAX and ADMIN_LOGIN_RATE_LIMIT_WINDOW must be positive"},
		{name: "captcha padding out of range", mutate: func(c *ProductionConfig) { c.Security.CaptchaPadding = 200 }, wantErr: "CAPTCHA_PADDING must be between 0 and 180"},
		{name: "tiny captcha image", mutate: func(c *ProductionConfig) { c.Security.CaptchaImageSize = 40 }, wantErr: "CAPTCHA_IMAGE_SIZE must be at least 100"},
		{name: "lower-case prefix", mutate: func(c *ProductionConfig) { c.Form.IDPrefix = "cvm" }, wantErr: "FORM_ID_PREFIX must be a non-empty upper-case string"},
		{name: "empty sequence name", mutate: func(c *ProductionConfig) { c.Form.SequenceName = "" }, wantErr: "FORM_SEQUENCE_NAME is required"},
		{name: "bad log output", mutate: func(c *ProductionConfig) { c.Logging.Output = "syslog" }, wantErr: "LOG_OUTPUT must be one of"},
		{name: "file output without path", mutate: func(c *ProductionConfig) { c.Logging.Output = "file" }, wantErr: "LOG_FILE_PATH is required"},
		{name: "cache without url", mutate: func(c *ProductionConfig) { c.Cache.RedisURL = "" }, wantErr: "CACHE_REDIS_URL is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := ValidateProductionConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateProductionConfigReportsAllProblems(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Host = ""
	cfg.Server.Port = 0

	err := ValidateProductionConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST is required")
	assert.Contains(t, err.Error(), "SERVER_PORT must be between 1 and 65535")
}

func TestLoadProductionConfigFromEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("FORM_ID_PREFIX", "REG")
	t.Setenv("FORM_RATE_LIMIT_MAX", "7")
	t.Setenv("FORM_RATE_LIMIT_WINDOW", "10m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadProductionConfig()
	require.NoError(t, err)

	assert.Equal(t, "REG", cfg.Form.IDPrefix)
	assert.Equal(t, "formUserId", cfg.Form.SequenceName)
	assert.Equal(t, 7, cfg.Security.FormRateLimit)
	assert.Equal(t, 10*time.Minute, cfg.Security.FormRateLimitWindow)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.Form.StatsCacheTTL)
	assert.Equal(t, 10, cfg.Security.AdminLoginRateLimit)
	assert.Equal(t, 2*time.Minute, cfg.Security.CaptchaTTL)
	assert.Equal(t, 300, cfg.Security.CaptchaImageSize)
}

func TestGetEnvHelpersFallBackOnMalformedValues(t *testing.T) {
	t.Setenv("TEST_INT", "abc")
	t.Setenv("TEST_BOOL", "maybe")
	t.Setenv("TEST_DURATION", "soon")

	assert.Equal(t, 3, getEnvInt("TEST_INT", 3))
	assert.True(t, getEnvBool("TEST_BOOL", true))
	assert.Equal(t, time.Minute, getEnvDuration("TEST_DURATION", time.Minute))
	assert.Equal(t, []string{"x"}, getEnvStringSlice("TEST_UNSET_SLICE", []string{"x"}))
}
