package services

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-signing-32-chars"

// createTestTokenService creates a token service for testing with symmetric key
func createTestTokenService(t testing.TB) TokenService {
	t.Helper()
	service, err := NewTokenService(15*time.Minute, "test-issuer", "test-audience", false, "", "", testSecret)
	require.NoError(t, err)
	return service
}

func generateRSAPEM(t *testing.T) (string, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	pubBytes, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubBytes})

	return string(privPEM), string(pubPEM)
}

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name          string
		useRSAKeys    bool
		privateKeyPEM string
		publicKeyPEM  string
		secretKey     string
		expectError   bool
	}{
		{
			name:        "valid symmetric key configuration",
			secretKey:   testSecret,
			expectError: false,
		},
		{
			name:        "missing secret key",
			secretKey:   "",
			expectError: true,
		},
		{
			name:        "rsa without keys",
			useRSAKeys:  true,
			expectError: true,
		},
		{
			name:          "rsa with malformed keys",
			useRSAKeys:    true,
			privateKeyPEM: "not a pem",
			publicKeyPEM:  "not a pem",
			expectError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := NewTokenService(15*time.Minute, "issuer", "audience", tt.useRSAKeys, tt.privateKeyPEM, tt.publicKeyPEM, tt.secretKey)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, service)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, service)
		})
	}
}

func TestGenerateAndValidateAdminToken(t *testing.T) {
	service := createTestTokenService(t)

	token, err := service.GenerateAdminToken(7)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.AdminID)
	assert.Equal(t, "access", claims.TokenType)
	assert.NotEmpty(t, claims.TokenID)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt))
}

func TestValidateAdminTokenWithRSAKeys(t *testing.T) {
	privPEM, pubPEM := generateRSAPEM(t)
	service, err := NewTokenService(time.Hour, "test-issuer", "test-audience", true, privPEM, pubPEM, "")
	require.NoError(t, err)

	token, err := service.GenerateAdminToken(3)
	require.NoError(t, err)

	claims, err := service.ValidateAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.AdminID)

	// An HMAC service must not accept an RS256 token
	hmacService := createTestTokenService(t)
	_, err = hmacService.ValidateAdminToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateAdminTokenExpired(t *testing.T) {
	service, err := NewTokenService(-time.Minute, "test-issuer", "test-audience", false, "", "", testSecret)
	require.NoError(t, err)

	token, err := service.GenerateAdminToken(1)
	require.NoError(t, err)

	claims, err := service.ValidateAdminToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestTokenSecurity(t *testing.T) {
	service1, err := NewTokenService(15*time.Minute, "issuer1", "audience1", false, "", "", "test-secret-key-1-for-jwt-signing-32-chars")
	require.NoError(t, err)
	service2, err := NewTokenService(15*time.Minute, "issuer2", "audience2", false, "", "", "test-secret-key-2-for-jwt-signing-32-chars")
	require.NoError(t, err)

	token1, err := service1.GenerateAdminToken(123)
	require.NoError(t, err)
	token2, err := service2.GenerateAdminToken(123)
	require.NoError(t, err)

	assert.NotEqual(t, token1, token2)

	claims, err := service1.ValidateAdminToken(token2)
	assert.Error(t, err)
	assert.Nil(t, claims)

	claims, err = service2.ValidateAdminToken(token1)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateAdminTokenRejectsWrongAudience(t *testing.T) {
	issuing, err := NewTokenService(15*time.Minute, "test-issuer", "other-audience", false, "", "", testSecret)
	require.NoError(t, err)
	token, err := issuing.GenerateAdminToken(5)
	require.NoError(t, err)

	_, err = createTestTokenService(t).ValidateAdminToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateAdminTokenRejectsMissingClaims(t *testing.T) {
	service := createTestTokenService(t)

	now := time.Now()
	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{
			name: "missing admin id",
			claims: jwt.MapClaims{
				"token_type": "access", "jti": "x", "iat": now.Unix(), "exp": now.Add(time.Hour).Unix(),
				"iss": "test-issuer", "aud": "test-audience",
			},
		},
		{
			name: "refresh token type",
			claims: jwt.MapClaims{
				"admin_id": 1, "token_type": "refresh", "jti": "x", "iat": now.Unix(), "exp": now.Add(time.Hour).Unix(),
				"iss": "test-issuer", "aud": "test-audience",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).SignedString([]byte(testSecret))
			require.NoError(t, err)

			claims, err := service.ValidateAdminToken(signed)
			assert.ErrorIs(t, err, ErrTokenInvalid)
			assert.Nil(t, claims)
		})
	}
}

func TestConcurrentTokenGeneration(t *testing.T) {
	service := createTestTokenService(t)

	const numGoroutines = 10
	tokens := make(chan string, numGoroutines)
	errs := make(chan error, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(adminID uint) {
			token, err := service.GenerateAdminToken(adminID)
			if err != nil {
				errs <- err
				return
			}
			tokens <- token
		}(uint(i + 1))
	}

	generatedTokens := make(map[string]bool)
	for i := 0; i < numGoroutines; i++ {
		select {
		case token := <-tokens:
			assert.NotEmpty(t, token)
			assert.False(t, generatedTokens[token], "Duplicate token generated")
			generatedTokens[token] = true
		case err := <-errs:
			t.Errorf("Error generating token: %v", err)
		}
	}

	assert.Equal(t, numGoroutines, len(generatedTokens))
}

func TestTokenValidationEdgeCases(t *testing.T) {
	service := createTestTokenService(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "single character", token: "a"},
		{name: "non-JWT string", token: "this is not a jwt token"},
		{name: "JWT with wrong number of parts", token: "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJjdXN0b21lcl9pZCI6MTIzfQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateAdminToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func BenchmarkValidateAdminToken(b *testing.B) {
	service := createTestTokenService(b)

	token, err := service.GenerateAdminToken(123)
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := service.ValidateAdminToken(token)
		require.NoError(b, err)
	}
}
