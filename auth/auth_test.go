package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "MyPasswordIsTooStr0ng!"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("WrongPassword", hash)
	req.NoError(err)
	req.False(match)
}

func TestCompareRejectsMalformedHash(t *testing.T) {
	req := require.New(t)

	_, err := ComparePassword("whatever", "$2b$10$bcrypt-is-not-supported")
	req.Error(err)

	_, err = ComparePassword("whatever", "$argon2id$v=19$garbage")
	req.Error(err)
}

func TestRegistrationValidation(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{"Valid request", RegisterRequest{"test@example.com", "molly", "ComplexPass123!"}, false},
		{"Invalid email", RegisterRequest{"notanemail", "molly", "ComplexPass123!"}, true},
		{"Missing username", RegisterRequest{"test@example.com", "", "ComplexPass123!"}, true},
		{"Username with spaces", RegisterRequest{"test@example.com", "mol ly", "ComplexPass123!"}, true},
		{"Password too short", RegisterRequest{"test@example.com", "molly", "Short1!"}, true},
		{"Missing digit", RegisterRequest{"test@example.com", "molly", "NoDigitPass!"}, true},
		{"Missing special char", RegisterRequest{"test@example.com", "molly", "NoSpecialChar123"}, true},
		{"Missing uppercase", RegisterRequest{"test@example.com", "molly", "nouppercase123!"}, true},
		{"Password too long", RegisterRequest{"test@example.com", "molly", strings.Repeat("a", 73)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(tt.req)
			if tt.wantErr {
				req.Error(err)
			} else {
				req.NoError(err)
			}
		})
	}
}

func TestIsEmail(t *testing.T) {
	req := require.New(t)
	req.True(IsEmail("anna@example.com"))
	req.False(IsEmail("anna"))
	req.False(IsEmail(""))
}

func TestTokenIssuer(t *testing.T) {
	t.Run("should round trip the identity", func(t *testing.T) {
		req := require.New(t)
		issuer := NewTokenIssuer("test-secret", time.Hour)

		token, err := issuer.Generate("anna@example.com", "anna")
		req.NoError(err)

		claims, err := issuer.Validate(token)
		req.NoError(err)
		req.Equal("anna@example.com", claims.Email)
		req.Equal("anna", claims.Username)
	})

	t.Run("should reject a token signed with another secret", func(t *testing.T) {
		req := require.New(t)
		token, err := NewTokenIssuer("other-secret", time.Hour).Generate("anna@example.com", "anna")
		req.NoError(err)

		_, err = NewTokenIssuer("test-secret", time.Hour).Validate(token)
		req.Error(err)
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		req := require.New(t)
		issuer := NewTokenIssuer("test-secret", time.Minute)
		issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := issuer.Generate("anna@example.com", "anna")
		req.NoError(err)

		_, err = NewTokenIssuer("test-secret", time.Minute).Validate(token)
		req.Error(err)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := NewTokenIssuer("test-secret", time.Hour).Validate("not-a-token")
		require.Error(t, err)
	})
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("A-very-long-and-complex-password-for-bench-123!")
	}
}
