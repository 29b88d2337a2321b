package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "Sedan4Rent-Today!"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("wrong-password", hash)
	req.NoError(err)
	req.False(match)

	// Two hashes of the same password differ by salt
	other, err := HashPassword(password)
	req.NoError(err)
	req.NotEqual(hash, other)
}

func TestComparePassword_MalformedHash(t *testing.T) {
	for _, encoded := range []string{"", "plain", "$bcrypt$v=19$m=1,t=1,p=1$aaaa$bbbb", "$argon2id$v=19$m=x$aaaa$bbbb"} {
		_, err := ComparePassword("whatever", encoded)
		require.ErrorIs(t, err, ErrMalformedHash, encoded)
	}
}

func TestRegistrationValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{"Valid renter", RegisterRequest{"renter@example.com", "ComplexPass123!", "Renter"}, false},
		{"Valid owner", RegisterRequest{"owner@example.com", "ComplexPass123!", "CarOwner"}, false},
		{"Admin cannot self register", RegisterRequest{"boss@example.com", "ComplexPass123!", "Admin"}, true},
		{"Missing role", RegisterRequest{"test@example.com", "ComplexPass123!", ""}, true},
		{"Invalid email", RegisterRequest{"notanemail", "ComplexPass123!", "Renter"}, true},
		{"Password too short", RegisterRequest{"test@example.com", "Short1!", "Renter"}, true},
		{"Missing digit", RegisterRequest{"test@example.com", "NoDigitPass!!", "Renter"}, true},
		{"Missing special char", RegisterRequest{"test@example.com", "NoSpecialChar123", "Renter"}, true},
		{"Missing uppercase", RegisterRequest{"test@example.com", "nouppercase123!", "Renter"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(tt.req)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
