package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt_Length(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt, 16)
}

func TestGenerateSalt_Distinct(t *testing.T) {
	a, err := GenerateSalt()
	require.NoError(t, err)
	b, err := GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHashPassword_DeterministicForSameSalt(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	first := HashPassword("hunter2", salt)
	second := HashPassword("hunter2", salt)
	assert.Equal(t, first, second)
	assert.Len(t, first, 16)
}

func TestHashPassword_DiffersAcrossSalts(t *testing.T) {
	saltA, err := GenerateSalt()
	require.NoError(t, err)
	saltB, err := GenerateSalt()
	require.NoError(t, err)

	assert.NotEqual(t, HashPassword("hunter2", saltA), HashPassword("hunter2", saltB))
}

func TestVerify(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	hash := HashPassword("correct horse", salt)

	tests := []struct {
		name     string
		password string
		expected bool
	}{
		{"matching password", "correct horse", true},
		{"wrong password", "battery staple", false},
		{"empty password", "", false},
		{"case sensitive", "Correct horse", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Verify(tt.password, salt, hash))
		})
	}
}

func TestVerify_WrongSalt(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	other, err := GenerateSalt()
	require.NoError(t, err)
	hash := HashPassword("pw", salt)

	assert.False(t, Verify("pw", other, hash))
}
