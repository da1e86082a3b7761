package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StartsAnonymous(t *testing.T) {
	s := New()
	assert.Equal(t, RoleAnonymous, s.Role())
	assert.Empty(t, s.Username())
	assert.False(t, s.LoggedIn())
}

func TestLoginPatient(t *testing.T) {
	s := New()
	require.NoError(t, s.LoginPatient("pat1"))

	assert.Equal(t, RolePatient, s.Role())
	assert.Equal(t, "pat1", s.Username())
	assert.True(t, s.LoggedIn())
}

func TestLoginCaregiver(t *testing.T) {
	s := New()
	require.NoError(t, s.LoginCaregiver("carol"))

	assert.Equal(t, RoleCaregiver, s.Role())
	assert.Equal(t, "carol", s.Username())
}

func TestLogin_RejectedWhileLoggedIn(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *Session) error
	}{
		{"patient then patient", func(s *Session) error { return s.LoginPatient("pat1") }},
		{"patient then caregiver", func(s *Session) error { return s.LoginPatient("pat1") }},
		{"caregiver then patient", func(s *Session) error { return s.LoginCaregiver("carol") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			require.NoError(t, tt.setup(s))

			assert.ErrorIs(t, s.LoginPatient("other"), ErrAlreadyLoggedIn)
			assert.ErrorIs(t, s.LoginCaregiver("other"), ErrAlreadyLoggedIn)
		})
	}
}

func TestLogout(t *testing.T) {
	s := New()
	require.NoError(t, s.LoginPatient("pat1"))
	require.NoError(t, s.Logout())

	assert.Equal(t, RoleAnonymous, s.Role())
	assert.Empty(t, s.Username())

	// A fresh login works after logout
	require.NoError(t, s.LoginCaregiver("carol"))
	assert.Equal(t, RoleCaregiver, s.Role())
}

func TestLogout_Anonymous(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.Logout(), ErrNotLoggedIn)
}
