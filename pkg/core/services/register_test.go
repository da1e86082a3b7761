package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/vaccine-scheduler/pkg/core/auth"
)

func TestRegisterPatient(t *testing.T) {
	store := newFakeStore()
	err := RegisterPatient(context.Background(), store, zap.NewNop(), "pat1", "secret")
	require.NoError(t, err)

	patient, err := store.GetPatient(context.Background(), "pat1")
	require.NoError(t, err)
	assert.Len(t, patient.Salt, 16)
	assert.True(t, auth.Verify("secret", patient.Salt, patient.Hash))
	assert.False(t, auth.Verify("wrong", patient.Salt, patient.Hash))
}

func TestRegisterPatient_UsernameTaken(t *testing.T) {
	store := newFakeStore()
	require.NoError(t, RegisterPatient(context.Background(), store, zap.NewNop(), "pat1", "secret"))

	err := RegisterPatient(context.Background(), store, zap.NewNop(), "pat1", "other")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterCaregiver(t *testing.T) {
	store := newFakeStore()
	err := RegisterCaregiver(context.Background(), store, zap.NewNop(), "carol", "secret")
	require.NoError(t, err)

	caregiver, err := store.GetCaregiver(context.Background(), "carol")
	require.NoError(t, err)
	assert.True(t, auth.Verify("secret", caregiver.Salt, caregiver.Hash))
}

func TestRegister_DisjointNamespaces(t *testing.T) {
	// The same username may exist as both a patient and a caregiver
	store := newFakeStore()
	require.NoError(t, RegisterPatient(context.Background(), store, zap.NewNop(), "alex", "pw1"))
	require.NoError(t, RegisterCaregiver(context.Background(), store, zap.NewNop(), "alex", "pw2"))

	_, err := store.GetPatient(context.Background(), "alex")
	assert.NoError(t, err)
	_, err = store.GetCaregiver(context.Background(), "alex")
	assert.NoError(t, err)
}

func TestRegister_SaltsDiffer(t *testing.T) {
	store := newFakeStore()
	require.NoError(t, RegisterPatient(context.Background(), store, zap.NewNop(), "a", "same"))
	require.NoError(t, RegisterPatient(context.Background(), store, zap.NewNop(), "b", "same"))

	pa, _ := store.GetPatient(context.Background(), "a")
	pb, _ := store.GetPatient(context.Background(), "b")
	assert.NotEqual(t, pa.Salt, pb.Salt)
	assert.NotEqual(t, pa.Hash, pb.Hash)
}
