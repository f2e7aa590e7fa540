package auth

import (
	"context"
	"testing"

	"lifeline/config"
	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVerifierFixture(t *testing.T, backend repository.Backend, devCredential string) (*entity.Profile, func(string) bool) {
	t.Helper()

	hasher := NewBcryptHasherWithCost(MinBcryptCost, newDiscardLogger())
	hash, err := hasher.Hash("s3cret!")
	require.NoError(t, err)

	verifier := NewCredentialVerifier(VerifierParams{
		Config:  &config.Config{Fallback: &config.FallbackConfig{DevCredential: devCredential}},
		Logger:  newDiscardLogger(),
		Backend: backend,
		Hasher:  hasher,
	})

	profile := &entity.Profile{ID: "profile-1", PasswordHash: hash}

	return profile, func(credential string) bool {
		return verifier.Verify(context.Background(), profile, credential)
	}
}

func TestCredentialVerifier_HashComparison(t *testing.T) {
	_, verify := newVerifierFixture(t, repository.BackendDurable, "")

	assert.True(t, verify("s3cret!"))
	assert.False(t, verify("wrong"))
	assert.False(t, verify(""))
}

func TestCredentialVerifier_DevCredentialIgnoredOnDurableBackend(t *testing.T) {
	_, verify := newVerifierFixture(t, repository.BackendDurable, "demo123")

	assert.False(t, verify("demo123"))
	assert.True(t, verify("s3cret!"))
}

func TestCredentialVerifier_DevCredentialOnFallbackBackend(t *testing.T) {
	_, verify := newVerifierFixture(t, repository.BackendFallback, "demo123")

	assert.True(t, verify("demo123"))
	assert.True(t, verify("s3cret!"), "the real credential keeps working")
	assert.False(t, verify("demo1234"))
	assert.False(t, verify(""))
}

func TestCredentialVerifier_FallbackWithoutDevCredential(t *testing.T) {
	_, verify := newVerifierFixture(t, repository.BackendFallback, "")

	assert.False(t, verify("demo123"))
	assert.True(t, verify("s3cret!"))
}

func TestCredentialVerifier_NilProfile(t *testing.T) {
	verifier := NewHashVerifier(NewBcryptHasherWithCost(MinBcryptCost, newDiscardLogger()))

	assert.False(t, verifier.Verify(context.Background(), nil, "s3cret!"))
}
