package auth

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"lifeline/config"
	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"

	"go.uber.org/fx"
)

// hashVerifier checks credentials against the stored bcrypt hash.
type hashVerifier struct {
	hasher service.PasswordHasher
}

func (v *hashVerifier) Verify(_ context.Context, profile *entity.Profile, credential string) bool {
	if profile == nil || credential == "" {
		return false
	}

	return v.hasher.Check(credential, profile.PasswordHash)
}

// devCredentialVerifier additionally accepts one shared development secret.
// It is only ever built for the fallback backend.
type devCredentialVerifier struct {
	next   service.CredentialVerifier
	secret []byte
	logger *slog.Logger
}

func (v *devCredentialVerifier) Verify(ctx context.Context, profile *entity.Profile, credential string) bool {
	if profile == nil || credential == "" {
		return false
	}

	if subtle.ConstantTimeCompare([]byte(credential), v.secret) == 1 {
		v.logger.WarnContext(ctx, "Profile unlocked with development credential",
			slog.String("profile_id", profile.ID),
		)

		return true
	}

	return v.next.Verify(ctx, profile, credential)
}

// VerifierParams holds dependencies for the credential verifier, injected by Fx.
type VerifierParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Backend repository.Backend
	Hasher  service.PasswordHasher
}

// NewCredentialVerifier picks the verification policy for the selected backend.
func NewCredentialVerifier(params VerifierParams) service.CredentialVerifier {
	verifier := NewHashVerifier(params.Hasher)

	if params.Backend != repository.BackendFallback || params.Config == nil || params.Config.Fallback == nil {
		return verifier
	}

	secret := params.Config.Fallback.DevCredential
	if secret == "" {
		return verifier
	}

	params.Logger.Warn("Development credential enabled for the fallback backend; every profile accepts it")

	return &devCredentialVerifier{
		next:   verifier,
		secret: []byte(secret),
		logger: params.Logger,
	}
}

// NewHashVerifier returns the verifier used by the durable backend.
func NewHashVerifier(hasher service.PasswordHasher) service.CredentialVerifier {
	return &hashVerifier{hasher: hasher}
}
