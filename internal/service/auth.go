package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"

	"github.com/fablestream/fablestream/internal/config"
	"github.com/fablestream/fablestream/internal/domain"
	"github.com/fablestream/fablestream/jwt"
)

var tracer = otel.Tracer("auth")

// IdentityProvider confirms a subject's account status with the external
// provider. Implementations must bound their own latency.
type IdentityProvider interface {
	CheckSubject(ctx context.Context, subject string) (bool, error)
}

type AuthService struct {
	config   *config.Auth
	provider IdentityProvider
}

// NewAuthService builds the auth service. provider may be nil, in which case
// every identity resolves with ProviderVerified=false and no call is made.
func NewAuthService(config *config.Auth, provider IdentityProvider) *AuthService {
	return &AuthService{
		config:   config,
		provider: provider,
	}
}

// Authenticate verifies a bearer token locally and resolves the acting
// identity. The provider check is enrichment only: local token validity is
// authoritative, and any provider failure collapses to ProviderVerified=false
// rather than failing the request.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.Identity, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.Authenticate")
	defer span.End()

	claims, err := jwt.Verify(token, s.config.JWTSecret)
	if err != nil {
		span.RecordError(err)
		return domain.Identity{}, err
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		span.RecordError(errors.Wrap(err, "subject claim is not a uuid"))
		return domain.Identity{}, jwt.ErrMalformedToken
	}

	identity := domain.Identity{
		Subject: subject,
		Email:   claims.Email,
	}

	if s.provider != nil {
		active, err := s.provider.CheckSubject(ctx, claims.Subject)
		if err != nil {
			span.RecordError(errors.Wrap(err, "provider check failed"))
			log.Warn().Err(err).Str("subject", claims.Subject).
				Msg("identity provider unreachable, proceeding unverified")
			active = false
		}
		identity.ProviderVerified = active
	}

	return identity, nil
}

// MintToken creates a credential for an existing user. Backs the development
// token endpoint only; production credentials come from the provider.
func (s *AuthService) MintToken(subject uuid.UUID, email string) (string, error) {
	ttl := time.Duration(s.config.TokenExpiryMinutes) * time.Minute
	return jwt.Create(subject.String(), email, s.config.JWTSecret, ttl)
}
