package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fablestream/fablestream/internal/config"
	"github.com/fablestream/fablestream/jwt"
)

type mockProvider struct {
	active bool
	err    error
	calls  int
}

func (m *mockProvider) CheckSubject(ctx context.Context, subject string) (bool, error) {
	m.calls++
	return m.active, m.err
}

func testAuthConfig() *config.Auth {
	return &config.Auth{
		JWTSecret:          "test-secret",
		TokenExpiryMinutes: 60,
	}
}

func TestAuthenticateWithoutProvider(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), nil)
	subject := uuid.New()

	token, err := svc.MintToken(subject, "a@example.com")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	identity, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if identity.Subject != subject {
		t.Fatalf("expected subject %s got %s", subject, identity.Subject)
	}
	if identity.ProviderVerified {
		t.Fatalf("expected unverified identity when no provider is configured")
	}
}

func TestAuthenticateProviderConfirms(t *testing.T) {
	provider := &mockProvider{active: true}
	svc := NewAuthService(testAuthConfig(), provider)

	token, err := svc.MintToken(uuid.New(), "a@example.com")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	identity, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if !identity.ProviderVerified {
		t.Fatalf("expected verified identity")
	}
	if provider.calls != 1 {
		t.Fatalf("expected one provider call got %d", provider.calls)
	}
}

func TestAuthenticateProviderFailureDegrades(t *testing.T) {
	provider := &mockProvider{err: errors.New("connection refused")}
	svc := NewAuthService(testAuthConfig(), provider)

	token, err := svc.MintToken(uuid.New(), "a@example.com")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	identity, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("expected graceful degradation, got error: %v", err)
	}
	if identity.ProviderVerified {
		t.Fatalf("expected ProviderVerified=false after provider failure")
	}
}

func TestAuthenticateRejectsNonUUIDSubject(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), nil)

	token, err := jwt.Create("not-a-uuid", "a@example.com", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.Authenticate(context.Background(), token)
	if !errors.Is(err, jwt.ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken got %v", err)
	}
}

func TestAuthenticateRejectsTamperedToken(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), nil)

	token, err := jwt.Create(uuid.New().String(), "a@example.com", "another-secret", time.Hour)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.Authenticate(context.Background(), token)
	if !errors.Is(err, jwt.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken got %v", err)
	}
}
