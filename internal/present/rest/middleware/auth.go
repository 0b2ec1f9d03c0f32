package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/fablestream/fablestream/internal/domain"
	"github.com/fablestream/fablestream/internal/present/rest/presenter"
	"github.com/fablestream/fablestream/internal/service"
)

var tracer = otel.Tracer("auth")

type AuthMiddleware struct {
	auth *service.AuthService
}

func NewAuthMiddleware(auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Required rejects the request unless a valid bearer token is presented.
// Every rejection carries the same status and body regardless of whether the
// token was missing, malformed, expired, or badly signed.
func (m *AuthMiddleware) Required(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.Required")
		defer span.End()

		token := bearerToken(c)
		if token == "" {
			return presenter.Unauthorized(c)
		}

		identity, err := m.auth.Authenticate(ctx, token)
		if err != nil {
			span.RecordError(err)
			return presenter.Unauthorized(c)
		}

		ctx = context.WithValue(ctx, domain.IdentityCtxKey, identity)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// Optional resolves an identity when a valid token is presented and proceeds
// anonymously otherwise. An invalid token is treated the same as no token.
func (m *AuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.Optional")
		defer span.End()

		token := bearerToken(c)
		if token == "" {
			return next(c)
		}

		identity, err := m.auth.Authenticate(ctx, token)
		if err != nil {
			span.RecordError(err)
			return next(c)
		}

		ctx = context.WithValue(ctx, domain.IdentityCtxKey, identity)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
