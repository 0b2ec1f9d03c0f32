package gateway

import (
	"context"

	"github.com/fablestream/fablestream/client"
)

// ProviderGateway adapts the provider HTTP client to the auth service's
// IdentityProvider port.
type ProviderGateway struct {
	client *client.Client
}

func NewProviderGateway(cl *client.Client) *ProviderGateway {
	return &ProviderGateway{client: cl}
}

func (g *ProviderGateway) CheckSubject(ctx context.Context, subject string) (bool, error) {
	return g.client.SubjectActive(ctx, subject)
}
