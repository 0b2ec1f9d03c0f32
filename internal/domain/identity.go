package domain

import "github.com/google/uuid"

// Identity is the resolved per-request user context. Immutable once built;
// never persisted by this layer.
type Identity struct {
	Subject          uuid.UUID `json:"subject"`
	Email            string    `json:"email"`
	ProviderVerified bool      `json:"provider_verified"`
}
