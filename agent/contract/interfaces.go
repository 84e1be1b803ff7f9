package contract

import (
	"context"
	"time"
)

// CustomerDirectory is the read-only customer lookup. Get returns
// ErrCustomerNotFound for unknown ids.
type CustomerDirectory interface {
	Get(ctx context.Context, customerID string) (Customer, error)
	List(ctx context.Context, region Region) ([]Customer, error)
}

// ReasoningEndpoint sends one prompt to a remote narrative service. Failures
// are reported as ErrEndpointTimeout or ErrEndpointTransport.
type ReasoningEndpoint interface {
	Send(ctx context.Context, prompt string, timeout time.Duration) (EndpointReply, error)
	Address() string
}

type Registry interface {
	Home() ReasoningEndpoint
	Compliance() ReasoningEndpoint
}

// Synthesizer builds the final reply. Implementations must be pure.
type Synthesizer func(q Query, c Customer, consent Consent) Reply
