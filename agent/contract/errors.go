package contract

import (
	"context"
	"errors"
	"net"
)

var (
	ErrCustomerNotFound  = errors.New("Customer not found")
	ErrEndpointTimeout   = errors.New("reasoning endpoint timed out")
	ErrEndpointTransport = errors.New("reasoning endpoint transport failed")
	ErrCancelled         = errors.New("collaboration run cancelled")
	ErrModelInvoke       = errors.New("model invoke failed")
	ErrPromptMissing     = errors.New("required prompt is missing")
	ErrValidation        = errors.New("validation failed")
)

// ClassifyEndpointError maps a failed endpoint call onto ErrEndpointTimeout or
// ErrEndpointTransport. It returns nil when err is nil, and the caller's own
// context error when the parent context is already done, since that is a
// cancellation rather than an endpoint failure.
func ClassifyEndpointError(parent context.Context, err error) error {
	if err == nil {
		return nil
	}
	if parent != nil && parent.Err() != nil {
		return parent.Err()
	}
	if errors.Is(err, ErrEndpointTimeout) || errors.Is(err, ErrEndpointTransport) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(ErrEndpointTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errors.Join(ErrEndpointTimeout, err)
	}
	return errors.Join(ErrEndpointTransport, err)
}

// IsDegradation reports whether err is a recoverable endpoint failure.
func IsDegradation(err error) bool {
	return errors.Is(err, ErrEndpointTimeout) || errors.Is(err, ErrEndpointTransport)
}
