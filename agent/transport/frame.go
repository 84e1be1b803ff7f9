package transport

import (
	"encoding/json"
	"errors"
	"fmt"

	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
)

const internalErrorMessage = "Internal server error"

// Frame is one event on the wire.
type Frame struct {
	Type          contractx.EventType            `json:"type"`
	Step          *contractx.CollaborationStep   `json:"step,omitempty"`
	Collaboration *contractx.CollaborationResult `json:"collaboration,omitempty"`
	Error         string                         `json:"error,omitempty"`
}

// FrameOf converts a run event into its wire frame.
func FrameOf(ev contractx.Event) (Frame, error) {
	switch ev.Type {
	case contractx.EventStep:
		if ev.Step == nil {
			return Frame{}, fmt.Errorf("%w: step event without step", contractx.ErrValidation)
		}
		return Frame{Type: ev.Type, Step: ev.Step}, nil
	case contractx.EventComplete:
		if ev.Result == nil {
			return Frame{}, fmt.Errorf("%w: complete event without result", contractx.ErrValidation)
		}
		return Frame{Type: ev.Type, Collaboration: ev.Result}, nil
	case contractx.EventError:
		return ErrorFrame(ev.Err), nil
	default:
		return Frame{}, fmt.Errorf("%w: unknown event type %q", contractx.ErrValidation, ev.Type)
	}
}

// ErrorFrame builds the terminal error frame. Only errors meant for the
// caller keep their text.
func ErrorFrame(err error) Frame {
	return Frame{Type: contractx.EventError, Error: PublicMessage(err)}
}

func PublicMessage(err error) string {
	switch {
	case errors.Is(err, contractx.ErrCustomerNotFound):
		return contractx.ErrCustomerNotFound.Error()
	default:
		return internalErrorMessage
	}
}

// Encode renders f as a "data: <json>" block followed by a blank line.
func Encode(f Frame) ([]byte, error) {
	payload, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("marshal frame: %w", err)
	}
	out := make([]byte, 0, len(payload)+8)
	out = append(out, "data: "...)
	out = append(out, payload...)
	out = append(out, "\n\n"...)
	return out, nil
}
