package transport

import (
	"context"

	"github.com/rs/zerolog"
	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
)

// Source is a running collaboration as seen by the transport.
type Source interface {
	Events() <-chan contractx.Event
	Cancel()
}

// Forward copies the events of src to sw in order until a terminal frame has
// been written. When ctx ends first (the caller went away) or a write fails,
// src is cancelled and nothing more is written. A run that closes its events
// without a terminal event was cancelled and ends the stream silently.
func Forward(ctx context.Context, sw *Writer, src Source) error {
	if err := sw.bind(); err != nil {
		return err
	}
	logger := zerolog.Ctx(ctx)
	sw.Open()

	for {
		select {
		case <-ctx.Done():
			src.Cancel()
			logger.Info().Msg("stream caller disconnected, run cancelled")
			return ctx.Err()
		case ev, ok := <-src.Events():
			if !ok {
				return nil
			}
			frame, err := FrameOf(ev)
			if err != nil {
				src.Cancel()
				_ = sw.WriteFrame(ErrorFrame(err))
				return err
			}
			if err := sw.WriteFrame(frame); err != nil {
				src.Cancel()
				logger.Warn().Err(err).Msg("stream write failed, run cancelled")
				return err
			}
			if ev.Terminal() {
				return nil
			}
		}
	}
}
