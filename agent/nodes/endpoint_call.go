package orchestratornode

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
)

// callEndpoint sends prompt to endpoint. Recoverable failures are recorded as
// a degraded step and reported with ok=false so the caller can fall back to
// local text. A cancelled run is returned as an error.
func callEndpoint(
	ctx context.Context,
	in *GraphState,
	stage contractx.Stage,
	endpoint contractx.ReasoningEndpoint,
	prompt string,
	timeout time.Duration,
) (text string, ok bool, err error) {
	logger := zerolog.Ctx(ctx).With().
		Str("stage", string(stage)).
		Str("address", endpoint.Address()).
		Str("query_id", in.Query.ID).
		Logger()

	reply, sendErr := endpoint.Send(ctx, prompt, timeout)
	if sendErr == nil {
		logger.Debug().Dur("latency", reply.Latency).Msg("reasoning endpoint replied")
		return reply.Text, true, nil
	}
	if err := checkpoint(ctx, string(stage)+" endpoint reply"); err != nil {
		return "", false, err
	}
	if !contractx.IsDegradation(sendErr) {
		return "", false, sendErr
	}

	kind := failureKind(sendErr)
	logger.Warn().Err(sendErr).Str("kind", kind).Dur("latency", reply.Latency).Msg("reasoning endpoint degraded, using local fallback")

	in.markDegraded(stage)
	in.record(ctx, stage, contractx.PhaseDegraded,
		fmt.Sprintf("%s reasoning endpoint unavailable (%s). Continuing with locally derived context.", stage, kind),
		nil,
	)
	return "", false, nil
}
