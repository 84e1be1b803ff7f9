package orchestratornode

import (
	"context"

	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
)

func Complete(ctx context.Context, in *GraphState, newID func() string) (GraphOutput, error) {
	if err := requireState(in); err != nil {
		return GraphOutput{}, err
	}
	if err := checkpoint(ctx, NodeComplete); err != nil {
		return GraphOutput{}, err
	}

	elapsed := in.now().Sub(in.Started).Milliseconds()
	if elapsed < 0 {
		elapsed = 0
	}

	return GraphOutput{
		Result: contractx.CollaborationResult{
			ID:             newID(),
			QueryID:        in.Query.ID,
			Steps:          append([]contractx.CollaborationStep(nil), in.Steps...),
			FinalResponse:  in.Reply.Text,
			ProcessingTime: elapsed,
			Features:       in.Reply.Features,
			Degraded:       append([]contractx.Stage(nil), in.Degraded...),
		},
		Customer: in.Customer,
	}, nil
}
