package orchestratornode

import (
	"context"
	"fmt"
	"time"

	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
	promptx "github.com/tanpawarit/global-support-collab/agent/prompt"
)

func HomeAnalysis(
	ctx context.Context,
	in *GraphState,
	endpoint contractx.ReasoningEndpoint,
	timeout time.Duration,
) (*GraphState, error) {
	if err := requireState(in); err != nil {
		return nil, err
	}
	if err := checkpoint(ctx, NodeHomeAnalysis); err != nil {
		return nil, err
	}

	q, c := in.Query, in.Customer
	in.record(ctx, contractx.StageHome, contractx.PhaseAnalysis,
		fmt.Sprintf("Analyzing query from %s (%s): %s issue with %s priority. Calling home reasoning endpoint...",
			c.Name, in.Region, q.Category, q.Priority),
		contractx.QueryAnalysis{
			Category:       q.Category,
			Priority:       q.Priority,
			CustomerRegion: in.Region,
		},
	)

	prompt, err := promptx.HomeTask(q, c)
	if err != nil {
		return nil, err
	}

	text, ok, err := callEndpoint(ctx, in, contractx.StageHome, endpoint, prompt, timeout)
	if err != nil {
		return nil, err
	}
	if ok {
		in.HomeSummary = excerpt(text)
	} else {
		in.HomeSummary = localSummary(q, c, in.Region)
	}
	return in, nil
}
