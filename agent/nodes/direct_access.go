package orchestratornode

import (
	"context"
	"fmt"

	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
)

const directorySource = "us_directory"

func DirectAccess(ctx context.Context, in *GraphState) (*GraphState, error) {
	if err := requireState(in); err != nil {
		return nil, err
	}
	if err := checkpoint(ctx, NodeDirectAccess); err != nil {
		return nil, err
	}

	c := in.Customer
	in.Consent = contractx.ConsentNotApplicable
	in.record(ctx, contractx.StageHome, contractx.PhaseDirectAccess,
		fmt.Sprintf("Accessing profile of %s directly from the US customer directory. No cross-region transfer required.", c.ID),
		contractx.CustomerProfile{
			Profile: contractx.ExcerptOf(c, true),
			Source:  directorySource,
		},
	)
	return in, nil
}
