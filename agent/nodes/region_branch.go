package orchestratornode

import (
	"context"

	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
)

// RegionBranch routes EU customers through the compliance stage. Any other
// region, including malformed values, takes the direct path.
func RegionBranch(ctx context.Context, in *GraphState) (string, error) {
	if err := requireState(in); err != nil {
		return "", err
	}
	if err := checkpoint(ctx, "region_branch"); err != nil {
		return "", err
	}
	if in.Region == contractx.RegionEU {
		return NodeComplianceAccess, nil
	}
	return NodeDirectAccess, nil
}
