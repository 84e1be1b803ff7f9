package orchestratornode

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
)

func Synthesize(ctx context.Context, in *GraphState, synth contractx.Synthesizer) (*GraphState, error) {
	if err := requireState(in); err != nil {
		return nil, err
	}
	if err := checkpoint(ctx, NodeSynthesize); err != nil {
		return nil, err
	}

	reply := synth(in.Query, in.Customer, in.Consent)
	if strings.TrimSpace(reply.Text) == "" {
		return nil, fmt.Errorf("%w: synthesizer returned empty text", contractx.ErrValidation)
	}
	in.Reply = reply

	compliance := "US"
	if in.Region == contractx.RegionEU {
		compliance = "EU GDPR"
	}
	in.record(ctx, contractx.StageHome, contractx.PhaseSynthesis,
		fmt.Sprintf("Generating personalized response in %s with %s compliance. Home analysis: %s",
			reply.Features.Language, compliance, in.HomeSummary),
		contractx.ResolutionPath{
			Path:                reply.Features.ResolutionPath,
			EstimatedResolution: reply.Features.SLAEstimate,
		},
	)
	return in, nil
}
