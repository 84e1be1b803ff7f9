package orchestratornode

import (
	"context"
	"fmt"
	"time"

	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
	promptx "github.com/tanpawarit/global-support-collab/agent/prompt"
)

// ComplianceAccess hands the query to the compliance endpoint and decides how
// much of the record may be used. The consent flag always comes from the
// directory, never from the endpoint narrative.
func ComplianceAccess(
	ctx context.Context,
	in *GraphState,
	endpoint contractx.ReasoningEndpoint,
	timeout time.Duration,
) (*GraphState, error) {
	if err := requireState(in); err != nil {
		return nil, err
	}
	if err := checkpoint(ctx, NodeComplianceAccess); err != nil {
		return nil, err
	}

	q, c := in.Query, in.Customer
	in.record(ctx, contractx.StageHome, contractx.PhaseHandoff,
		"Requesting EU agent collaboration for GDPR compliance. Establishing secure handoff to the EU compliance endpoint...",
		nil,
	)

	prompt, err := promptx.ComplianceTask(q, c, in.HomeSummary)
	if err != nil {
		return nil, err
	}
	narrative, ok, err := callEndpoint(ctx, in, contractx.StageCompliance, endpoint, prompt, timeout)
	if err != nil {
		return nil, err
	}

	in.Consent = contractx.ConsentFor(c)

	var (
		message string
		access  contractx.DataAccess
	)
	switch in.Consent {
	case contractx.ConsentGranted:
		message = fmt.Sprintf("GDPR consent verified for %s. Customer data accessed from the EU directory in compliance with GDPR.", c.ID)
		access = contractx.DataAccess{
			GDPRCheck: true,
			Access:    contractx.AccessCompliant,
			Profile:   contractx.ExcerptOf(c, true),
		}
	default:
		message = fmt.Sprintf("GDPR consent not on file for %s. Access restricted to non-personal account data, purchase history withheld.", c.ID)
		access = contractx.DataAccess{
			GDPRCheck: false,
			Access:    contractx.AccessRestricted,
			Profile:   contractx.ExcerptOf(c, false),
		}
	}
	if ok {
		message += " Compliance review: " + excerpt(narrative)
	}

	in.record(ctx, contractx.StageCompliance, contractx.PhaseDataAccess, message, access)
	return in, nil
}
