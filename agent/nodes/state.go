package orchestratornode

import (
	"context"
	"fmt"
	"time"

	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
)

// Node keys of the collaboration graph. RegionBranch returns one of the two
// access keys.
const (
	NodeLookupCustomer   = "lookup_customer"
	NodeHomeAnalysis     = "home_analysis"
	NodeDirectAccess     = "direct_access"
	NodeComplianceAccess = "compliance_access"
	NodeSynthesize       = "synthesize"
	NodeComplete         = "complete"
)

// Emitter receives each step as soon as a node produces it.
type Emitter func(ctx context.Context, step contractx.CollaborationStep)

type GraphInput struct {
	Query contractx.Query
	Emit  Emitter
}

type GraphOutput struct {
	Result   contractx.CollaborationResult
	Customer contractx.Customer
}

type GraphState struct {
	Query    contractx.Query
	Customer contractx.Customer
	Region   contractx.Region
	Started  time.Time

	HomeSummary string
	Consent     contractx.Consent
	Reply       contractx.Reply
	Degraded    []contractx.Stage

	Steps []contractx.CollaborationStep

	emit Emitter
	now  func() time.Time
}

// record appends step to the audit trail and hands it to the emitter.
func (s *GraphState) record(ctx context.Context, stage contractx.Stage, phase contractx.StepPhase, message string, data contractx.StepData) {
	step := contractx.CollaborationStep{
		Stage:     stage,
		Message:   message,
		Timestamp: s.now().UTC(),
		Data:      data,
		Phase:     phase,
	}
	s.Steps = append(s.Steps, step)
	if s.emit != nil {
		s.emit(ctx, step)
	}
}

func (s *GraphState) markDegraded(stage contractx.Stage) {
	for _, d := range s.Degraded {
		if d == stage {
			return
		}
	}
	s.Degraded = append(s.Degraded, stage)
}

// checkpoint reports a cancellation observed at a stage transition.
func checkpoint(ctx context.Context, node string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: before %s: %v", contractx.ErrCancelled, node, err)
	}
	return nil
}

func requireState(in *GraphState) error {
	if in == nil {
		return fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	return nil
}
