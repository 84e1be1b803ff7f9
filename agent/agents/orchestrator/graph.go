package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/compose"
	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
	nodex "github.com/tanpawarit/global-support-collab/agent/nodes"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func (o *Orchestrator) compileCollaborationGraph(
	ctx context.Context,
) (compose.Runnable[nodex.GraphInput, nodex.GraphOutput], error) {
	graph := compose.NewGraph[nodex.GraphInput, nodex.GraphOutput]()

	if err := graph.AddLambdaNode(nodex.NodeLookupCustomer,
		compose.InvokableLambda(func(ctx context.Context, in nodex.GraphInput) (*nodex.GraphState, error) {
			ctx, span := tracer.Start(ctx, "collab.lookup_customer")
			defer span.End()
			span.SetAttributes(attribute.String("customer.id", in.Query.CustomerID))

			st, err := nodex.LookupCustomer(ctx, in, o.directory, o.now)
			recordSpanError(span, err)
			return st, err
		}),
	); err != nil {
		return nil, fmt.Errorf("add node %s: %w", nodex.NodeLookupCustomer, err)
	}

	if err := graph.AddLambdaNode(nodex.NodeHomeAnalysis,
		compose.InvokableLambda(o.traced("collab.home_analysis", func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.HomeAnalysis(ctx, in, o.registry.Home(), o.stageTimeout)
		})),
	); err != nil {
		return nil, fmt.Errorf("add node %s: %w", nodex.NodeHomeAnalysis, err)
	}

	if err := graph.AddLambdaNode(nodex.NodeDirectAccess,
		compose.InvokableLambda(o.traced("collab.direct_access", func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.DirectAccess(ctx, in)
		})),
	); err != nil {
		return nil, fmt.Errorf("add node %s: %w", nodex.NodeDirectAccess, err)
	}

	if err := graph.AddLambdaNode(nodex.NodeComplianceAccess,
		compose.InvokableLambda(o.traced("collab.compliance_access", func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.ComplianceAccess(ctx, in, o.registry.Compliance(), o.stageTimeout)
		})),
	); err != nil {
		return nil, fmt.Errorf("add node %s: %w", nodex.NodeComplianceAccess, err)
	}

	if err := graph.AddLambdaNode(nodex.NodeSynthesize,
		compose.InvokableLambda(o.traced("collab.synthesize", func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.Synthesize(ctx, in, o.synth)
		})),
	); err != nil {
		return nil, fmt.Errorf("add node %s: %w", nodex.NodeSynthesize, err)
	}

	if err := graph.AddLambdaNode(nodex.NodeComplete,
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (nodex.GraphOutput, error) {
			return nodex.Complete(ctx, in, o.newID)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node %s: %w", nodex.NodeComplete, err)
	}

	branch := compose.NewGraphBranch(
		func(ctx context.Context, in *nodex.GraphState) (string, error) {
			return nodex.RegionBranch(ctx, in)
		},
		map[string]bool{
			nodex.NodeDirectAccess:     true,
			nodex.NodeComplianceAccess: true,
		},
	)
	if err := graph.AddBranch(nodex.NodeHomeAnalysis, branch); err != nil {
		return nil, fmt.Errorf("add region branch: %w", err)
	}

	edges := [][2]string{
		{compose.START, nodex.NodeLookupCustomer},
		{nodex.NodeLookupCustomer, nodex.NodeHomeAnalysis},
		{nodex.NodeDirectAccess, nodex.NodeSynthesize},
		{nodex.NodeComplianceAccess, nodex.NodeSynthesize},
		{nodex.NodeSynthesize, nodex.NodeComplete},
		{nodex.NodeComplete, compose.END},
	}
	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("orchestrator.collaboration"))
	if err != nil {
		return nil, fmt.Errorf("compile orchestrator graph: %w", err)
	}
	return runner, nil
}

type stageFn = func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error)

// traced wraps a stage node in its own span.
func (o *Orchestrator) traced(name string, fn stageFn) stageFn {
	return func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
		ctx, span := tracer.Start(ctx, name)
		defer span.End()
		if in != nil {
			span.SetAttributes(
				attribute.String("query.id", in.Query.ID),
				attribute.String("customer.region", string(in.Region)),
			)
		}

		out, err := fn(ctx, in)
		if out != nil && len(out.Degraded) > 0 {
			span.SetAttributes(attribute.Int("collab.degraded_stages", len(out.Degraded)))
		}
		recordSpanError(span, err)
		return out, err
	}
}

func recordSpanError(span trace.Span, err error) {
	if err == nil || errors.Is(err, contractx.ErrCancelled) {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
