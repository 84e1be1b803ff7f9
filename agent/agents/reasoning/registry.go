package reasoning

import (
	"context"
	"fmt"

	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
	llmx "github.com/tanpawarit/global-support-collab/agent/llm"
	promptx "github.com/tanpawarit/global-support-collab/agent/prompt"
)

type registryImpl struct {
	home       contractx.ReasoningEndpoint
	compliance contractx.ReasoningEndpoint
}

func (r *registryImpl) Home() contractx.ReasoningEndpoint {
	return r.home
}

func (r *registryImpl) Compliance() contractx.ReasoningEndpoint {
	return r.compliance
}

// NewStaticRegistry pairs two already built endpoints.
func NewStaticRegistry(home, compliance contractx.ReasoningEndpoint) (contractx.Registry, error) {
	if home == nil || compliance == nil {
		return nil, fmt.Errorf("%w: both reasoning endpoints are required", contractx.ErrValidation)
	}
	return &registryImpl{home: home, compliance: compliance}, nil
}

func NewRegistry(ctx context.Context, cfg llmx.Config) (contractx.Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prompts := promptx.LoadPromptSet()

	build := func(stage contractx.Stage) (contractx.ReasoningEndpoint, error) {
		systemPrompt, err := prompts.For(stage)
		if err != nil {
			return nil, err
		}
		endpointCfg := cfg.EndpointFor(stage)
		chatModel, err := endpointCfg.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: create %s model: %v", contractx.ErrModelInvoke, stage, err)
		}
		return NewEndpoint(ctx, stage, endpointCfg.Address(), chatModel, systemPrompt)
	}

	home, err := build(contractx.StageHome)
	if err != nil {
		return nil, err
	}
	compliance, err := build(contractx.StageCompliance)
	if err != nil {
		return nil, err
	}

	return NewStaticRegistry(home, compliance)
}
