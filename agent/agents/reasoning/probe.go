package reasoning

import (
	"context"
	"fmt"
	"time"

	openaisdk "github.com/openai/openai-go"
	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
	llmx "github.com/tanpawarit/global-support-collab/agent/llm"
	openaicompatx "github.com/tanpawarit/global-support-collab/pkg/openaicompat"
)

// Prober checks whether the service behind each stage answers at all. It lists
// models instead of generating text so a probe costs nothing.
type Prober struct {
	clients map[contractx.Stage]*openaisdk.Client
	timeout time.Duration
}

func NewProber(cfg llmx.Config, timeout time.Duration) *Prober {
	p := &Prober{
		clients: make(map[contractx.Stage]*openaisdk.Client, 2),
		timeout: timeout,
	}
	for _, stage := range []contractx.Stage{contractx.StageHome, contractx.StageCompliance} {
		endpointCfg := cfg.EndpointFor(stage)
		if c := openaicompatx.NewClient(endpointCfg); c != nil {
			p.clients[stage] = c
		}
	}
	return p
}

func (p *Prober) Probe(ctx context.Context, stage contractx.Stage) error {
	client, ok := p.clients[stage]
	if !ok {
		return fmt.Errorf("%w: no client configured for stage=%s", contractx.ErrEndpointTransport, stage)
	}
	probeCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	if _, err := client.Models.List(probeCtx); err != nil {
		return contractx.ClassifyEndpointError(ctx, err)
	}
	return nil
}
