package reasoning

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
)

var errEmptyReply = errors.New("endpoint returned an empty reply")

type endpointImpl struct {
	stage   contractx.Stage
	address string
	runner  compose.Runnable[map[string]any, *schema.Message]
}

var _ contractx.ReasoningEndpoint = (*endpointImpl)(nil)

// NewEndpoint wraps chatModel as the reasoning endpoint of stage. address is
// only reported, the model already knows where to connect.
func NewEndpoint(
	ctx context.Context,
	stage contractx.Stage,
	address string,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
) (contractx.ReasoningEndpoint, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("%w: chat model is required for stage=%s", contractx.ErrValidation, stage)
	}
	if strings.TrimSpace(systemPrompt) == "" {
		return nil, fmt.Errorf("%w: stage=%s", contractx.ErrPromptMissing, stage)
	}

	graphName := "endpoint." + strings.ToLower(string(stage))
	runner, err := compileEndpointGraph(ctx, chatModel, systemPrompt, graphName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contractx.ErrModelInvoke, err)
	}

	return &endpointImpl{
		stage:   stage,
		address: address,
		runner:  runner,
	}, nil
}

func (e *endpointImpl) Address() string {
	return e.address
}

// Send runs one prompt through the endpoint graph. The call is abandoned once
// timeout elapses even if the model ignores its context.
func (e *endpointImpl) Send(ctx context.Context, prompt string, timeout time.Duration) (contractx.EndpointReply, error) {
	if err := ctx.Err(); err != nil {
		return contractx.EndpointReply{}, err
	}

	callCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type result struct {
		msg *schema.Message
		err error
	}
	done := make(chan result, 1)
	start := time.Now()
	go func() {
		msg, err := e.runner.Invoke(callCtx, map[string]any{"input": prompt})
		done <- result{msg: msg, err: err}
	}()

	var res result
	select {
	case res = <-done:
	case <-callCtx.Done():
		res.err = callCtx.Err()
	}
	latency := time.Since(start)

	if res.err == nil && (res.msg == nil || strings.TrimSpace(res.msg.Content) == "") {
		res.err = errEmptyReply
	}
	if res.err != nil {
		return contractx.EndpointReply{Latency: latency}, fmt.Errorf(
			"stage=%s address=%s: %w",
			e.stage, e.address, contractx.ClassifyEndpointError(ctx, res.err),
		)
	}

	return contractx.EndpointReply{
		Text:    strings.TrimSpace(res.msg.Content),
		Latency: latency,
	}, nil
}
