package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloudwego/eino/compose"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
	nodex "github.com/tanpawarit/global-support-collab/agent/nodes"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("github.com/tanpawarit/global-support-collab/agent/agents/orchestrator")

type Config struct {
	// StageTimeout bounds each reasoning endpoint call.
	StageTimeout  time.Duration `envconfig:"STAGE_TIMEOUT" split_words:"true" default:"20s"`
	StreamBuffer  int           `envconfig:"STREAM_BUFFER" split_words:"true" default:"32"`
	FlushInterval time.Duration `envconfig:"FLUSH_INTERVAL" split_words:"true" default:"250ms"`
}

func (c Config) Validate() error {
	if c.StageTimeout <= 0 {
		return fmt.Errorf("%w: stage timeout must be positive", contractx.ErrValidation)
	}
	if c.StreamBuffer < 1 {
		return fmt.Errorf("%w: stream buffer must hold at least one event", contractx.ErrValidation)
	}
	if c.FlushInterval <= 0 {
		return fmt.Errorf("%w: flush interval must be positive", contractx.ErrValidation)
	}
	return nil
}

type Orchestrator struct {
	directory contractx.CustomerDirectory
	registry  contractx.Registry
	synth     contractx.Synthesizer

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	stageTimeout  time.Duration
	streamBuffer  int
	flushInterval time.Duration

	now   func() time.Time
	newID func() string
}

func New(
	directory contractx.CustomerDirectory,
	registry contractx.Registry,
	synth contractx.Synthesizer,
	cfg Config,
) (*Orchestrator, error) {
	if directory == nil {
		return nil, errors.New("customer directory is required")
	}
	if registry == nil || registry.Home() == nil || registry.Compliance() == nil {
		return nil, errors.New("reasoning endpoint registry is required")
	}
	if synth == nil {
		return nil, errors.New("synthesizer is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &Orchestrator{
		directory:     directory,
		registry:      registry,
		synth:         synth,
		stageTimeout:  cfg.StageTimeout,
		streamBuffer:  cfg.StreamBuffer,
		flushInterval: cfg.FlushInterval,
		now:           time.Now,
		newID: func() string {
			return "collab-" + uuid.NewString()
		},
	}

	graphRunner, err := o.compileCollaborationGraph(context.Background())
	if err != nil {
		return nil, err
	}
	o.graphRunner = graphRunner

	return o, nil
}

// Run starts one collaboration in the background. Steps are delivered on
// Events as they are produced, followed by exactly one complete or error
// event. Cancelling ctx stops the run at the next stage transition; the
// channel is then closed without a terminal event.
func (o *Orchestrator) Run(ctx context.Context, q contractx.Query) *Run {
	if q.CreatedAt.IsZero() {
		q.CreatedAt = o.now().UTC()
	}

	runCtx, cancel := context.WithCancel(ctx)
	r := newRun(q.ID, cancel, o.streamBuffer, o.flushInterval)
	go o.execute(runCtx, r, q)
	return r
}

// Process drives a run to the end and returns its result.
func (o *Orchestrator) Process(ctx context.Context, q contractx.Query) (contractx.CollaborationResult, contractx.Customer, error) {
	r := o.Run(ctx, q)
	for range r.Events() {
	}
	return r.Wait()
}

func (o *Orchestrator) execute(ctx context.Context, r *Run, q contractx.Query) {
	defer r.finish()

	logger := zerolog.Ctx(ctx).With().
		Str("query_id", q.ID).
		Str("customer_id", q.CustomerID).
		Logger()
	ctx = logger.WithContext(ctx)

	ctx, span := tracer.Start(ctx, "collab.run")
	defer span.End()
	span.SetAttributes(
		attribute.String("query.id", q.ID),
		attribute.String("customer.id", q.CustomerID),
		attribute.String("query.category", string(q.Category)),
	)

	logger.Info().Str("category", string(q.Category)).Str("priority", string(q.Priority)).Msg("collaboration started")

	out, err := o.graphRunner.Invoke(ctx, nodex.GraphInput{
		Query: q,
		Emit:  r.emitStep,
	})

	switch {
	case err == nil:
		r.complete(out.Result, out.Customer)
		span.SetAttributes(attribute.Int64("collab.processing_time_ms", out.Result.ProcessingTime))
		logger.Info().
			Str("collaboration_id", out.Result.ID).
			Int64("processing_time", out.Result.ProcessingTime).
			Int("steps", len(out.Result.Steps)).
			Int("dropped_frames", r.Dropped()).
			Msg("collaboration completed")
	case errors.Is(err, contractx.ErrCancelled) || ctx.Err() != nil:
		r.cancelled(err)
		logger.Info().Int("steps", len(r.Steps())).Msg("collaboration cancelled")
	default:
		r.fail(err)
		recordSpanError(span, err)
		if errors.Is(err, contractx.ErrCustomerNotFound) {
			logger.Info().Err(err).Msg("collaboration rejected")
		} else {
			logger.Error().Err(err).Msg("collaboration failed")
		}
	}
}
