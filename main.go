package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	orchestratorx "github.com/tanpawarit/global-support-collab/agent/agents/orchestrator"
	reasoningx "github.com/tanpawarit/global-support-collab/agent/agents/reasoning"
	directoryx "github.com/tanpawarit/global-support-collab/agent/directory"
	handlerx "github.com/tanpawarit/global-support-collab/agent/handler"
	llmx "github.com/tanpawarit/global-support-collab/agent/llm"
	synthx "github.com/tanpawarit/global-support-collab/agent/synth"
	configx "github.com/tanpawarit/global-support-collab/pkg/config"
	_ "github.com/tanpawarit/global-support-collab/pkg/logger/autoload"
	serverx "github.com/tanpawarit/global-support-collab/pkg/server"
	telemetryx "github.com/tanpawarit/global-support-collab/pkg/telemetry"
)

type AppConfig struct {
	ServiceName  string        `split_words:"true" default:"global-support-collab"`
	Tracing      bool          `default:"false"`
	ProbeTimeout time.Duration `split_words:"true" default:"3s"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("service stopped")
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appCfg := configx.MustNew[AppConfig]("APP")

	if appCfg.Tracing {
		shutdownTracer, err := telemetryx.InitTracer(appCfg.ServiceName, nil)
		if err != nil {
			return err
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracer(flushCtx); err != nil {
				log.Warn().Err(err).Msg("tracer shutdown failed")
			}
		}()
	}

	directoryCfg := configx.MustNew[directoryx.Config]("DIRECTORY")
	directory, closeDirectory, err := directoryx.Open(ctx, *directoryCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeDirectory(); err != nil {
			log.Warn().Err(err).Msg("close customer directory")
		}
	}()

	llmCfg := configx.MustNew[llmx.Config]("LLM")
	registry, err := reasoningx.NewRegistry(ctx, *llmCfg)
	if err != nil {
		return err
	}
	prober := reasoningx.NewProber(*llmCfg, appCfg.ProbeTimeout)

	collabCfg := configx.MustNew[orchestratorx.Config]("COLLAB")
	orchestrator, err := orchestratorx.New(directory, registry, synthx.Synthesize, *collabCfg)
	if err != nil {
		return err
	}

	handler, err := handlerx.New(directory, orchestrator, registry, prober)
	if err != nil {
		return err
	}

	serverCfg := configx.MustNew[serverx.Config]("HTTP")
	srv := serverx.New(*serverCfg, appCfg.ServiceName, log.Logger)
	handler.Mount(srv.Router, serverCfg.RequestTimeout)

	log.Info().
		Str("home_endpoint", registry.Home().Address()).
		Str("compliance_endpoint", registry.Compliance().Address()).
		Dur("stage_timeout", collabCfg.StageTimeout).
		Msg("collaboration service ready")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		return srv.Shutdown(context.Background())
	})
	return g.Wait()
}
