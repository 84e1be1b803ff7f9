package logx

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInitWriter(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, Config{Service: "collab"})

	log.Debug().Msg("hidden")
	zerolog.Ctx(context.Background()).Info().Msg("from context")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written at info level:\n%s", out)
	}
	if !strings.Contains(out, `"message":"from context"`) || !strings.Contains(out, `"service":"collab"`) {
		t.Fatalf("context logger did not fall back to the global one:\n%s", out)
	}

	buf.Reset()
	InitWriter(&buf, Config{Debug: true})
	log.Debug().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("debug line missing:\n%s", buf.String())
	}
}
