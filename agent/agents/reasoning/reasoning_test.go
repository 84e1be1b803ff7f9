package reasoning

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
	llmx "github.com/tanpawarit/global-support-collab/agent/llm"
)

type fakeChatModel struct {
	mu        sync.Mutex
	reply     string
	err       error
	block     bool
	ignoreCtx bool
	inputs    [][]*schema.Message
}

func (f *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error) {
	f.mu.Lock()
	f.inputs = append(f.inputs, input)
	f.mu.Unlock()

	if f.block {
		if f.ignoreCtx {
			time.Sleep(2 * time.Second)
			return schema.AssistantMessage("late", nil), nil
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.reply, nil), nil
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not implemented in fake model")
}

func (f *fakeChatModel) lastInput() []*schema.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.inputs) == 0 {
		return nil
	}
	return f.inputs[len(f.inputs)-1]
}

func newTestEndpoint(t *testing.T, m *fakeChatModel) contractx.ReasoningEndpoint {
	t.Helper()
	ep, err := NewEndpoint(context.Background(), contractx.StageHome, "http://home.test/v1", m, "You analyze support queries.")
	if err != nil {
		t.Fatalf("NewEndpoint() error = %v", err)
	}
	return ep
}

func TestSendSuccess(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{reply: "  Technical issue, no EU handoff needed.  "}
	ep := newTestEndpoint(t, fake)

	reply, err := ep.Send(context.Background(), "Customer: Sarah {not a placeholder}", time.Second)
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if reply.Text != "Technical issue, no EU handoff needed." {
		t.Fatalf("unexpected text: %q", reply.Text)
	}
	if reply.Latency < 0 {
		t.Fatalf("negative latency")
	}

	in := fake.lastInput()
	if len(in) != 2 || in[0].Role != schema.System || in[1].Role != schema.User {
		t.Fatalf("unexpected messages: %+v", in)
	}
	if !strings.Contains(in[1].Content, "{not a placeholder}") {
		t.Fatalf("prompt was altered by templating: %q", in[1].Content)
	}
	if ep.Address() != "http://home.test/v1" {
		t.Fatalf("unexpected address: %s", ep.Address())
	}
}

func TestSendClassifiesTransportFailure(t *testing.T) {
	t.Parallel()

	ep := newTestEndpoint(t, &fakeChatModel{err: errors.New("connection refused")})

	_, err := ep.Send(context.Background(), "hi", time.Second)
	if !errors.Is(err, contractx.ErrEndpointTransport) {
		t.Fatalf("expected ErrEndpointTransport, got %v", err)
	}
}

func TestSendEmptyReplyIsTransportFailure(t *testing.T) {
	t.Parallel()

	ep := newTestEndpoint(t, &fakeChatModel{reply: "   "})

	_, err := ep.Send(context.Background(), "hi", time.Second)
	if !errors.Is(err, contractx.ErrEndpointTransport) {
		t.Fatalf("expected ErrEndpointTransport, got %v", err)
	}
}

func TestSendTimeout(t *testing.T) {
	t.Parallel()

	ep := newTestEndpoint(t, &fakeChatModel{block: true})

	_, err := ep.Send(context.Background(), "hi", 20*time.Millisecond)
	if !errors.Is(err, contractx.ErrEndpointTimeout) {
		t.Fatalf("expected ErrEndpointTimeout, got %v", err)
	}
}

func TestSendTimeoutWhenModelIgnoresContext(t *testing.T) {
	t.Parallel()

	ep := newTestEndpoint(t, &fakeChatModel{block: true, ignoreCtx: true})

	start := time.Now()
	_, err := ep.Send(context.Background(), "hi", 30*time.Millisecond)
	if !errors.Is(err, contractx.ErrEndpointTimeout) {
		t.Fatalf("expected ErrEndpointTimeout, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("Send did not return at the timeout")
	}
}

func TestSendCallerCancellationIsNotDegradation(t *testing.T) {
	t.Parallel()

	ep := newTestEndpoint(t, &fakeChatModel{block: true})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := ep.Send(ctx, "hi", time.Second)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if contractx.IsDegradation(err) {
		t.Fatalf("caller cancellation must not be a degradation")
	}
}

func TestNewEndpointValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewEndpoint(context.Background(), contractx.StageHome, "", nil, "x"); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := NewEndpoint(context.Background(), contractx.StageHome, "", &fakeChatModel{}, " "); !errors.Is(err, contractx.ErrPromptMissing) {
		t.Fatalf("expected ErrPromptMissing, got %v", err)
	}
}

func TestStaticRegistry(t *testing.T) {
	t.Parallel()

	home := newTestEndpoint(t, &fakeChatModel{reply: "a"})
	if _, err := NewStaticRegistry(home, nil); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	reg, err := NewStaticRegistry(home, home)
	if err != nil {
		t.Fatalf("NewStaticRegistry() error = %v", err)
	}
	if reg.Home() != home || reg.Compliance() != home {
		t.Fatalf("registry returned unexpected endpoints")
	}
}

func TestProber(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models") {
			http.NotFound(w, r)
			return
		}
		if strings.HasPrefix(r.URL.Path, "/eu/") {
			http.Error(w, `{"error":{"message":"down"}}`, http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","data":[{"id":"m","object":"model","created":0,"owned_by":"test"}]}`))
	}))
	defer srv.Close()

	cfg := llmx.Config{
		BaseURL:               srv.URL + "/us/v1",
		APIKey:                "k",
		Model:                 "m",
		Timeout:               time.Second,
		HomeTemperature:       -1,
		ComplianceBaseURL:     srv.URL + "/eu/v1",
		ComplianceTemperature: -1,
	}
	p := NewProber(cfg, time.Second)

	if err := p.Probe(context.Background(), contractx.StageHome); err != nil {
		t.Fatalf("home probe error = %v", err)
	}
	if err := p.Probe(context.Background(), contractx.StageCompliance); !contractx.IsDegradation(err) {
		t.Fatalf("expected compliance probe failure, got %v", err)
	}
}
