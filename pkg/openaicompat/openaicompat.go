package openaicompat

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openaimodel "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ModelBuilder creates the chat model backing one reasoning endpoint.
type ModelBuilder interface {
	New(ctx context.Context) (model.BaseChatModel, error)
}

var _ ModelBuilder = (*Config)(nil)

// Config describes one OpenAI-compatible endpoint. Each reasoning endpoint
// gets its own Config, so the home and compliance services can live behind
// different base URLs.
type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" required:"true"`
	MaxCompletionToken *int          `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"600"`
	Temperature        float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.3"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
}

// Address is the endpoint base URL without a trailing slash.
func (c Config) Address() string {
	return strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
}

func (c *Config) New(ctx context.Context) (model.BaseChatModel, error) {
	temperature := c.Temperature
	conf := &openaimodel.ChatModelConfig{
		BaseURL:     c.Address(),
		APIKey:      strings.TrimSpace(c.APIKey),
		Model:       strings.TrimSpace(c.Model),
		MaxTokens:   c.MaxCompletionToken,
		Temperature: &temperature,
		Timeout:     c.Timeout,
		HTTPClient:  instrumentedClient(c.Timeout),
	}

	m, err := openaimodel.NewChatModel(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("openaicompat: create chat model for %s: %w", conf.BaseURL, err)
	}
	return m, nil
}

// NewClient creates an OpenAI SDK client pointed at the same endpoint. It is
// used for cheap reachability probes rather than generation.
func NewClient(cfg Config) *openaisdk.Client {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil
	}

	opts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		option.WithHTTPClient(instrumentedClient(cfg.Timeout)),
		option.WithMaxRetries(0),
	}
	if addr := cfg.Address(); addr != "" {
		opts = append(opts, option.WithBaseURL(addr))
	}

	client := openaisdk.NewClient(opts...)
	return &client
}

func instrumentedClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}
