package openaicompat

import (
	"context"
	"testing"
	"time"
)

func TestAddressTrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	cfg := Config{BaseURL: " http://home.internal:8080/v1/ "}
	if got := cfg.Address(); got != "http://home.internal:8080/v1" {
		t.Fatalf("Address() = %q", got)
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Parallel()

	if NewClient(Config{BaseURL: "http://localhost"}) != nil {
		t.Fatalf("expected nil client without api key")
	}
	if NewClient(Config{BaseURL: "http://localhost", APIKey: "k", Timeout: time.Second}) == nil {
		t.Fatalf("expected client")
	}
}

func TestNewBuildsChatModel(t *testing.T) {
	t.Parallel()

	maxTokens := 100
	cfg := &Config{
		BaseURL:            "http://localhost:9999/v1",
		APIKey:             "test-key",
		Model:              "test-model",
		MaxCompletionToken: &maxTokens,
		Temperature:        0.2,
		Timeout:            time.Second,
	}
	m, err := cfg.New(context.Background())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if m == nil {
		t.Fatalf("expected chat model")
	}
}
