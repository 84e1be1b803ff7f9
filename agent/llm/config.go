package llm

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
	openaicompatx "github.com/tanpawarit/global-support-collab/pkg/openaicompat"
)

// Config holds the shared endpoint defaults plus per-stage overrides. Each
// stage may point at its own base URL so the home and compliance services can
// run in different regions.
type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" required:"true"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"600"`
	Temperature        float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.3"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`

	HomeBaseURL           string  `envconfig:"HOME_BASE_URL" split_words:"true"`
	HomeAPIKey            string  `envconfig:"HOME_API_KEY" split_words:"true"`
	HomeModel             string  `envconfig:"HOME_MODEL" split_words:"true"`
	HomeTemperature       float32 `envconfig:"HOME_TEMPERATURE" split_words:"true" default:"-1"`
	ComplianceBaseURL     string  `envconfig:"COMPLIANCE_BASE_URL" split_words:"true"`
	ComplianceAPIKey      string  `envconfig:"COMPLIANCE_API_KEY" split_words:"true"`
	ComplianceModel       string  `envconfig:"COMPLIANCE_MODEL" split_words:"true"`
	ComplianceTemperature float32 `envconfig:"COMPLIANCE_TEMPERATURE" split_words:"true" default:"-1"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: endpoint api key is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: default model is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.BaseURL) == "" && (strings.TrimSpace(c.HomeBaseURL) == "" || strings.TrimSpace(c.ComplianceBaseURL) == "") {
		return fmt.Errorf("%w: base url is required for every stage", contractx.ErrValidation)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", contractx.ErrValidation)
	}
	return nil
}

// EndpointFor resolves the endpoint settings of one stage. Empty overrides and
// negative temperatures inherit the shared defaults.
func (c Config) EndpointFor(stage contractx.Stage) openaicompatx.Config {
	baseURL := strings.TrimSpace(c.BaseURL)
	apiKey := strings.TrimSpace(c.APIKey)
	modelName := strings.TrimSpace(c.Model)
	temp := c.Temperature

	override := func(url, key, model string, t float32) {
		if v := strings.TrimSpace(url); v != "" {
			baseURL = v
		}
		if v := strings.TrimSpace(key); v != "" {
			apiKey = v
		}
		if v := strings.TrimSpace(model); v != "" {
			modelName = v
		}
		if t >= 0 {
			temp = t
		}
	}

	switch stage {
	case contractx.StageHome:
		override(c.HomeBaseURL, c.HomeAPIKey, c.HomeModel, c.HomeTemperature)
	case contractx.StageCompliance:
		override(c.ComplianceBaseURL, c.ComplianceAPIKey, c.ComplianceModel, c.ComplianceTemperature)
	}

	maxCompletionToken := c.MaxCompletionToken
	return openaicompatx.Config{
		BaseURL:            baseURL,
		APIKey:             apiKey,
		Model:              modelName,
		MaxCompletionToken: &maxCompletionToken,
		Temperature:        temp,
		Timeout:            c.Timeout,
	}
}
