package prompt

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/slongfield/pyfmt"
	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
)

var (
	//go:embed template/home.txt
	homeRaw string

	//go:embed template/compliance.txt
	complianceRaw string

	//go:embed template/home_task.txt
	homeTaskRaw string

	//go:embed template/compliance_task.txt
	complianceTaskRaw string
)

// PromptSet holds the system prompt of each reasoning endpoint. System prompts
// go through an FString chat template, so they must not contain braces.
type PromptSet struct {
	Home       string
	Compliance string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Home:       strings.TrimSpace(homeRaw),
		Compliance: strings.TrimSpace(complianceRaw),
	}
}

// For returns the system prompt of stage.
func (p PromptSet) For(stage contractx.Stage) (string, error) {
	var s string
	switch stage {
	case contractx.StageHome:
		s = p.Home
	case contractx.StageCompliance:
		s = p.Compliance
	}
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w: stage=%s", contractx.ErrPromptMissing, stage)
	}
	if strings.ContainsAny(s, "{}") {
		return "", fmt.Errorf("%w: system prompt for stage=%s contains template braces", contractx.ErrValidation, stage)
	}
	return s, nil
}

// HomeTask renders the analysis request sent to the home endpoint.
func HomeTask(q contractx.Query, c contractx.Customer) (string, error) {
	out, err := pyfmt.Fmt(strings.TrimSpace(homeTaskRaw), map[string]any{
		"name":     c.Name,
		"region":   string(contractx.NormalizeRegion(c.Region)),
		"tier":     string(c.Tier),
		"language": c.Language,
		"message":  q.Message,
		"category": string(q.Category),
		"priority": string(q.Priority),
	})
	if err != nil {
		return "", fmt.Errorf("%w: render home task: %v", contractx.ErrValidation, err)
	}
	return out, nil
}

// ComplianceTask renders the GDPR-scoped request sent to the compliance
// endpoint. homeSummary is the excerpt of the home narrative, possibly empty.
func ComplianceTask(q contractx.Query, c contractx.Customer, homeSummary string) (string, error) {
	if strings.TrimSpace(homeSummary) == "" {
		homeSummary = "not available"
	}
	out, err := pyfmt.Fmt(strings.TrimSpace(complianceTaskRaw), map[string]any{
		"name":         c.Name,
		"region":       string(contractx.NormalizeRegion(c.Region)),
		"tier":         string(c.Tier),
		"language":     c.Language,
		"consent":      strconv.FormatBool(c.GDPRConsent),
		"message":      q.Message,
		"home_summary": homeSummary,
	})
	if err != nil {
		return "", fmt.Errorf("%w: render compliance task: %v", contractx.ErrValidation, err)
	}
	return out, nil
}
