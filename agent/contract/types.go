package contract

import (
	"strings"
	"time"
)

type Region string

const (
	RegionUS Region = "US"
	RegionEU Region = "EU"
)

// NormalizeRegion folds anything that is not EU onto the direct US path.
func NormalizeRegion(r Region) Region {
	if Region(strings.ToUpper(strings.TrimSpace(string(r)))) == RegionEU {
		return RegionEU
	}
	return RegionUS
}

type Tier string

const (
	TierBronze   Tier = "Bronze"
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
)

type Category string

const (
	CategoryBilling   Category = "billing"
	CategoryTechnical Category = "technical"
	CategoryGeneral   Category = "general"
	CategoryComplaint Category = "complaint"
)

// Known reports whether c is one of the enumerated categories.
func (c Category) Known() bool {
	switch c {
	case CategoryBilling, CategoryTechnical, CategoryGeneral, CategoryComplaint:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Stage identifies which processor produced a step. The values double as the
// wire-level agent labels.
type Stage string

const (
	StageHome       Stage = "US"
	StageCompliance Stage = "EU"
)

// Consent is the outcome of the compliance branch handed to the synthesizer.
type Consent string

const (
	ConsentNotApplicable Consent = "not_applicable"
	ConsentGranted       Consent = "granted"
	ConsentWithheld      Consent = "withheld"
)

// ConsentFor derives the consent outcome from the directory record alone.
func ConsentFor(c Customer) Consent {
	if NormalizeRegion(c.Region) != RegionEU {
		return ConsentNotApplicable
	}
	if c.GDPRConsent {
		return ConsentGranted
	}
	return ConsentWithheld
}

type Purchase struct {
	ID      string  `json:"id"`
	Product string  `json:"product"`
	Amount  float64 `json:"amount"`
	Date    string  `json:"date"`
	Status  string  `json:"status"` // completed, pending, refunded
}

type Customer struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Region           Region     `json:"region"`
	Tier             Tier       `json:"tier"`
	Language         string     `json:"language"`
	GDPRConsent      bool       `json:"gdpr_consent"`
	LastContact      string     `json:"last_contact"`
	PreferredChannel string     `json:"preferred_channel"`
	Purchases        []Purchase `json:"purchases"`
}

// LatestPurchase returns the most recent purchase in the ordered history.
func (c Customer) LatestPurchase() (Purchase, bool) {
	if len(c.Purchases) == 0 {
		return Purchase{}, false
	}
	return c.Purchases[len(c.Purchases)-1], true
}

type Query struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Message    string    `json:"message"`
	Category   Category  `json:"category"`
	Priority   Priority  `json:"priority"`
	CreatedAt  time.Time `json:"timestamp"`
}

// StepPhase tags what a step describes. It is not part of the wire format.
type StepPhase string

const (
	PhaseAnalysis     StepPhase = "analysis"
	PhaseDegraded     StepPhase = "degraded"
	PhaseDirectAccess StepPhase = "direct_access"
	PhaseHandoff      StepPhase = "handoff"
	PhaseDataAccess   StepPhase = "data_access"
	PhaseSynthesis    StepPhase = "synthesis"
)

type CollaborationStep struct {
	Stage     Stage     `json:"agent"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Data      StepData  `json:"data,omitempty"`
	Phase     StepPhase `json:"-"`
}

type ComplianceClause string

const (
	ClauseNone       ComplianceClause = "none"
	ClauseCompliant  ComplianceClause = "gdpr_compliant"
	ClauseRestricted ComplianceClause = "gdpr_restricted"
)

// ResponseFeatures summarises which policy rules shaped a synthesized reply.
type ResponseFeatures struct {
	Language         string           `json:"language"`
	Greeting         string           `json:"greeting"`
	Template         Category         `json:"template"`
	ComplianceClause ComplianceClause `json:"compliance_clause"`
	Personalized     bool             `json:"personalized"`
	ProductReference string           `json:"product_reference"`
	ResolutionPath   string           `json:"resolution_path"`
	SLAEstimate      string           `json:"sla_estimate"`
}

type Reply struct {
	Text     string
	Features ResponseFeatures
}

type CollaborationResult struct {
	ID             string              `json:"id"`
	QueryID        string              `json:"query_id"`
	Steps          []CollaborationStep `json:"steps"`
	FinalResponse  string              `json:"final_response"`
	ProcessingTime int64               `json:"processing_time"` // milliseconds
	Features       ResponseFeatures    `json:"features"`
	Degraded       []Stage             `json:"degraded,omitempty"`
}

// Elapsed returns ProcessingTime as a duration.
func (r CollaborationResult) Elapsed() time.Duration {
	return time.Duration(r.ProcessingTime) * time.Millisecond
}

type EventType string

const (
	EventStep     EventType = "step"
	EventComplete EventType = "complete"
	EventError    EventType = "error"
)

// Event is one item of a run's output sequence.
type Event struct {
	Type   EventType
	Step   *CollaborationStep
	Result *CollaborationResult
	Err    error
}

func (e Event) Terminal() bool {
	return e.Type == EventComplete || e.Type == EventError
}

// EndpointReply is what a reasoning endpoint returns for one prompt.
type EndpointReply struct {
	Text    string
	Latency time.Duration
}
