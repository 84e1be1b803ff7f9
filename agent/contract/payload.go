package contract

import "encoding/json"

type PayloadKind string

const (
	PayloadQueryAnalysis   PayloadKind = "query_analysis"
	PayloadCustomerProfile PayloadKind = "customer_profile"
	PayloadDataAccess      PayloadKind = "data_access"
	PayloadResolutionPath  PayloadKind = "resolution_path"
)

// StepData is the closed set of structured payloads a step may carry:
// QueryAnalysis, CustomerProfile, DataAccess or ResolutionPath.
type StepData interface {
	Kind() PayloadKind
	isStepData()
}

type QueryAnalysis struct {
	Category       Category `json:"category"`
	Priority       Priority `json:"priority"`
	CustomerRegion Region   `json:"customer_region"`
}

func (QueryAnalysis) Kind() PayloadKind { return PayloadQueryAnalysis }
func (QueryAnalysis) isStepData()       {}

func (q QueryAnalysis) MarshalJSON() ([]byte, error) {
	type plain QueryAnalysis
	return json.Marshal(struct {
		QueryAnalysis plain `json:"query_analysis"`
	}{plain(q)})
}

// ProfileExcerpt is the slice of a customer record that may cross a stage boundary.
type ProfileExcerpt struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Region           Region     `json:"region"`
	Tier             Tier       `json:"tier"`
	Language         string     `json:"language"`
	PreferredChannel string     `json:"preferred_channel"`
	LastContact      string     `json:"last_contact,omitempty"`
	Purchases        []Purchase `json:"purchases,omitempty"`
}

// ExcerptOf copies the shareable fields of c. Purchase history is included
// only when withHistory is set.
func ExcerptOf(c Customer, withHistory bool) ProfileExcerpt {
	ex := ProfileExcerpt{
		ID:               c.ID,
		Name:             c.Name,
		Region:           NormalizeRegion(c.Region),
		Tier:             c.Tier,
		Language:         c.Language,
		PreferredChannel: c.PreferredChannel,
	}
	if withHistory {
		ex.LastContact = c.LastContact
		ex.Purchases = append([]Purchase(nil), c.Purchases...)
	}
	return ex
}

type CustomerProfile struct {
	Profile ProfileExcerpt `json:"customer_data"`
	Source  string         `json:"source"`
}

func (CustomerProfile) Kind() PayloadKind { return PayloadCustomerProfile }
func (CustomerProfile) isStepData()       {}

type AccessLevel string

const (
	AccessCompliant  AccessLevel = "compliant"
	AccessRestricted AccessLevel = "restricted"
)

type DataAccess struct {
	GDPRCheck bool           `json:"gdpr_check"`
	Access    AccessLevel    `json:"data_access"`
	Profile   ProfileExcerpt `json:"customer_data"`
}

func (DataAccess) Kind() PayloadKind { return PayloadDataAccess }
func (DataAccess) isStepData()       {}

type ResolutionPath struct {
	Path                string `json:"resolution_path"`
	EstimatedResolution string `json:"estimated_resolution_time"`
}

func (ResolutionPath) Kind() PayloadKind { return PayloadResolutionPath }
func (ResolutionPath) isStepData()       {}
