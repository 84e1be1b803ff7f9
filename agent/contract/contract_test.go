package contract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassifyEndpointError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	if err := ClassifyEndpointError(ctx, nil); err != nil {
		t.Fatalf("nil error should stay nil, got %v", err)
	}

	if err := ClassifyEndpointError(ctx, fmt.Errorf("invoke: %w", context.DeadlineExceeded)); !errors.Is(err, ErrEndpointTimeout) {
		t.Fatalf("deadline should classify as timeout, got %v", err)
	}

	if err := ClassifyEndpointError(ctx, timeoutErr{}); !errors.Is(err, ErrEndpointTimeout) {
		t.Fatalf("net timeout should classify as timeout, got %v", err)
	}

	err := ClassifyEndpointError(ctx, errors.New("connection refused"))
	if !errors.Is(err, ErrEndpointTransport) || errors.Is(err, ErrEndpointTimeout) {
		t.Fatalf("unexpected classification: %v", err)
	}
	if !IsDegradation(err) {
		t.Fatalf("transport failure should be a degradation")
	}
}

func TestClassifyEndpointErrorPrefersParentCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ClassifyEndpointError(ctx, context.DeadlineExceeded)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected parent cancellation, got %v", err)
	}
	if IsDegradation(err) {
		t.Fatalf("cancellation must not be treated as a degradation")
	}
}

func TestNormalizeRegionAndConsent(t *testing.T) {
	t.Parallel()

	if NormalizeRegion(" eu ") != RegionEU {
		t.Fatalf("expected EU")
	}
	if NormalizeRegion("APAC") != RegionUS {
		t.Fatalf("malformed region should fold onto US")
	}

	c := Customer{Region: RegionEU, GDPRConsent: true}
	if ConsentFor(c) != ConsentGranted {
		t.Fatalf("expected granted")
	}
	c.GDPRConsent = false
	if ConsentFor(c) != ConsentWithheld {
		t.Fatalf("expected withheld")
	}
	c.Region = RegionUS
	if ConsentFor(c) != ConsentNotApplicable {
		t.Fatalf("expected not applicable")
	}
}

func TestStepJSONShape(t *testing.T) {
	t.Parallel()

	step := CollaborationStep{
		Stage:     StageHome,
		Message:   "Analyzing query",
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Data: QueryAnalysis{
			Category:       CategoryTechnical,
			Priority:       PriorityHigh,
			CustomerRegion: RegionUS,
		},
		Phase: PhaseAnalysis,
	}

	raw, err := json.Marshal(step)
	if err != nil {
		t.Fatalf("marshal step: %v", err)
	}
	got := string(raw)
	want := `{"agent":"US","message":"Analyzing query","timestamp":"2026-03-01T12:00:00Z","data":{"query_analysis":{"category":"technical","priority":"high","customer_region":"US"}}}`
	if got != want {
		t.Fatalf("unexpected step json:\n got %s\nwant %s", got, want)
	}
}

func TestStepWithoutDataOmitsField(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(CollaborationStep{Stage: StageCompliance, Message: "handoff"})
	if err != nil {
		t.Fatalf("marshal step: %v", err)
	}
	if strings.Contains(string(raw), `"data"`) {
		t.Fatalf("expected data to be omitted: %s", raw)
	}
}

func TestExcerptOfHonoursHistoryFlag(t *testing.T) {
	t.Parallel()

	c := Customer{
		ID:          "cust-eu-001",
		Name:        "Hans",
		Region:      "eu",
		LastContact: "2024-09-08T09:15:00Z",
		Purchases:   []Purchase{{ID: "p3", Product: "Advanced Threat Detection", Amount: 5000}},
	}

	restricted := ExcerptOf(c, false)
	if restricted.Purchases != nil || restricted.LastContact != "" {
		t.Fatalf("restricted excerpt leaks history: %+v", restricted)
	}
	if restricted.Region != RegionEU {
		t.Fatalf("excerpt region not normalized: %s", restricted.Region)
	}

	full := ExcerptOf(c, true)
	if len(full.Purchases) != 1 {
		t.Fatalf("expected purchases in full excerpt")
	}
	full.Purchases[0].Product = "changed"
	if c.Purchases[0].Product != "Advanced Threat Detection" {
		t.Fatalf("excerpt shares purchase slice with the record")
	}

	raw, err := json.Marshal(DataAccess{GDPRCheck: true, Access: AccessRestricted, Profile: restricted})
	if err != nil {
		t.Fatalf("marshal data access: %v", err)
	}
	if strings.Contains(string(raw), "purchases") || !strings.Contains(string(raw), `"data_access":"restricted"`) {
		t.Fatalf("unexpected data access json: %s", raw)
	}
}

func TestLatestPurchaseAndElapsed(t *testing.T) {
	t.Parallel()

	if _, ok := (Customer{}).LatestPurchase(); ok {
		t.Fatalf("empty history should report no purchase")
	}
	c := Customer{Purchases: []Purchase{{Product: "a"}, {Product: "b"}}}
	if p, ok := c.LatestPurchase(); !ok || p.Product != "b" {
		t.Fatalf("expected last purchase, got %+v", p)
	}

	r := CollaborationResult{ProcessingTime: 1500}
	if r.Elapsed() != 1500*time.Millisecond {
		t.Fatalf("unexpected elapsed: %s", r.Elapsed())
	}

	if !(Event{Type: EventError}).Terminal() || (Event{Type: EventStep}).Terminal() {
		t.Fatalf("terminal classification is wrong")
	}
}
