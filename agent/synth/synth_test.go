package synth

import (
	"strings"
	"testing"
	"time"

	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
)

func sarah() contractx.Customer {
	return contractx.Customer{
		ID:               "cust-us-001",
		Name:             "Sarah Johnson",
		Region:           contractx.RegionUS,
		Tier:             contractx.TierGold,
		Language:         "English",
		PreferredChannel: "email",
		Purchases: []contractx.Purchase{
			{ID: "p1", Product: "Enterprise Security Suite", Amount: 2500, Date: "2024-08-15", Status: "completed"},
			{ID: "p2", Product: "Compliance Module", Amount: 800, Date: "2024-09-01", Status: "completed"},
		},
	}
}

func hans() contractx.Customer {
	return contractx.Customer{
		ID:               "cust-eu-001",
		Name:             "Hans Müller",
		Region:           contractx.RegionEU,
		Tier:             contractx.TierPlatinum,
		Language:         "German",
		GDPRConsent:      true,
		PreferredChannel: "phone",
		Purchases: []contractx.Purchase{
			{ID: "p3", Product: "Advanced Threat Detection", Amount: 5000, Date: "2024-07-20", Status: "completed"},
			{ID: "p4", Product: "GDPR Compliance Tools", Amount: 1200, Date: "2024-08-30", Status: "completed"},
		},
	}
}

func query(category contractx.Category) contractx.Query {
	return contractx.Query{
		ID:         "q1",
		CustomerID: "any",
		Message:    "help",
		Category:   category,
		Priority:   contractx.PriorityHigh,
		CreatedAt:  time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestSynthesizeUSTechnical(t *testing.T) {
	t.Parallel()

	reply := Synthesize(query(contractx.CategoryTechnical), sarah(), contractx.ConsentNotApplicable)

	if !strings.HasPrefix(reply.Text, "Hello Sarah Johnson,") {
		t.Fatalf("unexpected opening: %q", reply.Text[:40])
	}
	for _, want := range []string{"Gold", "email", "your Compliance Module", "2-4 hours"} {
		if !strings.Contains(reply.Text, want) {
			t.Fatalf("reply missing %q:\n%s", want, reply.Text)
		}
	}
	if strings.Contains(reply.Text, "GDPR") {
		t.Fatalf("US reply must not carry a GDPR clause:\n%s", reply.Text)
	}
	if reply.Features.ComplianceClause != contractx.ClauseNone {
		t.Fatalf("unexpected clause: %s", reply.Features.ComplianceClause)
	}
	if reply.Features.ResolutionPath != "technical_tier_gold" {
		t.Fatalf("unexpected resolution path: %s", reply.Features.ResolutionPath)
	}
	if !reply.Features.Personalized {
		t.Fatalf("expected personalized reply")
	}
}

func TestSynthesizeEUGermanConsentGranted(t *testing.T) {
	t.Parallel()

	reply := Synthesize(query(contractx.CategoryGeneral), hans(), contractx.ConsentGranted)

	if !strings.HasPrefix(reply.Text, "Guten Tag Hans Müller") {
		t.Fatalf("unexpected opening: %q", reply.Text)
	}
	if !strings.Contains(reply.Text, "DSGVO") {
		t.Fatalf("expected GDPR clause:\n%s", reply.Text)
	}
	if !strings.Contains(reply.Text, "EU-Compliance-Spezialisten") {
		t.Fatalf("expected EU specialist mention:\n%s", reply.Text)
	}
	if !strings.Contains(reply.Text, "1-2 Stunden") {
		t.Fatalf("expected localized SLA:\n%s", reply.Text)
	}
	if reply.Features.ComplianceClause != contractx.ClauseCompliant {
		t.Fatalf("unexpected clause: %s", reply.Features.ComplianceClause)
	}
	if reply.Features.Language != "German" || reply.Features.Greeting != "Guten Tag" {
		t.Fatalf("unexpected language features: %+v", reply.Features)
	}
}

func TestSynthesizeEUConsentWithheldOmitsHistory(t *testing.T) {
	t.Parallel()

	c := hans()
	c.Language = "English"
	c.GDPRConsent = false

	reply := Synthesize(query(contractx.CategoryBilling), c, contractx.ConsentWithheld)

	if !strings.Contains(reply.Text, "restricted") {
		t.Fatalf("expected restricted-access indication:\n%s", reply.Text)
	}
	for _, leaked := range []string{"GDPR Compliance Tools", "Advanced Threat Detection", "5000", "1200"} {
		if strings.Contains(reply.Text, leaked) {
			t.Fatalf("reply leaks purchase data %q:\n%s", leaked, reply.Text)
		}
	}
	if reply.Features.Personalized {
		t.Fatalf("withheld consent must not personalize")
	}
	if reply.Features.ComplianceClause != contractx.ClauseRestricted {
		t.Fatalf("unexpected clause: %s", reply.Features.ComplianceClause)
	}
}

func TestSynthesizeEmptyPurchaseHistory(t *testing.T) {
	t.Parallel()

	c := sarah()
	c.Purchases = nil

	reply := Synthesize(query(contractx.CategoryTechnical), c, contractx.ConsentNotApplicable)
	if !strings.Contains(reply.Text, "no purchase history on file") {
		t.Fatalf("expected neutral phrase:\n%s", reply.Text)
	}
}

func TestSynthesizeEmptyPreferredChannel(t *testing.T) {
	t.Parallel()

	for lang, phrase := range map[string]string{
		"English": "your preferred contact channel",
		"French":  "votre canal de contact préféré",
	} {
		c := sarah()
		c.Language = lang
		c.PreferredChannel = "  "

		reply := Synthesize(query(contractx.CategoryTechnical), c, contractx.ConsentNotApplicable)
		if !strings.Contains(reply.Text, phrase) {
			t.Fatalf("%s reply misses neutral channel phrase:\n%s", lang, reply.Text)
		}
		if strings.Contains(reply.Text, "via  ") {
			t.Fatalf("%s reply has an empty channel slot:\n%s", lang, reply.Text)
		}
	}
}

func TestSynthesizeFallbacks(t *testing.T) {
	t.Parallel()

	c := sarah()
	c.Language = "Klingon"
	reply := Synthesize(query("refund-request"), c, contractx.ConsentNotApplicable)

	if !strings.HasPrefix(reply.Text, "Hello ") {
		t.Fatalf("unmapped language should greet in English: %q", reply.Text)
	}
	if reply.Features.Template != contractx.CategoryGeneral {
		t.Fatalf("unknown category should use general template, got %s", reply.Features.Template)
	}
	if !strings.Contains(reply.Text, "Your general inquiry") {
		t.Fatalf("expected general paragraph:\n%s", reply.Text)
	}
}

func TestSynthesizeCategoriesDistinct(t *testing.T) {
	t.Parallel()

	seen := map[string]contractx.Category{}
	for _, cat := range []contractx.Category{
		contractx.CategoryTechnical,
		contractx.CategoryBilling,
		contractx.CategoryGeneral,
		contractx.CategoryComplaint,
	} {
		for _, lang := range []string{"English", "German", "French", "Italian"} {
			c := sarah()
			c.Language = lang
			reply := Synthesize(query(cat), c, contractx.ConsentNotApplicable)
			if !strings.Contains(reply.Text, "Gold") || !strings.Contains(reply.Text, "email") {
				t.Fatalf("%s/%s reply misses tier or channel:\n%s", lang, cat, reply.Text)
			}
			if prev, dup := seen[reply.Text]; dup {
				t.Fatalf("%s/%s rendered the same text as %s", lang, cat, prev)
			}
			seen[reply.Text] = cat
		}
	}
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	t.Parallel()

	q := query(contractx.CategoryComplaint)
	a := Synthesize(q, hans(), contractx.ConsentGranted)
	b := Synthesize(q, hans(), contractx.ConsentGranted)
	if a.Text != b.Text {
		t.Fatalf("synthesizer is not deterministic")
	}
	if a.Features != b.Features {
		t.Fatalf("features differ: %+v vs %+v", a.Features, b.Features)
	}
}

func TestSynthesizeMalformedRegionTreatedAsUS(t *testing.T) {
	t.Parallel()

	c := sarah()
	c.Region = "APAC"
	reply := Synthesize(query(contractx.CategoryTechnical), c, contractx.ConsentGranted)
	if reply.Features.ComplianceClause != contractx.ClauseNone {
		t.Fatalf("non-EU region must not get a compliance clause, got %s", reply.Features.ComplianceClause)
	}
}

func TestResolutionPolicy(t *testing.T) {
	t.Parallel()

	if got := SLAFor(contractx.TierPlatinum); got != "1-2 hours" {
		t.Fatalf("SLAFor(Platinum) = %q", got)
	}
	if got := SLAFor("Diamond"); got != "24-48 hours" {
		t.Fatalf("SLAFor(unknown) = %q", got)
	}
	if got := ResolutionPathFor("Billing", contractx.TierSilver); got != "billing_tier_silver" {
		t.Fatalf("ResolutionPathFor = %q", got)
	}
}
