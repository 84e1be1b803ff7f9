// Package synth builds the final customer reply from templated policy rules.
// Everything here is deterministic and free of I/O.
package synth

import (
	"strings"

	"github.com/slongfield/pyfmt"
	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
)

var _ contractx.Synthesizer = Synthesize

// Synthesize renders the reply for q and c under the given consent outcome.
// The compliance clause depends on the customer's region; purchase-derived
// personalization is dropped when consent is withheld.
func Synthesize(q contractx.Query, c contractx.Customer, consent contractx.Consent) contractx.Reply {
	pack := packFor(c.Language)
	region := contractx.NormalizeRegion(c.Region)
	if region == contractx.RegionEU && consent == contractx.ConsentNotApplicable {
		consent = contractx.ConsentFor(c)
	}
	if region != contractx.RegionEU {
		consent = contractx.ConsentNotApplicable
	}

	category := EffectiveCategory(q.Category)
	product, personalized := productReference(pack, c, consent)
	vars := map[string]any{
		"greeting": pack.Greeting,
		"name":     strings.TrimSpace(c.Name),
		"product":  product,
		"tier":     string(c.Tier),
		"channel":  channelReference(pack, c),
		"sla":      slaSpan(c.Tier) + " " + pack.Hours,
	}

	var b strings.Builder
	b.WriteString(render(pack.GreetingLine, vars))
	b.WriteString("\n\n")

	b.WriteString(pack.ThankYou)
	b.WriteString(" ")
	b.WriteString(pack.ProcessedThrough)
	if region == contractx.RegionEU {
		b.WriteString(pack.EUSpecialists)
	}
	b.WriteString(".\n\n")

	b.WriteString(render(pack.Categories[category], vars))
	b.WriteString("\n\n")

	clause := contractx.ClauseNone
	switch consent {
	case contractx.ConsentGranted:
		clause = contractx.ClauseCompliant
		b.WriteString(pack.NoticeCompliant)
		b.WriteString("\n\n")
	case contractx.ConsentWithheld:
		clause = contractx.ClauseRestricted
		b.WriteString(pack.NoticeRestricted)
		b.WriteString("\n\n")
	}

	b.WriteString(pack.CollaborationNote)
	b.WriteString("\n\n")
	b.WriteString(pack.Regards)
	b.WriteString("\n")
	b.WriteString(pack.Footer)

	return contractx.Reply{
		Text: b.String(),
		Features: contractx.ResponseFeatures{
			Language:         pack.Name,
			Greeting:         pack.Greeting,
			Template:         category,
			ComplianceClause: clause,
			Personalized:     personalized,
			ProductReference: product,
			ResolutionPath:   ResolutionPathFor(category, c.Tier),
			SLAEstimate:      SLAFor(c.Tier),
		},
	}
}

// channelReference falls back to a neutral phrase when no channel is on file.
func channelReference(pack languagePack, c contractx.Customer) string {
	if ch := strings.TrimSpace(c.PreferredChannel); ch != "" {
		return ch
	}
	return pack.ChannelNone
}

func productReference(pack languagePack, c contractx.Customer, consent contractx.Consent) (string, bool) {
	if consent == contractx.ConsentWithheld {
		return pack.ProductWithheld, false
	}
	latest, ok := c.LatestPurchase()
	if !ok || strings.TrimSpace(latest.Product) == "" {
		return pack.ProductNone, false
	}
	return render(pack.ProductOwned, map[string]any{"product": latest.Product}), true
}

// render formats one of the static pack templates. Every template only names
// keys that Synthesize always supplies, so a failure is a programming error.
func render(tmpl string, vars map[string]any) string {
	return pyfmt.Must(tmpl, vars)
}
