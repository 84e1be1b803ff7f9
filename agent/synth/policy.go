package synth

import (
	"strings"

	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
)

// tierSLA holds the resolution window in hours; the unit word comes from the
// language pack.
var tierSLA = map[contractx.Tier]string{
	contractx.TierPlatinum: "1-2",
	contractx.TierGold:     "2-4",
	contractx.TierSilver:   "4-8",
	contractx.TierBronze:   "24",
}

const defaultSLASpan = "24-48"

func slaSpan(tier contractx.Tier) string {
	if span, ok := tierSLA[tier]; ok {
		return span
	}
	return defaultSLASpan
}

// SLAFor returns the English resolution estimate for a service tier.
func SLAFor(tier contractx.Tier) string {
	return slaSpan(tier) + " hours"
}

// EffectiveCategory maps categories outside the enumerated set onto general.
func EffectiveCategory(c contractx.Category) contractx.Category {
	normalized := contractx.Category(strings.ToLower(strings.TrimSpace(string(c))))
	if normalized.Known() {
		return normalized
	}
	return contractx.CategoryGeneral
}

// ResolutionPathFor names the handling path, e.g. "technical_tier_gold".
func ResolutionPathFor(c contractx.Category, tier contractx.Tier) string {
	t := strings.ToLower(strings.TrimSpace(string(tier)))
	if t == "" {
		t = "unknown"
	}
	return string(EffectiveCategory(c)) + "_tier_" + t
}
