package orchestratornode

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
)

const summaryRunes = 200

// excerpt returns the first summaryRunes runes of s on a single line.
func excerpt(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= summaryRunes {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:summaryRunes])) + "..."
}

// localSummary stands in for the home narrative when the endpoint is down.
func localSummary(q contractx.Query, c contractx.Customer, region contractx.Region) string {
	category := q.Category
	if strings.TrimSpace(string(category)) == "" {
		category = contractx.CategoryGeneral
	}
	priority := q.Priority
	if strings.TrimSpace(string(priority)) == "" {
		priority = contractx.PriorityMedium
	}
	return fmt.Sprintf("%s query with %s priority from a %s tier customer in %s", category, priority, c.Tier, region)
}

func failureKind(err error) string {
	if errors.Is(err, contractx.ErrEndpointTimeout) {
		return "timeout"
	}
	return "transport error"
}
