// internal/query/intent.go
package query

import "regexp"

// Intent is the coarse category a free-text input is classified into.
type Intent string

const (
	IntentSearch       Intent = "search"
	IntentNavigate     Intent = "navigate"
	IntentFindThreads  Intent = "find_threads"
	IntentFindServers  Intent = "find_servers"
	IntentFindChannels Intent = "find_channels"
)

type intentRule struct {
	intent   Intent
	patterns []*regexp.Regexp
}

// intentRules is the ordered classification cascade. The first rule whose
// pattern set matches wins, so thread patterns shadow server patterns,
// which shadow channel patterns, which shadow navigation. Reordering this
// table changes behavior; the precedence is pinned by tests.
var intentRules = []intentRule{
	{IntentFindThreads, compilePatterns(
		`(?:find|show|get)\s+(?:me\s+)?(?:all\s+)?threads?`,
		`threads?\s+(?:about|on|discussing)`,
		`(?:recall|remember)\b.*(?:thread|discussion)`,
		`what\s+threads?`,
	)},
	{IntentFindServers, compilePatterns(
		`(?:find|show|get)\s+(?:me\s+)?servers?\s+(?:with|for|about)`,
		`servers?\s+(?:similar\s+to|like)`,
		`(?:gaming|music|art|anime)\s+servers?`,
		`recommend\b.*servers?`,
	)},
	{IntentFindChannels, compilePatterns(
		`(?:find|show|get)\s+(?:me\s+)?channels?\s+(?:for|about)`,
		`navigate\s+to\s+channel`,
		`channels?\s+(?:discussing|about)`,
		`which\s+channels?`,
	)},
	{IntentNavigate, compilePatterns(
		`(?:navigate|go|take\s+me|switch)\s+to`,
		`(?:open|join)\s+(?:the\s+)?channel`,
	)},
}

func compilePatterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + expr)
	}
	return out
}

// ClassifyIntent walks the cascade in order; the default is plain search.
func ClassifyIntent(input string) Intent {
	for _, rule := range intentRules {
		for _, p := range rule.patterns {
			if p.MatchString(input) {
				return rule.intent
			}
		}
	}
	return IntentSearch
}
