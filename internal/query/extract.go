// internal/query/extract.go
package query

import (
	"regexp"
	"strings"
)

// stopWords are command words stripped from the free text before it becomes
// the search query.
var stopWords = map[string]struct{}{
	"find": {}, "search": {}, "show": {}, "get": {}, "display": {},
	"about": {}, "for": {}, "with": {}, "from": {}, "by": {},
	"navigate": {}, "go": {}, "to": {},
}

// timeWords are dropped from the search terms; they only feed the
// time-range extraction.
var timeWords = map[string]struct{}{
	"hour": {}, "day": {}, "week": {}, "month": {},
	"today": {}, "yesterday": {}, "past": {}, "last": {}, "this": {},
}

var (
	userClausePattern = regexp.MustCompile(`(?i)(?:from|by|what|messages\s+from)\s+(\w+)`)
	userVerbPattern   = regexp.MustCompile(`(?i)(\w+)\s+(?:said|discussed|talked)`)

	hourPattern  = regexp.MustCompile(`(?i)hour`)
	dayPattern   = regexp.MustCompile(`(?i)day|today|yesterday`)
	weekPattern  = regexp.MustCompile(`(?i)week`)
	monthPattern = regexp.MustCompile(`(?i)month`)

	messageTypePatterns = compilePatterns(`messages?`, `\bsaid\b`, `discussed`, `talked`, `conversations?`)
	serverTypePatterns  = compilePatterns(`servers?`, `communit(?:y|ies)`)
	channelTypePatterns = compilePatterns(`channels?`)
)

// ExtractTerms lowercases the input and strips command words, time words
// and any recognized user clause, leaving the bare search terms.
func ExtractTerms(input string) string {
	drop := make(map[string]struct{})
	if clause := userClause(input); clause != "" {
		for _, w := range strings.Fields(strings.ToLower(clause)) {
			drop[w] = struct{}{}
		}
	}

	var kept []string
	for _, w := range strings.Fields(strings.ToLower(input)) {
		if _, ok := stopWords[w]; ok {
			continue
		}
		if _, ok := timeWords[w]; ok {
			continue
		}
		if _, ok := drop[w]; ok {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// ExtractUser pulls a user filter out of clauses like "messages from alex"
// or "alex said". Empty when no clause is present.
func ExtractUser(input string) string {
	if m := userClausePattern.FindStringSubmatch(input); m != nil {
		return m[1]
	}
	if m := userVerbPattern.FindStringSubmatch(input); m != nil {
		return m[1]
	}
	return ""
}

// userClause returns the full matched user clause text so its tokens can be
// excluded from the search terms.
func userClause(input string) string {
	if m := userClausePattern.FindString(input); m != "" {
		return m
	}
	return userVerbPattern.FindString(input)
}

// ExtractTimeRange is a presence test over the raw input, first match wins.
func ExtractTimeRange(input string) string {
	switch {
	case hourPattern.MatchString(input):
		return "hour"
	case dayPattern.MatchString(input):
		return "day"
	case weekPattern.MatchString(input):
		return "week"
	case monthPattern.MatchString(input):
		return "month"
	}
	return "all"
}

// InferType guesses what kind of entity the input is asking for. Evaluated
// independently of the intent cascade.
func InferType(input string) string {
	if matchesAny(input, messageTypePatterns) {
		return "message"
	}
	if matchesAny(input, serverTypePatterns) {
		return "server"
	}
	if matchesAny(input, channelTypePatterns) {
		return "channel"
	}
	return "all"
}

func matchesAny(input string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(input) {
			return true
		}
	}
	return false
}
