// internal/query/processor.go
package query

import (
	"fmt"

	"discord-rover/internal/search"
)

// Searcher is the slice of the retrieval engine the processor dispatches
// to. search.Engine satisfies it; tests substitute fakes.
type Searcher interface {
	SearchMessages(q search.Query) []search.Result
	SearchServers(query string) []search.Result
	SearchChannels(query, communityID string) []search.Result
	FindThreads(query, timeRange string) []search.Thread
}

// Context is the ambient state of the client when the query was typed.
type Context struct {
	ServerName  string
	ChannelName string
}

// Parsed is the structured interpretation of one free-text input.
type Parsed struct {
	Intent      Intent
	Query       search.Query
	Suggestions []string
}

// NavigationTarget is synthesized from the top channel hit for navigate
// intents.
type NavigationTarget struct {
	Type string // "server" or "channel"
	ID   string
	Name string
}

// Response is the uniform envelope every dispatch produces.
type Response struct {
	Type        string // search_results|navigation|threads|servers|channels|error
	Results     []search.Result
	Threads     []search.Thread
	Message     string
	Suggestions []string
	Navigation  *NavigationTarget
}

// Processor turns free text into a classified, parameterized query and
// executes it against the retrieval engine.
type Processor struct {
	searcher Searcher
}

func NewProcessor(s Searcher) *Processor {
	return &Processor{searcher: s}
}

// Parse classifies the input and extracts the structured query parameters.
// It never fails; unparseable input degrades to a plain search with empty
// terms, which executes as an empty result set.
func (p *Processor) Parse(input string, ctx Context) Parsed {
	intent := ClassifyIntent(input)
	q := search.Query{
		Query:     ExtractTerms(input),
		Type:      InferType(input),
		TimeRange: ExtractTimeRange(input),
		User:      ExtractUser(input),
		Server:    ctx.ServerName,
		Channel:   ctx.ChannelName,
	}
	return Parsed{
		Intent:      intent,
		Query:       q,
		Suggestions: suggestionsFor(intent, q.Query),
	}
}

// Execute dispatches a parsed query to the matching engine operation. This
// is the single error boundary of the pipeline: anything that panics below
// is converted into an error-type response carrying the panic text.
func (p *Processor) Execute(parsed Parsed) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = Response{
				Type:    "error",
				Message: fmt.Sprintf("Search failed: %v", r),
				Suggestions: []string{
					"Try fewer keywords",
					"Remove filters and search again",
				},
			}
		}
	}()

	q := parsed.Query
	switch parsed.Intent {
	case IntentFindThreads:
		threads := p.searcher.FindThreads(q.Query, q.TimeRange)
		return Response{
			Type:        "threads",
			Threads:     threads,
			Message:     resultMessage(len(threads), q.Query),
			Suggestions: parsed.Suggestions,
		}

	case IntentFindServers:
		results := p.searcher.SearchServers(q.Query)
		return Response{
			Type:        "servers",
			Results:     results,
			Message:     resultMessage(len(results), q.Query),
			Suggestions: parsed.Suggestions,
		}

	case IntentFindChannels:
		results := p.searcher.SearchChannels(q.Query, "")
		return Response{
			Type:        "channels",
			Results:     results,
			Message:     resultMessage(len(results), q.Query),
			Suggestions: parsed.Suggestions,
		}

	case IntentNavigate:
		hits := p.searcher.SearchChannels(q.Query, "")
		if len(hits) == 0 {
			return Response{
				Type:        "navigation",
				Message:     fmt.Sprintf("No channel found for %q. Try different keywords.", q.Query),
				Suggestions: parsed.Suggestions,
			}
		}
		top := hits[0]
		return Response{
			Type:    "navigation",
			Results: hits,
			Message: fmt.Sprintf("Taking you to #%s", top.Title),
			Navigation: &NavigationTarget{
				Type: "channel",
				ID:   top.ID,
				Name: top.Title,
			},
			Suggestions: parsed.Suggestions,
		}

	default:
		results := p.searcher.SearchMessages(q)
		return Response{
			Type:        "search_results",
			Results:     results,
			Message:     resultMessage(len(results), q.Query),
			Suggestions: parsed.Suggestions,
		}
	}
}

// Process is the convenience parse-and-execute entry point used by the bot
// and the CLI.
func (p *Processor) Process(input string, ctx Context) Response {
	return p.Execute(p.Parse(input, ctx))
}

func resultMessage(n int, q string) string {
	if n == 0 {
		return fmt.Sprintf("No results for %q. Try different keywords.", q)
	}
	return fmt.Sprintf("Found %d result(s) for %q", n, q)
}

// suggestionsFor produces up to three canned follow-up prompts per intent,
// parameterized by the extracted terms.
func suggestionsFor(intent Intent, terms string) []string {
	if terms == "" {
		terms = "this topic"
	}
	switch intent {
	case IntentFindThreads:
		return []string{
			fmt.Sprintf("Show all messages about %s", terms),
			fmt.Sprintf("Who talked about %s?", terms),
			fmt.Sprintf("Find servers about %s", terms),
		}
	case IntentFindServers:
		return []string{
			fmt.Sprintf("Find channels about %s", terms),
			fmt.Sprintf("Show threads about %s", terms),
			"Recommend servers for me",
		}
	case IntentFindChannels:
		return []string{
			fmt.Sprintf("Navigate to the top %s channel", terms),
			fmt.Sprintf("Show threads about %s", terms),
			fmt.Sprintf("Search messages about %s", terms),
		}
	case IntentNavigate:
		return []string{
			fmt.Sprintf("Find channels about %s", terms),
			"Go back to general",
		}
	default:
		return []string{
			fmt.Sprintf("Find threads about %s", terms),
			fmt.Sprintf("Show servers for %s", terms),
			fmt.Sprintf("Messages from the last week about %s", terms),
		}
	}
}
