// internal/search/engine.go
package search

import (
	"fmt"
	"sort"
	"strconv"

	"discord-rover/internal/corpus"
	"discord-rover/internal/index"
)

// Query is the structured query produced by the interpreter. The engine
// itself only consumes Query and the scoping fields; callers are expected
// to pre-scope rather than rely on the engine re-filtering.
type Query struct {
	Query     string
	Type      string // message|channel|server|user|all
	TimeRange string // hour|day|week|month|all
	Server    string
	Channel   string
	User      string
}

// Result is one scored hit, with display fields resolved from the corpus
// at query time.
type Result struct {
	Type      string
	ID        string
	Title     string
	Content   string
	Server    string
	Channel   string
	User      string
	Timestamp string
	Relevance float64
	Context   string
}

// Engine exposes message, server, channel and thread search over a built
// index. Pure reads over immutable state; safe for concurrent use.
type Engine struct {
	index *index.Index
}

func NewEngine(ix *index.Index) *Engine {
	return &Engine{index: ix}
}

// SearchMessages tokenizes the query, gathers the candidate buckets, scores
// every candidate against the original query string and returns the hits
// above the relevance threshold, best first. Never returns the same message
// twice; first occurrence wins.
func (e *Engine) SearchMessages(q Query) []Result {
	seen := make(map[string]struct{})
	var results []Result

	for _, tok := range index.Tokenize(q.Query) {
		for _, ref := range e.index.Lookup(tok) {
			key := refKey(ref)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			m, ch, ok := e.index.Message(ref)
			if !ok {
				continue
			}
			score := Score(q.Query, m.Content)
			if score <= RelevanceThreshold {
				continue
			}
			results = append(results, Result{
				Type:      "message",
				ID:        key,
				Title:     m.Author,
				Content:   m.Content,
				Server:    ch.CommunityName,
				Channel:   ch.Name,
				User:      m.Author,
				Timestamp: m.Time,
				Relevance: score,
				Context:   fmt.Sprintf("#%s in %s", ch.Name, ch.CommunityName),
			})
		}
	}

	sortByRelevance(results)
	return results
}

// SearchServers scores every joined community's name plus description
// against the query.
func (e *Engine) SearchServers(query string) []Result {
	var results []Result
	for _, cm := range e.index.Communities() {
		desc := ""
		if meta, ok := e.index.ServerMeta(cm.ID); ok {
			desc = meta.Description
		}
		score := Score(query, cm.Name+" "+desc)
		if score <= RelevanceThreshold {
			continue
		}
		results = append(results, Result{
			Type:      "server",
			ID:        strconv.Itoa(cm.ID),
			Title:     cm.Name,
			Content:   desc,
			Server:    cm.Name,
			Relevance: score,
		})
	}
	sortByRelevance(results)
	return results
}

// SearchChannels scores every indexed channel's name plus type against the
// query, optionally restricted to one community.
func (e *Engine) SearchChannels(query, communityID string) []Result {
	var results []Result
	for _, ch := range e.index.Channels() {
		if communityID != "" && strconv.Itoa(ch.CommunityID) != communityID {
			continue
		}
		score := Score(query, ch.Name+" "+ch.Type)
		if score <= RelevanceThreshold {
			continue
		}
		results = append(results, Result{
			Type:      "channel",
			ID:        ch.Key,
			Title:     ch.Name,
			Content:   ch.Description,
			Server:    ch.CommunityName,
			Channel:   ch.Name,
			Relevance: score,
			Context:   ch.Type + " channel in " + ch.CommunityName,
		})
	}
	sortByRelevance(results)
	return results
}

func refKey(ref index.MessageRef) string {
	return strconv.Itoa(ref.CommunityID) + "-" + ref.ChannelID + "-" + strconv.Itoa(ref.MessageID)
}

func sortByRelevance(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})
}

// messageTimeLess orders two messages by their real timestamp when both
// carry one, and otherwise keeps corpus insertion order. Display-time
// strings like "6:00 AM" are not reliably sortable, so they are never
// parsed here.
func messageTimeLess(a, b *corpus.Message) bool {
	if !a.PostedAt.IsZero() && !b.PostedAt.IsZero() {
		return a.PostedAt.Before(b.PostedAt)
	}
	return false
}
