// internal/search/threads.go
package search

import (
	"sort"
	"strings"

	"discord-rover/internal/corpus"
	"discord-rover/internal/index"
)

// Thread is a group of two or more messages whose tokens overlap the seed
// query, treated as one conversational unit.
type Thread struct {
	Topic        string
	Messages     []*corpus.Message
	Participants []string
	StartTime    string
	EndTime      string
	Server       string
	Channel      string
	Relevance    float64
}

type threadBucket struct {
	messages []*corpus.Message
	channel  index.ChannelInfo
}

// FindThreads groups corpus messages into conversational threads by token
// overlap with the query. Messages sharing the same overlap set form one
// thread; buckets with fewer than two messages are discarded. The timeRange
// is accepted for interface parity with message search; the corpus display
// times cannot be reliably range-filtered (see the corpus Message docs), so
// it does not narrow the candidate set.
func (e *Engine) FindThreads(query, timeRange string) []Thread {
	queryTokens := index.Tokenize(query)
	if len(queryTokens) == 0 {
		return nil
	}

	buckets := make(map[string]*threadBucket)
	var order []string

	for _, ref := range e.index.AllMessages() {
		m, ch, ok := e.index.Message(ref)
		if !ok {
			continue
		}
		overlap := overlapTokens(queryTokens, index.Tokenize(m.Content))
		if len(overlap) == 0 {
			continue
		}
		key := strings.Join(overlap, " ")
		b, ok := buckets[key]
		if !ok {
			b = &threadBucket{channel: ch}
			buckets[key] = b
			order = append(order, key)
		}
		b.messages = append(b.messages, m)
	}

	var threads []Thread
	for _, key := range order {
		b := buckets[key]
		if len(b.messages) < 2 {
			continue
		}

		msgs := append([]*corpus.Message(nil), b.messages...)
		sort.SliceStable(msgs, func(i, j int) bool {
			return messageTimeLess(msgs[i], msgs[j])
		})

		threads = append(threads, Thread{
			Topic:        key,
			Messages:     msgs,
			Participants: participantNames(msgs),
			StartTime:    msgs[0].Time,
			EndTime:      msgs[len(msgs)-1].Time,
			Server:       b.channel.CommunityName,
			Channel:      b.channel.Name,
			Relevance:    Score(query, key),
		})
	}

	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].Relevance > threads[j].Relevance
	})
	return threads
}

// overlapTokens returns the query tokens that equal, contain, or are
// contained by some message token, each at most once, in query order.
func overlapTokens(queryTokens, messageTokens []string) []string {
	var overlap []string
	for _, qt := range queryTokens {
		for _, mt := range messageTokens {
			if qt == mt || strings.Contains(mt, qt) || strings.Contains(qt, mt) {
				overlap = append(overlap, qt)
				break
			}
		}
	}
	return overlap
}

// participantNames deduplicates authors by display name. Two people sharing
// a display name collapse into one participant; that matches the legacy
// behavior even though messages also carry a stable AuthorID.
func participantNames(msgs []*corpus.Message) []string {
	seen := make(map[string]struct{}, len(msgs))
	var names []string
	for _, m := range msgs {
		if _, ok := seen[m.Author]; ok {
			continue
		}
		seen[m.Author] = struct{}{}
		names = append(names, m.Author)
	}
	return names
}
