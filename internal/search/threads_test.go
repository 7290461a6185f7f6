package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discord-rover/internal/corpus"
)

func threadCorpus() *corpus.Corpus {
	return &corpus.Corpus{
		Communities: []*corpus.Community{
			{
				ID:   1,
				Name: "Gaming Hub",
				TextChannels: []*corpus.TextChannel{
					{
						ID:   "general",
						Name: "general",
						Messages: []*corpus.Message{
							{ID: 1, Author: "Alex", Time: "9:15 AM", Content: "anyone want to play valorant tonight"},
							{ID: 2, Author: "Sam", Time: "9:22 AM", Content: "valorant ranked grind is rough"},
							{ID: 3, Author: "Casey", Time: "11:30 AM", Content: "minecraft server reset this weekend"},
						},
					},
				},
			},
		},
	}
}

func TestFindThreadsGroupsByOverlap(t *testing.T) {
	e := testEngine(threadCorpus())

	threads := e.FindThreads("valorant", "")
	require.Len(t, threads, 1)

	th := threads[0]
	assert.Equal(t, "valorant", th.Topic)
	require.Len(t, th.Messages, 2)
	assert.ElementsMatch(t, []string{"Alex", "Sam"}, th.Participants)
	assert.Equal(t, "Gaming Hub", th.Server)
	assert.Equal(t, "general", th.Channel)
	assert.Equal(t, "9:15 AM", th.StartTime)
	assert.Equal(t, "9:22 AM", th.EndTime)
	assert.Greater(t, th.Relevance, 0.0)
}

func TestFindThreadsMinimumSize(t *testing.T) {
	e := testEngine(threadCorpus())

	// Only one message mentions minecraft; no thread may be emitted for it.
	for _, th := range e.FindThreads("minecraft", "") {
		assert.GreaterOrEqual(t, len(th.Messages), 2)
	}
	assert.Empty(t, e.FindThreads("minecraft", ""))
}

func TestFindThreadsSingleParticipant(t *testing.T) {
	c := threadCorpus()
	c.Communities[0].TextChannels[0].Messages[1].Author = "Alex"
	e := testEngine(c)

	threads := e.FindThreads("valorant", "")
	require.Len(t, threads, 1)
	assert.Equal(t, []string{"Alex"}, threads[0].Participants)
}

func TestFindThreadsOrdersByPostedAt(t *testing.T) {
	c := threadCorpus()
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	// Later corpus position but earlier real timestamp.
	c.Communities[0].TextChannels[0].Messages[0].PostedAt = base.Add(30 * time.Minute)
	c.Communities[0].TextChannels[0].Messages[1].PostedAt = base
	e := testEngine(c)

	threads := e.FindThreads("valorant", "")
	require.Len(t, threads, 1)
	assert.Equal(t, "Sam", threads[0].Messages[0].Author)
	assert.Equal(t, "9:22 AM", threads[0].StartTime)
}

func TestFindThreadsEmptyQuery(t *testing.T) {
	e := testEngine(threadCorpus())
	assert.Empty(t, e.FindThreads("", ""))
	assert.Empty(t, e.FindThreads("!!!", ""))
}
