package discover

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferSkillLevel(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"I'm new to dnd", "beginner"},
		{"never played before", "beginner"},
		{"looking for serious competitive play", "advanced"},
		{"veteran players only", "advanced"},
		{"intermediate valorant team", "intermediate"},
		{"I have some experience with tabletop", "intermediate"},
		{"music servers", ""},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, InferSkillLevel(tc.query), "query %q", tc.query)
	}
}

func TestDiscoveryReturnsEveryCatalogEntry(t *testing.T) {
	e := testDiscover()

	for _, query := range []string{"", "anime", "xyzzy nothing matches this"} {
		recs := e.DiscoveryRecommendations(query)
		require.Lenf(t, recs, 3, "query %q must return the whole catalog", query)
		for i := 1; i < len(recs); i++ {
			assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
		}
		for _, rec := range recs {
			assert.NotEmptyf(t, rec.Reasons, "%s has no match reason", rec.Server.Name)
		}
	}
}

func TestDiscoveryRanksKeywordMatchesFirst(t *testing.T) {
	e := testDiscover()

	recs := e.DiscoveryRecommendations("anime watch parties")
	require.Len(t, recs, 3)
	assert.Equal(t, "Anime Headquarters", recs[0].Server.Name,
		"the +0.3 anime bonus dominates the 0-0.1 jitter")
}

func TestDiscoverySkillAlignment(t *testing.T) {
	e := testDiscover()

	recs := e.DiscoveryRecommendations("serious competitive gaming")
	require.Len(t, recs, 3)
	// Pro Grinders is authored as advanced and collects the exact-match
	// skill bonus plus the gaming bonuses; it must outrank everything.
	assert.Equal(t, "Pro Grinders", recs[0].Server.Name)
}

func TestDiscoveryNoQueryUsesVibeReason(t *testing.T) {
	e := testDiscover()

	recs := e.DiscoveryRecommendations("")
	for _, rec := range recs {
		if rec.Activity == "very_high" {
			assert.Contains(t, rec.Reasons, "Very active community")
		} else {
			assert.Equal(t, []string{rec.Vibe}, rec.Reasons)
		}
	}
}

func TestDiscoveryConcurrentCalls(t *testing.T) {
	// Each Discord event handler runs in its own goroutine, so discovery
	// must tolerate overlapping calls. Run under -race to verify.
	e := testDiscover()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				if recs := e.DiscoveryRecommendations("gaming"); len(recs) != 3 {
					t.Errorf("got %d recommendations, want 3", len(recs))
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestDiscoveryJitterIsSeeded(t *testing.T) {
	a := NewEngine(discoverCorpus(), 7)
	b := NewEngine(discoverCorpus(), 7)

	ra := a.DiscoveryRecommendations("gaming")
	rb := b.DiscoveryRecommendations("gaming")
	require.Equal(t, len(ra), len(rb))
	for i := range ra {
		assert.Equal(t, ra[i].Server.ID, rb[i].Server.ID)
		assert.Equal(t, ra[i].Score, rb[i].Score)
	}
}
