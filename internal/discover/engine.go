// internal/discover/engine.go
package discover

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"discord-rover/internal/corpus"
)

// Recommendation is one scored community with human-readable match reasons.
// Score is always within [0, 1].
type Recommendation struct {
	Server   *corpus.Community
	Score    float64
	Reasons  []string
	Category string
	Activity corpus.ActivityLevel
	Vibe     string
	Games    []string
	Features []string
	WhyJoin  []string
}

// Engine scores communities against a reference community, a user profile
// or free text. The joined catalog and the discoverable catalog are scored
// by different modes and never mixed. Safe for concurrent use: the
// descriptor tables are immutable after construction and the seeded jitter
// source is the only mutable state, guarded by its mutex.
type Engine struct {
	joined  []Descriptor
	catalog []Descriptor

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewEngine builds the per-community descriptor tables once. The seed
// drives the discovery-mode jitter so result ordering is reproducible.
func NewEngine(c *corpus.Corpus, seed int64) *Engine {
	e := &Engine{rng: rand.New(rand.NewSource(seed))}
	for _, cm := range c.Communities {
		e.joined = append(e.joined, buildDescriptor(cm, c))
	}
	for _, cm := range c.Discoverable {
		e.catalog = append(e.catalog, buildDescriptor(cm, c))
	}
	return e
}

// SimilarServers scores every other joined community against the reference
// one. Candidates scoring 0.3 or below are dropped.
func (e *Engine) SimilarServers(communityID int, criteria string) []Recommendation {
	var ref *Descriptor
	for i := range e.joined {
		if e.joined[i].Community.ID == communityID {
			ref = &e.joined[i]
			break
		}
	}
	if ref == nil {
		return nil
	}

	var recs []Recommendation
	for _, cand := range e.joined {
		if cand.Community.ID == communityID {
			continue
		}
		score := 0.0
		var reasons []string

		if cand.Category == ref.Category {
			score += 0.3
			reasons = append(reasons, "Same category: "+cand.Category)
		}
		if cand.Activity == ref.Activity {
			score += 0.2
			reasons = append(reasons, "Similar activity level")
		}
		if len(ref.Tags) > 0 {
			overlap := overlapCount(cand.Tags, ref.Tags)
			score += 0.3 * float64(overlap) / float64(len(ref.Tags))
			if overlap > 0 {
				reasons = append(reasons, fmt.Sprintf("%d shared topics", overlap))
			}
		}
		if len(ref.Games) > 0 && len(cand.Games) > 0 {
			overlap := overlapCount(cand.Games, ref.Games)
			score += 0.2 * float64(overlap) / float64(len(ref.Games))
			if overlap > 0 {
				reasons = append(reasons, "Plays the same games")
			}
		}
		if criteria != "" {
			bonus, why := criteriaBonus(criteria, cand)
			score += bonus
			reasons = append(reasons, why...)
		}

		score = clamp01(score)
		if score <= 0.3 {
			continue
		}
		recs = append(recs, e.recommendation(cand, score, reasons))
	}

	sortByScore(recs)
	return recs
}

// criteriaBonus matches free-text criteria against the four known keyword
// buckets, each worth a fixed partial bonus summing to at most 0.3.
func criteriaBonus(criteria string, cand Descriptor) (float64, []string) {
	lower := strings.ToLower(criteria)
	bonus := 0.0
	var reasons []string

	if strings.Contains(lower, "competitive") && (hasAnyTag(cand, "competitive", "esports", "ranked") || cand.ActivityScore >= 85) {
		bonus += 0.075
		reasons = append(reasons, "Competitive scene")
	}
	if strings.Contains(lower, "casual") && (hasAnyTag(cand, "casual", "chill") || cand.Activity.Ord() <= corpus.ActivityMedium.Ord()) {
		bonus += 0.075
		reasons = append(reasons, "Casual-friendly pace")
	}
	if strings.Contains(lower, "active") && cand.Activity.Ord() >= corpus.ActivityHigh.Ord() {
		bonus += 0.075
		reasons = append(reasons, "Highly active")
	}
	if strings.Contains(lower, "friendly") && (cand.Friendliness >= 75 || hasAnyTag(cand, "friendly", "welcoming")) {
		bonus += 0.075
		reasons = append(reasons, "Known for being friendly")
	}
	return bonus, reasons
}

// activityCompat is the fixed preference/activity compatibility table.
var activityCompat = map[string][]corpus.ActivityLevel{
	"hardcore": {corpus.ActivityVeryHigh},
	"regular":  {corpus.ActivityHigh, corpus.ActivityVeryHigh},
	"casual":   {corpus.ActivityMedium, corpus.ActivityHigh},
}

// RecommendForUser scores every joined community against a structured
// profile. Candidates scoring 0.4 or below are dropped.
func (e *Engine) RecommendForUser(profile corpus.UserProfile) []Recommendation {
	var recs []Recommendation
	for _, cand := range e.joined {
		score := 0.0
		var reasons []string

		for _, interest := range profile.Interests {
			li := strings.ToLower(interest)
			if hasAnyTag(cand, li) || strings.Contains(strings.ToLower(cand.Category), li) {
				score += 0.3
				reasons = append(reasons, "Matches your interest in "+interest)
				break
			}
		}

		if len(profile.PreferredGames) > 0 {
			for _, game := range profile.PreferredGames {
				if gameMatch(cand.Games, game) {
					score += 0.4
					reasons = append(reasons, "They play "+game+" too")
					break
				}
			}
		}

		for _, level := range activityCompat[profile.ActivityLevel] {
			if cand.Activity == level {
				score += 0.2
				reasons = append(reasons, "Activity level fits your pace")
				break
			}
		}

		if size := profile.Preferences.Size; size == "any" || size == cand.Size {
			score += 0.1
		}

		score = clamp01(score)
		if score <= 0.4 {
			continue
		}
		recs = append(recs, e.recommendation(cand, score, reasons))
	}

	sortByScore(recs)
	return recs
}

// DiscoverByQuery scores every joined community against lowercase free
// text. Candidates scoring 0.2 or below are dropped.
func (e *Engine) DiscoverByQuery(query string) []Recommendation {
	q := strings.ToLower(strings.TrimSpace(query))
	words := strings.Fields(q)

	var recs []Recommendation
	for _, cand := range e.joined {
		score := 0.0
		var reasons []string

		if q != "" && strings.Contains(strings.ToLower(cand.Community.Name), q) {
			score += 0.4
			reasons = append(reasons, "Name matches your search")
		}
		if containsAnyWord(cand.Category, words) {
			score += 0.3
			reasons = append(reasons, cand.Category+" community")
		}
		if tagOverlapsQuery(cand.Tags, q, words) {
			score += 0.2
			reasons = append(reasons, "Covers topics you searched for")
		}
		if tagOverlapsQuery(cand.Games, q, words) {
			score += 0.3
			reasons = append(reasons, "Plays the games you searched for")
		}
		if containsAnyWord(cand.Vibe, words) {
			score += 0.2
			reasons = append(reasons, cand.Vibe)
		}

		score = clamp01(score)
		if score <= 0.2 {
			continue
		}
		recs = append(recs, e.recommendation(cand, score, reasons))
	}

	sortByScore(recs)
	return recs
}

func (e *Engine) recommendation(d Descriptor, score float64, reasons []string) Recommendation {
	if len(reasons) == 0 {
		reasons = []string{d.Vibe}
	}
	return Recommendation{
		Server:   d.Community,
		Score:    score,
		Reasons:  reasons,
		Category: d.Category,
		Activity: d.Activity,
		Vibe:     d.Vibe,
		Games:    d.Games,
		Features: d.Features,
		WhyJoin:  d.WhyJoin,
	}
}

func overlapCount(a, b []string) int {
	set := make(map[string]struct{}, len(b))
	for _, s := range b {
		set[strings.ToLower(s)] = struct{}{}
	}
	n := 0
	for _, s := range a {
		if _, ok := set[strings.ToLower(s)]; ok {
			n++
		}
	}
	return n
}

func hasAnyTag(d Descriptor, tags ...string) bool {
	for _, t := range d.Tags {
		lt := strings.ToLower(t)
		for _, want := range tags {
			if lt == want {
				return true
			}
		}
	}
	return false
}

func gameMatch(games []string, game string) bool {
	lg := strings.ToLower(game)
	for _, g := range games {
		cg := strings.ToLower(g)
		if strings.Contains(cg, lg) || strings.Contains(lg, cg) {
			return true
		}
	}
	return false
}

func containsAnyWord(text string, words []string) bool {
	lower := strings.ToLower(text)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// tagOverlapsQuery reports whether any tag substring-overlaps the query in
// either direction.
func tagOverlapsQuery(tags []string, q string, words []string) bool {
	if q == "" {
		return false
	}
	for _, t := range tags {
		lt := strings.ToLower(t)
		if strings.Contains(q, lt) {
			return true
		}
		for _, w := range words {
			if strings.Contains(lt, w) {
				return true
			}
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func sortByScore(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
}
