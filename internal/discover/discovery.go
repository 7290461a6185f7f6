// internal/discover/discovery.go
package discover

import (
	"strings"

	"discord-rover/internal/corpus"
)

var (
	beginnerCues     = []string{"new", "newbie", "learn", "first time", "starting out", "never played"}
	advancedCues     = []string{"advanced", "veteran", "experienced", "hardcore", "expert", "serious"}
	intermediateCues = []string{"intermediate", "some experience"}

	tabletopCues = []string{"dnd", "d&d", "tabletop", "dungeons", "rpg"}
	gamingCues   = []string{"gaming", "game", "play", "esports"}
	artCues      = []string{"art", "creative", "drawing", "design"}
	musicCues    = []string{"music", "song", "beats", "producer"}
	animeCues    = []string{"anime", "manga"}
	learningCues = []string{"learn", "learning", "study", "language", "education"}
)

// InferSkillLevel guesses a requested experience level from keyword
// families in the query. Empty when no cue is present.
func InferSkillLevel(query string) string {
	q := strings.ToLower(query)
	for _, cue := range beginnerCues {
		if strings.Contains(q, cue) {
			return "beginner"
		}
	}
	for _, cue := range advancedCues {
		if strings.Contains(q, cue) {
			return "advanced"
		}
	}
	for _, cue := range intermediateCues {
		if strings.Contains(q, cue) {
			return "intermediate"
		}
	}
	return ""
}

// DiscoveryRecommendations scores the "not yet joined" catalog. Every
// catalog entry is returned, sorted best first; truncation for display is
// the caller's concern. Each result carries at least one match reason,
// falling back to the authored vibe text when no bonus fired.
func (e *Engine) DiscoveryRecommendations(query string) []Recommendation {
	q := strings.ToLower(strings.TrimSpace(query))
	words := strings.Fields(q)
	level := InferSkillLevel(q)

	recs := make([]Recommendation, 0, len(e.catalog))
	for _, cand := range e.catalog {
		score := 0.5
		var reasons []string

		if q == "" {
			if cand.Activity == corpus.ActivityVeryHigh {
				score += 0.2
				reasons = append(reasons, "Very active community")
			}
		} else {
			if level != "" {
				switch cand.Experience {
				case level:
					score += 0.35
					reasons = append(reasons, "Perfect for "+level+" members")
				case "all":
					score += 0.2
					reasons = append(reasons, "Welcomes all experience levels")
				}
			}
			if containsAnyWord(cand.Category, words) {
				score += 0.2
				reasons = append(reasons, cand.Category+" community")
			}
			if n := matchingTagCount(cand.Tags, q, words); n > 0 {
				if n > 3 {
					n = 3
				}
				score += 0.15 * float64(n)
				reasons = append(reasons, "Covers topics you're into")
			}
			if strings.Contains(strings.ToLower(cand.Community.Name), q) || containsAnyWord(cand.Community.Name, words) {
				score += 0.25
				reasons = append(reasons, "Name matches your search")
			}

			score += e.domainBonuses(q, cand, &reasons)
		}

		// Small jitter for result-list variety; the engine's seeded source
		// keeps ordering reproducible.
		score += e.jitter()
		score = clamp01(score)

		recs = append(recs, e.recommendation(cand, score, reasons))
	}

	sortByScore(recs)
	return recs
}

// jitter draws the next variety offset. rand.Rand is not safe for
// concurrent use, and discovery runs from concurrent event handlers.
func (e *Engine) jitter() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Float64() * 0.1
}

// domainBonuses is the battery of keyword-family bonuses applied in
// discovery mode.
func (e *Engine) domainBonuses(q string, cand Descriptor, reasons *[]string) float64 {
	bonus := 0.0
	category := strings.ToLower(cand.Category)

	if containsAnyCue(q, tabletopCues) && (strings.Contains(category, "tabletop") || hasAnyTag(cand, "dnd", "rpg", "tabletop")) {
		bonus += 0.2
		*reasons = append(*reasons, "Tabletop and RPG focused")
	}
	if strings.Contains(q, "active") && cand.Activity.Ord() >= corpus.ActivityHigh.Ord() {
		bonus += 0.15
		*reasons = append(*reasons, "Highly active right now")
	}
	if containsAnyCue(q, []string{"chill", "relaxed", "casual"}) && cand.Activity.Ord() <= corpus.ActivityMedium.Ord() {
		bonus += 0.15
		*reasons = append(*reasons, "Low-pressure, chill pace")
	}
	if containsAnyCue(q, gamingCues) && strings.Contains(category, "gaming") {
		bonus += 0.2
		*reasons = append(*reasons, "Gaming community")
	}
	if containsAnyCue(q, artCues) && (strings.Contains(category, "art") || strings.Contains(category, "creative")) {
		bonus += 0.2
		*reasons = append(*reasons, "Creative community")
	}
	if containsAnyCue(q, musicCues) && strings.Contains(category, "music") {
		bonus += 0.2
		*reasons = append(*reasons, "Music community")
	}
	if containsAnyCue(q, animeCues) && (strings.Contains(category, "anime") || hasAnyTag(cand, "anime")) {
		bonus += 0.3
		*reasons = append(*reasons, "Anime community")
	}
	if containsAnyCue(q, learningCues) && (strings.Contains(category, "education") || strings.Contains(category, "learning")) {
		bonus += 0.2
		*reasons = append(*reasons, "Learning focused")
	}
	return bonus
}

func containsAnyCue(q string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(q, cue) {
			return true
		}
	}
	return false
}

// matchingTagCount counts tags that substring-overlap the query in either
// direction.
func matchingTagCount(tags []string, q string, words []string) int {
	n := 0
	for _, t := range tags {
		lt := strings.ToLower(t)
		if strings.Contains(q, lt) {
			n++
			continue
		}
		for _, w := range words {
			if strings.Contains(lt, w) {
				n++
				break
			}
		}
	}
	return n
}
