// internal/discover/descriptor.go
package discover

import (
	"strings"

	"discord-rover/internal/corpus"
)

// Descriptor is the per-community record the recommendation engine scores
// against. Built once at engine construction and never re-evaluated.
type Descriptor struct {
	Community  *corpus.Community
	Category   string
	Activity   corpus.ActivityLevel
	Vibe       string
	Tags       []string
	Games      []string
	Features   []string
	WhyJoin    []string
	Experience string
	Size       string // small|medium|large

	// Heuristic 0-100 scores assigned at descriptor-build time.
	ActivityScore int
	Friendliness  int
	Organization  int
}

type archetype struct {
	category      string
	activity      corpus.ActivityLevel
	vibe          string
	tags          []string
	games         []string
	activityScore int
	friendliness  int
	organization  int
}

// nameArchetypes is the legacy name-substring classifier. It only applies
// when no authored DiscoveryServerMeta exists for a community; the authored
// descriptor is always preferred because the substring match silently
// misclassifies anything whose name lacks the magic word.
var nameArchetypes = []struct {
	substr string
	archetype
}{
	{"gaming", archetype{
		category: "Gaming", activity: corpus.ActivityVeryHigh,
		vibe: "Fast-paced multiplayer community",
		tags: []string{"fps", "competitive", "multiplayer"},
		games: []string{"Valorant", "Minecraft"},
		activityScore: 90, friendliness: 70, organization: 65,
	}},
	{"music", archetype{
		category: "Music", activity: corpus.ActivityHigh,
		vibe: "Listening sessions and production feedback",
		tags: []string{"music", "production", "listening"},
		activityScore: 70, friendliness: 85, organization: 75,
	}},
	{"midjourney", archetype{
		category: "AI & Creative", activity: corpus.ActivityHigh,
		vibe: "Prompt crafting and AI art showcases",
		tags: []string{"ai-art", "creative", "prompts"},
		activityScore: 75, friendliness: 80, organization: 80,
	}},
}

var generalArchetype = archetype{
	category: "General", activity: corpus.ActivityMedium,
	vibe: "A little bit of everything",
	tags: []string{"community", "chat"},
	activityScore: 60, friendliness: 75, organization: 70,
}

func classifyByName(name string) archetype {
	lower := strings.ToLower(name)
	for _, a := range nameArchetypes {
		if strings.Contains(lower, a.substr) {
			return a.archetype
		}
	}
	return generalArchetype
}

// buildDescriptor joins a community against its authored metadata, falling
// back to the name archetype when nothing is authored.
func buildDescriptor(cm *corpus.Community, c *corpus.Corpus) Descriptor {
	d := Descriptor{Community: cm, Size: "medium"}

	if meta, ok := c.ServerMeta[cm.ID]; ok {
		d.Size = sizeFor(meta.Members)
	}

	a := classifyByName(cm.Name)
	d.ActivityScore = a.activityScore
	d.Friendliness = a.friendliness
	d.Organization = a.organization

	if meta, ok := c.DiscoveryMeta[cm.ID]; ok {
		d.Category = meta.Category
		d.Activity = meta.Activity
		d.Vibe = meta.Vibe
		d.Tags = meta.Tags
		d.Games = meta.Games
		d.Features = meta.Features
		d.WhyJoin = meta.WhyJoin
		d.Experience = meta.Experience
		return d
	}

	d.Category = a.category
	d.Activity = a.activity
	d.Vibe = a.vibe
	d.Tags = a.tags
	d.Games = a.games
	return d
}

func sizeFor(members int) string {
	switch {
	case members < 1000:
		return "small"
	case members < 10000:
		return "medium"
	}
	return "large"
}
