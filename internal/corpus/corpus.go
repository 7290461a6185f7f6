// internal/corpus/corpus.go
package corpus

import "time"

// ActivityLevel is the coarse activity ordinal attached to a community.
type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "low"
	ActivityMedium   ActivityLevel = "medium"
	ActivityHigh     ActivityLevel = "high"
	ActivityVeryHigh ActivityLevel = "very_high"
)

// Ord returns the ordinal rank of the level, with unknown levels ranked lowest.
func (a ActivityLevel) Ord() int {
	switch a {
	case ActivityLow:
		return 1
	case ActivityMedium:
		return 2
	case ActivityHigh:
		return 3
	case ActivityVeryHigh:
		return 4
	}
	return 0
}

// Community is a server the user has joined (or can discover). It owns its
// channels; everything else references it by ID.
type Community struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Icon          string          `json:"icon"`
	TextChannels  []*TextChannel  `json:"textChannels"`
	VoiceChannels []*VoiceChannel `json:"voiceChannels,omitempty"`
}

// TextChannel holds an ordered message history. Insertion order is
// chronological order; messages are never reordered or deleted in a session.
type TextChannel struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Messages    []*Message `json:"messages"`
}

// VoiceChannel only seeds presence. No message history, never indexed.
type VoiceChannel struct {
	Name      string   `json:"name"`
	Occupants int      `json:"occupants"`
	Names     []string `json:"names,omitempty"`
}

// Message is unique by ID only within its owning channel.
//
// Author is the display name the legacy data carries; AuthorID is the stable
// identity. Search and thread participants match on the display name for
// compatibility with the original behavior.
type Message struct {
	ID       int    `json:"id"`
	AuthorID string `json:"authorId,omitempty"`
	Author   string `json:"author"`
	// Time is a free-form display string ("6:00 AM"), not sortable. PostedAt
	// is the real timestamp when the seed data carries one; zero otherwise,
	// in which case insertion order is the only ordering available.
	Time      string    `json:"time"`
	PostedAt  time.Time `json:"postedAt,omitzero"`
	Content   string    `json:"content"`
	IsBot     bool      `json:"isBot,omitempty"`
	Links     []string  `json:"links,omitempty"`
	Reactions []string  `json:"reactions,omitempty"`
	IsWelcome bool      `json:"isWelcome,omitempty"`
}

// ServerDiscoveryMeta is the banner-level metadata side table, keyed by
// community ID.
type ServerDiscoveryMeta struct {
	Banner      string `json:"banner,omitempty"`
	Description string `json:"description"`
	Online      int    `json:"online"`
	Members     int    `json:"members"`
	Verified    bool   `json:"verified,omitempty"`
}

// DiscoveryServerMeta is the richer authored descriptor used by the
// recommendation engine. Purely descriptive, never mutated at runtime.
type DiscoveryServerMeta struct {
	Category   string        `json:"category"`
	Tags       []string      `json:"tags"`
	Activity   ActivityLevel `json:"activity"`
	Vibe       string        `json:"vibe"`
	WhyJoin    []string      `json:"whyJoin,omitempty"`
	Games      []string      `json:"games,omitempty"`
	Features   []string      `json:"features,omitempty"`
	Experience string        `json:"experience,omitempty"` // beginner|intermediate|advanced|all
}

// DMUser is a direct-message contact. Carried for completeness; not
// exercised by the core search algorithms.
type DMUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
}

// UserProfile is the ephemeral, request-scoped preference profile used by
// the recommendation engine. Never persisted.
type UserProfile struct {
	Interests      []string
	PreferredGames []string
	ActivityLevel  string // casual|regular|hardcore
	Preferences    ServerPreferences
}

type ServerPreferences struct {
	Size          string // small|medium|large|any
	Activity      string
	CommunityType string
}

// Corpus is the static data set every engine operates over. Read-only for
// the lifetime of a session.
type Corpus struct {
	Communities   []*Community                `json:"communities"`
	Discoverable  []*Community                `json:"discoverable"`
	ServerMeta    map[int]ServerDiscoveryMeta `json:"serverMeta"`
	DiscoveryMeta map[int]DiscoveryServerMeta `json:"discoveryMeta"`
	DMUsers       []*DMUser                   `json:"dmUsers,omitempty"`
}

// Community returns the joined community with the given ID, or nil.
func (c *Corpus) Community(id int) *Community {
	for _, cm := range c.Communities {
		if cm.ID == id {
			return cm
		}
	}
	return nil
}
