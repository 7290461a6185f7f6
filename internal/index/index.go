// internal/index/index.go
package index

import (
	"strconv"

	"discord-rover/internal/corpus"
)

// MessageRef is a lightweight, non-owning pointer into the corpus. Display
// fields are joined against the corpus at query time instead of being
// copied into every index entry.
type MessageRef struct {
	CommunityID int
	ChannelID   string
	MessageID   int
}

// ChannelInfo describes one indexed channel, text or voice, with its parent
// community resolved.
type ChannelInfo struct {
	Key           string // "{communityID}-{channelID or voice name}"
	ID            string
	Name          string
	Type          string // "text" or "voice"
	Description   string
	CommunityID   int
	CommunityName string
}

// Index is the inverted token index plus the flat community/channel/DM
// lookup maps. Built once from a corpus and immutable afterwards; rebuild
// wholesale if the corpus ever changes.
type Index struct {
	corpus      *corpus.Corpus
	tokens      map[string][]MessageRef
	communities map[string]*corpus.Community
	channels    map[string]ChannelInfo
	channelKeys []string // insertion order for deterministic iteration
	dms         map[string]*corpus.DMUser
}

// Build constructs the index over every joined community. Cost is linear in
// the total word count of the corpus.
func Build(c *corpus.Corpus) *Index {
	ix := &Index{
		corpus:      c,
		tokens:      make(map[string][]MessageRef),
		communities: make(map[string]*corpus.Community, len(c.Communities)),
		channels:    make(map[string]ChannelInfo),
		dms:         make(map[string]*corpus.DMUser, len(c.DMUsers)),
	}

	for _, cm := range c.Communities {
		ix.communities[strconv.Itoa(cm.ID)] = cm

		for _, ch := range cm.TextChannels {
			ix.addChannel(ChannelInfo{
				Key:           strconv.Itoa(cm.ID) + "-" + ch.ID,
				ID:            ch.ID,
				Name:          ch.Name,
				Type:          "text",
				Description:   ch.Description,
				CommunityID:   cm.ID,
				CommunityName: cm.Name,
			})

			for _, m := range ch.Messages {
				ref := MessageRef{CommunityID: cm.ID, ChannelID: ch.ID, MessageID: m.ID}
				seen := make(map[string]struct{})
				for _, tok := range Tokenize(m.Content) {
					// A message is indexed once per distinct token.
					if _, ok := seen[tok]; ok {
						continue
					}
					seen[tok] = struct{}{}
					ix.tokens[tok] = append(ix.tokens[tok], ref)
				}
			}
		}

		for _, vc := range cm.VoiceChannels {
			ix.addChannel(ChannelInfo{
				Key:           strconv.Itoa(cm.ID) + "-" + vc.Name,
				ID:            vc.Name,
				Name:          vc.Name,
				Type:          "voice",
				CommunityID:   cm.ID,
				CommunityName: cm.Name,
			})
		}
	}

	for _, dm := range c.DMUsers {
		ix.dms[dm.ID] = dm
	}

	return ix
}

func (ix *Index) addChannel(info ChannelInfo) {
	ix.channels[info.Key] = info
	ix.channelKeys = append(ix.channelKeys, info.Key)
}

// Lookup returns the message bucket for a token, nil when the token was
// never indexed.
func (ix *Index) Lookup(token string) []MessageRef {
	return ix.tokens[token]
}

// Message joins a ref back against the corpus, returning the message and
// its resolved channel info.
func (ix *Index) Message(ref MessageRef) (*corpus.Message, ChannelInfo, bool) {
	cm := ix.communities[strconv.Itoa(ref.CommunityID)]
	if cm == nil {
		return nil, ChannelInfo{}, false
	}
	for _, ch := range cm.TextChannels {
		if ch.ID != ref.ChannelID {
			continue
		}
		for _, m := range ch.Messages {
			if m.ID == ref.MessageID {
				return m, ix.channels[strconv.Itoa(cm.ID)+"-"+ch.ID], true
			}
		}
	}
	return nil, ChannelInfo{}, false
}

// AllMessages returns one ref per message in the corpus, in corpus order.
func (ix *Index) AllMessages() []MessageRef {
	var refs []MessageRef
	for _, cm := range ix.corpus.Communities {
		for _, ch := range cm.TextChannels {
			for _, m := range ch.Messages {
				refs = append(refs, MessageRef{CommunityID: cm.ID, ChannelID: ch.ID, MessageID: m.ID})
			}
		}
	}
	return refs
}

// Communities returns the joined communities in corpus order.
func (ix *Index) Communities() []*corpus.Community {
	return ix.corpus.Communities
}

// Community resolves a community by its string ID.
func (ix *Index) Community(id string) *corpus.Community {
	return ix.communities[id]
}

// Channels returns every indexed channel descriptor in insertion order.
func (ix *Index) Channels() []ChannelInfo {
	out := make([]ChannelInfo, 0, len(ix.channelKeys))
	for _, key := range ix.channelKeys {
		out = append(out, ix.channels[key])
	}
	return out
}

// DMUser resolves a direct-message contact by ID.
func (ix *Index) DMUser(id string) *corpus.DMUser {
	return ix.dms[id]
}

// ServerMeta returns the banner-level metadata for a community, if authored.
func (ix *Index) ServerMeta(id int) (corpus.ServerDiscoveryMeta, bool) {
	meta, ok := ix.corpus.ServerMeta[id]
	return meta, ok
}
