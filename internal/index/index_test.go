package index

import (
	"testing"

	"discord-rover/internal/corpus"
)

func fixtureCorpus() *corpus.Corpus {
	return &corpus.Corpus{
		Communities: []*corpus.Community{
			{
				ID:   1,
				Name: "Gaming Hub",
				TextChannels: []*corpus.TextChannel{
					{
						ID:   "valorant-lfg",
						Name: "valorant-lfg",
						Messages: []*corpus.Message{
							{ID: 1, Author: "Alex", Time: "6:00 AM", Content: "Looking for Valorant teammates, Gold rank"},
						},
					},
					{
						ID:   "general",
						Name: "general",
						Messages: []*corpus.Message{
							{ID: 1, Author: "Sam", Time: "9:00 AM", Content: "gg"},
						},
					},
				},
				VoiceChannels: []*corpus.VoiceChannel{
					{Name: "Game Night", Occupants: 2},
				},
			},
		},
		DMUsers: []*corpus.DMUser{
			{ID: "dm-1", Name: "Jordan", Status: "online"},
		},
	}
}

func TestBuildIndexesEveryToken(t *testing.T) {
	ix := Build(fixtureCorpus())

	for _, tok := range Tokenize("Looking for Valorant teammates, Gold rank") {
		refs := ix.Lookup(tok)
		if len(refs) != 1 {
			t.Fatalf("token %q bucket has %d refs, want 1", tok, len(refs))
		}
		if refs[0].ChannelID != "valorant-lfg" || refs[0].MessageID != 1 {
			t.Fatalf("token %q resolved to wrong ref %+v", tok, refs[0])
		}
	}
}

func TestBuildSkipsShortOnlyMessages(t *testing.T) {
	ix := Build(fixtureCorpus())

	// "gg" survives no token, so the general message must appear in no bucket.
	for tok, refs := range map[string][]MessageRef{"gg": ix.Lookup("gg")} {
		if len(refs) != 0 {
			t.Fatalf("unexpected bucket %q: %+v", tok, refs)
		}
	}
	for _, ref := range ix.AllMessages() {
		m, _, ok := ix.Message(ref)
		if !ok {
			t.Fatalf("ref %+v did not resolve", ref)
		}
		if m.Content == "" {
			t.Fatal("resolved empty message")
		}
	}
}

func TestBuildDeduplicatesRepeatedTokens(t *testing.T) {
	c := fixtureCorpus()
	c.Communities[0].TextChannels[0].Messages = append(
		c.Communities[0].TextChannels[0].Messages,
		&corpus.Message{ID: 2, Author: "Riley", Time: "7:00 AM", Content: "valorant valorant valorant"},
	)
	ix := Build(c)

	refs := ix.Lookup("valorant")
	if len(refs) != 2 {
		t.Fatalf("valorant bucket has %d refs, want 2 (one per message)", len(refs))
	}
}

func TestCommunityLookup(t *testing.T) {
	ix := Build(fixtureCorpus())

	if cm := ix.Community("1"); cm == nil || cm.Name != "Gaming Hub" {
		t.Fatalf(`Community("1") = %+v, want Gaming Hub`, cm)
	}
	if cm := ix.Community("99"); cm != nil {
		t.Fatalf(`Community("99") = %+v, want nil`, cm)
	}
}

func TestDMUserLookup(t *testing.T) {
	ix := Build(fixtureCorpus())

	if dm := ix.DMUser("dm-1"); dm == nil || dm.Name != "Jordan" {
		t.Fatalf("DMUser(dm-1) = %+v, want Jordan", dm)
	}
	if dm := ix.DMUser("nope"); dm != nil {
		t.Fatalf("DMUser(nope) = %+v, want nil", dm)
	}
}

func TestChannelMap(t *testing.T) {
	ix := Build(fixtureCorpus())

	channels := ix.Channels()
	if len(channels) != 3 {
		t.Fatalf("got %d channels, want 3 (two text + one voice)", len(channels))
	}

	byKey := make(map[string]ChannelInfo, len(channels))
	for _, ch := range channels {
		byKey[ch.Key] = ch
	}
	lfg, ok := byKey["1-valorant-lfg"]
	if !ok {
		t.Fatal("missing channel key 1-valorant-lfg")
	}
	if lfg.Type != "text" || lfg.CommunityName != "Gaming Hub" {
		t.Fatalf("unexpected channel info: %+v", lfg)
	}
	if voice := byKey["1-Game Night"]; voice.Type != "voice" {
		t.Fatalf("voice channel not indexed as voice: %+v", voice)
	}
}
