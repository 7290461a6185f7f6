package query

import "testing"

func TestClassifyIntent(t *testing.T) {
	cases := []struct {
		input string
		want  Intent
	}{
		{"find threads about gaming", IntentFindThreads},
		{"show me threads about valorant", IntentFindThreads},
		{"recall that discussion about the patch", IntentFindThreads},
		{"what threads are active", IntentFindThreads},
		{"find servers with active voice chats", IntentFindServers},
		{"servers similar to Gaming Hub", IntentFindServers},
		{"gaming servers", IntentFindServers},
		{"recommend some servers", IntentFindServers},
		{"find channels for music production", IntentFindChannels},
		{"which channels discuss minecraft", IntentFindChannels},
		{"navigate to channel general", IntentFindChannels},
		{"take me to valorant-lfg", IntentNavigate},
		{"go to general", IntentNavigate},
		{"switch to the production channel", IntentNavigate},
		{"open channel showcase", IntentNavigate},
		{"valorant tips", IntentSearch},
		{"", IntentSearch},
	}
	for _, tc := range cases {
		if got := ClassifyIntent(tc.input); got != tc.want {
			t.Fatalf("ClassifyIntent(%q)=%q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestClassifyIntentCascadePrecedence(t *testing.T) {
	// Matches both a thread pattern and a server pattern; the thread rule
	// is earlier in the cascade and must win.
	if got := ClassifyIntent("find threads about gaming servers"); got != IntentFindThreads {
		t.Fatalf("cascade precedence broken: got %q", got)
	}

	// Matches both a server pattern and a channel word; servers are earlier.
	if got := ClassifyIntent("show me servers with good channels"); got != IntentFindServers {
		t.Fatalf("server/channel precedence broken: got %q", got)
	}

	// "navigate to channel" is a channel pattern checked before navigation.
	if got := ClassifyIntent("navigate to channel production"); got != IntentFindChannels {
		t.Fatalf("channel/navigate precedence broken: got %q", got)
	}
}
