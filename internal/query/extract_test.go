package query

import "testing"

func TestExtractTerms(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"find threads about gaming", "threads gaming"},
		{"search for valorant tips", "valorant tips"},
		// The leftmost user-clause match is "messages from the", so all
		// three words drop along with the command and time words and the
		// input degrades to an empty term list.
		{"show messages from the last week", ""},
		{"navigate to general", "general"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ExtractTerms(tc.input); got != tc.want {
			t.Fatalf("ExtractTerms(%q)=%q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestExtractTermsDropsUserClause(t *testing.T) {
	if got := ExtractTerms("alex said something about valorant"); got != "something valorant" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractUser(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"messages from alex", "alex"},
		{"what did sam post", "did"}, // quirk of the legacy pattern, preserved
		// "messages from the" wins as the leftmost match, so the article
		// becomes the user filter. Same quirk family as "what did".
		{"show messages from the last week", "the"},
		{"alex said we should play", "alex"},
		{"sam discussed the patch", "sam"},
		{"valorant tips", ""},
	}
	for _, tc := range cases {
		if got := ExtractUser(tc.input); got != tc.want {
			t.Fatalf("ExtractUser(%q)=%q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestExtractTimeRange(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"messages from the last hour", "hour"},
		{"what happened today", "day"},
		{"yesterday's discussion", "day"},
		{"threads from this week", "week"},
		{"last month in general", "month"},
		{"valorant tips", "all"},
		{"in the past hour or day", "hour"}, // hour wins, first in priority order
	}
	for _, tc := range cases {
		if got := ExtractTimeRange(tc.input); got != tc.want {
			t.Fatalf("ExtractTimeRange(%q)=%q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestInferType(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"messages about valorant", "message"},
		{"what alex said", "message"},
		{"find servers with music", "server"},
		{"channels about art", "channel"},
		{"find threads about gaming", "all"},
		{"messages in gaming servers", "message"}, // message patterns checked first
	}
	for _, tc := range cases {
		if got := InferType(tc.input); got != tc.want {
			t.Fatalf("InferType(%q)=%q, want %q", tc.input, got, tc.want)
		}
	}
}
