package query

import (
	"strings"
	"testing"

	"discord-rover/internal/search"
)

// fakeSearcher returns canned results and records which operation ran.
type fakeSearcher struct {
	called   string
	results  []search.Result
	threads  []search.Thread
	panicMsg string
}

func (f *fakeSearcher) maybePanic() {
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
}

func (f *fakeSearcher) SearchMessages(q search.Query) []search.Result {
	f.called = "messages"
	f.maybePanic()
	return f.results
}

func (f *fakeSearcher) SearchServers(query string) []search.Result {
	f.called = "servers"
	f.maybePanic()
	return f.results
}

func (f *fakeSearcher) SearchChannels(query, communityID string) []search.Result {
	f.called = "channels"
	f.maybePanic()
	return f.results
}

func (f *fakeSearcher) FindThreads(query, timeRange string) []search.Thread {
	f.called = "threads"
	f.maybePanic()
	return f.threads
}

func TestParseThreadQuery(t *testing.T) {
	p := NewProcessor(&fakeSearcher{})

	parsed := p.Parse("find threads about gaming", Context{ServerName: "Gaming Hub"})
	if parsed.Intent != IntentFindThreads {
		t.Fatalf("intent=%q, want find_threads", parsed.Intent)
	}
	if parsed.Query.Query != "threads gaming" {
		t.Fatalf("query=%q", parsed.Query.Query)
	}
	if strings.Contains(parsed.Query.Query, "find") || strings.Contains(parsed.Query.Query, "about") {
		t.Fatalf("stop words leaked into query: %q", parsed.Query.Query)
	}
	if parsed.Query.Type != "all" {
		t.Fatalf("type=%q, want all", parsed.Query.Type)
	}
	if parsed.Query.Server != "Gaming Hub" {
		t.Fatalf("ambient server not carried: %q", parsed.Query.Server)
	}
	if len(parsed.Suggestions) == 0 || len(parsed.Suggestions) > 3 {
		t.Fatalf("want 1-3 suggestions, got %d", len(parsed.Suggestions))
	}
}

func TestExecuteDispatch(t *testing.T) {
	cases := []struct {
		intent     Intent
		wantCalled string
		wantType   string
	}{
		{IntentSearch, "messages", "search_results"},
		{IntentFindThreads, "threads", "threads"},
		{IntentFindServers, "servers", "servers"},
		{IntentFindChannels, "channels", "channels"},
		{IntentNavigate, "channels", "navigation"},
	}
	for _, tc := range cases {
		fake := &fakeSearcher{}
		p := NewProcessor(fake)
		resp := p.Execute(Parsed{Intent: tc.intent, Query: search.Query{Query: "valorant"}})
		if fake.called != tc.wantCalled {
			t.Fatalf("intent %q called %q, want %q", tc.intent, fake.called, tc.wantCalled)
		}
		if resp.Type != tc.wantType {
			t.Fatalf("intent %q response type %q, want %q", tc.intent, resp.Type, tc.wantType)
		}
	}
}

func TestExecuteNavigationTarget(t *testing.T) {
	fake := &fakeSearcher{results: []search.Result{
		{Type: "channel", ID: "1-valorant-lfg", Title: "valorant-lfg"},
		{Type: "channel", ID: "1-general", Title: "general"},
	}}
	p := NewProcessor(fake)

	resp := p.Execute(Parsed{Intent: IntentNavigate, Query: search.Query{Query: "valorant"}})
	if resp.Navigation == nil {
		t.Fatal("expected navigation target")
	}
	if resp.Navigation.ID != "1-valorant-lfg" || resp.Navigation.Type != "channel" {
		t.Fatalf("unexpected target: %+v", resp.Navigation)
	}
}

func TestExecuteNavigationMiss(t *testing.T) {
	p := NewProcessor(&fakeSearcher{})
	resp := p.Execute(Parsed{Intent: IntentNavigate, Query: search.Query{Query: "nothing"}})
	if resp.Navigation != nil {
		t.Fatalf("no target expected, got %+v", resp.Navigation)
	}
	if resp.Type != "navigation" {
		t.Fatalf("type=%q", resp.Type)
	}
}

func TestExecuteEmptyResultsIsNotAnError(t *testing.T) {
	p := NewProcessor(&fakeSearcher{})
	resp := p.Execute(Parsed{Intent: IntentSearch, Query: search.Query{Query: "nothing matches"}})
	if resp.Type != "search_results" {
		t.Fatalf("type=%q, want search_results", resp.Type)
	}
	if !strings.Contains(resp.Message, "No results") {
		t.Fatalf("message=%q", resp.Message)
	}
}

func TestExecuteConvertsPanicToErrorResponse(t *testing.T) {
	p := NewProcessor(&fakeSearcher{panicMsg: "index corrupted"})
	resp := p.Execute(Parsed{Intent: IntentSearch, Query: search.Query{Query: "valorant"}})
	if resp.Type != "error" {
		t.Fatalf("type=%q, want error", resp.Type)
	}
	if !strings.Contains(resp.Message, "index corrupted") {
		t.Fatalf("panic text not surfaced: %q", resp.Message)
	}
	if len(resp.Suggestions) == 0 {
		t.Fatal("error response should carry query-simplification hints")
	}
}
