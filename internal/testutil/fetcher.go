package testutil

import (
	"context"
	"fmt"
	"sync"
)

// ErrUnscripted is returned for URLs the fetcher has no response for.
type ErrUnscripted struct {
	URL string
}

func (e ErrUnscripted) Error() string {
	return fmt.Sprintf("testutil: no scripted response for %s", e.URL)
}

type scripted struct {
	body  string
	err   error
	block chan struct{}
}

// ScriptedFetcher answers Fetch from a URL -> response table and records every call.
// It is safe for concurrent use.
type ScriptedFetcher struct {
	mu        sync.Mutex
	responses map[string]scripted
	calls     []string
}

func NewScriptedFetcher() *ScriptedFetcher {
	return &ScriptedFetcher{responses: make(map[string]scripted)}
}

// Respond scripts a body for url.
func (f *ScriptedFetcher) Respond(url, body string) *ScriptedFetcher {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[url] = scripted{body: body}
	return f
}

// Fail scripts an error for url.
func (f *ScriptedFetcher) Fail(url string, err error) *ScriptedFetcher {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[url] = scripted{err: err}
	return f
}

// Block makes fetches of url wait until release is closed before answering.
func (f *ScriptedFetcher) Block(url string, release chan struct{}) *ScriptedFetcher {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := f.responses[url]
	r.block = release
	f.responses[url] = r
	return f
}

func (f *ScriptedFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, url)
	r, ok := f.responses[url]
	f.mu.Unlock()

	if !ok {
		return "", ErrUnscripted{URL: url}
	}
	if r.block != nil {
		<-r.block
	}
	if r.err != nil {
		return "", r.err
	}
	return r.body, nil
}

// Calls returns the fetched URLs in call order.
func (f *ScriptedFetcher) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Called reports whether url was fetched at least once.
func (f *ScriptedFetcher) Called(url string) bool {
	for _, c := range f.Calls() {
		if c == url {
			return true
		}
	}
	return false
}
