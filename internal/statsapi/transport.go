package statsapi

import (
	"net/http"
	"regexp"
	"strings"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

var numericSegment = regexp.MustCompile(`/\d+`)

// endpointLabel reduces a request URL to a low-cardinality label for metrics,
// e.g. https://host/api/v1/people/8478403/stats?x=y -> /api/v1/people/:id/stats.
func endpointLabel(rawURL string) string {
	path := rawURL
	if i := strings.Index(path, "://"); i >= 0 {
		path = path[i+3:]
		if j := strings.Index(path, "/"); j >= 0 {
			path = path[j:]
		} else {
			path = "/"
		}
	}
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		path = "/"
	}
	return numericSegment.ReplaceAllString(path, "/:id")
}
