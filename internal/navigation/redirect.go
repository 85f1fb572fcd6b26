package navigation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MrSnakeDoc/launchpad/internal/domain"
)

const (
	DefaultEndpoint = "https://www.youtube.com/redirect"
	DefaultParam    = "q"
)

// Redirector builds outbound launch URLs: the target is normalized and
// passed through a fixed redirect endpoint as a query parameter.
type Redirector struct {
	endpoint *url.URL
	param    string
}

// NewRedirector validates endpoint. Empty values fall back to the defaults.
func NewRedirector(endpoint, param string) (*Redirector, error) {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	if strings.TrimSpace(param) == "" {
		param = DefaultParam
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid redirect endpoint %q: %w", endpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid redirect endpoint %q: want an absolute http(s) url", endpoint)
	}
	return &Redirector{endpoint: u, param: param}, nil
}

// URLFor returns the redirect URL that opens raw.
//
//	URLFor("example.com") -> https://www.youtube.com/redirect?q=https%3A%2F%2Fexample.com
func (r *Redirector) URLFor(raw string) string {
	out := *r.endpoint
	q := out.Query()
	q.Set(r.param, domain.NormalizeURL(raw))
	out.RawQuery = q.Encode()
	return out.String()
}
