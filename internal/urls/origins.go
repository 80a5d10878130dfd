package urls

import (
	"net/url"
	"strings"

	"github.com/feedbackhq/whatsapp-feedback/internal/config"
)

// OriginKind discriminates the matcher variants in a CORS allow-list.
type OriginKind int

const (
	// OriginExact matches one literal scheme+host+port origin.
	OriginExact OriginKind = iota
	// OriginSuffix matches any https origin whose host is a subdomain of a
	// platform domain.
	OriginSuffix
	// OriginLocalhost matches http://localhost on any port.
	OriginLocalhost
	// OriginAny matches every origin. Development only.
	OriginAny
)

// Origin is one entry of the ordered CORS allow-list.
type Origin struct {
	Kind  OriginKind
	Value string
}

// Exact returns a matcher for a single literal origin.
func Exact(origin string) Origin {
	return Origin{Kind: OriginExact, Value: origin}
}

// Suffix returns a matcher for any subdomain of domain over https.
func Suffix(domain string) Origin {
	return Origin{Kind: OriginSuffix, Value: domain}
}

// LocalhostAnyPort returns a matcher for http://localhost:<port>.
func LocalhostAnyPort() Origin {
	return Origin{Kind: OriginLocalhost}
}

// AnyOrigin is the development wildcard sentinel.
var AnyOrigin = Origin{Kind: OriginAny}

// Matches reports whether candidate (a request's Origin header value) is
// accepted by this matcher. Malformed candidates never match a pattern.
func (o Origin) Matches(candidate string) bool {
	switch o.Kind {
	case OriginExact:
		return o.Value != "" && candidate == o.Value
	case OriginSuffix:
		u, err := url.Parse(candidate)
		if err != nil || u.Scheme != "https" {
			return false
		}
		return strings.HasSuffix(u.Hostname(), "."+o.Value)
	case OriginLocalhost:
		u, err := url.Parse(candidate)
		if err != nil || u.Scheme != "http" {
			return false
		}
		return u.Hostname() == "localhost" && u.Port() != ""
	case OriginAny:
		return true
	}
	return false
}

// String renders the matcher for diagnostics.
func (o Origin) String() string {
	switch o.Kind {
	case OriginSuffix:
		return "https://*." + o.Value
	case OriginLocalhost:
		return "http://localhost:*"
	case OriginAny:
		return "*"
	}
	return o.Value
}

// Allowed scans the ordered list and reports whether candidate is accepted.
func Allowed(origins []Origin, candidate string) bool {
	for _, o := range origins {
		if o.Matches(candidate) {
			return true
		}
	}
	return false
}

// CORSOrigins builds the ordered allow-list: the resolved frontend URL, the
// fixed local dev origins, the localhost-port pattern and the three platform
// suffix patterns. Development additionally appends the wildcard sentinel.
// Duplicates are kept; empty literal entries are dropped so a blank override
// can never allow the empty origin.
func CORSOrigins(env config.Snapshot) []Origin {
	origins := []Origin{
		Exact(FrontendURL(env)),
		Exact("http://localhost:5173"),
		Exact("http://localhost:4173"),
		Exact("http://localhost:3000"),
		Exact("http://localhost:8080"),
		LocalhostAnyPort(),
		Suffix(renderSuffix),
		Suffix(vercelSuffix),
		Suffix(netlifySuffix),
	}
	if !IsProduction(env) {
		origins = append(origins, AnyOrigin)
	}
	filtered := make([]Origin, 0, len(origins))
	for _, o := range origins {
		if o.Kind == OriginExact && o.Value == "" {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}
