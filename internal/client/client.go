// Package client resolves the backend API base URL and derived endpoint URLs
// for the browser-delivered frontend. Resolution depends only on the build
// mode, an optional build-time override, and the page's own host, all carried
// in an explicit Env value so tests never touch global state.
package client

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Mode is the frontend build mode.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

// Platform domains whose hosts serve the API under /api on the same origin.
// Kept in sync with the server-side allow-list by convention; the two
// resolvers are deployed as separate artifacts and share no code.
var platformSuffixes = []string{"onrender.com", "vercel.app", "netlify.app"}

const defaultBackendPort = "8080"

// Env is the client resolver's input: build-time flags plus the page host.
type Env struct {
	// APIBaseOverride, when non-empty, is returned verbatim by APIBaseURL.
	APIBaseOverride string
	// Mode is the build mode; anything other than ModeProduction resolves
	// like a development build.
	Mode Mode
	// BackendPort overrides the development backend port. Non-numeric
	// values are treated as absent.
	BackendPort string
	// PageHost is the browser's location.host.
	PageHost string
}

// IsDevelopment reports whether this is a development build.
func (e Env) IsDevelopment() bool { return e.Mode == ModeDevelopment }

// IsProduction reports whether this is a production build. Not the negation
// of IsDevelopment: a future third mode is neither.
func (e Env) IsProduction() bool { return e.Mode == ModeProduction }

// APIBaseURL resolves the base URL for API calls. An explicit override wins;
// production builds served from a known platform host call that host
// absolutely, any other production host uses the same-origin relative /api;
// development builds target the local backend port.
func APIBaseURL(e Env) string {
	if e.APIBaseOverride != "" {
		return e.APIBaseOverride
	}
	if e.IsProduction() {
		for _, suffix := range platformSuffixes {
			if strings.HasSuffix(e.PageHost, "."+suffix) {
				return "https://" + e.PageHost + "/api"
			}
		}
		return "/api"
	}
	port := e.BackendPort
	if _, err := strconv.Atoi(port); err != nil {
		port = defaultBackendPort
	}
	return "http://localhost:" + port + "/api"
}

// BackendBaseURL is APIBaseURL without its trailing /api segment. Only an
// anchored trailing match is stripped; /api elsewhere in the URL is kept.
func BackendBaseURL(e Env) string {
	return strings.TrimSuffix(APIBaseURL(e), "/api")
}

// EndpointURL joins the API base URL and path with exactly one slash. A
// missing leading slash is prepended; no other normalization happens, the
// caller passes a clean path.
func EndpointURL(e Env, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return APIBaseURL(e) + path
}

// EventStreamURL resolves the server-sent events endpoint.
func EventStreamURL(e Env) string {
	return EndpointURL(e, "/events")
}

// StartupSummary logs the resolved URLs. Development builds only.
func StartupSummary(log *zap.Logger, e Env) {
	if !e.IsDevelopment() {
		return
	}
	log.Info("client_url_configuration",
		zap.String("mode", string(e.Mode)),
		zap.String("api_base_url", APIBaseURL(e)),
		zap.String("backend_base_url", BackendBaseURL(e)),
		zap.String("event_stream_url", EventStreamURL(e)),
	)
}
