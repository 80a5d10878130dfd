// Package urls resolves the externally reachable frontend and backend URLs
// and the CORS origin allow-list from an environment snapshot. Every function
// is total: absent or malformed variables fall back to defaults, never errors.
package urls

import (
	"fmt"

	"github.com/feedbackhq/whatsapp-feedback/internal/config"
	"go.uber.org/zap"
)

// Environment variable names shared with the deployment environment. RENDER,
// RENDER_SERVICE_NAME and RENDER_EXTERNAL_URL are set by the hosting platform.
const (
	EnvFrontendURL       = "FRONTEND_URL"
	EnvAppEnv            = "APP_ENV"
	EnvRenderFlag        = "RENDER"
	EnvRenderServiceName = "RENDER_SERVICE_NAME"
	EnvRenderExternalURL = "RENDER_EXTERNAL_URL"
	EnvHost              = "HOST"
	EnvPort              = "PORT"
)

const (
	productionMode     = "production"
	devFrontendURL     = "http://localhost:5173"
	defaultServiceName = "whatsapp-feedback-fullstack"
	defaultHost        = "localhost"
	defaultPort        = 8080

	renderSuffix  = "onrender.com"
	vercelSuffix  = "vercel.app"
	netlifySuffix = "netlify.app"
)

// IsProduction reports whether APP_ENV carries the production sentinel. Any
// other value, including absence, means development.
func IsProduction(env config.Snapshot) bool {
	return env.Get(EnvAppEnv) == productionMode
}

// FrontendURL resolves the URL the frontend is reachable at. An explicit
// FRONTEND_URL always wins; outside production the fixed Vite dev URL is
// returned; in production the platform flag, then the platform-assigned URL,
// then a hard-coded default are tried in order.
func FrontendURL(env config.Snapshot) string {
	if override := env.Get(EnvFrontendURL); override != "" {
		return override
	}
	if !IsProduction(env) {
		return devFrontendURL
	}
	if env.Has(EnvRenderFlag) {
		return renderServiceURL(env)
	}
	if external := env.Get(EnvRenderExternalURL); external != "" {
		return external
	}
	return "https://" + defaultServiceName + "." + renderSuffix
}

// BackendURL resolves the backend's own externally reachable URL. In
// development it is composed from HOST and PORT; in production the
// platform-assigned URL is preferred, falling back to the service-name
// template. Unlike FrontendURL there is no explicit override variable.
func BackendURL(env config.Snapshot) string {
	if !IsProduction(env) {
		return fmt.Sprintf("http://%s:%d",
			env.GetDefault(EnvHost, defaultHost),
			env.GetInt(EnvPort, defaultPort))
	}
	if external := env.Get(EnvRenderExternalURL); external != "" {
		return external
	}
	return renderServiceURL(env)
}

func renderServiceURL(env config.Snapshot) string {
	return "https://" + env.GetDefault(EnvRenderServiceName, defaultServiceName) + "." + renderSuffix
}

// StartupSummary logs the resolved URLs and origin count. Diagnostic only:
// it never affects resolution and is safe to call repeatedly or not at all.
func StartupSummary(log *zap.Logger, env config.Snapshot) {
	mode := "development"
	if IsProduction(env) {
		mode = "production"
	}
	log.Info("url_configuration",
		zap.String("mode", mode),
		zap.String("frontend_url", FrontendURL(env)),
		zap.String("backend_url", BackendURL(env)),
		zap.Int("cors_origins", len(CORSOrigins(env))),
	)
}
