// Package middleware adapts the resolved origin allow-list into HTTP
// middleware for whichever server embeds the resolvers.
package middleware

import (
	"net/http"

	"github.com/feedbackhq/whatsapp-feedback/internal/urls"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// CORS wraps handlers with CORS enforcement over the ordered origin list.
// Pattern matchers (platform suffixes, localhost ports, the dev wildcard)
// are evaluated per request through AllowOriginFunc; rs/cors echoes the
// request origin back, so credentialed requests work with patterns too.
func CORS(origins []urls.Origin, log *zap.Logger) func(http.Handler) http.Handler {
	if log != nil {
		matchers := make([]string, len(origins))
		for i, o := range origins {
			matchers[i] = o.String()
		}
		log.Info("cors_configured", zap.Strings("origins", matchers))
	}
	c := cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return urls.Allowed(origins, origin)
		},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           86400,
	})
	return c.Handler
}
