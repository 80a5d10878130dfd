package client

// Build-time configuration, injected with -ldflags, e.g.:
//
//	go build -ldflags "\
//	  -X github.com/feedbackhq/whatsapp-feedback/internal/client.buildMode=production \
//	  -X github.com/feedbackhq/whatsapp-feedback/internal/client.apiBaseOverride=https://api.example.com \
//	  -X github.com/feedbackhq/whatsapp-feedback/internal/client.backendPort=9090"
var (
	buildMode       string
	apiBaseOverride string
	backendPort     string
)

// FromBuild assembles the resolver Env from the build-time variables and the
// page location. An unset build mode means development; other unknown values
// are kept as-is so mode queries stay independent.
func FromBuild() Env {
	mode := Mode(buildMode)
	if mode == "" {
		mode = ModeDevelopment
	}
	return Env{
		APIBaseOverride: apiBaseOverride,
		Mode:            mode,
		BackendPort:     backendPort,
		PageHost:        pageHost(),
	}
}
