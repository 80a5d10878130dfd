package urls

import (
	"testing"

	"github.com/feedbackhq/whatsapp-feedback/internal/config"
	"go.uber.org/zap"
)

func TestFrontendURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  config.Snapshot
		want string
	}{
		{
			name: "explicit override wins over everything",
			env: config.Snapshot{
				"FRONTEND_URL": "https://feedback.example.com",
				"APP_ENV":      "production",
				"RENDER":       "true",
			},
			want: "https://feedback.example.com",
		},
		{
			name: "empty environment defaults to dev URL",
			env:  config.Snapshot{},
			want: "http://localhost:5173",
		},
		{
			name: "non-production mode value defaults to dev URL",
			env:  config.Snapshot{"APP_ENV": "staging"},
			want: "http://localhost:5173",
		},
		{
			name: "production with platform flag and service name",
			env: config.Snapshot{
				"APP_ENV":             "production",
				"RENDER":              "true",
				"RENDER_SERVICE_NAME": "foo",
			},
			want: "https://foo.onrender.com",
		},
		{
			name: "production with platform flag and default service name",
			env: config.Snapshot{
				"APP_ENV": "production",
				"RENDER":  "true",
			},
			want: "https://whatsapp-feedback-fullstack.onrender.com",
		},
		{
			name: "production with external URL and no platform flag",
			env: config.Snapshot{
				"APP_ENV":             "production",
				"RENDER_EXTERNAL_URL": "https://assigned.onrender.com",
			},
			want: "https://assigned.onrender.com",
		},
		{
			name: "production with nothing set falls back to default",
			env:  config.Snapshot{"APP_ENV": "production"},
			want: "https://whatsapp-feedback-fullstack.onrender.com",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FrontendURL(tt.env)
			if got != tt.want {
				t.Errorf("FrontendURL() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBackendURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  config.Snapshot
		want string
	}{
		{
			name: "development defaults",
			env:  config.Snapshot{},
			want: "http://localhost:8080",
		},
		{
			name: "development with host and port",
			env:  config.Snapshot{"HOST": "0.0.0.0", "PORT": "3001"},
			want: "http://0.0.0.0:3001",
		},
		{
			name: "development with non-numeric port falls back",
			env:  config.Snapshot{"PORT": "eight-thousand"},
			want: "http://localhost:8080",
		},
		{
			name: "production prefers external URL",
			env: config.Snapshot{
				"APP_ENV":             "production",
				"RENDER_EXTERNAL_URL": "https://api.onrender.com",
				"RENDER_SERVICE_NAME": "foo",
			},
			want: "https://api.onrender.com",
		},
		{
			name: "production falls back to service template",
			env: config.Snapshot{
				"APP_ENV":             "production",
				"RENDER_SERVICE_NAME": "foo",
			},
			want: "https://foo.onrender.com",
		},
		{
			name: "production with nothing set uses default service name",
			env:  config.Snapshot{"APP_ENV": "production"},
			want: "https://whatsapp-feedback-fullstack.onrender.com",
		},
		{
			name: "no explicit backend override in production",
			env: config.Snapshot{
				"APP_ENV":      "production",
				"FRONTEND_URL": "https://feedback.example.com",
			},
			want: "https://whatsapp-feedback-fullstack.onrender.com",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := BackendURL(tt.env)
			if got != tt.want {
				t.Errorf("BackendURL() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestResolversAreIdempotent(t *testing.T) {
	t.Parallel()

	env := config.Snapshot{
		"APP_ENV":             "production",
		"RENDER":              "true",
		"RENDER_SERVICE_NAME": "foo",
	}

	if first, second := FrontendURL(env), FrontendURL(env); first != second {
		t.Errorf("FrontendURL not idempotent: %s then %s", first, second)
	}
	if first, second := BackendURL(env), BackendURL(env); first != second {
		t.Errorf("BackendURL not idempotent: %s then %s", first, second)
	}
	first, second := CORSOrigins(env), CORSOrigins(env)
	if len(first) != len(second) {
		t.Fatalf("CORSOrigins not idempotent: %d then %d entries", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("CORSOrigins entry %d differs: %v then %v", i, first[i], second[i])
		}
	}
}

func TestStartupSummaryDoesNotAffectResolution(t *testing.T) {
	t.Parallel()

	env := config.Snapshot{"APP_ENV": "production"}
	before := FrontendURL(env)

	log := zap.NewNop()
	StartupSummary(log, env)
	StartupSummary(log, env)

	if after := FrontendURL(env); after != before {
		t.Errorf("StartupSummary changed resolution: %s then %s", before, after)
	}
}
