package middleware

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"root", "/", "/"},
		{"health", "/health", "/health"},
		{"open session", "/api/v1/sessions", "/api/v1/sessions"},
		{"snapshot", "/api/v1/sessions/3f1c9e0a-1b2c-4d5e-8f90-abcdefabcdef", "/api/v1/sessions/:sid"},
		{"nested", "/api/v1/sessions/3f1c9e0a-1b2c-4d5e-8f90-abcdefabcdef/records", "/api/v1/sessions/:sid/records"},
		{"deep nested", "/api/v1/sessions/abc/inventory/consume", "/api/v1/sessions/:sid/inventory/consume"},
		{"trailing slash only", "/api/v1/sessions/", "/api/v1/sessions/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizePath(tt.path); got != tt.want {
				t.Errorf("normalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
