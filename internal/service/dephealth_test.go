package service

import "testing"

// TestHealthPath проверяет выбор path для HTTP-проверки зависимости.
func TestHealthPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback string
		expected string
	}{
		{
			name:     "JWKS URL — используется его path",
			input:    "https://idp.example.org/realms/parentlib/protocol/openid-connect/certs",
			fallback: "/health",
			expected: "/realms/parentlib/protocol/openid-connect/certs",
		},
		{
			name:     "URL без path — fallback",
			input:    "http://minio.local:9000",
			fallback: "/minio/health/live",
			expected: "/minio/health/live",
		},
		{
			name:     "корневой path — fallback",
			input:    "http://minio.local:9000/",
			fallback: "/minio/health/live",
			expected: "/minio/health/live",
		},
		{
			name:     "невалидный URL — fallback",
			input:    "http://[::1",
			fallback: "/health",
			expected: "/health",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := healthPath(tt.input, tt.fallback); got != tt.expected {
				t.Errorf("healthPath(%q) = %q, ожидалось %q", tt.input, got, tt.expected)
			}
		})
	}
}
