package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"http": map[string]any{
			"maxRequestBodySize": "100KB",
		},
		"pubsub": map[string]any{
			"pushAudience": "",
		},
		"dispatch": map[string]any{
			"maxConcurrency": 8,
		},
		"tierLimits": map[string]any{
			"free": 3,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "PUBSUB_PUSHAUDIENCE", want: "pubsub.pushAudience"},
		{envKey: "DISPATCH_MAXCONCURRENCY", want: "dispatch.maxConcurrency"},
		{envKey: "TIERLIMITS_FREE", want: "tierLimits.free"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "SCHEDULER_MODE", want: "scheduler.mode"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
