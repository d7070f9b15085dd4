package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"env": map[string]any{
			"serviceName": "sitter",
			"log": map[string]any{
				"level": "info",
			},
		},
		"database": map[string]any{
			"path": "sitter.db",
		},
		"jwt": map[string]any{
			"secret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
		{envKey: "ENV_LOG_LEVEL", want: "env.log.level"},
		{envKey: "DATABASE_PATH", want: "database.path"},
		{envKey: "JWT_SECRET", want: "jwt.secret"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
