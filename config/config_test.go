package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	s, err := FromEnv(envMap(map[string]string{
		"DATABASE_URL": "postgres://localhost/vitalplan",
		"JWT_SECRET":   "secret",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8000", s.Port)
	assert.Equal(t, "http://localhost:8000", s.AppURL)
	assert.Equal(t, 24*time.Hour, s.TokenDuration)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, s.AllowedOrigins)
	assert.Equal(t, "gemini", s.AIProvider)
	assert.Equal(t, "gemini-2.5-flash", s.AIModel)
	assert.InDelta(t, 0.1, s.AITemperature, 1e-9)
	assert.Equal(t, 4000, s.AIMaxTokens)
	assert.Equal(t, int64(10*1024*1024), s.MaxFileSize)
	assert.Equal(t, "scans/", s.GCSUploadPath)
	assert.False(t, s.Production())
}

func TestFromEnvOverrides(t *testing.T) {
	s, err := FromEnv(envMap(map[string]string{
		"DATABASE_URL":    "postgres://db/vp",
		"JWT_SECRET":      "s",
		"ENV":             "production",
		"APP_URL":         "https://api.example.com/",
		"AI_PROVIDER":     "OpenAI",
		"AI_MAX_TOKENS":   "1200",
		"AI_TIMEOUT":      "15s",
		"ALLOWED_ORIGINS": "https://app.example.com, https://admin.example.com ,",
	}))
	require.NoError(t, err)

	assert.True(t, s.Production())
	assert.Equal(t, "https://api.example.com", s.AppURL)
	assert.Equal(t, "openai", s.AIProvider)
	assert.Equal(t, "gpt-4o-mini", s.AIModel)
	assert.Equal(t, 1200, s.AIMaxTokens)
	assert.Equal(t, 15*time.Second, s.AITimeout)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, s.AllowedOrigins)
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing database url",
			env:     map[string]string{"JWT_SECRET": "s"},
			wantErr: "DATABASE_URL not set",
		},
		{
			name:    "missing jwt secret",
			env:     map[string]string{"DATABASE_URL": "x"},
			wantErr: "JWT_SECRET not set",
		},
		{
			name:    "bad integer",
			env:     map[string]string{"DATABASE_URL": "x", "JWT_SECRET": "s", "MAX_FILE_SIZE": "ten"},
			wantErr: "MAX_FILE_SIZE",
		},
		{
			name:    "unknown provider",
			env:     map[string]string{"DATABASE_URL": "x", "JWT_SECRET": "s", "AI_PROVIDER": "llama"},
			wantErr: "unsupported provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(envMap(tt.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
