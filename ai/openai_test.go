package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatProviderComplete(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"ok\":true}"}}]}`))
	}))
	defer srv.Close()

	p := NewChatProvider("test-key", srv.URL+"/", "gpt-test", srv.Client())
	got, err := p.Complete(context.Background(), Request{
		Prompt:      "describe",
		Image:       []byte{0xff, 0xd8},
		MaxTokens:   100,
		Temperature: 0.1,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, got)

	assert.Equal(t, "gpt-test", captured["model"])
	messages := captured["messages"].([]any)
	require.Len(t, messages, 1)
	parts := messages[0].(map[string]any)["content"].([]any)
	require.Len(t, parts, 2)
	imagePart := parts[1].(map[string]any)
	assert.Equal(t, "image_url", imagePart["type"])
	assert.Equal(t, "data:image/jpeg;base64,/9g=", imagePart["image_url"].(map[string]any)["url"])
}

func TestChatProviderTextOnly(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"[]"}}]}`))
	}))
	defer srv.Close()

	p := NewChatProvider("k", srv.URL, "m", srv.Client())
	_, err := p.Complete(context.Background(), Request{Prompt: "hello"})
	require.NoError(t, err)

	msg := captured["messages"].([]any)[0].(map[string]any)
	assert.Equal(t, "hello", msg["content"])
}

func TestChatProviderErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`rate limited`))
	}))
	defer srv.Close()

	_, err := NewChatProvider("", srv.URL, "m", nil).Complete(context.Background(), Request{Prompt: "x"})
	assert.ErrorContains(t, err, "AI_API_KEY not configured")

	_, err = NewChatProvider("k", srv.URL, "m", srv.Client()).Complete(context.Background(), Request{Prompt: "x"})
	assert.ErrorContains(t, err, "status 429")
}
