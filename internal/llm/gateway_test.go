package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umkm-ai/finance-assistant/config"
	"github.com/umkm-ai/finance-assistant/internal/models"
	"github.com/umkm-ai/finance-assistant/pkg/logger"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *Gateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewGateway(&config.Config{
		APIKey:  "test-key",
		BaseURL: server.URL + "/v1",
		Model:   "Claude Sonnet 4.5",
	}, logger.NewTestLogger())
}

func TestGatewayNotConfigured(t *testing.T) {
	gateway := NewGateway(&config.Config{Model: "Claude Sonnet 4.5"}, logger.NewTestLogger())

	assert.False(t, gateway.Configured())

	reply := gateway.Send(context.Background(), "Halo", models.NoContext())
	assert.Contains(t, reply, "belum terkonfigurasi")
}

func TestGatewaySend(t *testing.T) {
	var captured map[string]interface{}

	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"role": "assistant", "content": "Berikut analisisnya."}}]
		}`))
	})
	assert.True(t, gateway.Configured())

	reply := gateway.Send(context.Background(), "Analisis struk ini", models.ImageContext("aW1hZ2U="))
	assert.Equal(t, "Berikut analisisnya.", reply)

	assert.Equal(t, "Claude Sonnet 4.5", captured["model"])
	assert.EqualValues(t, 2048, captured["max_tokens"])
	assert.InDelta(t, 0.7, captured["temperature"], 0.001)

	messages, ok := captured["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 2)

	system := messages[0].(map[string]interface{})
	assert.Equal(t, "system", system["role"])
	assert.Equal(t, SystemPrompt, system["content"])

	user := messages[1].(map[string]interface{})
	assert.Equal(t, "user", user["role"])
	blocks := user["content"].([]interface{})
	require.Len(t, blocks, 2)
	assert.Equal(t, "text", blocks[0].(map[string]interface{})["type"])
	assert.Equal(t, "image_url", blocks[1].(map[string]interface{})["type"])
}

func TestGatewayRemoteFailureBecomesFallbackReply(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "boom"}}`, http.StatusInternalServerError)
	})

	reply := gateway.Send(context.Background(), "Halo", models.NoContext())
	assert.Contains(t, reply, "⚠️ Maaf, terjadi kesalahan saat menghubungi AI:")
}

func TestGatewayEmptyChoicesBecomesFallbackReply(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	})

	reply := gateway.Send(context.Background(), "Halo", models.NoContext())
	assert.Contains(t, reply, "respons kosong")
}
