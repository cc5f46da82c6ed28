package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/umkm-ai/finance-assistant/config"
	"github.com/umkm-ai/finance-assistant/internal/models"
	"github.com/umkm-ai/finance-assistant/pkg/logger"
)

const (
	maxTokens   = 2048
	temperature = 0.7
)

const notConfiguredReply = "⚠️ Maaf, sistem AI belum terkonfigurasi dengan benar. Pastikan API Key telah diatur di environment variables."

// Gateway sends assembled chat payloads to the remote OpenAI-compatible
// endpoint. Remote failures never propagate: they are downgraded to a
// user-facing fallback string returned as the reply, so the HTTP layer
// above always sees a success-shaped result.
type Gateway struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

// NewGateway builds a gateway from process configuration. Without an API
// key the gateway stays unconfigured and every call short-circuits to a
// fixed fallback reply without network I/O.
func NewGateway(cfg *config.Config, log logger.Logger) *Gateway {
	g := &Gateway{
		model:  cfg.Model,
		logger: log,
	}
	if !cfg.Configured() {
		log.Warn("KOLOSAL_API_KEY not set, chat gateway disabled")
		return g
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	g.client = openai.NewClientWithConfig(clientCfg)
	log.Info("chat gateway initialized",
		logger.String("baseURL", cfg.BaseURL),
		logger.String("model", cfg.Model),
	)
	return g
}

// Configured reports whether the gateway has a usable client.
func (g *Gateway) Configured() bool {
	return g.client != nil
}

// Send submits the user message plus attachment context and returns the
// model's reply text, or a fallback string embedding the error detail.
func (g *Gateway) Send(ctx context.Context, message string, attachCtx models.AttachmentContext) string {
	if g.client == nil {
		return notConfiguredReply
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: SystemPrompt,
			},
			{
				Role:         openai.ChatMessageRoleUser,
				MultiContent: BuildUserParts(message, attachCtx),
			},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		g.logger.Error("chat completion failed", logger.Error(err))
		return fmt.Sprintf("⚠️ Maaf, terjadi kesalahan saat menghubungi AI: %v", err)
	}
	if len(resp.Choices) == 0 {
		g.logger.Error("chat completion returned no choices")
		return "⚠️ Maaf, terjadi kesalahan saat menghubungi AI: respons kosong dari server"
	}
	return resp.Choices[0].Message.Content
}
