package llm

import (
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/umkm-ai/finance-assistant/internal/models"
)

// SystemPrompt establishes the assistant's persona and response language.
// It is sent as its own system-role message on every request.
const SystemPrompt = "Anda adalah Asisten Keuangan UMKM ahli. Analisis dokumen, gambar struk, atau video kondisi toko yang diberikan. Berikan saran praktis, hemat, dan ramah. Respon dalam Bahasa Indonesia."

const (
	documentHeader = "\n\nISI DOKUMEN:\n"
	videoIntro     = "Berikut adalah beberapa frame dari video yang diunggah user:"
)

// BuildUserParts assembles the ordered content blocks of the user message.
// The raw user text always comes first; the attachment context contributes
// a delimited document block, one inline image, or an intro line followed
// by one image per sampled frame in chronological order.
func BuildUserParts(message string, ctx models.AttachmentContext) []openai.ChatMessagePart {
	parts := []openai.ChatMessagePart{{
		Type: openai.ChatMessagePartTypeText,
		Text: message,
	}}

	switch ctx.Kind() {
	case models.ContextText:
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeText,
			Text: documentHeader + ctx.Text(),
		})
	case models.ContextImage:
		if ctx.Image() != "" {
			parts = append(parts, imagePart(ctx.Image()))
		}
	case models.ContextVideoFrames:
		if len(ctx.Frames()) == 0 {
			break
		}
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeText,
			Text: videoIntro,
		})
		for _, frame := range ctx.Frames() {
			parts = append(parts, imagePart(frame))
		}
	}
	return parts
}

// imagePart wraps a base64 JPEG payload as an inline data-URL image block.
func imagePart(encoded string) openai.ChatMessagePart {
	return openai.ChatMessagePart{
		Type: openai.ChatMessagePartTypeImageURL,
		ImageURL: &openai.ChatMessageImageURL{
			URL: fmt.Sprintf("data:image/jpeg;base64,%s", encoded),
		},
	}
}
