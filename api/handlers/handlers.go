package handlers

import (
	"github.com/umkm-ai/finance-assistant/internal/service/chat"
	"github.com/umkm-ai/finance-assistant/pkg/logger"
)

type Handlers struct {
	Chat *ChatHandler
}

func NewHandlers(
	chatService chat.Service,
	apiConfigured bool,
	logger logger.Logger,
) *Handlers {
	return &Handlers{
		Chat: NewChatHandler(chatService, apiConfigured, logger),
	}
}
