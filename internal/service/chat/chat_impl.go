package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/umkm-ai/finance-assistant/internal/attachment"
	"github.com/umkm-ai/finance-assistant/internal/models"
	"github.com/umkm-ai/finance-assistant/pkg/logger"
	"github.com/umkm-ai/finance-assistant/pkg/staging"
)

// ErrEmptyMessage rejects requests without any user text.
var ErrEmptyMessage = errors.New("pesan tidak boleh kosong")

// ReplyGateway is the remote chat-completion boundary. Implementations
// never fail: errors come back in-band as the reply text.
type ReplyGateway interface {
	Send(ctx context.Context, message string, attachCtx models.AttachmentContext) string
}

type chatService struct {
	staging  staging.Store
	pipeline *attachment.Pipeline
	gateway  ReplyGateway
	logger   logger.Logger
}

func NewService(
	store staging.Store,
	pipeline *attachment.Pipeline,
	gateway ReplyGateway,
	log logger.Logger,
) Service {
	return &chatService{
		staging:  store,
		pipeline: pipeline,
		gateway:  gateway,
		logger:   log,
	}
}

// Chat runs the request pipeline: classify the attachment, stage and
// extract it, discard the staged file, then ask the gateway for a reply.
// Validation failures (empty message, unreadable image, unreadable video)
// return an error; everything else resolves to a reply string.
func (s *chatService) Chat(ctx context.Context, message string, att *Attachment) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	attachCtx := models.NoContext()
	if att != nil {
		built, err := s.extractAttachment(ctx, att)
		if err != nil {
			return "", err
		}
		attachCtx = built
	}

	return s.gateway.Send(ctx, message, attachCtx), nil
}

func (s *chatService) extractAttachment(ctx context.Context, att *Attachment) (models.AttachmentContext, error) {
	format := attachment.Classify(att.Filename)
	if format == attachment.FormatUnsupported {
		s.logger.Warn("ignoring unsupported attachment",
			logger.String("filename", att.Filename),
		)
		return models.NoContext(), nil
	}

	path, err := s.staging.Save(att.Filename, att.Content)
	if err != nil {
		return models.NoContext(), fmt.Errorf("failed to stage attachment: %w", err)
	}

	built, buildErr := s.pipeline.BuildContext(ctx, format, path)

	// The staged copy is consumed exactly once; drop it as soon as
	// extraction finished, whatever the outcome. Removal failures are
	// logged, never surfaced.
	if err := s.staging.Remove(path); err != nil {
		s.logger.Warn("failed to remove staged attachment",
			logger.String("path", path),
			logger.Error(err),
		)
	}

	if buildErr != nil {
		return models.NoContext(), buildErr
	}

	s.logger.Info("attachment extracted",
		logger.String("filename", att.Filename),
		logger.String("format", string(format)),
		logger.String("context", string(built.Kind())),
	)
	return built, nil
}
