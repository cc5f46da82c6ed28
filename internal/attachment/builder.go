package attachment

import (
	"context"
	"errors"
	"fmt"

	"github.com/umkm-ai/finance-assistant/internal/models"
	"github.com/umkm-ai/finance-assistant/pkg/logger"
)

var (
	// ErrUnreadableImage means an image attachment produced no encodable bytes.
	ErrUnreadableImage = errors.New("gagal membaca gambar")
	// ErrNoVideoFrames means no frame could be sampled from a video attachment.
	ErrNoVideoFrames = errors.New("gagal membaca video")
)

// Pipeline turns a classified attachment on disk into an AttachmentContext.
type Pipeline struct {
	text   *TextExtractor
	video  *VideoSampler
	logger logger.Logger
}

func NewPipeline(log logger.Logger) *Pipeline {
	return &Pipeline{
		text:   NewTextExtractor(log),
		video:  NewVideoSampler(log),
		logger: log,
	}
}

// BuildContext maps (format, staged file) to the matching AttachmentContext
// variant. Text and PDF extraction never fail; an unreadable image or a
// video with no sampleable frames return ErrUnreadableImage and
// ErrNoVideoFrames, which callers surface as validation errors.
func (p *Pipeline) BuildContext(ctx context.Context, format Format, path string) (models.AttachmentContext, error) {
	switch format {
	case FormatText:
		return models.TextContext(p.text.ExtractPlain(path)), nil
	case FormatPDF:
		return models.TextContext(p.text.ExtractPDF(path)), nil
	case FormatImage:
		encoded, err := EncodeImageFile(path)
		if err != nil {
			p.logger.Error("image encoding failed",
				logger.String("path", path),
				logger.Error(err),
			)
			return models.NoContext(), fmt.Errorf("%w: %v", ErrUnreadableImage, err)
		}
		return models.ImageContext(encoded), nil
	case FormatVideo:
		frames := p.video.Sample(ctx, path)
		if len(frames) == 0 {
			return models.NoContext(), ErrNoVideoFrames
		}
		return models.VideoContext(frames), nil
	default:
		return models.NoContext(), nil
	}
}
