package attachment

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"

	"github.com/disintegration/imaging"

	"github.com/umkm-ai/finance-assistant/pkg/logger"
)

const (
	// DefaultMaxFrames is how many stills are sampled from a video.
	DefaultMaxFrames = 3

	frameWidth       = 640
	frameHeight      = 360
	frameJPEGQuality = 80
)

// VideoSampler selects up to maxFrames representative frames from a video
// and returns them as base64-encoded JPEG stills.
type VideoSampler struct {
	source    frameSource
	maxFrames int
	logger    logger.Logger
}

func NewVideoSampler(log logger.Logger) *VideoSampler {
	return &VideoSampler{
		source:    newFFmpegSource(),
		maxFrames: DefaultMaxFrames,
		logger:    log,
	}
}

// Sample returns 0..maxFrames base64 JPEG strings in chronological order.
// A video that cannot be opened or reports zero frames yields an empty
// result, which callers must treat as "no usable frames"; a position that
// fails to read is skipped without aborting the rest.
func (s *VideoSampler) Sample(ctx context.Context, path string) []string {
	total, err := s.source.FrameCount(ctx, path)
	if err != nil {
		s.logger.Warn("failed to open video",
			logger.String("path", path),
			logger.Error(err),
		)
		return nil
	}
	if total <= 0 {
		s.logger.Warn("video reports no frames", logger.String("path", path))
		return nil
	}

	frames := make([]string, 0, s.maxFrames)
	for _, pos := range samplePositions(total, s.maxFrames) {
		if len(frames) >= s.maxFrames {
			break
		}

		img, err := s.source.ReadFrame(ctx, path, pos)
		if err != nil {
			s.logger.Warn("skipping unreadable video frame",
				logger.String("path", path),
				logger.Int("frame", pos),
				logger.Error(err),
			)
			continue
		}

		encoded, err := encodeFrame(img)
		if err != nil {
			s.logger.Warn("skipping unencodable video frame",
				logger.String("path", path),
				logger.Int("frame", pos),
				logger.Error(err),
			)
			continue
		}
		frames = append(frames, encoded)
	}
	return frames
}

// samplePositions spreads maxFrames sample points evenly across the video:
// position i = floor(total*(i+1)/(maxFrames+1)). The spread keeps samples
// inside the video rather than clustering on the very first or last frame.
// Duplicate positions from very short videos are collapsed.
func samplePositions(totalFrames, maxFrames int) []int {
	positions := make([]int, 0, maxFrames)
	for i := 0; i < maxFrames; i++ {
		pos := totalFrames * (i + 1) / (maxFrames + 1)
		if len(positions) > 0 && pos <= positions[len(positions)-1] {
			continue
		}
		positions = append(positions, pos)
	}
	return positions
}

// encodeFrame downscales a frame to bound payload size, then JPEG-encodes
// and base64-encodes it.
func encodeFrame(img image.Image) (string, error) {
	thumb := imaging.Resize(img, frameWidth, frameHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(frameJPEGQuality)); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
