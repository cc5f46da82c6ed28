package attachment

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

// frameSource abstracts video decoding so the sampling policy can be tested
// without ffmpeg installed.
type frameSource interface {
	// FrameCount reports the total number of video frames, or an error when
	// the file cannot be opened as a video.
	FrameCount(ctx context.Context, path string) (int, error)
	// ReadFrame decodes the frame at the given zero-based index.
	ReadFrame(ctx context.Context, path string, index int) (image.Image, error)
}

// ffmpegSource decodes frames by shelling out to ffprobe/ffmpeg. Each call
// runs a short-lived process, so no decoder handle outlives the call.
type ffmpegSource struct {
	ffprobeBin string
	ffmpegBin  string
}

func newFFmpegSource() *ffmpegSource {
	return &ffmpegSource{
		ffprobeBin: "ffprobe",
		ffmpegBin:  "ffmpeg",
	}
}

func (s *ffmpegSource) FrameCount(ctx context.Context, path string) (int, error) {
	out, err := exec.CommandContext(ctx, s.ffprobeBin,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=nb_frames",
		"-of", "default=nokey=1:noprint_wrappers=1",
		path,
	).Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	if n, err := strconv.Atoi(strings.TrimSpace(string(out))); err == nil {
		return n, nil
	}

	// Some containers don't record nb_frames; count decoded frames instead.
	out, err = exec.CommandContext(ctx, s.ffprobeBin,
		"-v", "error",
		"-select_streams", "v:0",
		"-count_frames",
		"-show_entries", "stream=nb_read_frames",
		"-of", "default=nokey=1:noprint_wrappers=1",
		path,
	).Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed to count frames: %w", err)
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return 0, fmt.Errorf("ffprobe reported unparsable frame count %q: %w",
			strings.TrimSpace(string(out)), err)
	}
	return n, nil
}

func (s *ffmpegSource) ReadFrame(ctx context.Context, path string, index int) (image.Image, error) {
	tmp, err := os.CreateTemp("", "frame-*.jpg")
	if err != nil {
		return nil, fmt.Errorf("failed to create frame file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	cmd := exec.CommandContext(ctx, s.ffmpegBin,
		"-v", "error",
		"-y",
		"-i", path,
		"-vf", fmt.Sprintf("select=eq(n\\,%d)", index),
		"-frames:v", "1",
		tmpPath,
	)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg failed to extract frame %d: %w", index, err)
	}

	img, err := imaging.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to decode frame %d: %w", index, err)
	}
	return img, nil
}
