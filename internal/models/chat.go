package models

// ContextKind discriminates the AttachmentContext variants.
type ContextKind string

const (
	ContextNone        ContextKind = "none"
	ContextText        ContextKind = "text"
	ContextImage       ContextKind = "image"
	ContextVideoFrames ContextKind = "video_frames"
)

// AttachmentContext is the normalized representation of an attachment's
// extracted content. Exactly one variant is active; the constructors below
// are the only way to build one, so a context can't carry content that
// doesn't match its kind.
type AttachmentContext struct {
	kind   ContextKind
	text   string
	image  string
	frames []string
}

// NoContext returns the empty variant used when no attachment is present
// or its type is unsupported.
func NoContext() AttachmentContext {
	return AttachmentContext{kind: ContextNone}
}

// TextContext wraps extracted document text. The text may be an in-band
// diagnostic string when extraction partially failed.
func TextContext(content string) AttachmentContext {
	return AttachmentContext{kind: ContextText, text: content}
}

// ImageContext wraps a base64-encoded still image.
func ImageContext(encoded string) AttachmentContext {
	return AttachmentContext{kind: ContextImage, image: encoded}
}

// VideoContext wraps base64-encoded JPEG frames in chronological order.
func VideoContext(frames []string) AttachmentContext {
	return AttachmentContext{kind: ContextVideoFrames, frames: frames}
}

func (c AttachmentContext) Kind() ContextKind {
	if c.kind == "" {
		return ContextNone
	}
	return c.kind
}

func (c AttachmentContext) Text() string {
	return c.text
}

func (c AttachmentContext) Image() string {
	return c.image
}

func (c AttachmentContext) Frames() []string {
	return c.frames
}
