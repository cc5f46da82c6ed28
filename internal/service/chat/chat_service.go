package chat

import (
	"context"
	"io"
)

// Attachment is the single optional uploaded file accompanying a message.
type Attachment struct {
	Filename string
	Content  io.Reader
}

// Service handles one chat request end to end: validate, stage the
// attachment, derive its context, and fetch a reply from the model.
type Service interface {
	Chat(ctx context.Context, message string, attachment *Attachment) (string, error)
}
