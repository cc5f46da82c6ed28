package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/umkm-ai/finance-assistant/internal/attachment"
	"github.com/umkm-ai/finance-assistant/internal/service/chat"
	"github.com/umkm-ai/finance-assistant/pkg/logger"
)

type ChatHandler struct {
	service    chat.Service
	configured bool
	logger     logger.Logger
}

// ChatResponse is the success envelope. Gateway fallbacks arrive here too:
// their error text is the reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ErrorResponse is the envelope for validation and internal failures.
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
}

func NewChatHandler(service chat.Service, configured bool, logger logger.Logger) *ChatHandler {
	return &ChatHandler{
		service:    service,
		configured: configured,
		logger:     logger,
	}
}

// multipartMemoryLimit is how much of a parsed form may stay in memory
// before spilling to disk.
const multipartMemoryLimit = 32 << 20

// Chat handles POST /api/chat: a multipart form with a "message" field and
// an optional "file" attachment.
func (h *ChatHandler) Chat(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(multipartMemoryLimit); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		if isBodyTooLarge(err) {
			h.handleError(c, http.StatusRequestEntityTooLarge, "Uploaded file is too large", err)
			return
		}
		h.handleError(c, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	message := c.PostForm("message")

	var att *chat.Attachment
	file, header, err := c.Request.FormFile("file")
	if err == nil {
		defer file.Close()
		att = &chat.Attachment{
			Filename: header.Filename,
			Content:  file,
		}
	}

	reply, err := h.service.Chat(c.Request.Context(), message, att)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
			h.handleError(c, http.StatusBadRequest, "Message is required", err)
		case errors.Is(err, attachment.ErrUnreadableImage):
			h.handleError(c, http.StatusBadRequest, "Failed to read image attachment", err)
		case errors.Is(err, attachment.ErrNoVideoFrames):
			h.handleError(c, http.StatusBadRequest, "Failed to read video attachment", err)
		default:
			h.handleError(c, http.StatusInternalServerError, "Failed to process request", err)
		}
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}

// Health handles GET /health.
func (h *ChatHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"api_configured": h.configured,
	})
}

// isBodyTooLarge reports whether a form-parse failure came from the body
// cap set by the transport middleware. The multipart reader doesn't always
// wrap the cause, so the sentinel message is matched as a fallback.
func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large")
}

func (h *ChatHandler) handleError(c *gin.Context, status int, message string, err error) {
	h.logger.Error(message,
		logger.String("path", c.Request.URL.Path),
		logger.Error(err),
	)

	response := ErrorResponse{
		Message: message,
	}
	if err != nil {
		response.Error = err.Error()
	}

	c.JSON(status, response)
}
