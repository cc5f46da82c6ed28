package attachment

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/umkm-ai/finance-assistant/pkg/logger"
)

// TextExtractor reads plain-text and PDF attachments. It never returns an
// error: every failure is downgraded to an in-band diagnostic string so the
// request can still proceed with that diagnostic as the document content.
type TextExtractor struct {
	logger logger.Logger
}

func NewTextExtractor(log logger.Logger) *TextExtractor {
	return &TextExtractor{logger: log}
}

// ExtractPlain returns the file content as UTF-8 text.
func (e *TextExtractor) ExtractPlain(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		e.logger.Warn("failed to read text attachment",
			logger.String("path", path),
			logger.Error(err),
		)
		return fmt.Sprintf("[Gagal membaca teks file: %v]", err)
	}
	if !utf8.Valid(content) {
		e.logger.Warn("text attachment is not valid UTF-8",
			logger.String("path", path),
		)
		return "[Gagal membaca teks file: isi file bukan teks UTF-8 yang valid]"
	}
	return string(content)
}

// ExtractPDF returns the concatenated page text of a PDF, in document order,
// with a newline after every page. Pages that yield no text contribute an
// empty string. Any reader or per-page failure replaces the whole result
// with a diagnostic string.
func (e *TextExtractor) ExtractPDF(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return e.pdfDiagnostic(path, err)
	}

	reader := bytes.NewReader(content)
	pdfReader, err := pdf.NewReader(reader, reader.Size())
	if err != nil {
		return e.pdfDiagnostic(path, err)
	}

	var text strings.Builder
	numPages := pdfReader.NumPage()
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := pdfReader.Page(pageNum)
		if !page.V.IsNull() {
			pageText, err := page.GetPlainText(nil)
			if err != nil {
				return e.pdfDiagnostic(path, err)
			}
			text.WriteString(pageText)
		}
		text.WriteString("\n")
	}
	return text.String()
}

func (e *TextExtractor) pdfDiagnostic(path string, err error) string {
	e.logger.Warn("failed to extract pdf attachment",
		logger.String("path", path),
		logger.Error(err),
	)
	return fmt.Sprintf("[Error membaca PDF: %v]", err)
}
