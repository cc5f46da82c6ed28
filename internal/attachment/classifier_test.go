package attachment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		want     Format
	}{
		{"txt", "notes.txt", FormatText},
		{"pdf", "laporan.pdf", FormatPDF},
		{"png", "logo.png", FormatImage},
		{"jpg", "struk.jpg", FormatImage},
		{"jpeg", "struk.jpeg", FormatImage},
		{"mp4", "toko.mp4", FormatVideo},
		{"mov", "toko.mov", FormatVideo},
		{"avi", "toko.avi", FormatVideo},
		{"uppercase extension", "STRUK.JPG", FormatImage},
		{"mixed case extension", "Laporan.PdF", FormatPDF},
		{"no extension", "README", FormatUnsupported},
		{"trailing dot", "notes.", FormatUnsupported},
		{"unknown extension", "archive.zip", FormatUnsupported},
		{"docx not supported", "laporan.docx", FormatUnsupported},
		{"only final extension counts", "backup.txt.zip", FormatUnsupported},
		{"extension after many dots", "a.b.c.png", FormatImage},
		{"empty filename", "", FormatUnsupported},
		{"hidden file without extension", ".env", FormatUnsupported},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.filename))
		})
	}
}
