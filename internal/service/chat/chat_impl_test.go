package chat

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umkm-ai/finance-assistant/internal/attachment"
	"github.com/umkm-ai/finance-assistant/internal/models"
	"github.com/umkm-ai/finance-assistant/pkg/logger"
	"github.com/umkm-ai/finance-assistant/pkg/staging"
)

type fakeGateway struct {
	reply       string
	calls       int
	lastMessage string
	lastCtx     models.AttachmentContext
}

func (g *fakeGateway) Send(ctx context.Context, message string, attachCtx models.AttachmentContext) string {
	g.calls++
	g.lastMessage = message
	g.lastCtx = attachCtx
	return g.reply
}

func newTestService(t *testing.T) (Service, *fakeGateway, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := staging.NewDiskStore(dir)
	require.NoError(t, err)

	log := logger.NewTestLogger()
	gateway := &fakeGateway{reply: "Berikut sarannya."}
	return NewService(store, attachment.NewPipeline(log), gateway, log), gateway, dir
}

func stagedFiles(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return entries
}

func TestChatEmptyMessage(t *testing.T) {
	service, gateway, _ := newTestService(t)

	for _, message := range []string{"", "   ", "\n\t"} {
		_, err := service.Chat(context.Background(), message, nil)
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}
	assert.Zero(t, gateway.calls, "no remote call may happen for an invalid request")
}

func TestChatWithoutAttachment(t *testing.T) {
	service, gateway, _ := newTestService(t)

	reply, err := service.Chat(context.Background(), "Halo", nil)
	require.NoError(t, err)
	assert.Equal(t, "Berikut sarannya.", reply)
	assert.Equal(t, 1, gateway.calls)
	assert.Equal(t, "Halo", gateway.lastMessage)
	assert.Equal(t, models.ContextNone, gateway.lastCtx.Kind())
}

func TestChatWithTextAttachment(t *testing.T) {
	service, gateway, dir := newTestService(t)

	att := &Attachment{
		Filename: "catatan.txt",
		Content:  strings.NewReader("pengeluaran minggu ini"),
	}
	reply, err := service.Chat(context.Background(), "Ringkas catatan ini", att)
	require.NoError(t, err)
	assert.Equal(t, "Berikut sarannya.", reply)

	assert.Equal(t, models.ContextText, gateway.lastCtx.Kind())
	assert.Equal(t, "pengeluaran minggu ini", gateway.lastCtx.Text())

	assert.Empty(t, stagedFiles(t, dir), "staged file must be removed after extraction")
}

func TestChatWithImageAttachment(t *testing.T) {
	service, gateway, dir := newTestService(t)

	att := &Attachment{
		Filename: "receipt.jpg",
		Content:  strings.NewReader("\xff\xd8\xff jpeg data"),
	}
	_, err := service.Chat(context.Background(), "Analisis struk ini", att)
	require.NoError(t, err)

	assert.Equal(t, models.ContextImage, gateway.lastCtx.Kind())
	assert.NotEmpty(t, gateway.lastCtx.Image())
	assert.Empty(t, stagedFiles(t, dir))
}

func TestChatWithUnsupportedAttachment(t *testing.T) {
	service, gateway, dir := newTestService(t)

	att := &Attachment{
		Filename: "arsip.zip",
		Content:  strings.NewReader("zip data"),
	}
	reply, err := service.Chat(context.Background(), "Halo", att)
	require.NoError(t, err)
	assert.Equal(t, "Berikut sarannya.", reply)

	assert.Equal(t, models.ContextNone, gateway.lastCtx.Kind())
	assert.Empty(t, stagedFiles(t, dir), "unsupported attachments are never staged")
}

func TestChatWithUnreadableVideo(t *testing.T) {
	service, gateway, dir := newTestService(t)

	att := &Attachment{
		Filename: "store.mp4",
		Content:  strings.NewReader("not really a video"),
	}
	_, err := service.Chat(context.Background(), "Cek toko ini", att)
	assert.ErrorIs(t, err, attachment.ErrNoVideoFrames)

	assert.Zero(t, gateway.calls, "validation failures abort before the remote call")
	assert.Empty(t, stagedFiles(t, dir), "staged file must be removed even on failure")
}

func TestChatWithCorruptPDFStillProceeds(t *testing.T) {
	service, gateway, _ := newTestService(t)

	att := &Attachment{
		Filename: "laporan.pdf",
		Content:  strings.NewReader("not a pdf"),
	}
	reply, err := service.Chat(context.Background(), "Ringkas laporan ini", att)
	require.NoError(t, err)
	assert.Equal(t, "Berikut sarannya.", reply)

	assert.Equal(t, models.ContextText, gateway.lastCtx.Kind())
	assert.Contains(t, gateway.lastCtx.Text(), "[Error membaca PDF:")
}
