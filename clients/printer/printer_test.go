package printer

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleToSquare(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 512, 256))

	dst := scaleToSquare(src, avatarSizePx)

	bounds := dst.Bounds()
	assert.Equal(t, avatarSizePx, bounds.Dx())
	assert.Equal(t, avatarSizePx, bounds.Dy())
}

func TestScaleToWidth_DownscalesKeepingAspectRatio(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 768, 1536))

	dst := scaleToWidth(src, maxRasterWidthPx)

	bounds := dst.Bounds()
	assert.Equal(t, maxRasterWidthPx, bounds.Dx())
	assert.Equal(t, maxRasterWidthPx*2, bounds.Dy())
}

func TestScaleToWidth_NarrowImagePassesThrough(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))

	dst := scaleToWidth(src, maxRasterWidthPx)

	assert.Equal(t, src, dst)
}

func TestErrWriter_RecordsFirstError(t *testing.T) {
	boom := errors.New("broken pipe")
	ew := &errWriter{w: &failingWriter{err: boom}}

	_, err := ew.Write([]byte("a"))
	require.Error(t, err)
	_, _ = ew.Write([]byte("b"))

	assert.Equal(t, boom, ew.err)
	assert.Equal(t, 1, ew.w.(*failingWriter).calls, "writes after a failure are not forwarded")
}

func TestNewPrinterClient_InvalidConfigPanics(t *testing.T) {
	assert.Panics(t, func() { NewPrinterClient("", 48) })
	assert.Panics(t, func() { NewPrinterClient("192.168.1.81:9100", 0) })
}

type failingWriter struct {
	err   error
	calls int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls = w.calls + 1
	return 0, w.err
}
