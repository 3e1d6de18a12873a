package imageinline

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/hoopscout/internal/platform/cache"
)

type stubFetcher struct {
	calls atomic.Int32
	body  []byte
	err   error
}

func (s *stubFetcher) FetchAsset(context.Context, string, time.Duration) ([]byte, error) {
	s.calls.Add(1)
	return s.body, s.err
}

func pngBytes(t *testing.T, w, h int, alpha bool) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := uint8(255)
			if alpha && x < w/2 {
				a = 0
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 10, B: 10, A: a})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeDataURI(t *testing.T, uri string) image.Image {
	t.Helper()
	require.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"), uri)
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/jpeg;base64,"))
	require.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestEncode_ShrinksTallImages(t *testing.T) {
	t.Parallel()

	uri, err := Encode(pngBytes(t, 400, 1000, true), 500, 95)
	require.NoError(t, err)
	img := decodeDataURI(t, uri)
	assert.Equal(t, 500, img.Bounds().Dy())
	assert.Equal(t, 200, img.Bounds().Dx())
}

func TestEncode_KeepsSmallImages(t *testing.T) {
	t.Parallel()

	uri, err := Encode(pngBytes(t, 120, 150, false), 500, 95)
	require.NoError(t, err)
	img := decodeDataURI(t, uri)
	assert.Equal(t, 150, img.Bounds().Dy())
	assert.Equal(t, 120, img.Bounds().Dx())
}

func TestInline_PassthroughInputs(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{}
	inliner := New(Config{Fetcher: fetcher})
	for _, src := range []string{"", "https://cdn/img/placeholder.png", "data:image/png;base64,AAA"} {
		assert.Equal(t, src, inliner.Inline(context.Background(), src))
	}
	assert.Equal(t, int32(0), fetcher.calls.Load())
}

func TestInline_CachesBySourceAndNeverCachesFailures(t *testing.T) {
	t.Parallel()

	ok := &stubFetcher{body: pngBytes(t, 10, 10, false)}
	inliner := New(Config{Fetcher: ok, Cache: cache.NewStore()})
	first := inliner.Inline(context.Background(), "https://img/a.png")
	second := inliner.Inline(context.Background(), "https://img/a.png")
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), ok.calls.Load())

	broken := &stubFetcher{err: errors.New("timeout")}
	failing := New(Config{Fetcher: broken})
	assert.Equal(t, PlaceholderURI, failing.Inline(context.Background(), "https://img/b.png"))
	assert.Equal(t, PlaceholderURI, failing.Inline(context.Background(), "https://img/b.png"))
	assert.Equal(t, int32(2), broken.calls.Load())

	garbage := New(Config{Fetcher: &stubFetcher{body: []byte("not an image")}})
	assert.Equal(t, PlaceholderURI, garbage.Inline(context.Background(), "https://img/c.png"))
}

func TestInlineFirst_FallsThroughCandidates(t *testing.T) {
	t.Parallel()

	inliner := New(Config{Fetcher: &stubFetcher{err: errors.New("down")}})
	assert.Equal(t, PlaceholderURI, inliner.InlineFirst(context.Background(), []string{"https://a", "https://b"}))
	assert.Equal(t, "data:image/png;base64,AAA", inliner.InlineFirst(context.Background(), []string{"", "data:image/png;base64,AAA"}))
}
