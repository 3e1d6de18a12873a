package imageinline

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/riskibarqy/hoopscout/internal/platform/cache"
	"github.com/riskibarqy/hoopscout/internal/platform/logging"
)

// PlaceholderURI replaces any image that could not be fetched or decoded.
const PlaceholderURI = "data:image/svg+xml;base64,PHN2ZyB4bWxucz0iaHR0cDovL3d3dy53My5vcmcvMjAwMC9zdmciIHdpZHRoPSIxMDAiIGhlaWdodD0iMTI1Ij48cmVjdCB3aWR0aD0iMTAwIiBoZWlnaHQ9IjEyNSIgZmlsbD0iI2Q5ZDlkOSIvPjxjaXJjbGUgY3g9IjUwIiBjeT0iNDUiIHI9IjIyIiBmaWxsPSIjYTZhNmE2Ii8+PHJlY3QgeD0iMTgiIHk9Ijc1IiB3aWR0aD0iNjQiIGhlaWdodD0iNTAiIHJ4PSIyMCIgZmlsbD0iI2E2YTZhNiIvPjwvc3ZnPg=="

const (
	defaultTimeout   = 3 * time.Second
	defaultMaxHeight = 500
	defaultQuality   = 95
)

// AssetFetcher downloads a remote image with the upstream credentials.
type AssetFetcher interface {
	FetchAsset(ctx context.Context, rawURL string, timeout time.Duration) ([]byte, error)
}

type Config struct {
	Fetcher   AssetFetcher
	Cache     *cache.Store
	Timeout   time.Duration
	MaxHeight int
	Quality   int
	Logger    *logging.Logger
}

// Inliner turns remote portraits and logos into JPEG data URIs so a report
// renders offline.
type Inliner struct {
	fetcher   AssetFetcher
	cache     *cache.Store
	timeout   time.Duration
	maxHeight int
	quality   int
	logger    *logging.Logger
}

func New(cfg Config) *Inliner {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	store := cfg.Cache
	if store == nil {
		store = cache.NewStore()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxHeight := cfg.MaxHeight
	if maxHeight <= 0 {
		maxHeight = defaultMaxHeight
	}
	quality := cfg.Quality
	if quality <= 0 || quality > 100 {
		quality = defaultQuality
	}

	return &Inliner{
		fetcher:   cfg.Fetcher,
		cache:     store,
		timeout:   timeout,
		maxHeight: maxHeight,
		quality:   quality,
		logger:    logger.Named("imageinline"),
	}
}

// Passthrough reports whether src is returned as is: empty, a known
// placeholder, or already inlined.
func Passthrough(src string) bool {
	src = strings.TrimSpace(src)
	return src == "" ||
		strings.Contains(strings.ToLower(src), "placeholder") ||
		strings.HasPrefix(src, "data:")
}

// Inline returns a data URI for src. Failures yield PlaceholderURI and are not
// cached, so the next report retries.
func (i *Inliner) Inline(ctx context.Context, src string) string {
	if Passthrough(src) {
		return src
	}
	out, err := i.load(ctx, src)
	if err != nil {
		i.logger.DebugContext(ctx, "image replaced by placeholder", "src", src, "error", err)
		return PlaceholderURI
	}
	return out
}

// InlineFirst tries candidates in order and returns the first that inlines.
func (i *Inliner) InlineFirst(ctx context.Context, candidates []string) string {
	for _, src := range candidates {
		if Passthrough(src) {
			if strings.TrimSpace(src) != "" {
				return src
			}
			continue
		}
		if out, err := i.load(ctx, src); err == nil {
			return out
		}
	}
	return PlaceholderURI
}

func (i *Inliner) load(ctx context.Context, src string) (string, error) {
	return cache.Load(ctx, i.cache, cache.Key("image", src), cache.ClassImage, func(ctx context.Context) (string, error) {
		if i.fetcher == nil {
			return "", fmt.Errorf("no image fetcher configured")
		}
		raw, err := i.fetcher.FetchAsset(ctx, src, i.timeout)
		if err != nil {
			return "", err
		}
		return Encode(raw, i.maxHeight, i.quality)
	})
}

// Encode decodes raw image bytes, shrinks them to maxHeight when taller,
// flattens transparency onto white and returns a JPEG data URI.
func Encode(raw []byte, maxHeight, quality int) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return "", fmt.Errorf("image has no pixels")
	}
	if maxHeight > 0 && h > maxHeight {
		w = max(1, (w*maxHeight+h/2)/h)
		h = maxHeight
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
