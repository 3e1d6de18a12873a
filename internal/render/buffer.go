package render

import (
	"context"

	"github.com/a-h/templ"
	"github.com/valyala/bytebufferpool"
)

// Bytes renders c into a pooled buffer and returns a private copy.
func Bytes(ctx context.Context, c templ.Component) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := c.Render(ctx, buf); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf.B...), nil
}
