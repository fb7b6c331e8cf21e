package ftp

import (
	"context"
	"io"
	"time"

	"golang.org/x/time/rate"
)

const burstLimit = 32 * 1024

func newLimiter(bytesPerSec float64) *rate.Limiter {
	if bytesPerSec <= 0 {
		return nil
	}
	l := rate.NewLimiter(rate.Limit(bytesPerSec), burstLimit)
	l.AllowN(time.Now(), burstLimit) // spend initial burst
	return l
}

// limitedReader throttles reads from an upload source.
type limitedReader struct {
	ctx     context.Context
	reader  io.Reader
	limiter *rate.Limiter
}

func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if len(p) > burstLimit {
		p = p[:burstLimit]
	}
	n, err = lr.reader.Read(p)
	if n > 0 {
		if werr := lr.limiter.WaitN(lr.ctx, n); werr != nil {
			return n, werr
		}
	}
	return
}

// limitedWriter throttles writes to a download sink.
type limitedWriter struct {
	ctx     context.Context
	writer  io.Writer
	limiter *rate.Limiter
}

func (lw *limitedWriter) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		chunk := p
		if len(chunk) > burstLimit {
			chunk = chunk[:burstLimit]
		}
		if err := lw.limiter.WaitN(lw.ctx, len(chunk)); err != nil {
			return written, err
		}
		n, err := lw.writer.Write(chunk)
		written += n
		if err != nil {
			return written, err
		}
		p = p[len(chunk):]
	}
	return written, nil
}

func limitReader(ctx context.Context, r io.Reader, l *rate.Limiter) io.Reader {
	if l == nil {
		return r
	}
	return &limitedReader{ctx: ctx, reader: r, limiter: l}
}

func limitWriter(ctx context.Context, w io.Writer, l *rate.Limiter) io.Writer {
	if l == nil {
		return w
	}
	return &limitedWriter{ctx: ctx, writer: w, limiter: l}
}
