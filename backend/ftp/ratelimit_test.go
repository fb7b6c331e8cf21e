package ftp

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLimiter(t *testing.T) {
	assert.Nil(t, newLimiter(0))
	assert.Nil(t, newLimiter(-5))
	assert.NotNil(t, newLimiter(1024))
}

func TestLimitReader(t *testing.T) {
	r := strings.NewReader("payload")
	assert.Same(t, io.Reader(r), limitReader(context.Background(), r, nil))

	limited := limitReader(context.Background(), strings.NewReader("payload"), newLimiter(10*1024*1024))
	data, err := io.ReadAll(limited)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestLimitWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	assert.Same(t, io.Writer(buf), limitWriter(context.Background(), buf, nil))

	payload := bytes.Repeat([]byte("x"), burstLimit*2+10)
	w := limitWriter(context.Background(), buf, newLimiter(100*1024*1024))
	n, err := w.Write(payload)
	require.NoError(t, err)
	assert.Equal(t, len(payload), n)
	assert.Equal(t, payload, buf.Bytes())
}

func TestLimitWriterCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := limitWriter(ctx, &bytes.Buffer{}, newLimiter(1))
	_, err := w.Write([]byte("abc"))
	assert.Error(t, err)
}
