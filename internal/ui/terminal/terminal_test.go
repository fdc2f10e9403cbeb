package terminal

import (
	"bytes"
	"context"
	"github.com/stretchr/testify/assert"
	"sync"
	"testing"
)

func TestWidth(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, DefaultWidth, Width(&buf))
}

// syncBuffer is a bytes.Buffer safe for the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func TestSpinner(t *testing.T) {
	var out syncBuffer
	s := NewSpinner(context.Background(), &out)
	s.Done()
	s.Done() // Calling twice is fine.
	got := out.buf.String()
	assert.Contains(t, got, "\033[?25l")
	assert.Contains(t, got, "|")
	assert.Contains(t, got, "\033[?25h")
}
