package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/cockroachdb/errors"
)

// Notifier delivers a formatted insight message and returns a delivery receipt.
type Notifier interface {
	Send(ctx context.Context, message string) (string, error)
}

// WriterNotifier prints messages instead of sending them. Used for dry runs.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
	n  int
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Send(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, err := io.WriteString(n.w, message); err != nil {
		return "", errors.Wrap(err, "notify: write message")
	}
	n.n++
	return fmt.Sprintf("dry-run-%d", n.n), nil
}
