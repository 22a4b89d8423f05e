// Package notify delivers storefront notices (toasts) to a log or a terminal.
package notify

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"example.com/farm-retreat/app/internal/domain/notice"
)

// Logger writes each notice as a structured log entry. Destructive
// notices are logged at warn level.
type Logger struct {
	log *zap.Logger
}

func NewLogger(log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{log: log.Named("notice")}
}

func (l *Logger) Notify(n notice.Notice) {
	fields := []zap.Field{
		zap.String("title", n.Title),
		zap.String("description", n.Description),
	}
	if n.Variant == notice.VariantDestructive {
		l.log.Warn("notice", fields...)
		return
	}
	l.log.Info("notice", fields...)
}

// Writer prints notices as plain lines, one per notice.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (p *Writer) Notify(n notice.Notice) {
	p.mu.Lock()
	defer p.mu.Unlock()

	prefix := "*"
	if n.Variant == notice.VariantDestructive {
		prefix = "!"
	}
	fmt.Fprintf(p.w, "%s %s: %s\n", prefix, n.Title, n.Description)
}

// Multi fans a notice out to several notifiers in order.
type Multi []interface{ Notify(notice.Notice) }

func (m Multi) Notify(n notice.Notice) {
	for _, t := range m {
		t.Notify(n)
	}
}
