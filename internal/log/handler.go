package log

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

type handler struct {
	W     io.Writer
	Level Level
	Name  string
}

var _ slog.Handler = (*handler)(nil)

func (h *handler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return lvl >= h.Level
}

var (
	_reset = []byte("\x1b[0m")
	_bold  = []byte("\x1b[1m")
	_dim   = []byte("\x1b[2m")

	_boldDim       = []byte("\x1b[2;1m")
	_brightBoldRed = []byte("\x1b[91;1m")
	_brightBoldGrn = []byte("\x1b[92;1m")
)

func (h *handler) Handle(ctx context.Context, rec slog.Record) error {
	buf := *getBuf()
	defer putBuf(&buf)

	lvl, err := rec.Level.MarshalText()
	if err != nil {
		return err
	}

	if rec.Level >= slog.LevelError {
		buf = append(buf, _brightBoldRed...)
	} else if rec.Level >= slog.LevelInfo {
		buf = append(buf, _brightBoldGrn...)
	} else {
		buf = append(buf, _boldDim...)
	}
	buf = append(buf, lvl...)
	buf = append(buf, _reset...)
	buf = append(buf, ' ')

	if len(h.Name) > 0 {
		buf = append(buf, _dim...)
		buf = append(buf, h.Name...)
		buf = append(buf, _reset...)
		buf = append(buf, ": "...)
	}

	buf = append(buf, _bold...)
	buf = append(buf, rec.Message...)
	buf = append(buf, _reset...)
	buf = append(buf, '\n')

	_, err = h.W.Write(buf)
	return err
}

// The Logger builds full messages with Sprintf before logging,
// so attributes and groups never reach the handler.

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler { return h }

func (h *handler) WithGroup(name string) slog.Handler { return h }

var _bufPool = sync.Pool{
	New: func() interface{} {
		bs := make([]byte, 0, 1024)
		return &bs
	},
}

func getBuf() *[]byte {
	return _bufPool.Get().(*[]byte)
}

func putBuf(bs *[]byte) {
	*bs = (*bs)[:0]
	_bufPool.Put(bs)
}
