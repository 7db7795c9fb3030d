// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"io"
	"log/slog"
	"math"
	"os"
	"sync"
	"sync/atomic"
)

var (
	logger atomic.Pointer[slog.Logger]
	// advised holds the [mantissa, exponent] widths that were already warned about.
	advised sync.Map
)

func init() {
	SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
}

// SetLogger replaces the package logger. A nil logger disables logging.
// It is safe to call concurrently with any other function of the package.
func SetLogger(l *slog.Logger) {
	if l == nil {
		// Go 1.21 lacks slog.DiscardHandler; this handler is disabled at every level.
		l = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	logger.Store(l)
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return logger.Load()
}

// warnDoublePrecision logs once per layout that op loses precision,
// because the layout is wider than a float64.
func warnDoublePrecision[L Layout](op string) {
	mb, eb := widths[L]()
	if mb <= f64MantBits+1 && eb <= f64ExpBits {
		return
	}
	if _, loaded := advised.LoadOrStore([2]int{mb, eb}, struct{}{}); loaded {
		return
	}
	Logger().Warn("arithmetic is performed in float64 precision",
		"op", op,
		"layout", LayoutName[L](),
		"mantissa_bits", mb,
		"exponent_bits", eb,
	)
}
