// Package sovlog is the process-wide logging bridge the core may be handed
// once at plugin load (spec.md §3: "a process-wide logger bridge may be
// registered once at plugin load"). Until registered, it falls back to a
// library-safe default logger.
package sovlog

import (
	"context"

	"github.com/sirupsen/logrus"
)

type ctxLoggerKey struct{}

var rootLogger logrus.FieldLogger = defaultLogger()

func defaultLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000",
	})
	return l
}

// SetLogger installs the process-wide logger. Intended to be called at most
// once, at plugin load, by the host integrating the core.
func SetLogger(l logrus.FieldLogger) {
	rootLogger = l
}

// L returns the logger for the given context, falling back to the
// process-wide root logger when the context carries none. Components log
// via L(ctx).Debugf(...)/Warnf(...)/Errorf(...), mirroring the teacher's
// log.L(ctx) accessor pattern.
func L(ctx context.Context) logrus.FieldLogger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(logrus.FieldLogger); ok {
		return l
	}
	return rootLogger
}

// WithLogger attaches a logger (e.g. with request-scoped fields) to a context
// for subsequent L(ctx) calls within that call tree.
func WithLogger(ctx context.Context, l logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, l)
}
