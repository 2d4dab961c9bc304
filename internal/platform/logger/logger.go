package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	once   sync.Once
	global = zerolog.New(os.Stdout).With().Timestamp().Logger()
)

// Init configures the process logger. Only the first call has an effect.
func Init(level, filePath string) {
	once.Do(func() {
		writers := []io.Writer{os.Stdout}
		if filePath != "" {
			file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o664)
			if err != nil {
				os.Stderr.WriteString("failed to open log file: " + err.Error() + "\n")
			} else {
				writers = append(writers, file)
			}
		}

		parsed, err := zerolog.ParseLevel(level)
		if err != nil || level == "" {
			parsed = zerolog.InfoLevel
		}

		global = zerolog.New(zerolog.MultiLevelWriter(writers...)).
			Level(parsed).
			With().Timestamp().Logger()
		log.Logger = global
	})
}

// Get returns the process logger.
func Get() *zerolog.Logger {
	return &global
}

// WithRequestID stores a child logger tagged with the request id in ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	l := global.With().Str("requestId", requestID).Logger()
	return l.WithContext(ctx)
}

// FromContext returns the request logger, falling back to the process logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return &global
	}
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &global
	}
	return l
}
