package common

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// LoggerFromContext extracts the logger from context, or returns a disabled
// logger if none was added
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// LoggingMiddleware logs every request the mediator dispatches with its
// duration and outcome
func LoggingMiddleware() Middleware {
	return func(ctx context.Context, request Request, next HandlerFunc) (Response, error) {
		name := RequestName(request)
		logger := LoggerFromContext(ctx).With().Str("request", name).Logger()
		ctx = WithLogger(ctx, logger)

		start := time.Now()
		response, err := next(ctx, request)
		elapsed := time.Since(start)

		if err != nil {
			logger.Warn().Err(err).Dur("elapsed", elapsed).Msg("request failed")
			return response, err
		}
		logger.Debug().Dur("elapsed", elapsed).Msg("request handled")
		return response, nil
	}
}
