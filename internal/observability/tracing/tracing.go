package tracing

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const TraceIDHeader = "X-Trace-Id"

// InjectTraceID attaches a logger with a fresh traceId to ctx.
func InjectTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, uuid.New().String())
}

func WithTraceID(ctx context.Context, id string) context.Context {
	logger := log.With().Str("traceId", id).Logger()
	return logger.WithContext(ctx)
}

// Middleware reuses the caller's trace id when it is a valid uuid, otherwise a new one is generated.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(TraceIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}

		w.Header().Set(TraceIDHeader, id)
		next.ServeHTTP(w, r.WithContext(WithTraceID(r.Context(), id)))
	})
}
