// Пакет ctxmeta — нейтральный слой для метаданных запроса,
// прокидываемых через context.Context (request_id, trace_id).
// HTTP-слой и логгер зависят от этого пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

// Ключи контекста (неэкспортируемый тип — чтобы избежать коллизий).
const (
	KeyRequestID ctxKey = "request_id"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
