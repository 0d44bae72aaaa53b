package logging

import "context"

// RequestIDKey is the attribute name under which SlogLogger records the
// request id found in the context.
const RequestIDKey = "request_id"

type requestIDKey struct{}

// ContextWithRequestID returns ctx carrying id. Records logged with the
// returned context are tagged with it.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request id stored by ContextWithRequestID.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}
