package auth

import "context"

type ctxKey string

const viewerKey ctxKey = "viewer"

// WithViewer returns a copy of ctx carrying v.
func WithViewer(ctx context.Context, v Viewer) context.Context {
	return context.WithValue(ctx, viewerKey, v)
}

// ViewerFromContext returns the authenticated viewer, or nil for anonymous calls.
func ViewerFromContext(ctx context.Context) *Viewer {
	v, ok := ctx.Value(viewerKey).(Viewer)
	if !ok {
		return nil
	}
	return &v
}
