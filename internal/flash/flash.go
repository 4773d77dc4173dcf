// Package flash stores per-session advisory notices until the next page
// render pops them. It is the presentation sink the doctor forwards to;
// rendering and translation happen upstream of it.
package flash

import (
	"context"

	"sitedoctor/internal/doctor"
	"sitedoctor/pkg/platform/sentinel"
)

// Store holds flashed notices per session. Push appends; Pop drains.
type Store interface {
	Push(ctx context.Context, sessionID string, notices []doctor.Notice) error
	Pop(ctx context.Context, sessionID string) ([]doctor.Notice, error)
}

type contextKeySession struct{}

// WithSession injects the flash session id into a context. The session
// middleware does this; tests use it directly.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, contextKeySession{}, sessionID)
}

// SessionFromContext retrieves the flash session id, or "".
func SessionFromContext(ctx context.Context) string {
	sid, _ := ctx.Value(contextKeySession{}).(string)
	return sid
}

// Presenter adapts a Store to the doctor's Presenter interface, routing
// notices to the session found in the pass context.
type Presenter struct {
	store Store
}

// NewPresenter wraps a store.
func NewPresenter(store Store) *Presenter {
	return &Presenter{store: store}
}

// Present implements doctor.Presenter.
func (p *Presenter) Present(ctx context.Context, notices []doctor.Notice) error {
	sid := SessionFromContext(ctx)
	if sid == "" {
		return sentinel.ErrInvalidState
	}
	return p.store.Push(ctx, sid, notices)
}
