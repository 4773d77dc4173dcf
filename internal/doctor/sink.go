package doctor

import (
	"context"
	"log/slog"
)

// Presenter is the external flash/notification renderer the deduplicated
// notice sequence is handed to. The doctor never renders or translates;
// message text passes through untouched.
type Presenter interface {
	Present(ctx context.Context, notices []Notice) error
}

// Sink collects the notices of one pass, suppresses structural duplicates
// and forwards the result. Overlapping groups can legitimately re-trigger
// a check, so the same warning may be emitted twice in one pass; the sink
// guarantees the operator sees it once.
type Sink struct {
	presenter Presenter
	logger    *slog.Logger
}

// NewSink builds a sink forwarding to presenter. A nil presenter disables
// forwarding, which tests use to inspect the return value alone.
func NewSink(presenter Presenter, logger *slog.Logger) *Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sink{presenter: presenter, logger: logger}
}

// Submit deduplicates notices (first occurrence wins, order preserved),
// forwards them and returns the deduplicated sequence. A presenter failure
// is logged and swallowed: the advisory layer must never break the page it
// is advising on.
func (s *Sink) Submit(ctx context.Context, notices []Notice) []Notice {
	deduped := Dedupe(notices)
	if s.presenter != nil && len(deduped) > 0 {
		if err := s.presenter.Present(ctx, deduped); err != nil {
			s.logger.WarnContext(ctx, "failed to present notices",
				"count", len(deduped),
				"error", err,
			)
		}
	}
	return deduped
}

// Dedupe removes structurally equal notices, keeping the earliest
// occurrence. Order is preserved.
func Dedupe(notices []Notice) []Notice {
	if len(notices) == 0 {
		return notices
	}

	seen := make(map[Notice]struct{}, len(notices))
	result := make([]Notice, 0, len(notices))

	for _, n := range notices {
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			result = append(result, n)
		}
	}

	return result
}
