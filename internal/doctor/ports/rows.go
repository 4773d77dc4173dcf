package ports

import "context"

// RowCounter reports the current number of rows for a log kind
// (e.g. "changelog", "systemlog").
type RowCounter interface {
	Count(ctx context.Context, kind string) (int64, error)
}
