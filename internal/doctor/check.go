package doctor

import (
	"context"

	"sitedoctor/internal/doctor/ports"
)

// Check is one independent advisory rule. Implementations must be
// stateless across passes and must treat anticipated absences (missing
// config key, unwritable path, absent capability) as notices, never as
// errors. A returned error marks an unanticipated failure; the runner
// records it internally and moves on.
type Check interface {
	// ID returns the stable identifier used for logging, metrics and
	// duplicate detection.
	ID() string

	// Evaluate inspects the pass context and returns zero or more notices.
	Evaluate(ctx context.Context, pass *Pass) ([]Notice, error)
}

// CheckFunc adapts a plain function to the Check interface. Handy for
// one-off rules and tests.
func CheckFunc(id string, fn func(ctx context.Context, pass *Pass) ([]Notice, error)) Check {
	return &funcCheck{id: id, fn: fn}
}

type funcCheck struct {
	id string
	fn func(ctx context.Context, pass *Pass) ([]Notice, error)
}

func (c *funcCheck) ID() string { return c.id }

func (c *funcCheck) Evaluate(ctx context.Context, pass *Pass) ([]Notice, error) {
	return c.fn(ctx, pass)
}

// BrowserInfo carries the parsed User-Agent of the request. Filled by the
// transport layer so checks never parse UA strings themselves.
type BrowserInfo struct {
	Name    string
	Version string
	Mobile  bool
	Bot     bool
}

// RequestInfo is the slice of the incoming request a pass may inspect.
type RequestInfo struct {
	Host       string
	URI        string
	RemoteAddr string
	Browser    BrowserInfo
}

// Pass is the read-only bundle of request and environment data available
// to checks during one evaluation. It is built fresh by the runner for
// every run and discarded afterwards; nothing in it may be cached across
// requests.
type Pass struct {
	Route   string
	Request RequestInfo

	Config   ports.Config
	FS       ports.FilesystemProbe
	Rows     ports.RowCounter
	Identity ports.Identity
	Caps     ports.Capabilities
}
