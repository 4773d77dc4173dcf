package checks

import (
	"context"

	"sitedoctor/internal/doctor"
)

// PathPair names a sub-path inside a storage area that must be writable.
type PathPair struct {
	Area string
	Rel  string
}

// DefaultPathPairs covers the storage areas the CMS writes to at runtime.
func DefaultPathPairs() []PathPair {
	return []PathPair{
		{Area: "cache", Rel: "."},
		{Area: "config", Rel: "."},
		{Area: "files", Rel: "."},
		{Area: "files", Rel: "uploads"},
	}
}

// WritablePaths probes each configured (area, sub-path) pair with a
// write-read-delete cycle and warns for every pair that fails. Probe
// failures are the anticipated condition here, so they never surface as
// check errors.
type WritablePaths struct {
	pairs []PathPair
}

// NewWritablePaths builds the check. An empty pair list falls back to
// DefaultPathPairs.
func NewWritablePaths(pairs []PathPair) *WritablePaths {
	if len(pairs) == 0 {
		pairs = DefaultPathPairs()
	}
	return &WritablePaths{pairs: pairs}
}

func (*WritablePaths) ID() string { return "writable-paths" }

func (c *WritablePaths) Evaluate(_ context.Context, pass *doctor.Pass) ([]doctor.Notice, error) {
	var notices []doctor.Notice
	for _, p := range c.pairs {
		if err := pass.FS.WriteReadDelete(p.Area, p.Rel); err != nil {
			notices = append(notices,
				doctor.Warning("The path \"%s\" in the %s area is not writable.", p.Rel, p.Area).
					WithDetail("Check ownership and permissions of the directory and its parents."))
		}
	}
	return notices, nil
}
