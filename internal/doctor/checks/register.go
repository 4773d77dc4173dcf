// Package checks holds the built-in advisory rules. Each check is an
// independent, pluggable unit; the set grows by registration, never by
// touching the runner.
package checks

import (
	"sitedoctor/internal/doctor"
)

// Options configures the built-in check set.
type Options struct {
	// WritablePairs overrides the probed storage paths.
	WritablePairs []PathPair

	// DefaultPasswords overrides the well-known password candidates.
	DefaultPasswords []string
}

// RegisterAll registers the built-in checks in presentation order. The
// hostname checks carry both the entry and dashboard tags on purpose: they
// are the overlap the sink's dedupe guarantee exists for.
func RegisterAll(reg *doctor.Registry, opts Options) error {
	type entry struct {
		check  doctor.Check
		groups []doctor.Group
	}

	entries := []entry{
		{HostnameDot{}, []doctor.Group{doctor.GroupEntry, doctor.GroupDashboard}},
		{HostnameIP{}, []doctor.Group{doctor.GroupEntry, doctor.GroupDashboard}},
		{LegacyBrowser{}, []doctor.Group{doctor.GroupEntry}},
		{NewWritablePaths(opts.WritablePairs), []doctor.Group{doctor.GroupDashboard}},
		{MailOptions{}, []doctor.Group{doctor.GroupDashboard}},
		{NewChangelogRows(), []doctor.Group{doctor.GroupDashboard}},
		{NewSystemlogRows(), []doctor.Group{doctor.GroupDashboard}},
		{Capabilities{}, []doctor.Group{doctor.GroupDashboard}},
		{NewDefaultPassword(opts.DefaultPasswords), []doctor.Group{doctor.GroupDashboard}},
	}

	for _, e := range entries {
		if err := reg.Register(e.check, e.groups...); err != nil {
			return err
		}
	}
	return nil
}
