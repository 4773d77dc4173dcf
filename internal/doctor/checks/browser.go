package checks

import (
	"context"

	"sitedoctor/internal/doctor"
)

// legacyBrowsers are browser families the admin interface no longer
// supports. The transport layer parses the User-Agent; checks only look at
// the result.
var legacyBrowsers = map[string]struct{}{
	"Internet Explorer": {},
}

// LegacyBrowser tells operators on an unsupported browser that the admin
// interface may misrender.
type LegacyBrowser struct{}

func (LegacyBrowser) ID() string { return "legacy-browser" }

func (LegacyBrowser) Evaluate(_ context.Context, pass *doctor.Pass) ([]doctor.Notice, error) {
	b := pass.Request.Browser
	if b.Bot || b.Name == "" {
		return nil, nil
	}
	if _, ok := legacyBrowsers[b.Name]; !ok {
		return nil, nil
	}
	return []doctor.Notice{
		doctor.Info("You are using %s, which is no longer supported by the admin interface. Some screens may not render correctly.", b.Name),
	}, nil
}
