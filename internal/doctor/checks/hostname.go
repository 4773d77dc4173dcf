package checks

import (
	"context"
	"net"
	"strings"

	"sitedoctor/internal/doctor"
)

// authRoutes are the routes where hostname problems get escalated: a
// misconfigured host on a login page can leak credentials or break the
// session cookie.
var authRoutes = map[string]struct{}{
	"login":     {},
	"userfirst": {},
}

func isAuthRoute(route string) bool {
	_, ok := authRoutes[route]
	return ok
}

// requestHost strips an optional port from the request host.
func requestHost(pass *doctor.Pass) string {
	host := pass.Request.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

// HostnameDot warns when the request host contains no dot. Cookies and
// links in outgoing email tend to misbehave on dotless hostnames.
type HostnameDot struct{}

func (HostnameDot) ID() string { return "hostname-dot" }

func (HostnameDot) Evaluate(_ context.Context, pass *doctor.Pass) ([]doctor.Notice, error) {
	host := requestHost(pass)
	if host == "" || strings.Contains(host, ".") {
		return nil, nil
	}

	notices := []doctor.Notice{
		doctor.Warning("The hostname \"%s\" does not contain a dot. Cookies and links in outgoing email may not work correctly.", host),
	}
	if isAuthRoute(pass.Route) {
		notices = append(notices,
			doctor.Error("You are trying to log in on the dotless hostname \"%s\". Use the site's canonical hostname instead.", host))
	}
	return notices, nil
}

// HostnameIP warns when the site is addressed by a raw IP address instead
// of a hostname.
type HostnameIP struct{}

func (HostnameIP) ID() string { return "hostname-ip" }

func (HostnameIP) Evaluate(_ context.Context, pass *doctor.Pass) ([]doctor.Notice, error) {
	host := requestHost(pass)
	if host == "" || net.ParseIP(host) == nil {
		return nil, nil
	}

	notices := []doctor.Notice{
		doctor.Warning("You are using the IP address \"%s\" as hostname. This is known to cause problems with sessions and cookies.", host),
	}
	if isAuthRoute(pass.Route) {
		notices = append(notices,
			doctor.Error("You are trying to log in over the IP address \"%s\". Set up a proper hostname before using the site.", host))
	}
	return notices, nil
}
