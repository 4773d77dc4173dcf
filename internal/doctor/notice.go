package doctor

import "fmt"

// Severity orders notices by how loudly they should be presented.
type Severity int

const (
	SeverityInfo Severity = iota + 1
	SeverityWarning
	SeverityError
)

// String returns the lowercase severity label used in logs and metrics.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Notice is a single structured advisory message. It is a plain comparable
// value: two notices with the same severity, message and detail are the
// same notice. Encoding for presentation is the presentation layer's job.
type Notice struct {
	Severity Severity
	Message  string
	Detail   string
}

// Info builds an info-severity notice.
func Info(format string, args ...any) Notice {
	return Notice{Severity: SeverityInfo, Message: fmt.Sprintf(format, args...)}
}

// Warning builds a warning-severity notice.
func Warning(format string, args ...any) Notice {
	return Notice{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}

// Error builds an error-severity notice. Reserved for escalations such as
// hostname problems on authentication routes.
func Error(format string, args ...any) Notice {
	return Notice{Severity: SeverityError, Message: fmt.Sprintf(format, args...)}
}

// WithDetail returns a copy of the notice carrying supplementary text.
func (n Notice) WithDetail(detail string) Notice {
	n.Detail = detail
	return n
}
