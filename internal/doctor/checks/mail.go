package checks

import (
	"context"

	"sitedoctor/internal/doctor"
)

// MailOptions warns operators who can fix the configuration that mail
// sending has not been set up. Operators without the files:config
// capability could not act on the notice, so they are not shown it.
type MailOptions struct{}

func (MailOptions) ID() string { return "mail-options" }

func (MailOptions) Evaluate(ctx context.Context, pass *doctor.Pass) ([]doctor.Notice, error) {
	if pass.Config.Get("general/mailoptions", nil) != nil {
		return nil, nil
	}

	user, ok := pass.Identity.Current(ctx)
	if !ok || !pass.Identity.Allowed(user, "files:config") {
		return nil, nil
	}

	return []doctor.Notice{
		doctor.Warning("The mail configuration parameters have not been set up. This may interfere with password resets and notification emails.").
			WithDetail("Set \"mailoptions\" in the general section of the site configuration."),
	}, nil
}
