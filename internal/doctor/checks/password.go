package checks

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"sitedoctor/internal/doctor"
)

// wellKnownPasswords are the defaults shipped by installers and setup
// guides. Anything in this list still opening the admin account is a
// standing invitation.
var wellKnownPasswords = []string{"password", "admin", "changeme"}

// DefaultPassword warns when the stored admin password hash still matches
// a well-known default.
type DefaultPassword struct {
	candidates []string
}

// NewDefaultPassword builds the check. An empty candidate list falls back
// to the stock defaults.
func NewDefaultPassword(candidates []string) *DefaultPassword {
	if len(candidates) == 0 {
		candidates = wellKnownPasswords
	}
	return &DefaultPassword{candidates: candidates}
}

func (*DefaultPassword) ID() string { return "default-password" }

func (c *DefaultPassword) Evaluate(_ context.Context, pass *doctor.Pass) ([]doctor.Notice, error) {
	hash := asString(pass.Config.Get("admin/passwordhash", ""))
	if hash == "" {
		return nil, nil
	}

	for _, candidate := range c.candidates {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil {
			return []doctor.Notice{
				doctor.Warning("The admin account still uses a well-known default password. Change it now.").
					WithDetail("Anyone who can reach the login page can guess this password."),
			}, nil
		}
	}
	return nil, nil
}
