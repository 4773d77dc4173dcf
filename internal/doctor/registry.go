package doctor

import "fmt"

// Group tags decide which checks apply to which route. Checks registered
// under GroupAlways run for every applicable route.
type Group string

const (
	GroupAlways    Group = "always"
	GroupEntry     Group = "entry"
	GroupDashboard Group = "dashboard"
)

// DuplicateCheckError reports a check id registered twice. Registration is
// a startup-time programming mistake, so it fails fast rather than at run
// time.
type DuplicateCheckError struct {
	ID string
}

func (e *DuplicateCheckError) Error() string {
	return fmt.Sprintf("check already registered: %s", e.ID)
}

type registration struct {
	check  Check
	groups map[Group]struct{}
}

// Registry is the ordered, group-tagged collection of checks. Insertion
// order is execution order; grouping and ordering are data, not code
// layout.
type Registry struct {
	ids     map[string]struct{}
	entries []registration
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]struct{})}
}

// Register adds a check under one or more group tags. Registering an id
// twice returns a *DuplicateCheckError.
func (r *Registry) Register(c Check, groups ...Group) error {
	id := c.ID()
	if _, exists := r.ids[id]; exists {
		return &DuplicateCheckError{ID: id}
	}
	tags := make(map[Group]struct{}, len(groups))
	for _, g := range groups {
		tags[g] = struct{}{}
	}
	r.ids[id] = struct{}{}
	r.entries = append(r.entries, registration{check: c, groups: tags})
	return nil
}

// ChecksFor returns the checks applicable to a group in registration
// order, including checks registered under GroupAlways.
func (r *Registry) ChecksFor(group Group) []Check {
	var out []Check
	for _, e := range r.entries {
		if _, ok := e.groups[group]; ok {
			out = append(out, e.check)
			continue
		}
		if _, ok := e.groups[GroupAlways]; ok {
			out = append(out, e.check)
		}
	}
	return out
}

// Len returns the number of registered checks.
func (r *Registry) Len() int {
	return len(r.entries)
}
