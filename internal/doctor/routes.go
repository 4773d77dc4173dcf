package doctor

// RouteClassifier maps a route name to the ordered sequence of groups to
// execute. An empty result means the doctor does not run at all for that
// route. This is the primary performance guard, since checks may perform
// I/O.
type RouteClassifier interface {
	GroupsFor(route string) []Group
}

// RouteTable is a config-driven RouteClassifier backed by an allow-list.
type RouteTable struct {
	routes map[string][]Group
}

// NewRouteTable returns an empty table. Unknown routes map to no groups.
func NewRouteTable() *RouteTable {
	return &RouteTable{routes: make(map[string][]Group)}
}

// DefaultRouteTable returns the stock CMS mapping: the dashboard, login
// and first-user pages trigger the entry group; the dashboard additionally
// triggers the dashboard group.
func DefaultRouteTable() *RouteTable {
	t := NewRouteTable()
	t.Add("dashboard", GroupEntry, GroupDashboard)
	t.Add("login", GroupEntry)
	t.Add("userfirst", GroupEntry)
	return t
}

// Add maps a route name to its groups, replacing any previous mapping.
// Group order is execution order.
func (t *RouteTable) Add(route string, groups ...Group) {
	t.routes[route] = groups
}

// GroupsFor implements RouteClassifier.
func (t *RouteTable) GroupsFor(route string) []Group {
	return t.routes[route]
}
