package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sitedoctor/internal/doctor/mocks"
)

func newTestRunner(t *testing.T, reg *Registry, deps Collaborators) *Runner {
	t.Helper()
	sink := NewSink(nil, discardLogger())
	return NewRunner(reg, DefaultRouteTable(), sink, deps, discardLogger(), nil)
}

func TestRunner_UnknownRouteIsEmptyAndTouchesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)

	// No EXPECT calls are registered: any collaborator use fails the test.
	deps := Collaborators{
		Config:   mocks.NewMockConfig(ctrl),
		FS:       mocks.NewMockFilesystemProbe(ctrl),
		Rows:     mocks.NewMockRowCounter(ctrl),
		Identity: mocks.NewMockIdentity(ctrl),
		Caps:     mocks.NewMockCapabilities(ctrl),
	}

	reg := NewRegistry()
	require.NoError(t, reg.Register(CheckFunc("touchy", func(ctx context.Context, pass *Pass) ([]Notice, error) {
		pass.Rows.Count(ctx, "changelog")
		return nil, nil
	}), GroupEntry))

	runner := newTestRunner(t, reg, deps)

	out := runner.Run(context.Background(), "other", RequestInfo{Host: "example.com"})
	assert.Empty(t, out)
}

func TestRunner_ExecutesGroupsInFixedOrder(t *testing.T) {
	var order []string
	record := func(id string, notices ...Notice) Check {
		return CheckFunc(id, func(context.Context, *Pass) ([]Notice, error) {
			order = append(order, id)
			return notices, nil
		})
	}

	reg := NewRegistry()
	require.NoError(t, reg.Register(record("entry-one", Info("one")), GroupEntry))
	require.NoError(t, reg.Register(record("dash-one", Info("two")), GroupDashboard))
	require.NoError(t, reg.Register(record("entry-two", Info("three")), GroupEntry))

	runner := newTestRunner(t, reg, Collaborators{})

	out := runner.Run(context.Background(), "dashboard", RequestInfo{Host: "example.com"})

	// Entry group first, then dashboard; registration order inside each.
	assert.Equal(t, []string{"entry-one", "entry-two", "dash-one"}, order)
	assert.Equal(t, []Notice{Info("one"), Info("three"), Info("two")}, out)
}

func TestRunner_IsolatesFailingChecks(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Register(CheckFunc("panics", func(context.Context, *Pass) ([]Notice, error) {
		panic("probe exploded")
	}), GroupEntry))
	require.NoError(t, reg.Register(CheckFunc("errors", func(context.Context, *Pass) ([]Notice, error) {
		return nil, errors.New("database gone")
	}), GroupEntry))
	require.NoError(t, reg.Register(CheckFunc("survives", func(context.Context, *Pass) ([]Notice, error) {
		return []Notice{Warning("still here")}, nil
	}), GroupEntry))

	runner := newTestRunner(t, reg, Collaborators{})

	out := runner.Run(context.Background(), "login", RequestInfo{Host: "example.com"})

	assert.Equal(t, []Notice{Warning("still here")}, out)
}

func TestRunner_OverlappingGroupsDeduplicate(t *testing.T) {
	reg := NewRegistry()

	// Registered under both groups, like the hostname checks: on the
	// dashboard route it runs twice and emits the same notice twice.
	require.NoError(t, reg.Register(CheckFunc("hostname-ish", func(context.Context, *Pass) ([]Notice, error) {
		return []Notice{Warning("host has no dot")}, nil
	}), GroupEntry, GroupDashboard))

	runner := newTestRunner(t, reg, Collaborators{})

	out := runner.Run(context.Background(), "dashboard", RequestInfo{Host: "localhost"})

	assert.Equal(t, []Notice{Warning("host has no dot")}, out)
}

func TestRunner_ZeroApplicableChecksIsEmptyNotError(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(noopCheck("dash-only"), GroupDashboard))

	runner := newTestRunner(t, reg, Collaborators{})

	out := runner.Run(context.Background(), "login", RequestInfo{Host: "example.com"})
	assert.Empty(t, out)
}

func TestRunner_ChecksSeeTheRoute(t *testing.T) {
	reg := NewRegistry()
	var seenRoute string
	require.NoError(t, reg.Register(CheckFunc("route-spy", func(_ context.Context, pass *Pass) ([]Notice, error) {
		seenRoute = pass.Route
		return nil, nil
	}), GroupEntry))

	runner := newTestRunner(t, reg, Collaborators{})
	runner.Run(context.Background(), "userfirst", RequestInfo{Host: "example.com"})

	assert.Equal(t, "userfirst", seenRoute)
}
