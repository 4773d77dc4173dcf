package doctor

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"sitedoctor/internal/doctor/metrics"
	"sitedoctor/internal/doctor/ports"
)

// Collaborators bundles the injected port implementations a pass exposes
// to checks. Every field may be nil when no registered check uses it.
type Collaborators struct {
	Config   ports.Config
	FS       ports.FilesystemProbe
	Rows     ports.RowCounter
	Identity ports.Identity
	Caps     ports.Capabilities
}

// Runner orchestrates one diagnostic pass per request: classify the route,
// build the pass context once, execute the applicable checks in
// registration order, isolate failures, dedupe and forward.
type Runner struct {
	registry *Registry
	routes   RouteClassifier
	sink     *Sink
	deps     Collaborators
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

// NewRunner wires a runner. metrics may be nil (e.g. in tests).
func NewRunner(
	registry *Registry,
	routes RouteClassifier,
	sink *Sink,
	deps Collaborators,
	logger *slog.Logger,
	m *metrics.Metrics) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		registry: registry,
		routes:   routes,
		sink:     sink,
		deps:     deps,
		logger:   logger,
		metrics:  m,
		tracer:   otel.Tracer("sitedoctor/doctor"),
	}
}

// Run executes the pass for a route and returns the deduplicated notices
// in execution order. Routes outside the allow-list return an empty
// sequence immediately, before any collaborator is touched.
func (r *Runner) Run(ctx context.Context, route string, req RequestInfo) []Notice {
	groups := r.routes.GroupsFor(route)
	if len(groups) == 0 {
		return nil
	}

	ctx, span := r.tracer.Start(ctx, "doctor.pass",
		trace.WithAttributes(attribute.String("doctor.route", route)))
	defer span.End()

	start := time.Now()

	// One context per pass; host, config and user identity can all change
	// between requests, so nothing here survives the pass.
	pass := &Pass{
		Route:    route,
		Request:  req,
		Config:   r.deps.Config,
		FS:       r.deps.FS,
		Rows:     r.deps.Rows,
		Identity: r.deps.Identity,
		Caps:     r.deps.Caps,
	}

	var collected []Notice
	for _, g := range groups {
		for _, c := range r.registry.ChecksFor(g) {
			collected = append(collected, r.evaluate(ctx, c, pass)...)
		}
	}

	out := r.sink.Submit(ctx, collected)

	r.metrics.IncrementPass(route)
	r.metrics.ObservePassDuration(time.Since(start))
	for _, n := range out {
		r.metrics.IncrementNotice(n.Severity.String())
	}
	span.SetAttributes(attribute.Int("doctor.notices", len(out)))

	return out
}

// evaluate runs one check with full isolation. A returned error or a panic
// becomes an internal diagnostic and an empty result; one misbehaving
// check must never prevent the others from running or crash the request.
func (r *Runner) evaluate(ctx context.Context, c Check, pass *Pass) (notices []Notice) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.ErrorContext(ctx, "check panicked",
				"check", c.ID(),
				"route", pass.Route,
				"panic", rec,
			)
			r.metrics.IncrementCheckFailure(c.ID())
			notices = nil
		}
	}()

	out, err := c.Evaluate(ctx, pass)
	if err != nil {
		r.logger.WarnContext(ctx, "check failed",
			"check", c.ID(),
			"route", pass.Route,
			"error", err,
		)
		r.metrics.IncrementCheckFailure(c.ID())
		return nil
	}
	return out
}
