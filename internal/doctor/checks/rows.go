package checks

import (
	"context"
	"fmt"

	"sitedoctor/internal/doctor"
)

// defaultRowLimit is the threshold above which a log table is considered
// oversized.
const defaultRowLimit = 10000

// RowCount warns when a log table has grown past its configured limit.
// One instance per log kind, so new kinds are a registration, not a code
// change in the check.
type RowCount struct {
	id        string
	kind      string
	configKey string
	label     string
}

// NewChangelogRows watches the content change log.
func NewChangelogRows() *RowCount {
	return &RowCount{
		id:        "changelog-rows",
		kind:      "changelog",
		configKey: "general/changelog/rowlimit",
		label:     "change log",
	}
}

// NewSystemlogRows watches the system log.
func NewSystemlogRows() *RowCount {
	return &RowCount{
		id:        "systemlog-rows",
		kind:      "systemlog",
		configKey: "general/systemlog/rowlimit",
		label:     "system log",
	}
}

func (c *RowCount) ID() string { return c.id }

func (c *RowCount) Evaluate(ctx context.Context, pass *doctor.Pass) ([]doctor.Notice, error) {
	limit := asInt64(pass.Config.Get(c.configKey, nil), defaultRowLimit)

	n, err := pass.Rows.Count(ctx, c.kind)
	if err != nil {
		// A failing counter is not an anticipated absence; let the runner
		// record it internally.
		return nil, fmt.Errorf("count %s rows: %w", c.kind, err)
	}

	if n <= limit {
		return nil, nil
	}
	return []doctor.Notice{
		doctor.Warning("The %s has grown to %d rows, exceeding the limit of %d.", c.label, n, limit).
			WithDetail("Trim the log from the maintenance screen to keep the database responsive."),
	}, nil
}
