package doctor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(0).String())
}

func TestSeverityOrdering(t *testing.T) {
	assert.Less(t, SeverityInfo, SeverityWarning)
	assert.Less(t, SeverityWarning, SeverityError)
}

func TestNotice_StructuralEquality(t *testing.T) {
	a := Warning("cache not writable")
	b := Warning("cache not writable")
	assert.Equal(t, a, b)

	// WithDetail copies; the original stays untouched.
	c := a.WithDetail("chmod it")
	assert.Empty(t, a.Detail)
	assert.Equal(t, "chmod it", c.Detail)
	assert.NotEqual(t, a, c)
}
