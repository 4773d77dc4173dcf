// Package capabilities answers presence queries for optional runtime
// features. Declared values from the site configuration win; otherwise a
// capability is considered present when one of its known external tools is
// on PATH.
package capabilities

import "os/exec"

// defaultBinaries maps a capability to the external tools that provide it.
var defaultBinaries = map[string][]string{
	"image-codec": {"magick", "convert", "vipsthumbnail"},
	"exif":        {"exiftool"},
}

// Table implements the doctor's Capabilities port.
type Table struct {
	declared map[string]bool
	binaries map[string][]string
}

// New builds a table. declared entries override PATH detection and may be
// nil.
func New(declared map[string]bool) *Table {
	return &Table{declared: declared, binaries: defaultBinaries}
}

// Has reports whether the capability is available.
func (t *Table) Has(name string) bool {
	if v, ok := t.declared[name]; ok {
		return v
	}
	for _, bin := range t.binaries[name] {
		if _, err := exec.LookPath(bin); err == nil {
			return true
		}
	}
	return false
}
