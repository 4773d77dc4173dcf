// Package fsprobe implements the filesystem writability probe over a set
// of named storage areas rooted at configured directories.
package fsprobe

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"sitedoctor/pkg/platform/sentinel"
)

// Probe tests writability with a scoped write-read-delete cycle.
type Probe struct {
	areas map[string]string
}

// New builds a probe over area-name to root-directory mappings.
func New(areas map[string]string) *Probe {
	return &Probe{areas: areas}
}

// WriteReadDelete creates a uniquely named file under the area's sub-path,
// reads it back and removes it. The probe file is released on every exit
// path, including failures. Any error means "not writable"; callers treat
// it as a fact, not a fault.
func (p *Probe) WriteReadDelete(area, rel string) error {
	root, ok := p.areas[area]
	if !ok {
		return fmt.Errorf("storage area %q: %w", area, sentinel.ErrNotFound)
	}

	dir := filepath.Join(root, filepath.Clean("/"+rel))
	if !strings.HasPrefix(dir, filepath.Clean(root)) {
		return fmt.Errorf("path %q escapes storage area %q", rel, area)
	}

	name := filepath.Join(dir, ".probe-"+uuid.NewString())
	payload := []byte("sitedoctor probe")

	if err := os.WriteFile(name, payload, 0o600); err != nil {
		return fmt.Errorf("write probe: %w", err)
	}
	defer os.Remove(name)

	got, err := os.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read probe back: %w", err)
	}
	if !bytes.Equal(got, payload) {
		return fmt.Errorf("probe readback mismatch in %q", dir)
	}
	return nil
}
