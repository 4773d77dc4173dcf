package checks

import (
	"context"

	"sitedoctor/internal/doctor"
)

// optionalCapability describes one capability whose absence is worth an
// informational notice but does not degrade core operation.
type optionalCapability struct {
	name    string
	message string
}

var optionalCapabilities = []optionalCapability{
	{
		name:    "image-codec",
		message: "No image codec tooling is available. Thumbnails cannot be generated; uploaded images will be served as-is.",
	},
	{
		name:    "exif",
		message: "EXIF support is not available. Uploaded photos will not be auto-rotated.",
	},
}

// Capabilities reports the absence of optional runtime capabilities.
type Capabilities struct{}

func (Capabilities) ID() string { return "capabilities" }

func (Capabilities) Evaluate(_ context.Context, pass *doctor.Pass) ([]doctor.Notice, error) {
	var notices []doctor.Notice
	for _, c := range optionalCapabilities {
		if !pass.Caps.Has(c.name) {
			notices = append(notices, doctor.Info("%s", c.message))
		}
	}
	return notices, nil
}
