package ports

// Capabilities answers presence queries for optional runtime capabilities
// (image codec tooling, EXIF support, and the like).
type Capabilities interface {
	Has(name string) bool
}
