package ports

// Config is the read-only configuration lookup the doctor depends on.
// Paths are slash-separated (e.g. "general/mailoptions"); the default is
// returned when the path is absent. The doctor treats values as opaque;
// coercion is the caller's concern.
type Config interface {
	Get(path string, def any) any
}
