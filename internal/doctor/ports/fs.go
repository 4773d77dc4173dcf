package ports

// FilesystemProbe tests writability of a sub-path inside a named storage
// area with a scoped write-read-delete cycle. A non-nil error means "not
// writable"; probes never distinguish why.
type FilesystemProbe interface {
	WriteReadDelete(area, rel string) error
}
