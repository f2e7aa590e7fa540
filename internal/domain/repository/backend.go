package repository

// Backend names the profile store implementation chosen at start-up.
type Backend string

const (
	// BackendDurable stores profiles in the relational database and images in the object store.
	BackendDurable Backend = "durable"
	// BackendFallback keeps profiles in process memory for local development.
	BackendFallback Backend = "fallback"
)

// String returns the string representation of the Backend.
func (b Backend) String() string {
	return string(b)
}

// IsDurable reports whether profiles survive a restart.
func (b Backend) IsDurable() bool {
	return b == BackendDurable
}
