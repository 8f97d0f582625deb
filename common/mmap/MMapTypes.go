package mmap


// MMap is the byte slice view over a memory mapped file region.
// The view aliases the caller's file, so hashing code treats it as read only input.
type MMap []byte

const (
	// RDONLY maps the region read only, the default for checksumming
	RDONLY = 0
	// RDWR maps the region read-write
	RDWR = 1 << iota
	// COPY maps the region copy on write, so writes stay private to the process
	COPY
	// EXEC marks the region executable
	EXEC
)

const (
	// ANON ignores the file and maps anonymous memory
	ANON = 1 << iota
)
