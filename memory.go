package htmlrewriter

// Memory is the read-only view of guest linear memory the boundary needs to
// decode (pointer, length) buffers passed by the guest.
type Memory interface {
	// Read returns length bytes starting at offset. The returned slice is a
	// copy; it stays valid after the guest resizes or mutates its memory.
	Read(offset uint32, length uint32) ([]byte, error)
}
