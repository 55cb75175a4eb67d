package content

// Doctype is a document type declaration event. Doctypes are read-only.
type Doctype struct {
	name     string
	publicID string
	systemID string
}

// NewDoctype creates a doctype event. Empty publicID or systemID means the
// declaration carries no such identifier.
func NewDoctype(name, publicID, systemID string) *Doctype {
	return &Doctype{name: name, publicID: publicID, systemID: systemID}
}

// Name returns the doctype name, e.g. "html".
func (d *Doctype) Name() string {
	return d.name
}

// PublicID returns the public identifier, if present.
func (d *Doctype) PublicID() (string, bool) {
	return d.publicID, d.publicID != ""
}

// SystemID returns the system identifier, if present.
func (d *Doctype) SystemID() (string, bool) {
	return d.systemID, d.systemID != ""
}
