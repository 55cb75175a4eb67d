package content

// Directive is the control signal a handler returns to the engine.
type Directive int32

const (
	// Continue keeps the rewrite going.
	Continue Directive = 0

	// Stop halts the rewrite after the current handler returns.
	Stop Directive = 1
)

// Valid reports whether d is a known directive value.
func (d Directive) Valid() bool {
	return d == Continue || d == Stop
}

func (d Directive) String() string {
	switch d {
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	default:
		return "invalid"
	}
}
