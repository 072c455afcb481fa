package seating

import "errors"

// Sentinel errors for the seating package's four error kinds. Callers
// should compare against these with errors.Is; call sites wrap them
// with fmt.Errorf("...: %w", ...) to add context.
var (
	// ErrInvalidConfig means a Config or ScoreParams value failed
	// validation before any optimization work began.
	ErrInvalidConfig = errors.New("seating: invalid configuration")

	// ErrDecodeFailed means the external boundary could not parse an
	// incoming JSON document into the domain's types.
	ErrDecodeFailed = errors.New("seating: failed to decode request")

	// ErrStructural means a fixed coordinate referred to a table,
	// section, or row index that doesn't exist in the arrangement.
	// Fatal: optimization cannot proceed.
	ErrStructural = errors.New("seating: structural inconsistency")

	// ErrEncodeFailed means the result could not be serialized back
	// out through the external boundary.
	ErrEncodeFailed = errors.New("seating: failed to encode result")
)

// StructuralErr carries the offending coordinate alongside ErrStructural.
type StructuralErr struct {
	Coord Coordinate
	Msg   string
}

func (e *StructuralErr) Error() string {
	return "seating: " + e.Msg
}

func (e *StructuralErr) Unwrap() error {
	return ErrStructural
}
