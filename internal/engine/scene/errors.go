package scene

import "errors"

// Scene processing errors.
var (
	// ErrInvalidParameter reports a structural model parameter that is out of
	// range, non-integer where an integer is required, or otherwise unusable.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDegenerateGeometry reports a view that cannot define a projection,
	// such as an eye placed on its target or an up vector along the view direction.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrUnknownModel reports an unrecognized model type.
	ErrUnknownModel = errors.New("unknown model type")
)
