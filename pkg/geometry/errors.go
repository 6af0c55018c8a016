package geometry

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the error codespace for geometry errors
const ModuleName = "geometry"

var (
	// ErrDegenerateVector is returned when an operation needs a non-zero vector
	ErrDegenerateVector = errorsmod.Register(ModuleName, 2, "degenerate vector")

	// ErrInvalidVector is returned when a vector literal cannot be parsed
	ErrInvalidVector = errorsmod.Register(ModuleName, 3, "invalid vector")
)
