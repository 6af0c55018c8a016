package geometry

import (
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// ParseVector3 parses a vector written as "x,y,z". Surrounding whitespace and
// a single pair of enclosing parentheses are accepted, so the output of
// Vector3.String parses back.
func ParseVector3(s string) (Vector3, error) {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "(") && strings.HasSuffix(trimmed, ")") {
		trimmed = trimmed[1 : len(trimmed)-1]
	}

	parts := strings.Split(trimmed, ",")
	if len(parts) != 3 {
		return Vector3{}, errorsmod.Wrapf(ErrInvalidVector, "%q: expected 3 components, got %d", s, len(parts))
	}

	var comps [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return Vector3{}, errorsmod.Wrapf(ErrInvalidVector, "%q: component %d: %v", s, i, err)
		}
		comps[i] = float32(f)
	}

	return NewVector3(comps[0], comps[1], comps[2]), nil
}
