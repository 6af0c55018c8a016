// Package geometry provides the single-precision vector primitive shared by the
// ray tracer's intersection and shading code.
//
// Vector3 exposes two forms of each arithmetic operation. The *InPlace methods
// and Normalize take a pointer receiver and mutate the vector they are called
// on; Add, Sub, Scale and Normalized take a value receiver and return a new
// vector, leaving the receiver untouched. A Vector3 is not safe for concurrent
// mutation; give each goroutine its own copy.
package geometry

import (
	"fmt"
	"math"

	errorsmod "cosmossdk.io/errors"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vector3 represents a point or direction in 3D space
type Vector3 struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
}

// Unit vectors along each axis
var (
	UnitX = Vector3{X: 1}
	UnitY = Vector3{Y: 1}
	UnitZ = Vector3{Z: 1}
)

// NewVector3 creates a vector from its components. No validation is done.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Copy returns an independent vector with the same components
func (v Vector3) Copy() Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// ScaleInPlace multiplies every component by s
func (v *Vector3) ScaleInPlace(s float32) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// Normalize scales v to unit length.
//
// A vector with zero magnitude cannot be normalized: Normalize returns an error
// wrapping ErrDegenerateVector and v is left unchanged. Only the all-zero
// vector has zero magnitude. Non-finite components are not rejected and
// propagate as NaN or Inf.
//
// The magnitude and the scale factor stay in float64 so vectors near either
// end of the float32 range normalize without overflow or underflow.
func (v *Vector3) Normalize() error {
	mag := v.magnitude64()
	if mag == 0 {
		return errorsmod.Wrapf(ErrDegenerateVector, "cannot normalize %s", v)
	}
	inv := 1 / mag
	v.X = float32(float64(v.X) * inv)
	v.Y = float32(float64(v.Y) * inv)
	v.Z = float32(float64(v.Z) * inv)
	return nil
}

// SubtractInPlace subtracts o from v component-wise
func (v *Vector3) SubtractInPlace(o Vector3) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
}

// AddInPlace adds o to v component-wise
func (v *Vector3) AddInPlace(o Vector3) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

// Magnitude returns the Euclidean length of the vector
func (v Vector3) Magnitude() float32 {
	return float32(v.magnitude64())
}

// magnitude64 squares in float64; float32 squares overflow above ~1.8e19 and
// underflow below ~1e-23.
func (v Vector3) magnitude64() float64 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return math.Sqrt(x*x + y*y + z*z)
}

// Add returns the sum of two vectors
func (v Vector3) Add(o Vector3) Vector3 {
	v.AddInPlace(o)
	return v
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(o Vector3) Vector3 {
	v.SubtractInPlace(o)
	return v
}

// Scale returns the vector scaled by a scalar
func (v Vector3) Scale(s float32) Vector3 {
	v.ScaleInPlace(s)
	return v
}

// Normalized returns a unit vector in the same direction. It fails the same way
// Normalize does.
func (v Vector3) Normalized() (Vector3, error) {
	if err := v.Normalize(); err != nil {
		return Vector3{}, err
	}
	return v, nil
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(o Vector3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of two vectors
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Distance returns the distance between two points
func (v Vector3) Distance(o Vector3) float32 {
	return v.Sub(o).Magnitude()
}

// IsZero checks if the vector is zero
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// ApproxEqual reports whether every component of v is within tol of o.
func (v Vector3) ApproxEqual(o Vector3, tol float64) bool {
	return scalar.EqualWithinAbs(float64(v.X), float64(o.X), tol) &&
		scalar.EqualWithinAbs(float64(v.Y), float64(o.Y), tol) &&
		scalar.EqualWithinAbs(float64(v.Z), float64(o.Z), tol)
}

// ToR3 widens v to a gonum double-precision vector
func (v Vector3) ToR3() r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// FromR3 narrows a gonum vector to single precision
func FromR3(p r3.Vec) Vector3 {
	return Vector3{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
