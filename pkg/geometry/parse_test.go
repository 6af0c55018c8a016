package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVector3(t *testing.T) {
	tests := []struct {
		in   string
		want Vector3
	}{
		{"1,2,3", NewVector3(1, 2, 3)},
		{" 1.5 , -2 , 0 ", NewVector3(1.5, -2, 0)},
		{"(3, 4, 0)", NewVector3(3, 4, 0)},
		{"1e2,0,-1e-2", NewVector3(100, 0, -0.01)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVector3(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVector3Invalid(t *testing.T) {
	for _, in := range []string{"", "1,2", "1,2,3,4", "a,b,c", "1,,3", "(1,2,3"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseVector3(in)
			assert.ErrorIs(t, err, ErrInvalidVector)
		})
	}
}

func TestParseVector3RoundTripsString(t *testing.T) {
	v := NewVector3(0.1, -7.25, 1e-7)
	got, err := ParseVector3(v.String())
	require.NoError(t, err)
	assert.Equal(t, v, got)
}
