package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/oxygene76/raytracer/pkg/geometry"
	"github.com/oxygene76/raytracer/pkg/utils"
)

// result is what every arithmetic command prints. Exactly one of Vector,
// Scalar or Equal is set.
type result struct {
	Op     string            `json:"op" yaml:"op"`
	Vector *geometry.Vector3 `json:"vector,omitempty" yaml:"vector,omitempty"`
	Scalar *float32          `json:"scalar,omitempty" yaml:"scalar,omitempty"`
	Equal  *bool             `json:"equal,omitempty" yaml:"equal,omitempty"`
}

func vectorResult(op string, v geometry.Vector3) result {
	return result{Op: op, Vector: &v}
}

func scalarResult(op string, f float32) result {
	return result{Op: op, Scalar: &f}
}

func boolResult(op string, b bool) result {
	return result{Op: op, Equal: &b}
}

func render(w io.Writer, cfg utils.OutputConfig, r result) error {
	switch cfg.Format {
	case utils.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case utils.FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case utils.FormatText:
		_, err := fmt.Fprintln(w, formatText(r, cfg.Precision))
		return err
	default:
		return fmt.Errorf("unsupported output format: %q", cfg.Format)
	}
}

func formatText(r result, precision int) string {
	f := func(x float32) string {
		return strconv.FormatFloat(float64(x), 'f', precision, 32)
	}

	switch {
	case r.Vector != nil:
		return fmt.Sprintf("(%s, %s, %s)", f(r.Vector.X), f(r.Vector.Y), f(r.Vector.Z))
	case r.Scalar != nil:
		return f(*r.Scalar)
	case r.Equal != nil:
		return strconv.FormatBool(*r.Equal)
	default:
		return ""
	}
}
