package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oxygene76/raytracer/pkg/geometry"
)

func parseVectors(args []string) ([]geometry.Vector3, error) {
	vs := make([]geometry.Vector3, len(args))
	for i, a := range args {
		v, err := geometry.ParseVector3(a)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}

// unaryCmd builds a command taking one vector argument.
func unaryCmd(c *cli, use, short string, fn func(geometry.Vector3) (result, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <vector>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseVectors(args)
			if err != nil {
				return err
			}
			if c.verbose {
				log.Printf("%s %s", use, vs[0])
			}
			r, err := fn(vs[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), c.cfg.Output, r)
		},
	}
}

// binaryCmd builds a command taking two vector arguments.
func binaryCmd(c *cli, use, short string, fn func(v, u geometry.Vector3) result) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <vector> <vector>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseVectors(args)
			if err != nil {
				return err
			}
			if c.verbose {
				log.Printf("%s %s %s", use, vs[0], vs[1])
			}
			return render(cmd.OutOrStdout(), c.cfg.Output, fn(vs[0], vs[1]))
		},
	}
}

func magnitudeCmd(c *cli) *cobra.Command {
	return unaryCmd(c, "magnitude", "Print the Euclidean length of a vector",
		func(v geometry.Vector3) (result, error) {
			return scalarResult("magnitude", v.Magnitude()), nil
		})
}

func normalizeCmd(c *cli) *cobra.Command {
	return unaryCmd(c, "normalize", "Scale a vector to unit length",
		func(v geometry.Vector3) (result, error) {
			if err := v.Normalize(); err != nil {
				return result{}, err
			}
			return vectorResult("normalize", v), nil
		})
}

func addCmd(c *cli) *cobra.Command {
	return binaryCmd(c, "add", "Add two vectors",
		func(v, u geometry.Vector3) result {
			v.AddInPlace(u)
			return vectorResult("add", v)
		})
}

func subCmd(c *cli) *cobra.Command {
	return binaryCmd(c, "sub", "Subtract the second vector from the first",
		func(v, u geometry.Vector3) result {
			v.SubtractInPlace(u)
			return vectorResult("sub", v)
		})
}

func dotCmd(c *cli) *cobra.Command {
	return binaryCmd(c, "dot", "Dot product of two vectors",
		func(v, u geometry.Vector3) result {
			return scalarResult("dot", v.Dot(u))
		})
}

func crossCmd(c *cli) *cobra.Command {
	return binaryCmd(c, "cross", "Cross product of two vectors",
		func(v, u geometry.Vector3) result {
			return vectorResult("cross", v.Cross(u))
		})
}

func distanceCmd(c *cli) *cobra.Command {
	return binaryCmd(c, "distance", "Distance between two points",
		func(v, u geometry.Vector3) result {
			return scalarResult("distance", v.Distance(u))
		})
}

func equalCmd(c *cli) *cobra.Command {
	return binaryCmd(c, "equal", "Compare two vectors within the configured tolerance",
		func(v, u geometry.Vector3) result {
			return boolResult("equal", v.ApproxEqual(u, c.cfg.Geometry.Tolerance))
		})
}

func scaleCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "scale <vector> <factor>",
		Short: "Multiply a vector by a scalar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := geometry.ParseVector3(args[0])
			if err != nil {
				return err
			}
			s, err := strconv.ParseFloat(args[1], 32)
			if err != nil {
				return fmt.Errorf("invalid scale factor %q: %w", args[1], err)
			}
			if c.verbose {
				log.Printf("scale %s %g", v, s)
			}
			v.ScaleInPlace(float32(s))
			return render(cmd.OutOrStdout(), c.cfg.Output, vectorResult("scale", v))
		},
	}
}
