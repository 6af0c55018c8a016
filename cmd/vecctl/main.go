package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxygene76/raytracer/pkg/utils"
)

type cli struct {
	cfgFile   string
	verbose   bool
	format    string
	precision int

	cfg *utils.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "vecctl",
		Short: "Vector arithmetic for the ray tracer's geometry primitive",
		Long: `vecctl evaluates Vector3 operations from the command line.
Vectors are written as x,y,z (for example 3,4,0 or "(3, 4, 0)").
Wrap a vector that starts with a minus sign in parentheses, or pass it after --.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.loadConfig,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.vecctl/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&c.format, "format", "o", "", "output format: text, json or yaml")
	rootCmd.PersistentFlags().IntVar(&c.precision, "precision", 0, "digits after the decimal point in text output")

	rootCmd.AddCommand(
		initCmd(),
		magnitudeCmd(c),
		normalizeCmd(c),
		addCmd(c),
		subCmd(c),
		scaleCmd(c),
		dotCmd(c),
		crossCmd(c),
		distanceCmd(c),
		equalCmd(c),
	)

	return rootCmd
}

func (c *cli) loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := utils.LoadConfig(c.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = c.format
	}
	if flags.Changed("precision") {
		cfg.Output.Precision = c.precision
	}

	if cfg.Client.LogLevel == utils.LogLevelDebug {
		c.verbose = true
	}

	if c.verbose {
		log.Printf("Output format %s, precision %d, tolerance %g",
			cfg.Output.Format, cfg.Output.Precision, cfg.Geometry.Tolerance)
	}

	c.cfg = cfg
	return nil
}

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		// init must work even when the existing config is broken
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("path")
			if path == "" {
				var err error
				if path, err = utils.GetConfigPath(); err != nil {
					return err
				}
			}

			if err := utils.SaveConfig(path, utils.DefaultConfig()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to: %s\n", path)
			return nil
		},
	}

	cmd.Flags().String("path", "", "where to write the config file")

	return cmd
}
