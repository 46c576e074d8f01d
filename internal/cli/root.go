// Package cli implements the command-line interface for nxncube.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxncube"
	"github.com/SeamusWaldron/nxncube/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	order      int
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "nxncube",
	Short: "NxN cube simulator",
	Long: `nxncube - A logical model of an N x N x N twisty cube.

Turn any layer of a cube of any order, inspect the stickers of a single
sub-cube, or play with the cube interactively in the terminal.

Turns are written side:layer:degree, e.g. front:1:90. Layers count from
the named side starting at 1 and positive degrees turn counter-clockwise
as seen looking at that side.`,
	Version:      version,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.nxncube/config.yaml)")
	rootCmd.PersistentFlags().IntVarP(&order, "order", "n", 0, "Cube order, overrides the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if f := cmd.Flag("order"); f != nil && f.Changed {
		cfg.Order = order
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}

	logger := cfg.NewLogger()
	logger.SetOutput(cmd.ErrOrStderr())
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	logger.WithFields(logrus.Fields{"order": cfg.Order, "config": configPath}).Debug("configuration loaded")
	return cfg, logger, nil
}

// newCube builds a solved cube and applies the given turns.
func newCube(cfg *config.Config, logger logrus.FieldLogger, turns []nxncube.Turn) (*nxncube.Cube, error) {
	c, err := nxncube.New(cfg.Order, nxncube.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create cube: %w", err)
	}
	if err := c.Apply(turns...); err != nil {
		return nil, err
	}
	return c, nil
}

// plainOutput reports whether w should get uncolored output.
func plainOutput(cfg *config.Config, force bool, w io.Writer) bool {
	if force || cfg.NoColor {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return true
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}
