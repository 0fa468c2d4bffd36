package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/gops/agent"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/willbeason/complex-plane/pkg/palette"
	"github.com/willbeason/complex-plane/pkg/plane"
)

const (
	flagConfig     = "config"
	flagWidth      = "width"
	flagHeight     = "height"
	flagMaxIter    = "max-iter"
	flagBaseWidth  = "base-width"
	flagBaseHeight = "base-height"
	flagBaseZoom   = "base-zoom"
	flagWorkers    = "workers"
	flagPalette    = "palette"
	flagVerbose    = "verbose"
	flagGops       = "gops"
)

// settings is everything the subcommands read from flags, environment and config file.
type settings struct {
	Width, Height int
	Plane         plane.Config
	Verbose       bool
	Gops          bool
}

func mainCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "plane",
		Short: "Explore the Mandelbrot set",
		Args:  cobra.ExactArgs(0),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(v, cmd)
		},
	}

	defaults := plane.DefaultConfig()

	flags := cmd.PersistentFlags()
	flags.String(flagConfig, "", "optional config file (yaml, toml or json)")
	flags.Int(flagWidth, 960, "raster width in pixels")
	flags.Int(flagHeight, 540, "raster height in pixels")
	flags.Int(flagMaxIter, defaults.MaxIterations, "escape-time iteration cap")
	flags.Float64(flagBaseWidth, defaults.BaseWidth, "plane width at zoom zero")
	flags.Float64(flagBaseHeight, defaults.BaseHeight, "plane height at zoom zero, before aspect scaling")
	flags.Float64(flagBaseZoom, defaults.BaseZoom, "extent factor per zoom step, in (0, 1)")
	flags.Int(flagWorkers, defaults.Workers, "row bands rendered in parallel")
	flags.String(flagPalette, defaults.Palette, "color palette, one of "+strings.Join(palette.Names(), ", "))
	flags.BoolP(flagVerbose, "v", false, "log every render pass")
	flags.Bool(flagGops, false, "start a gops diagnostics agent")

	cmd.AddCommand(viewCmd(v), benchCmd(v))

	return cmd
}

// loadConfig layers flags over PLANE_* environment variables over the config file.
func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	v.SetEnvPrefix("PLANE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %q: %w", path, err)
		}
	}

	return nil
}

func readSettings(v *viper.Viper) settings {
	return settings{
		Width:  v.GetInt(flagWidth),
		Height: v.GetInt(flagHeight),
		Plane: plane.Config{
			MaxIterations: v.GetInt(flagMaxIter),
			BaseWidth:     v.GetFloat64(flagBaseWidth),
			BaseHeight:    v.GetFloat64(flagBaseHeight),
			BaseZoom:      v.GetFloat64(flagBaseZoom),
			Workers:       v.GetInt(flagWorkers),
			Palette:       v.GetString(flagPalette),
		},
		Verbose: v.GetBool(flagVerbose),
		Gops:    v.GetBool(flagGops),
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// setup builds the logger and plane shared by all subcommands. The returned
// func releases what setup started.
func setup(s settings) (*plane.Plane, *zap.Logger, func(), error) {
	log, err := newLogger(s.Verbose)
	if err != nil {
		return nil, nil, nil, err
	}

	p, err := plane.New(s.Width, s.Height, s.Plane, plane.WithLogger(log))
	if err != nil {
		return nil, nil, nil, err
	}

	if s.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			return nil, nil, nil, fmt.Errorf("starting gops agent: %w", err)
		}
	}

	log.Info("plane ready",
		zap.Int("width", s.Width),
		zap.Int("height", s.Height),
		zap.Int("maxIterations", s.Plane.MaxIterations),
		zap.Int("workers", s.Plane.Workers),
		zap.String("palette", s.Plane.Palette))

	cleanup := func() {
		if s.Gops {
			agent.Close()
		}
		_ = log.Sync()
	}

	return p, log, cleanup, nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
