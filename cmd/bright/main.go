// Package main provides the entry point for the bright brightness stepper.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/adamryczkowski/bright/internal/backlight"
	"github.com/adamryczkowski/bright/internal/controller"
	"github.com/adamryczkowski/bright/internal/gamma"
	"github.com/adamryczkowski/bright/internal/level"
)

// operation is one of the four supported brightness commands.
type operation int

const (
	opIncrease operation = iota
	opDecrease
	opMax
	opMin
)

var (
	verbose bool
	rootCmd = &cobra.Command{
		Use:   "bright <operation>",
		Short: "Step display brightness across gamma and hardware backlight ranges",
		Long: `bright adjusts perceived display brightness on a single 30-step scale.

The middle of the scale drives the hardware backlight; the dark and bright
ends extend it with software gamma correction applied through xrandr (X11)
or the wl-gammarelay service (Wayland).

Operations: + (one step up), - (one step down), max, min.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// parseOperation validates the positional argument. Invalid operations are
// user errors reported before any driver is touched.
func parseOperation(arg string) (operation, error) {
	switch arg {
	case "+":
		return opIncrease, nil
	case "-":
		return opDecrease, nil
	case "max":
		return opMax, nil
	case "min":
		return opMin, nil
	default:
		return 0, fmt.Errorf("invalid operation %q (expected +, -, max or min)", arg)
	}
}

func run(arg string) error {
	op, err := parseOperation(arg)
	if err != nil {
		return err
	}

	// Configure logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	store, err := level.NewStore()
	if err != nil {
		return err
	}

	backend, err := gamma.Select()
	if err != nil {
		return err
	}

	ctl := controller.New(store, backend, backlight.NewDriver())

	switch op {
	case opIncrease:
		return ctl.Step(true)
	case opDecrease:
		return ctl.Step(false)
	case opMax:
		return ctl.SetMax()
	default:
		return ctl.SetMin()
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
