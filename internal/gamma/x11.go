// SPDX-License-Identifier: GPL-3.0-only

package gamma

import (
	"fmt"
	"os/exec"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/adamryczkowski/bright/internal/curve"
)

// Runner executes an external command. This interface allows for mocking in tests.
type Runner interface {
	Run(name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Run(name string, args ...string) error {
	output, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w (%s)", name, err, output)
	}
	return nil
}

// monitorResolver resolves the primary output name.
type monitorResolver interface {
	ResolveCached() (string, error)
}

// X11 applies gamma correction by invoking xrandr against the primary output.
type X11 struct {
	resolver monitorResolver
	runner   Runner
}

// X11Option is a functional option for configuring an X11 backend.
type X11Option func(*X11)

// WithRunner sets a custom command runner for testing.
func WithRunner(r Runner) X11Option {
	return func(b *X11) {
		b.runner = r
	}
}

// NewX11 creates an X11 gamma backend using the given monitor resolver.
func NewX11(resolver monitorResolver, opts ...X11Option) *X11 {
	b := &X11{
		resolver: resolver,
		runner:   execRunner{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Verify X11 implements Backend.
var _ Backend = (*X11)(nil)

// ApplyDark dims via the brightness multiplier only; gamma stays at 1.0.
func (b *X11) ApplyDark(step int) error {
	if step < 0 || step > maxStep {
		return ErrInvalidStep
	}
	brightness := curve.Linear(0.1, 1.0, maxStep+1)[step]
	return b.set(1.0, brightness)
}

// ApplyBright raises gamma above 1.0; brightness stays at 1.0.
func (b *X11) ApplyBright(step int) error {
	if step < 0 || step > maxStep {
		return ErrInvalidStep
	}
	gamma := curve.Linear(1.0, 2.0, maxStep+1)[step]
	return b.set(gamma, 1.0)
}

// Remove resets gamma and brightness to 1.0.
func (b *X11) Remove() error {
	return b.set(1.0, 1.0)
}

func (b *X11) set(gamma, brightness float64) error {
	name, err := b.resolver.ResolveCached()
	if err != nil {
		return fmt.Errorf("failed to resolve primary monitor: %w", err)
	}

	// An empty name is passed through; xrandr reports the error itself.
	log.Debug().
		Str("output", name).
		Float64("gamma", gamma).
		Float64("brightness", brightness).
		Msg("Applying gamma correction")

	return b.runner.Run("xrandr",
		"--output", name,
		"--gamma", formatFloat(gamma),
		"--brightness", formatFloat(brightness),
	)
}

// formatFloat renders a gamma or brightness value for the xrandr command
// line. Two decimals are exact for every curve step and keep float noise
// out of the argv.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
