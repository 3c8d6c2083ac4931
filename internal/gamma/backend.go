// Package gamma applies and removes software gamma/brightness correction at
// the display-server level, extending perceived brightness beyond the
// hardware backlight range.
package gamma

import (
	"errors"
	"os"
)

//go:generate mockgen -source=backend.go -destination=mocks/backend_mock.go -package=mocks

// ErrInvalidStep is returned when a gamma step outside [0, 9] is requested.
var ErrInvalidStep = errors.New("step must be between 0 and 9")

// maxStep is the highest gamma step within a band.
const maxStep = 9

// Backend applies software gamma correction. Two implementations exist:
// X11 (per-monitor, via xrandr) and Wayland (all outputs, via the
// wl-gammarelay D-Bus service). Failures are cosmetic; callers log them
// and continue with the hardware write.
type Backend interface {
	// ApplyDark dims below minimum backlight using a brightness multiplier.
	// The step ranges from 0 (darkest) to 9 (no dimming).
	ApplyDark(step int) error

	// ApplyBright boosts above maximum backlight using a gamma curve.
	// The step ranges from 0 (no boost) to 9 (brightest).
	ApplyBright(step int) error

	// Remove resets gamma and brightness to 1.0.
	Remove() error
}

// IsWaylandSession reports whether the current session runs under a Wayland
// compositor, detected by the presence of the WAYLAND_DISPLAY variable.
func IsWaylandSession() bool {
	_, ok := os.LookupEnv("WAYLAND_DISPLAY")
	return ok
}
