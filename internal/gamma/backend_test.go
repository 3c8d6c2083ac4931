package gamma_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamryczkowski/bright/internal/gamma"
)

// unsetWaylandDisplay removes WAYLAND_DISPLAY for the test, restoring it afterwards.
func unsetWaylandDisplay(t *testing.T) {
	t.Helper()
	t.Setenv("WAYLAND_DISPLAY", "")
	require.NoError(t, os.Unsetenv("WAYLAND_DISPLAY"))
}

func TestIsWaylandSession(t *testing.T) {
	t.Run("set marker selects Wayland", func(t *testing.T) {
		t.Setenv("WAYLAND_DISPLAY", "wayland-0")
		assert.True(t, gamma.IsWaylandSession())
	})

	t.Run("set-but-empty marker still selects Wayland", func(t *testing.T) {
		t.Setenv("WAYLAND_DISPLAY", "")
		assert.True(t, gamma.IsWaylandSession(), "presence of the marker decides, not its content")
	})

	t.Run("unset marker selects X11", func(t *testing.T) {
		unsetWaylandDisplay(t)
		assert.False(t, gamma.IsWaylandSession())
	})
}

func TestSelect(t *testing.T) {
	t.Run("Wayland session yields the relay backend", func(t *testing.T) {
		t.Setenv("WAYLAND_DISPLAY", "wayland-0")
		backend, err := gamma.Select()
		require.NoError(t, err)
		assert.IsType(t, &gamma.Relay{}, backend)
	})

	t.Run("X11 session yields the xrandr backend", func(t *testing.T) {
		unsetWaylandDisplay(t)
		backend, err := gamma.Select()
		require.NoError(t, err)
		assert.IsType(t, &gamma.X11{}, backend)
	})
}
