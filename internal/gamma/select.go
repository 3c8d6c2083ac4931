package gamma

import (
	"github.com/adamryczkowski/bright/internal/monitor"
)

// Select picks the backend matching the current session: the wl-gammarelay
// client under Wayland, xrandr scoped to the primary monitor otherwise.
// The choice is made once per invocation.
func Select() (Backend, error) {
	if IsWaylandSession() {
		return NewRelay(), nil
	}

	resolver, err := monitor.NewResolver(false)
	if err != nil {
		return nil, err
	}
	return NewX11(resolver), nil
}
