// SPDX-License-Identifier: GPL-3.0-only

package gamma

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog/log"

	"github.com/adamryczkowski/bright/internal/curve"
)

const (
	// RelayBusName is the well-known D-Bus name of the wl-gammarelay service.
	RelayBusName = "rs.wl-gammarelay"

	// RelayObjectPath is the D-Bus object path of the relay.
	RelayObjectPath = "/"

	// RelayInterface is the D-Bus interface exposing Brightness and Gamma.
	RelayInterface = "rs.wl.gammarelay"

	// relayCommand is the executable started when the relay is not running.
	relayCommand = "wl-gammarelay-rs"

	// relayStartupDelay gives a freshly started relay time to claim its
	// bus name and attach to the compositor before the first property write.
	relayStartupDelay = 500 * time.Millisecond

	// livenessTimeout bounds the service liveness probe.
	livenessTimeout = 2 * time.Second
)

// PropertyBus is the subset of a D-Bus session connection the relay backend
// needs. This interface allows for mocking in tests.
type PropertyBus interface {
	// NameHasOwner reports whether a well-known bus name is currently owned.
	NameHasOwner(ctx context.Context, name string) (bool, error)

	// SetProperty sets a property on the relay object. prop is the bare
	// property name, e.g. "Brightness".
	SetProperty(prop string, value float64) error

	// Close releases the connection.
	Close() error
}

// sessionBus wraps a godbus session connection as a PropertyBus.
type sessionBus struct {
	conn *dbus.Conn
}

func dialSessionBus() (PropertyBus, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	return &sessionBus{conn: conn}, nil
}

func (b *sessionBus) NameHasOwner(ctx context.Context, name string) (bool, error) {
	var has bool
	err := b.conn.BusObject().
		CallWithContext(ctx, "org.freedesktop.DBus.NameHasOwner", 0, name).
		Store(&has)
	if err != nil {
		return false, fmt.Errorf("failed to probe bus name %s: %w", name, err)
	}
	return has, nil
}

func (b *sessionBus) SetProperty(prop string, value float64) error {
	obj := b.conn.Object(RelayBusName, RelayObjectPath)
	if err := obj.SetProperty(RelayInterface+"."+prop, dbus.MakeVariant(value)); err != nil {
		return fmt.Errorf("failed to set %s: %w", prop, err)
	}
	return nil
}

func (b *sessionBus) Close() error {
	return b.conn.Close()
}

// Relay applies gamma correction through the wl-gammarelay compositor
// service. The relay affects all outputs uniformly; there is no per-monitor
// targeting under Wayland.
type Relay struct {
	dial  func() (PropertyBus, error)
	start func() error
	sleep func(time.Duration)
}

// RelayOption is a functional option for configuring a Relay backend.
type RelayOption func(*Relay)

// WithBus sets a custom bus dialer for testing.
func WithBus(dial func() (PropertyBus, error)) RelayOption {
	return func(r *Relay) {
		r.dial = dial
	}
}

// WithStarter sets a custom relay process starter for testing.
func WithStarter(start func() error) RelayOption {
	return func(r *Relay) {
		r.start = start
	}
}

// WithSleep sets a custom sleep function for testing.
func WithSleep(sleep func(time.Duration)) RelayOption {
	return func(r *Relay) {
		r.sleep = sleep
	}
}

// NewRelay creates a Wayland gamma backend.
func NewRelay(opts ...RelayOption) *Relay {
	r := &Relay{
		dial:  dialSessionBus,
		start: startRelayProcess,
		sleep: time.Sleep,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Verify Relay implements Backend.
var _ Backend = (*Relay)(nil)

// startRelayProcess launches the relay detached from this process.
func startRelayProcess() error {
	cmd := exec.Command(relayCommand)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", relayCommand, err)
	}
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("failed to detach %s: %w", relayCommand, err)
	}
	return nil
}

// ApplyDark dims via the relay's brightness property; gamma stays at 1.0.
func (r *Relay) ApplyDark(step int) error {
	if step < 0 || step > maxStep {
		return ErrInvalidStep
	}
	brightness := curve.Linear(0.1, 1.0, maxStep+1)[step]
	return r.set(1.0, brightness)
}

// ApplyBright lowers the relay's gamma below 1.0. The relay's gamma
// semantics are inverse to xrandr: lower gamma renders brighter.
func (r *Relay) ApplyBright(step int) error {
	if step < 0 || step > maxStep {
		return ErrInvalidStep
	}
	gamma := curve.Linear(1.0, 0.5, maxStep+1)[step]
	return r.set(gamma, 1.0)
}

// Remove resets gamma and brightness to 1.0.
func (r *Relay) Remove() error {
	return r.set(1.0, 1.0)
}

func (r *Relay) set(gamma, brightness float64) error {
	bus, err := r.ensure()
	if err != nil {
		return err
	}
	defer func() {
		if err := bus.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close session bus")
		}
	}()

	log.Debug().
		Float64("gamma", gamma).
		Float64("brightness", brightness).
		Msg("Applying gamma correction via relay")

	if err := bus.SetProperty("Brightness", brightness); err != nil {
		return err
	}
	return bus.SetProperty("Gamma", gamma)
}

// ensure dials the session bus and makes sure the relay service is running,
// starting it when absent.
func (r *Relay) ensure() (PropertyBus, error) {
	bus, err := r.dial()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), livenessTimeout)
	defer cancel()

	running, err := bus.NameHasOwner(ctx, RelayBusName)
	if err != nil {
		if closeErr := bus.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("Failed to close session bus")
		}
		return nil, err
	}

	if !running {
		log.Info().Str("command", relayCommand).Msg("Starting gamma relay")
		if err := r.start(); err != nil {
			if closeErr := bus.Close(); closeErr != nil {
				log.Warn().Err(closeErr).Msg("Failed to close session bus")
			}
			return nil, err
		}
		r.sleep(relayStartupDelay)
	}
	return bus, nil
}
