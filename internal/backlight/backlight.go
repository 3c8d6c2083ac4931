// SPDX-License-Identifier: GPL-3.0-only

// Package backlight controls hardware panel brightness through sysfs
// backlight device files.
package backlight

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/adamryczkowski/bright/internal/curve"
)

// ErrNoDevice is returned when no usable backlight device is found.
// Hardware-range operations cannot proceed without one.
var ErrNoDevice = errors.New("no backlight device found")

// ErrInvalidStep is returned when a hardware step outside [0, MaxStep] is requested.
var ErrInvalidStep = errors.New("step must be between 0 and 9")

const (
	// MaxStep is the highest hardware brightness step.
	MaxStep = 9

	// StepAlpha shapes the exponential step table. Steps are denser near
	// minimum brightness to match perceived brightness non-linearity.
	StepAlpha = 1.4

	// DefaultRoot is the sysfs directory exposing backlight devices.
	DefaultRoot = "/sys/class/backlight"
)

// candidates is the fixed priority-ordered list of known backlight devices.
var candidates = []string{
	"amdgpu_bl1",
	"amdgpu_bl0",
	"nvidia_wmi_ec_backlight",
	"intel_backlight",
}

// Device is a single sysfs backlight device exposing a current and a
// maximum brightness file.
type Device struct {
	name string
	path string
}

// Name returns the sysfs device name.
func (d Device) Name() string {
	return d.name
}

// Max reads the maximum raw brightness supported by the device.
func (d Device) Max() (int, error) {
	return readInt(filepath.Join(d.path, "max_brightness"))
}

// Current reads the current raw brightness of the device.
func (d Device) Current() (int, error) {
	return readInt(filepath.Join(d.path, "brightness"))
}

func (d Device) writeRaw(value int) error {
	path := filepath.Join(d.path, "brightness")
	if err := os.WriteFile(path, []byte(strconv.Itoa(value)), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func readInt(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}
	value, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return value, nil
}

// Driver discovers backlight devices and drives their raw brightness.
// Devices are rediscovered on every operation; nothing is cached.
type Driver struct {
	root string
}

// Option is a functional option for configuring a Driver.
type Option func(*Driver)

// WithRoot overrides the sysfs root directory, primarily for testing.
func WithRoot(root string) Option {
	return func(d *Driver) {
		d.root = root
	}
}

// NewDriver creates a backlight driver.
func NewDriver(opts ...Option) *Driver {
	d := &Driver{root: DefaultRoot}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Discover returns every candidate device that exposes both a current and a
// maximum brightness file, in priority order. Returns ErrNoDevice when none
// qualify.
func (d *Driver) Discover() ([]Device, error) {
	var devices []Device
	for _, name := range candidates {
		path := filepath.Join(d.root, name)
		if !fileExists(filepath.Join(path, "brightness")) {
			continue
		}
		if !fileExists(filepath.Join(path, "max_brightness")) {
			continue
		}
		devices = append(devices, Device{name: name, path: path})
	}

	if len(devices) == 0 {
		return nil, ErrNoDevice
	}
	return devices, nil
}

// SetStep sets every discovered device to the given hardware step in
// [0, MaxStep]. The raw value is taken from an exponential table over
// [0, max] so perceived brightness changes evenly between steps.
// Failures on individual devices are logged and skipped so one broken
// panel cannot black out the others, but when no device at all was
// written the step did not happen and an error is returned.
func (d *Driver) SetStep(step int) error {
	if step < 0 || step > MaxStep {
		return ErrInvalidStep
	}

	devices, err := d.Discover()
	if err != nil {
		return err
	}

	written := 0
	var lastErr error
	for _, dev := range devices {
		max, err := dev.Max()
		if err != nil {
			log.Error().Err(err).Str("device", dev.Name()).Msg("Failed to read maximum brightness")
			lastErr = err
			continue
		}

		table, err := curve.Exp(0, float64(max), MaxStep, StepAlpha)
		if err != nil {
			return fmt.Errorf("failed to build step table: %w", err)
		}

		raw := int(math.Round(table[step]))
		if err := dev.writeRaw(raw); err != nil {
			log.Error().Err(err).Str("device", dev.Name()).Msg("Failed to set backlight")
			lastErr = err
			continue
		}

		written++
		log.Debug().Str("device", dev.Name()).Int("step", step).Int("raw", raw).Msg("Set backlight")
	}

	if written == 0 {
		return fmt.Errorf("failed to set any backlight device: %w", lastErr)
	}
	return nil
}

// CurrentStep maps the current raw brightness of the first discovered device
// back to the nearest hardware step.
func (d *Driver) CurrentStep() (int, error) {
	devices, err := d.Discover()
	if err != nil {
		return 0, err
	}

	max, err := devices[0].Max()
	if err != nil {
		return 0, err
	}
	current, err := devices[0].Current()
	if err != nil {
		return 0, err
	}

	return curve.NearestIndex(0, float64(max), MaxStep, StepAlpha, current)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
