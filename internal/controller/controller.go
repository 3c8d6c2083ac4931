// SPDX-License-Identifier: GPL-3.0-only

// Package controller ties the persisted level, the gamma backend and the
// hardware backlight together: it decides which mechanism drives a
// requested level and in which order the side effects happen.
package controller

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/adamryczkowski/bright/internal/backlight"
	"github.com/adamryczkowski/bright/internal/gamma"
	"github.com/adamryczkowski/bright/internal/level"
)

// Backlight drives the hardware brightness step.
// This interface allows for mocking in tests.
type Backlight interface {
	SetStep(step int) error
}

// Controller orchestrates brightness changes across the three bands.
type Controller struct {
	store     *level.Store
	backend   gamma.Backend
	backlight Backlight
}

// New creates a controller over the given state store, gamma backend and
// backlight driver.
func New(store *level.Store, backend gamma.Backend, bl Backlight) *Controller {
	return &Controller{
		store:     store,
		backend:   backend,
		backlight: bl,
	}
}

// Apply drives the displays to the given level and persists it.
//
// Gamma correction is cosmetic: its failures are logged but never block the
// hardware write that follows. Backlight failures abort before the level is
// persisted, so a crash mid-operation leaves stale but valid state.
func (c *Controller) Apply(newLevel int) error {
	newLevel = level.Clamp(newLevel)
	band, offset := level.Classify(newLevel)

	log.Debug().
		Int("level", newLevel).
		Stringer("band", band).
		Int("offset", offset).
		Msg("Applying brightness level")

	switch band {
	case level.BandHardware:
		if err := c.backend.Remove(); err != nil {
			log.Error().Err(err).Msg("Failed to remove gamma correction")
		}
		if err := c.backlight.SetStep(offset); err != nil {
			return fmt.Errorf("failed to set backlight: %w", err)
		}
	case level.BandDarkGamma:
		if err := c.backend.ApplyDark(offset); err != nil {
			log.Error().Err(err).Msg("Failed to apply dark gamma correction")
		}
		if err := c.backlight.SetStep(0); err != nil {
			return fmt.Errorf("failed to set backlight: %w", err)
		}
	case level.BandBrightGamma:
		if err := c.backend.ApplyBright(offset); err != nil {
			log.Error().Err(err).Msg("Failed to apply bright gamma correction")
		}
		if err := c.backlight.SetStep(backlight.MaxStep); err != nil {
			return fmt.Errorf("failed to set backlight: %w", err)
		}
	}

	if err := c.store.Write(newLevel); err != nil {
		return fmt.Errorf("failed to persist level: %w", err)
	}

	log.Info().Int("level", newLevel).Stringer("band", band).Msg("Brightness level applied")
	return nil
}

// Step moves the persisted level one step up or down, clamped to [0, 29].
func (c *Controller) Step(increase bool) error {
	current, err := c.store.Read()
	if err != nil {
		return err
	}

	next := current - 1
	if increase {
		next = current + 1
	}
	return c.Apply(level.Clamp(next))
}

// SetMax drives the displays to the top of the hardware band: full
// backlight, no gamma correction.
func (c *Controller) SetMax() error {
	return c.Apply(level.BandSizes[0] + level.BandSizes[1] - 1)
}

// SetMin drives the displays to the top of the dark-gamma band: minimum
// backlight with an almost-unity brightness multiplier.
func (c *Controller) SetMin() error {
	return c.Apply(level.BandSizes[0] - 1)
}
