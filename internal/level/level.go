// SPDX-License-Identifier: GPL-3.0-only

// Package level models the 30-step brightness scale: band classification
// and the persisted current-level state.
package level

// BandSizes holds the number of levels in the dark-gamma, hardware and
// bright-gamma bands, in that order.
var BandSizes = [3]int{10, 10, 10}

const (
	// MaxLevel is the highest valid brightness level.
	MaxLevel = 29

	// DefaultLevel is the level assumed when no state has been persisted yet:
	// the top of the hardware band, i.e. full backlight without gamma correction.
	DefaultLevel = 19
)

// Band identifies which mechanism drives a given brightness level.
type Band int

const (
	// BandDarkGamma covers the lowest levels, dimmed via a software
	// brightness multiplier on top of minimum backlight.
	BandDarkGamma Band = iota

	// BandHardware covers the middle levels, driven purely by the
	// hardware backlight.
	BandHardware

	// BandBrightGamma covers the highest levels, boosted via software
	// gamma on top of maximum backlight.
	BandBrightGamma
)

// String returns a human-readable band name.
func (b Band) String() string {
	switch b {
	case BandDarkGamma:
		return "dark-gamma"
	case BandHardware:
		return "hardware"
	case BandBrightGamma:
		return "bright-gamma"
	default:
		return "unknown"
	}
}

// Classify maps an absolute level to its band and the offset within that band.
// The level must already be clamped; Classify is total and never fails.
func Classify(level int) (Band, int) {
	if level < BandSizes[0] {
		return BandDarkGamma, level
	}
	if level < BandSizes[0]+BandSizes[1] {
		return BandHardware, level - BandSizes[0]
	}
	return BandBrightGamma, level - BandSizes[0] - BandSizes[1]
}

// Clamp forces a level into [0, MaxLevel]. Levels never wrap.
func Clamp(level int) int {
	if level < 0 {
		return 0
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
