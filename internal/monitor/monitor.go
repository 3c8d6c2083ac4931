// SPDX-License-Identifier: GPL-3.0-only

// Package monitor resolves the name of the primary X11 output and caches it
// on disk, since querying the display server is slow relative to a
// brightness keypress.
package monitor

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// CacheTTL is how long a resolved monitor name stays valid.
const CacheTTL = 24 * time.Hour

// Runner executes an external command and returns its standard output.
// This interface allows for mocking in tests.
type Runner interface {
	Output(name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Output(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// cacheRecord is the single structured record persisted between invocations.
// Keeping name, session mode and timestamp in one file avoids the
// consistency hazard of separate cache and marker files.
type cacheRecord struct {
	Name       string    `json:"name"`
	Wayland    bool      `json:"wayland"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// Resolver discovers the primary display output.
type Resolver struct {
	runner    Runner
	cachePath string
	wayland   bool
	now       func() time.Time
}

// Option is a functional option for configuring a Resolver.
type Option func(*Resolver)

// WithRunner sets a custom command runner for testing.
func WithRunner(r Runner) Option {
	return func(res *Resolver) {
		res.runner = r
	}
}

// WithCachePath sets a custom cache file path for testing.
func WithCachePath(path string) Option {
	return func(res *Resolver) {
		res.cachePath = path
	}
}

// WithClock sets a custom time source for testing.
func WithClock(now func() time.Time) Option {
	return func(res *Resolver) {
		res.now = now
	}
}

// NewResolver creates a resolver. The wayland flag records which display
// server the current session runs under; a cached name produced under the
// other mode is discarded.
func NewResolver(wayland bool, opts ...Option) (*Resolver, error) {
	res := &Resolver{
		runner:  execRunner{},
		wayland: wayland,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(res)
	}

	if res.cachePath == "" {
		path, err := defaultCachePath()
		if err != nil {
			return nil, err
		}
		res.cachePath = path
	}
	return res, nil
}

func defaultCachePath() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "bright", "monitor.json"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".cache", "bright", "monitor.json"), nil
}

// Resolve queries the display server for its output configuration and
// returns the identifier of the output flagged primary. An empty string is
// returned when no output is flagged; that is not an error.
func (r *Resolver) Resolve() (string, error) {
	output, err := r.runner.Output("xrandr")
	if err != nil {
		return "", fmt.Errorf("failed to query outputs: %w", err)
	}
	return parsePrimary(string(output)), nil
}

// parsePrimary extracts the output name from the xrandr line flagged primary,
// e.g. "eDP-1 connected primary 1920x1080+0+0 ..." yields "eDP-1".
func parsePrimary(output string) string {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "primary") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 0 {
			return fields[0]
		}
	}
	return ""
}

// ResolveCached returns the primary output name, re-querying the display
// server only when the cached record is older than CacheTTL or was produced
// under a different display-server mode.
func (r *Resolver) ResolveCached() (string, error) {
	if record, ok := r.readCache(); ok {
		log.Debug().Str("name", record.Name).Msg("Using cached primary monitor")
		return record.Name, nil
	}

	name, err := r.Resolve()
	if err != nil {
		return "", err
	}

	if err := r.writeCache(name); err != nil {
		log.Warn().Err(err).Msg("Failed to write monitor cache")
	}
	return name, nil
}

func (r *Resolver) readCache() (cacheRecord, bool) {
	data, err := os.ReadFile(r.cachePath)
	if err != nil {
		return cacheRecord{}, false
	}

	var record cacheRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Warn().Err(err).Msg("Discarding unreadable monitor cache")
		return cacheRecord{}, false
	}

	if record.Wayland != r.wayland {
		return cacheRecord{}, false
	}
	if r.now().Sub(record.ResolvedAt) >= CacheTTL {
		return cacheRecord{}, false
	}
	return record, true
}

func (r *Resolver) writeCache(name string) error {
	record := cacheRecord{
		Name:       name,
		Wayland:    r.wayland,
		ResolvedAt: r.now(),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode monitor cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.cachePath), 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(r.cachePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write monitor cache: %w", err)
	}
	return nil
}
