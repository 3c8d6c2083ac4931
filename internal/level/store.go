package level

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Store persists the current brightness level as a single decimal integer
// in a plain text file. Concurrent invocations are not coordinated;
// the last writer wins.
type Store struct {
	path string
}

// StoreOption is a functional option for configuring a Store.
type StoreOption func(*Store)

// WithPath sets a custom level file path, primarily for testing.
func WithPath(path string) StoreOption {
	return func(s *Store) {
		s.path = path
	}
}

// NewStore creates a level store. Without options the level lives in the
// per-user data directory ($XDG_DATA_HOME/bright/level, falling back to
// ~/.local/share/bright/level).
func NewStore(opts ...StoreOption) (*Store, error) {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}

	if s.path == "" {
		path, err := defaultPath()
		if err != nil {
			return nil, err
		}
		s.path = path
	}
	return s, nil
}

func defaultPath() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "bright", "level"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "bright", "level"), nil
}

// Read returns the persisted level. A missing file is not an error: the
// default level is written out and returned. Malformed content propagates
// as a parse failure.
func (s *Store) Read() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		if err := s.Write(DefaultLevel); err != nil {
			return 0, err
		}
		return DefaultLevel, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read level file: %w", err)
	}

	value, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to parse level file %s: %w", s.path, err)
	}
	return Clamp(value), nil
}

// Write overwrites the persisted level with the decimal representation of n.
func (s *Store) Write(n int) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(n)), 0o644); err != nil {
		return fmt.Errorf("failed to write level file: %w", err)
	}
	return nil
}
