// SPDX-License-Identifier: GPL-3.0-only

package gamma_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamryczkowski/bright/internal/gamma"
)

// fakeResolver returns a fixed primary monitor name.
type fakeResolver struct {
	name string
	err  error
}

func (f *fakeResolver) ResolveCached() (string, error) {
	return f.name, f.err
}

// fakeRunner records every command invocation.
type fakeRunner struct {
	commands [][]string
	err      error
}

func (f *fakeRunner) Run(name string, args ...string) error {
	f.commands = append(f.commands, append([]string{name}, args...))
	return f.err
}

func TestX11_ApplyDark(t *testing.T) {
	tests := []struct {
		name       string
		step       int
		brightness string
	}{
		{
			name:       "step 0 dims to 0.1",
			step:       0,
			brightness: "0.10",
		},
		{
			name:       "step 5 dims to 0.55",
			step:       5,
			brightness: "0.55",
		},
		{
			name:       "step 9 barely dims",
			step:       9,
			brightness: "0.91",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			backend := gamma.NewX11(&fakeResolver{name: "eDP-1"}, gamma.WithRunner(runner))

			require.NoError(t, backend.ApplyDark(tt.step))
			require.Len(t, runner.commands, 1)
			assert.Equal(t, []string{
				"xrandr", "--output", "eDP-1", "--gamma", "1.00", "--brightness", tt.brightness,
			}, runner.commands[0])
		})
	}
}

func TestX11_ApplyBright(t *testing.T) {
	tests := []struct {
		name  string
		step  int
		gamma string
	}{
		{
			name:  "step 0 leaves gamma at 1",
			step:  0,
			gamma: "1.00",
		},
		{
			name:  "step 5 raises gamma to 1.5",
			step:  5,
			gamma: "1.50",
		},
		{
			name:  "step 9 raises gamma to 1.9",
			step:  9,
			gamma: "1.90",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			backend := gamma.NewX11(&fakeResolver{name: "eDP-1"}, gamma.WithRunner(runner))

			require.NoError(t, backend.ApplyBright(tt.step))
			require.Len(t, runner.commands, 1)
			assert.Equal(t, []string{
				"xrandr", "--output", "eDP-1", "--gamma", tt.gamma, "--brightness", "1.00",
			}, runner.commands[0])
		})
	}
}

func TestX11_Remove(t *testing.T) {
	runner := &fakeRunner{}
	backend := gamma.NewX11(&fakeResolver{name: "DP-2"}, gamma.WithRunner(runner))

	require.NoError(t, backend.Remove())
	require.Len(t, runner.commands, 1)
	assert.Equal(t, []string{
		"xrandr", "--output", "DP-2", "--gamma", "1.00", "--brightness", "1.00",
	}, runner.commands[0])
}

func TestX11_EmptyMonitorNamePassedThrough(t *testing.T) {
	runner := &fakeRunner{}
	backend := gamma.NewX11(&fakeResolver{name: ""}, gamma.WithRunner(runner))

	require.NoError(t, backend.Remove())
	require.Len(t, runner.commands, 1)
	assert.Equal(t, "", runner.commands[0][2], "empty monitor name must be passed through, not retried")
}

func TestX11_InvalidStep(t *testing.T) {
	runner := &fakeRunner{}
	backend := gamma.NewX11(&fakeResolver{name: "eDP-1"}, gamma.WithRunner(runner))

	assert.ErrorIs(t, backend.ApplyDark(-1), gamma.ErrInvalidStep)
	assert.ErrorIs(t, backend.ApplyDark(10), gamma.ErrInvalidStep)
	assert.ErrorIs(t, backend.ApplyBright(-1), gamma.ErrInvalidStep)
	assert.ErrorIs(t, backend.ApplyBright(10), gamma.ErrInvalidStep)
	assert.Empty(t, runner.commands, "invalid steps must not invoke xrandr")
}

func TestX11_ResolverFailure(t *testing.T) {
	runner := &fakeRunner{}
	backend := gamma.NewX11(&fakeResolver{err: errors.New("xrandr missing")}, gamma.WithRunner(runner))

	err := backend.Remove()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve primary monitor")
	assert.Empty(t, runner.commands)
}

func TestX11_CommandFailureSurfaced(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exit status 1")}
	backend := gamma.NewX11(&fakeResolver{name: "eDP-1"}, gamma.WithRunner(runner))

	assert.Error(t, backend.Remove())
}
