package config

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/veritas/packages/highlight"
)

func fakeEnv(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func colorSupported(supported bool) func() bool {
	return func() bool { return supported }
}

func TestResolve_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		colorOK  bool
		want     highlight.Mode
	}{
		{
			name:    "default when nothing is set",
			env:     map[string]string{},
			colorOK: true,
			want:    highlight.ModeRedGreen,
		},
		{
			name:    "mode selector picks the mode",
			env:     map[string]string{EnvHighlight: "red-blue"},
			colorOK: true,
			want:    highlight.ModeRedBlue,
		},
		{
			name:    "mode selector is case-insensitive",
			env:     map[string]string{EnvHighlight: "Red-Yellow"},
			colorOK: true,
			want:    highlight.ModeRedYellow,
		},
		{
			name:    "selector can switch highlighting off",
			env:     map[string]string{EnvHighlight: "OFF"},
			colorOK: true,
			want:    highlight.ModeOff,
		},
		{
			name:    "no-color override beats the selector",
			env:     map[string]string{EnvNoColor: "1", EnvHighlight: "red-green"},
			colorOK: true,
			want:    highlight.ModeOff,
		},
		{
			name:    "any non-empty no-color value counts",
			env:     map[string]string{EnvNoColor: "false", EnvHighlight: "bold"},
			colorOK: true,
			want:    highlight.ModeOff,
		},
		{
			name:    "empty no-color value is ignored",
			env:     map[string]string{EnvNoColor: "", EnvHighlight: "bold"},
			colorOK: true,
			want:    highlight.ModeBold,
		},
		{
			name:    "unsupported terminal forces off",
			env:     map[string]string{EnvHighlight: "red-green"},
			colorOK: false,
			want:    highlight.ModeOff,
		},
		{
			name:    "unknown selector value falls through to default",
			env:     map[string]string{EnvHighlight: "rainbow"},
			colorOK: true,
			want:    highlight.ModeRedGreen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode := Resolve(Options{
				LookupEnv:      fakeEnv(tt.env),
				ColorSupported: colorSupported(tt.colorOK),
				Warn:           func(string, ...any) {},
			})
			assert.Equal(t, tt.want, mode)
		})
	}
}

func TestResolve_EnvUnreadableTargetUsesDefault(t *testing.T) {
	// A nil LookupEnv models a build target that cannot read environment
	// variables at all.
	mode := Resolve(Options{ColorSupported: colorSupported(true)})

	assert.Equal(t, DefaultMode, mode)
}

func TestResolve_UnknownValueWarnsOnce(t *testing.T) {
	var warnings []string
	Resolve(Options{
		LookupEnv:      fakeEnv(map[string]string{EnvHighlight: "rainbow"}),
		ColorSupported: colorSupported(true),
		Warn: func(format string, args ...any) {
			warnings = append(warnings, fmt.Sprintf(format, args...))
		},
	})

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], EnvHighlight)
	assert.Contains(t, warnings[0], "rainbow")
}

func TestMode_CachesResolution(t *testing.T) {
	t.Cleanup(Reset)

	calls := 0
	Override(Options{
		LookupEnv: func(key string) (string, bool) {
			calls++
			return "", false
		},
		ColorSupported: colorSupported(true),
	})

	first := Mode()
	callsAfterFirst := calls
	second := Mode()

	assert.Equal(t, highlight.ModeRedGreen, first)
	assert.Equal(t, first, second)
	assert.Equal(t, callsAfterFirst, calls, "second Mode call must hit the cache")
}

func TestOverride_ClearsCache(t *testing.T) {
	t.Cleanup(Reset)

	Override(Options{
		LookupEnv:      fakeEnv(map[string]string{EnvHighlight: "bold"}),
		ColorSupported: colorSupported(true),
	})
	require.Equal(t, highlight.ModeBold, Mode())

	Override(Options{
		LookupEnv:      fakeEnv(map[string]string{EnvNoColor: "yes"}),
		ColorSupported: colorSupported(true),
	})
	assert.Equal(t, highlight.ModeOff, Mode())
}

func TestMode_ConcurrentReads(t *testing.T) {
	t.Cleanup(Reset)

	Override(Options{
		LookupEnv:      fakeEnv(map[string]string{EnvHighlight: "red-blue"}),
		ColorSupported: colorSupported(true),
	})

	var wg sync.WaitGroup
	results := make([]highlight.Mode, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Mode()
		}(i)
	}
	wg.Wait()

	for _, mode := range results {
		assert.Equal(t, highlight.ModeRedBlue, mode)
	}
}
