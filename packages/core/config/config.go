package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/abdul-hamid-achik/veritas/packages/highlight"
)

const (
	// EnvHighlight selects the highlight mode. Recognized values are
	// "bold", "red-green", "red-blue", "red-yellow" and "off",
	// case-insensitively.
	EnvHighlight = "VERITAS_HIGHLIGHT"

	// EnvNoColor is the conventional color-suppression override. Any
	// non-empty value forces highlighting off regardless of EnvHighlight.
	EnvNoColor = "NO_COLOR"
)

// DefaultMode is the compiled-in highlight mode used when no override
// applies.
const DefaultMode = highlight.ModeRedGreen

// WarnFunc is a function type for handling warnings.
type WarnFunc func(format string, args ...any)

// Options supplies the environment capabilities the resolver depends on.
//
// A nil LookupEnv means the build target cannot read environment variables;
// variable lookup is skipped and the compiled-in default applies. A nil
// ColorSupported treats color output as supported. A nil Warn writes to
// stderr.
type Options struct {
	LookupEnv      func(key string) (string, bool)
	ColorSupported func() bool
	Warn           WarnFunc
}

// DefaultOptions returns options backed by the real process environment and
// a terminal probe on stdout.
func DefaultOptions() Options {
	return Options{
		LookupEnv: os.LookupEnv,
		ColorSupported: func() bool {
			fd := os.Stdout.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		Warn: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "WARNING: "+format+"\n", args...)
		},
	}
}

// Resolve determines the active highlight mode from the given capabilities.
// Precedence: the color-suppression override forces off; an unsupported
// terminal forces off; a recognized highlight-mode variable wins; anything
// else falls through to DefaultMode. Unrecognized variable values emit one
// warning.
func Resolve(opts Options) highlight.Mode {
	warn := opts.Warn
	if warn == nil {
		warn = DefaultOptions().Warn
	}

	if opts.LookupEnv != nil {
		if v, ok := opts.LookupEnv(EnvNoColor); ok && v != "" {
			return highlight.ModeOff
		}
	}
	if opts.ColorSupported != nil && !opts.ColorSupported() {
		return highlight.ModeOff
	}
	if opts.LookupEnv != nil {
		if v, ok := opts.LookupEnv(EnvHighlight); ok {
			if mode, recognized := highlight.ParseMode(v); recognized {
				return mode
			}
			warn("the environment variable %s is set to the unrecognized value %q: default highlight mode %q is used", EnvHighlight, v, DefaultMode)
		}
	}
	return DefaultMode
}

var (
	mu     sync.Mutex
	cached *highlight.Mode
	active = DefaultOptions()
)

// Mode returns the process-wide highlight mode, resolving it lazily on
// first use and caching it thereafter. Safe for concurrent use.
func Mode() highlight.Mode {
	mu.Lock()
	defer mu.Unlock()
	if cached == nil {
		mode := Resolve(active)
		cached = &mode
	}
	return *cached
}

// Override replaces the resolver capabilities and clears the cached mode.
// Intended for tests that need to exercise every precedence branch
// deterministically.
func Override(opts Options) {
	mu.Lock()
	defer mu.Unlock()
	active = opts
	cached = nil
}

// Reset restores the default capabilities and clears the cached mode so the
// next Mode call re-resolves. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	active = DefaultOptions()
	cached = nil
}
