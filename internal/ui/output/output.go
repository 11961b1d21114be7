// Package output builds termenv outputs with a consistent color profile.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns Ascii when NO_COLOR is set and the detected profile otherwise.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output for w using ColorProfile.
// A nil writer means stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return NewWithProfile(w, ColorProfile, opts...)
}

// NewWithProfile creates a termenv.Output for w with a custom profile selector.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profileFn()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
