// SPDX-License-Identifier: GPL-2.0-or-later

package sol

import (
	"log/slog"
)

type options struct {
	log    *slog.Logger
	strict bool
}

type Option func(*options)

// WithLogger sends decoder debug output to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithStrict makes Decode fail when the decoded document does not pass
// Validate.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

func newOptions(opts []Option) options {
	o := options{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
