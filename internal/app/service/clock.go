package service

import "time"

// Option configures the services of this package.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces the wall clock used to stamp createdAt/updatedAt values.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// stamp normalizes a timestamp to what every supported database stores.
func stamp(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Microsecond)
}
