// Package clock abstracts the current time so callers can be tested deterministically.
package clock

import "time"

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to the Clock interface.
type Func func() time.Time

// Now calls f.
func (f Func) Now() time.Time {
	return f()
}

// System returns a Clock backed by time.Now.
func System() Clock {
	return Func(time.Now)
}

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}
