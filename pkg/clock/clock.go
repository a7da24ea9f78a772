// Package clock abstracts the current time so that daily limit rollovers
// can be driven deterministically in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type Real struct{}

func (Real) Now() time.Time {
	return time.Now()
}
