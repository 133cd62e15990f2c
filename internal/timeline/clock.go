package timeline

import "time"

// Stopper cancels a scheduled callback. Stop on a fired or stopped timer is
// a no-op.
type Stopper interface {
	Stop() bool
}

// Clock schedules animation ticks and frame deferrals.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Stopper
}

type realClock struct{}

// RealClock is backed by the time package.
func RealClock() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Stopper { return time.AfterFunc(d, f) }
