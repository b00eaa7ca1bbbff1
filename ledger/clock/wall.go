// Package clock provides the time sources blocks are stamped with.
package clock

import "time"

//WallClock reads the local wall clock in UTC
type WallClock struct{}

//NewWallClock creates a wall clock
func NewWallClock() *WallClock {
	return &WallClock{}
}

//Now returns the current UTC time without a monotonic reading, such that it
//renders the same way every time it is formatted
func (c *WallClock) Now() time.Time {
	return time.Now().UTC().Round(0)
}
