package collector

import "time"

// ServerClock derives the simulated wall clock of a server from its UTC
// offset. Timetable timestamps come in server-local wall time, so both the
// parser and the observers must agree on the zone.
type ServerClock struct {
	now func() time.Time
}

// NewServerClock returns a clock backed by real time.
func NewServerClock() *ServerClock {
	return &ServerClock{now: time.Now}
}

// NewServerClockAt returns a clock backed by the given time source.
func NewServerClockAt(now func() time.Time) *ServerClock {
	return &ServerClock{now: now}
}

// Zone returns the fixed zone of a server's simulated clock.
func (c *ServerClock) Zone(serverCode string, offsetHours int) *time.Location {
	return time.FixedZone(serverCode, offsetHours*3600)
}

// Now returns the current instant expressed in the server's zone.
func (c *ServerClock) Now(serverCode string, offsetHours int) time.Time {
	return c.now().In(c.Zone(serverCode, offsetHours))
}
