package configurator

import "time"

// SetClock fija el reloj del sello updatedAt en tests.
func (s *Store) SetClock(now func() time.Time) { s.now = now }
