// Package sabbath enforces the seventh-day rest: divinepl refuses to work on
// Sundays unless development mode explicitly overrides it.
package sabbath

import (
	"errors"
	"time"
)

// ErrSabbath is returned when execution is blocked by the day of rest
var ErrSabbath = errors.New("RestError: Remember the Sabbath day, to keep it holy (Exodus 20:8)")

// Check returns ErrSabbath when now falls on a Sunday, unless both the
// override flag and dev mode are set. The override alone is not enough.
func Check(now time.Time, override, dev bool) error {
	if now.Weekday() == time.Sunday && !(override && dev) {
		return ErrSabbath
	}
	return nil
}
