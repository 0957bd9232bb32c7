// Package localtz reports the system's current UTC offset as a
// civil.UtcOffset. It is the library's only contact with the operating
// system: everything else in this module is pure computation, and the
// calendar types carry no zone identity, so the sole question localtz answers
// is "what fixed offset is in effect at this instant".
//
// localtz.Now() is equivalent to time.Now(), except that you can override it,
// if necessary, to have control over time for testing; the same goes for
// SetLookup and the offset lookup. The overrides are process-wide.
package localtz

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/meridian-go/meridian/civil"
)

// A LookupFunc reports the local UTC offset in effect at the given instant.
type LookupFunc func(t time.Time) (civil.UtcOffset, error)

// ErrIndeterminate is returned when the local offset cannot be determined.
// The system lookup itself never fails on the supported platforms; the
// sentinel exists so a replacement lookup has a conventional error to return.
var ErrIndeterminate = errors.New("the local UTC offset could not be determined")

var globals = struct {
	mu     sync.RWMutex
	now    func() time.Time
	lookup LookupFunc
}{
	now:    time.Now,
	lookup: systemLookup,
}

func systemLookup(t time.Time) (civil.UtcOffset, error) {
	_, seconds := t.Zone()
	o, err := civil.OffsetFromSeconds(seconds)
	if err != nil {
		return civil.UtcOffset{}, errors.Wrap(ErrIndeterminate, err.Error())
	}
	return o, nil
}

// SetNow overrides the clock function used by Now, NowUTC, and NowLocal.
// Passing nil restores time.Now. Overriding the clock mid-run affects the
// whole process.
func SetNow(now func() time.Time) {
	globals.mu.Lock()
	defer globals.mu.Unlock()
	if now == nil {
		now = time.Now
	}
	globals.now = now
}

// SetLookup overrides the offset lookup used by OffsetAt and NowLocal.
// Passing nil restores the system lookup.
func SetLookup(lookup LookupFunc) {
	globals.mu.Lock()
	defer globals.mu.Unlock()
	if lookup == nil {
		lookup = systemLookup
	}
	globals.lookup = lookup
}

func current() (func() time.Time, LookupFunc) {
	globals.mu.RLock()
	defer globals.mu.RUnlock()
	return globals.now, globals.lookup
}

// Now returns the current wall-clock instant.
func Now() time.Time {
	now, _ := current()
	return now()
}

// OffsetAt returns the local UTC offset in effect at the given instant.
func OffsetAt(t time.Time) (civil.UtcOffset, error) {
	_, lookup := current()
	return lookup(t)
}

// OffsetNow returns the local UTC offset in effect right now.
func OffsetNow() (civil.UtcOffset, error) {
	now, lookup := current()
	return lookup(now())
}

// NowUTC returns the current instant as an OffsetDateTime at UTC.
func NowUTC() (civil.OffsetDateTime, error) {
	now, _ := current()
	t := now()
	odt, err := civil.FromUnixTimestamp(t.Unix())
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	return odt.AddDuration(civil.DurationNanoseconds(int64(t.Nanosecond())))
}

// NowLocal returns the current instant at the local UTC offset.
func NowLocal() (civil.OffsetDateTime, error) {
	now, lookup := current()
	t := now()
	offset, err := lookup(t)
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	utc, err := civil.FromUnixTimestamp(t.Unix())
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	utc, err = utc.AddDuration(civil.DurationNanoseconds(int64(t.Nanosecond())))
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	return utc.ToOffset(offset)
}
