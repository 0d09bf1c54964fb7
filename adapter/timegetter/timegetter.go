// Package timegetter supplies document timestamps from the wall clock.
package timegetter

import (
	"time"

	"github.com/mimicdb/mimicdb/domain"
)

// TimeGetter implements [domain.TimeGetter] with the system clock.
type TimeGetter struct{}

// NewTimeGetter returns a new implementation of domain.TimeGetter.
func NewTimeGetter() domain.TimeGetter {
	return &TimeGetter{}
}

// GetTime returns the current time in UTC, so stored timestamps do not
// carry the host's zone.
func (t *TimeGetter) GetTime() time.Time {
	return time.Now().UTC()
}
