package stay

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidRange = errors.New("check-out must be after check-in")

const nightHours = 24

// Range is a half-open [check-in, check-out) stay interval.
type Range struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewRange(checkIn, checkOut time.Time) (Range, error) {
	if !checkOut.After(checkIn) {
		return Range{}, ErrInvalidRange
	}
	return Range{checkIn: checkIn, checkOut: checkOut}, nil
}

func (r Range) CheckIn() time.Time  { return r.checkIn }
func (r Range) CheckOut() time.Time { return r.checkOut }

func (r Range) IsZero() bool {
	return r.checkIn.IsZero() && r.checkOut.IsZero()
}

// Nights rounds partial nights up and never reports less than one, so a
// sub-day stay is still billed as a single night.
func (r Range) Nights() int {
	hours := r.checkOut.Sub(r.checkIn).Hours()
	nights := int(hours) / nightHours
	if float64(nights*nightHours) < hours {
		nights++
	}
	if nights < 1 {
		nights = 1
	}
	return nights
}

func (r Range) String() string {
	return fmt.Sprintf("[%s,%s)", r.checkIn.Format(time.RFC3339), r.checkOut.Format(time.RFC3339))
}
