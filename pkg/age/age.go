// Package age computes chronological age for norm lookups.
package age

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateOrder is returned when the assessment date precedes the birth date.
var ErrInvalidDateOrder = errors.New("assessment date precedes birth date")

// daysPerBorrowedMonth is the fixed day count added when borrowing a month.
// Norm tables band by months, so the calendar length of the month is ignored.
const daysPerBorrowedMonth = 30

// Age is elapsed time in years, months and days.
type Age struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

func (a Age) String() string {
	return fmt.Sprintf("%dy %dm %dd", a.Years, a.Months, a.Days)
}

// TotalMonths returns the age truncated to whole months.
func (a Age) TotalMonths() int { return a.Years*12 + a.Months }

// Between returns the age at assessed of someone born on birth. Only the
// calendar date of each time is used.
func Between(birth, assessed time.Time) (Age, error) {
	by, bm, bd := birth.Date()
	ay, am, ad := assessed.Date()

	if ay < by || (ay == by && (am < bm || (am == bm && ad < bd))) {
		return Age{}, fmt.Errorf("%w: born %s, assessed %s", ErrInvalidDateOrder,
			birth.Format(time.DateOnly), assessed.Format(time.DateOnly))
	}

	years := ay - by
	months := int(am) - int(bm)
	days := ad - bd

	if days < 0 {
		months--
		days += daysPerBorrowedMonth
	}
	if months < 0 {
		years--
		months += 12
	}

	return Age{Years: years, Months: months, Days: days}, nil
}
