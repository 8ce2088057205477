package engine

import "time"

// Components is the borrow-normalized calendar decomposition of the time
// since birth. Every field is non-negative and, except for Years, strictly
// below its natural modulus.
type Components struct {
	Years   int `json:"years"`
	Months  int `json:"months"`
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Totals re-expresses the whole duration independently in each unit,
// truncated toward zero. The units overlap: totals are not summable.
type Totals struct {
	Years   int64 `json:"years"`
	Months  int64 `json:"months"`
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

// Span pairs the component decomposition with the unit totals.
type Span struct {
	Components Components `json:"components"`
	Totals     Totals     `json:"totals"`
}

// Countdown is the decomposition of the time remaining until the next
// birthday. There is no years field: the gap is below one year by
// construction of the candidate date.
type Countdown struct {
	Months  int `json:"months"`
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// CountdownTotals are the independent unit totals of the remaining gap.
// Months reuses the countdown component value rather than an independent
// derivation.
type CountdownTotals struct {
	Months  int64 `json:"months"`
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

// NextBirthday describes the upcoming birthday: its calendar date at
// midnight and the remaining gap in both representations.
type NextBirthday struct {
	Countdown Countdown
	Totals    CountdownTotals
	Date      time.Time
}

// Result is the full breakdown for one (birth, reference) pair. Exactly one
// of the two branches is populated: when IsBirthday is true, TurningAge
// carries the age turned today and Next is nil; otherwise Next is non-nil
// and TurningAge is meaningless.
type Result struct {
	Birthday     time.Time
	CalculatedAt time.Time
	SinceBirth   Span
	IsBirthday   bool
	TurningAge   int
	Next         *NextBirthday
}

// Compute maps a birth instant and a reference instant to the full age
// breakdown. It is a pure function: no I/O, no state, safe for concurrent
// use.
//
// Precondition: reference is not before birth. Callers validate this at the
// boundary (the HTTP handler and the CLI both reject future birth dates);
// behavior for reference < birth is unspecified.
func Compute(birth, reference time.Time) Result {
	res := Result{
		Birthday:     birth,
		CalculatedAt: reference,
		SinceBirth:   sinceBirth(birth, reference),
	}

	// Birthday detection compares the calendar day only; time of day is
	// irrelevant.
	if reference.Month() == birth.Month() && reference.Day() == birth.Day() {
		res.IsBirthday = true
		res.TurningAge = res.SinceBirth.Components.Years
		return res
	}

	next := untilNextBirthday(birth, reference)
	res.Next = &next
	return res
}

// sinceBirth performs the calendar subtraction with the borrow cascade and
// derives the independent unit totals.
func sinceBirth(birth, reference time.Time) Span {
	c := Components{
		Years:   reference.Year() - birth.Year(),
		Months:  int(reference.Month()) - int(birth.Month()),
		Days:    reference.Day() - birth.Day(),
		Hours:   reference.Hour() - birth.Hour(),
		Minutes: reference.Minute() - birth.Minute(),
		Seconds: reference.Second() - birth.Second(),
	}

	// Borrow right to left. The day borrow uses the length of the calendar
	// month immediately preceding the reference month, not the birth month.
	if c.Seconds < 0 {
		c.Seconds += 60
		c.Minutes--
	}
	if c.Minutes < 0 {
		c.Minutes += 60
		c.Hours--
	}
	if c.Hours < 0 {
		c.Hours += 24
		c.Days--
	}
	if c.Days < 0 {
		c.Days += daysInMonthBefore(reference)
		c.Months--
	}
	if c.Months < 0 {
		c.Months += 12
		c.Years--
	}

	diff := reference.Sub(birth)
	t := Totals{
		Seconds: int64(diff / time.Second),
		Minutes: int64(diff / time.Minute),
		Hours:   int64(diff / time.Hour),
		Days:    int64(diff / (24 * time.Hour)),
		Months:  elapsedMonths(birth, reference),
		Years:   int64(c.Years),
	}

	return Span{Components: c, Totals: t}
}

// elapsedMonths counts full calendar months between the two instants: the
// raw month distance, minus one when the day-of-month threshold has not yet
// been reached in the current month.
func elapsedMonths(birth, reference time.Time) int64 {
	months := int64(reference.Year()-birth.Year())*12 +
		int64(reference.Month()) - int64(birth.Month())
	if reference.Day() < birth.Day() {
		months--
	}
	return months
}

// untilNextBirthday computes the forward countdown from reference to the
// next occurrence of the birthday at midnight.
func untilNextBirthday(birth, reference time.Time) NextBirthday {
	loc := reference.Location()

	// Candidate in the reference year; roll over when already passed.
	// time.Date normalizes Feb 29 to Mar 1 in non-leap years, matching the
	// observed next-occurrence for leaplings.
	candidate := time.Date(reference.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, loc)
	if !candidate.After(reference) {
		candidate = time.Date(reference.Year()+1, birth.Month(), birth.Day(), 0, 0, 0, 0, loc)
	}

	c := Countdown{
		Months:  int(candidate.Month()) - int(reference.Month()),
		Days:    candidate.Day() - reference.Day(),
		Hours:   -reference.Hour(),
		Minutes: -reference.Minute(),
		Seconds: -reference.Second(),
	}

	// Same cascade as sinceBirth, relative to the interval's end instant:
	// the day borrow uses the month immediately preceding the candidate's.
	if c.Seconds < 0 {
		c.Seconds += 60
		c.Minutes--
	}
	if c.Minutes < 0 {
		c.Minutes += 60
		c.Hours--
	}
	if c.Hours < 0 {
		c.Hours += 24
		c.Days--
	}
	if c.Days < 0 {
		c.Days += daysInMonthBefore(candidate)
		c.Months--
	}
	// No years field to borrow from: a countdown spans at most ~12 months.
	if c.Months < 0 {
		c.Months += 12
	}

	diff := candidate.Sub(reference)
	t := CountdownTotals{
		Seconds: int64(diff / time.Second),
		Minutes: int64(diff / time.Minute),
		Hours:   int64(diff / time.Hour),
		Days:    int64(diff / (24 * time.Hour)),
		Months:  int64(c.Months),
	}

	return NextBirthday{Countdown: c, Totals: t, Date: candidate}
}

// daysInMonthBefore returns the day count of the calendar month immediately
// preceding t's month. Day zero of a month is the last day of the previous
// one.
func daysInMonthBefore(t time.Time) int {
	return time.Date(t.Year(), t.Month(), 0, 0, 0, 0, 0, t.Location()).Day()
}
