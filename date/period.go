package date

import (
	"fmt"
	"strings"
)

// Period is the calendar span selected by the -p flag of list and summary.
// The ledger is filtered to the period containing the end date.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

// periodNouns are the -p values, indexed by Period.
var periodNouns = [...]string{"day", "week", "month", "quarter", "year"}

func (p Period) String() string {
	if p < Daily || p > Yearly {
		panic(fmt.Sprintf("unknown period %d", p))
	}
	if p == Daily {
		return "daily"
	}
	return periodNouns[p] + "ly"
}

// ParsePeriod reads a -p value, e.g. "month" or "Monthly".
func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(strings.TrimSpace(p))
	for i, noun := range periodNouns {
		if period := Period(i); p == noun || p == period.String() {
			return period, nil
		}
	}
	return Daily, fmt.Errorf("unknown period %q, want one of %s", p, strings.Join(periodNouns[:], ", "))
}
