package epf

// =============================================================================
// SCHEME YEAR - April through March
// =============================================================================

// The provident fund year runs April to March. Every monthly series in this
// package is indexed by Month, never by spreadsheet column name.

// MonthsInYear is the length of every monthly series.
const MonthsInYear = 12

// Month indexes a scheme month: April is 0, March is 11.
type Month int

const (
	April Month = iota
	May
	June
	July
	August
	September
	October
	November
	December
	January
	February
	March
)

var monthLabels = [MonthsInYear]string{
	"Apr", "May", "Jun", "Jul", "Aug", "Sep",
	"Oct", "Nov", "Dec", "Jan", "Feb", "Mar",
}

func (m Month) String() string {
	if m < April || m > March {
		return "invalid"
	}
	return monthLabels[m]
}

// Months returns the twelve months in chronological scheme order.
func Months() [MonthsInYear]Month {
	var ms [MonthsInYear]Month
	for i := range ms {
		ms[i] = Month(i)
	}
	return ms
}

// MonthLabels returns the short labels used as column headers in the input
// and sample workbooks, in scheme order.
func MonthLabels() [MonthsInYear]string {
	return monthLabels
}
