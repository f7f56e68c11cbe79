package airchart

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// Locale formats calendar names.
type Locale struct {
	tag    language.Tag
	locale monday.Locale
}

func ParseLocale(str string) (Locale, error) {
	tag, err := language.Parse(str)
	if err != nil {
		return Locale{}, configError("locale", str, err)
	}
	var (
		base, _   = tag.Base()
		region, _ = tag.Region()
		want      = monday.Locale(base.String() + "_" + region.String())
	)
	for _, loc := range monday.ListLocales() {
		if loc == want {
			return Locale{tag: tag, locale: loc}, nil
		}
	}
	return Locale{}, configError("locale", fmt.Sprintf("%s: calendar names not available", str), nil)
}

func (l Locale) String() string {
	return l.tag.String()
}

func (l Locale) Format(t time.Time, layout string) string {
	if l.locale == "" {
		return t.Format(layout)
	}
	return monday.Format(t, layout, l.locale)
}

// DayMonth formats a date as the day followed by the short month name.
func (l Locale) DayMonth(t time.Time) string {
	return l.Format(t, "2 Jan")
}

func (l Locale) Month(t time.Time) string {
	return l.Format(t, "Jan")
}

type Legend struct {
	Month string
	Year  string
}

// FormatLegend builds the date range caption of the chart.
func FormatLegend(start, end time.Time, loc Locale) Legend {
	var lg Legend
	if sameDay(start, end) {
		lg.Year = strconv.Itoa(start.Year())
		lg.Month = loc.DayMonth(start)
		return lg
	}
	lg.Month = fmt.Sprintf("%s - %s", loc.Month(start), loc.Month(end))
	if start.Year() == end.Year() {
		lg.Year = strconv.Itoa(start.Year())
	} else {
		lg.Year = fmt.Sprintf("%d   %d", start.Year(), end.Year())
	}
	return lg
}

func sameDay(fst, lst time.Time) bool {
	y1, m1, d1 := fst.Date()
	y2, m2, d2 := lst.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
