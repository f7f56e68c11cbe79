package load

import (
	"fmt"
	"strings"
	"time"
)

const (
	DayFormat  = "%Y-%m-%d"
	HourFormat = "%Y-%m-%d %H:%M:%S"
)

// makeParseTime returns a parser for dates written with the strftime
// directives of layouts. Dates are read in UTC.
func makeParseTime(format string) (func(string) (time.Time, error), error) {
	layout, err := parseFormat(format)
	if err != nil {
		return nil, err
	}
	return func(str string) (time.Time, error) {
		return time.Parse(layout, str)
	}, nil
}

// layouts maps a strftime directive to its Go reference layout. Only
// directives with an exact Go equivalent are accepted.
var layouts = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'e': "_2",
	'j': "002",
	'b': "Jan",
	'h': "Jan",
	'B': "January",
	'a': "Mon",
	'A': "Monday",
	'H': "15",
	'I': "03",
	'p': "PM",
	'M': "04",
	'S': "05",
	'z': "-0700",
	'Z': "MST",
	'F': "2006-01-02",
	'T': "15:04:05",
	'D': "01/02/06",
	'%': "%",
}

// parseFormat converts a strftime format to a Go layout. An empty format
// is DayFormat.
func parseFormat(format string) (string, error) {
	if format == "" {
		format = DayFormat
	}
	var buf strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			buf.WriteByte(format[i])
			continue
		}
		i++
		if i >= len(format) {
			return "", fmt.Errorf("%s: trailing %%", format)
		}
		layout, ok := layouts[format[i]]
		if !ok {
			return "", fmt.Errorf("%s: unsupported directive %%%c", format, format[i])
		}
		buf.WriteString(layout)
	}
	return buf.String(), nil
}
