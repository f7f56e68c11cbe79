package load

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/midbel/airchart"
)

const (
	ColDate = "Date"
	ColTemp = "Temp"
)

var DefaultColumns = []string{"CO", "NO2", "SO2", "PM10", "PM2_5"}

// Options control how a records file is read. Columns lists the
// pollutant columns, all of them required in the header. Holidays are
// calendar dates and use HolidayFormat, DayFormat when empty.
type Options struct {
	TimeFormat    string
	HolidayFormat string
	Delimiter     rune
	Columns       []string
}

func DefaultOptions() Options {
	return Options{
		TimeFormat:    DayFormat,
		HolidayFormat: DayFormat,
		Delimiter:     ',',
		Columns:       DefaultColumns,
	}
}

func (o Options) columns() []string {
	if len(o.Columns) == 0 {
		return DefaultColumns
	}
	return o.Columns
}

func ReadRecordsFile(file string, opts Options) (airchart.Series, error) {
	r, err := os.Open(file)
	if err != nil {
		return airchart.Series{}, err
	}
	defer r.Close()
	return ReadRecords(r, file, opts)
}

// ReadRecords reads the records of r. It fails on the first row with
// an invalid field or a date not strictly after the previous one.
func ReadRecords(r io.Reader, file string, opts Options) (airchart.Series, error) {
	parseTime, err := makeParseTime(opts.TimeFormat)
	if err != nil {
		return airchart.Series{}, err
	}
	var (
		list []airchart.Record
		cols = append([]string{ColDate, ColTemp}, opts.columns()...)
		last time.Time
	)
	err = readFile(r, file, opts.Delimiter, cols, func(row int, get getter) error {
		when, err := parseTime(get(ColDate))
		if err != nil {
			return parseError(file, row, ColDate, get(ColDate), err)
		}
		if len(list) > 0 && !when.After(last) {
			return parseError(file, row, ColDate, get(ColDate), ErrOrder)
		}
		temp, err := strconv.ParseFloat(get(ColTemp), 64)
		if err != nil {
			return parseError(file, row, ColTemp, get(ColTemp), unwrapNum(err))
		}
		values := make(map[string]int)
		for _, c := range opts.columns() {
			v, err := strconv.Atoi(get(c))
			if err != nil {
				return parseError(file, row, c, get(c), unwrapNum(err))
			}
			if v < 0 {
				return parseError(file, row, c, get(c), fmt.Errorf("negative value"))
			}
			values[c] = v
		}
		list = append(list, airchart.NewRecord(when, temp, values))
		last = when
		return nil
	})
	if err != nil {
		return airchart.Series{}, err
	}
	return airchart.NewSeries(list)
}

func ReadHolidaysFile(file string, opts Options) (airchart.Holidays, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ReadHolidays(r, file, opts)
}

func ReadHolidays(r io.Reader, file string, opts Options) (airchart.Holidays, error) {
	parseTime, err := makeParseTime(opts.HolidayFormat)
	if err != nil {
		return nil, err
	}
	set := airchart.NewHolidays()
	err = readFile(r, file, opts.Delimiter, []string{ColDate}, func(row int, get getter) error {
		when, err := parseTime(get(ColDate))
		if err != nil {
			return parseError(file, row, ColDate, get(ColDate), err)
		}
		set.Add(when)
		return nil
	})
	return set, err
}

type getter func(string) string

func readFile(r io.Reader, file string, delim rune, want []string, read func(int, getter) error) error {
	rs := csv.NewReader(r)
	if delim != 0 {
		rs.Comma = delim
	}
	rs.TrimLeadingSpace = true

	header, err := rs.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("header row expected")
		}
		return parseError(file, 1, "header", "", err)
	}
	index := make(map[string]int)
	for i, h := range header {
		index[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, w := range want {
		if _, ok := index[w]; !ok {
			return parseError(file, 1, w, "", ErrMissingColumn)
		}
	}
	for row := 2; ; row++ {
		line, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return parseError(file, row, "row", "", err)
		}
		get := func(name string) string {
			return strings.TrimSpace(line[index[name]])
		}
		if err := read(row, get); err != nil {
			return err
		}
	}
	return nil
}

func parseError(file string, row int, field, value string, err error) error {
	return ParseError{
		File:  file,
		Row:   row,
		Field: field,
		Value: value,
		Err:   err,
	}
}

func unwrapNum(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
