package load

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const sample = `Date,Temp,CO,NO2,SO2,PM10,PM2_5
2018-01-01,-3.5,1,25,4,40,22
2018-01-02,0,2,31,6,52,30
2018-01-03,4.25,1,18,3,35,19
`

func TestReadRecords(t *testing.T) {
	s, err := ReadRecords(strings.NewReader(sample), "sample.csv", DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 {
		t.Fatalf("number of records mismatched! want 3, got %d", s.Len())
	}
	r := s.Records()[2]
	if want := time.Date(2018, 1, 3, 0, 0, 0, 0, time.UTC); !r.Date.Equal(want) {
		t.Errorf("date mismatched! want %s, got %s", want, r.Date)
	}
	if r.Temp != 4.25 {
		t.Errorf("temperature mismatched! want 4.25, got %f", r.Temp)
	}
	if v, ok := r.Value("PM10"); !ok || v != 35 {
		t.Errorf("PM10 mismatched! want 35, got %f", v)
	}
}

func TestReadRecordsColumns(t *testing.T) {
	const doc = "\ufeffPM10;Date;Temp\n40;2018-01-01 10:00:00;1\n45;2018-01-01 11:00:00;2\n"
	opts := Options{
		TimeFormat: HourFormat,
		Delimiter:  ';',
		Columns:    []string{"PM10"},
	}
	s, err := ReadRecords(strings.NewReader(doc), "", opts)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Fatalf("number of records mismatched! want 2, got %d", s.Len())
	}
	if _, ok := s.Records()[0].Value("CO"); ok {
		t.Errorf("unexpected column read")
	}
}

func TestReadRecordsInvalid(t *testing.T) {
	tests := []struct {
		Name  string
		Input string
		Row   int
		Field string
		Err   error
	}{
		{
			Name:  "missing-column",
			Input: "Date,Temp,CO,NO2,SO2,PM10\n2018-01-01,1,1,1,1,1\n",
			Row:   1,
			Field: "PM2_5",
			Err:   ErrMissingColumn,
		},
		{
			Name:  "bad-number",
			Input: sample + "2018-01-04,1,1,x,1,1,1\n",
			Row:   5,
			Field: "NO2",
		},
		{
			Name:  "bad-temp",
			Input: sample + "2018-01-04,warm,1,1,1,1,1\n",
			Row:   5,
			Field: ColTemp,
		},
		{
			Name:  "bad-date",
			Input: sample + "04/01/2018,1,1,1,1,1,1\n",
			Row:   5,
			Field: ColDate,
		},
		{
			Name:  "order",
			Input: sample + "2018-01-02,1,1,1,1,1,1\n",
			Row:   5,
			Field: ColDate,
			Err:   ErrOrder,
		},
		{
			Name:  "negative",
			Input: sample + "2018-01-04,1,1,1,-1,1,1\n",
			Row:   5,
			Field: "SO2",
		},
		{
			Name:  "empty",
			Input: "",
			Row:   1,
			Field: "header",
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := ReadRecords(strings.NewReader(tt.Input), tt.Name+".csv", DefaultOptions())
			var pe ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("parse error expected, got %v", err)
			}
			if pe.Row != tt.Row || pe.Field != tt.Field {
				t.Errorf("location mismatched! want %d/%s, got %d/%s", tt.Row, tt.Field, pe.Row, pe.Field)
			}
			if pe.File != tt.Name+".csv" {
				t.Errorf("file mismatched! got %s", pe.File)
			}
			if tt.Err != nil && !errors.Is(err, tt.Err) {
				t.Errorf("%s expected, got %s", tt.Err, err)
			}
		})
	}
}

func TestReadHolidays(t *testing.T) {
	const doc = "Date,Name\n2018-01-01,new year\n2018-05-01,labour day\n"
	set, err := ReadHolidays(strings.NewReader(doc), "holidays.csv", DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(set) != 2 {
		t.Fatalf("number of holidays mismatched! want 2, got %d", len(set))
	}
	if !set.Has(time.Date(2018, 5, 1, 0, 0, 0, 0, time.UTC).UnixMilli()) {
		t.Errorf("holiday not found")
	}
}

func TestReadHolidaysHourly(t *testing.T) {
	opts := DefaultOptions()
	opts.TimeFormat = HourFormat
	set, err := ReadHolidays(strings.NewReader("Date\n2018-01-01\n"), "holidays.csv", opts)
	if err != nil {
		t.Fatal(err)
	}
	if !set.Has(time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()) {
		t.Errorf("holiday not found")
	}

	opts.HolidayFormat = ""
	if _, err := ReadHolidays(strings.NewReader("Date\n2018-01-01\n"), "holidays.csv", opts); err != nil {
		t.Errorf("empty holiday format should read calendar dates: %s", err)
	}
}
