package load

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/midbel/airchart"
)

const (
	ReadingsTable = "readings"
	HolidaysTable = "holidays"
)

const Schema = `
CREATE TABLE IF NOT EXISTS readings (
  date  TEXT    PRIMARY KEY,
  temp  REAL    NOT NULL,
  co    INTEGER NOT NULL,
  no2   INTEGER NOT NULL,
  so2   INTEGER NOT NULL,
  pm10  INTEGER NOT NULL,
  pm2_5 INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS holidays (
  date TEXT PRIMARY KEY
);
`

func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

// DBSource reads records and holidays from a sqlite database. Dates are
// stored as text in the configured format.
type DBSource struct {
	db   *sql.DB
	opts Options
}

func NewDBSource(db *sql.DB, opts Options) DBSource {
	return DBSource{
		db:   db,
		opts: opts,
	}
}

func (s DBSource) Records(ctx context.Context) (airchart.Series, error) {
	parseTime, err := makeParseTime(s.opts.TimeFormat)
	if err != nil {
		return airchart.Series{}, err
	}
	var (
		cols = s.opts.columns()
		qry  = fmt.Sprintf("SELECT date, temp, %s FROM %s ORDER BY date", strings.ToLower(strings.Join(cols, ", ")), ReadingsTable)
	)
	rows, err := s.db.QueryContext(ctx, qry)
	if err != nil {
		return airchart.Series{}, err
	}
	defer rows.Close()

	var (
		list []airchart.Record
		last time.Time
	)
	for row := 1; rows.Next(); row++ {
		var (
			date   string
			temp   float64
			values = make([]int, len(cols))
			dest   = []any{&date, &temp}
		)
		for i := range values {
			dest = append(dest, &values[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return airchart.Series{}, parseError(ReadingsTable, row, "row", "", err)
		}
		when, err := parseTime(date)
		if err != nil {
			return airchart.Series{}, parseError(ReadingsTable, row, ColDate, date, err)
		}
		if len(list) > 0 && !when.After(last) {
			return airchart.Series{}, parseError(ReadingsTable, row, ColDate, date, ErrOrder)
		}
		rec := make(map[string]int)
		for i, c := range cols {
			rec[c] = values[i]
		}
		list = append(list, airchart.NewRecord(when, temp, rec))
		last = when
	}
	if err := rows.Err(); err != nil {
		return airchart.Series{}, err
	}
	return airchart.NewSeries(list)
}

func (s DBSource) Holidays(ctx context.Context) (airchart.Holidays, error) {
	parseTime, err := makeParseTime(s.opts.HolidayFormat)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, "SELECT date FROM "+HolidaysTable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := airchart.NewHolidays()
	for row := 1; rows.Next(); row++ {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, parseError(HolidaysTable, row, "row", "", err)
		}
		when, err := parseTime(date)
		if err != nil {
			return nil, parseError(HolidaysTable, row, ColDate, date, err)
		}
		set.Add(when)
	}
	return set, rows.Err()
}
