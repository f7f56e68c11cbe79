package airchart

import (
	"fmt"
	"math"
	"time"

	"github.com/midbel/slices"
)

// Record holds the readings of one day (or one hour).
type Record struct {
	Key    int64
	Date   time.Time
	Temp   float64
	Values map[string]int
}

func NewRecord(when time.Time, temp float64, values map[string]int) Record {
	return Record{
		Key:    when.UnixMilli(),
		Date:   when,
		Temp:   temp,
		Values: values,
	}
}

// Value returns the reading for the given band name. The name
// "temp" (or the name of the continuous band) is resolved by
// the caller.
func (r Record) Value(name string) (float64, bool) {
	v, ok := r.Values[name]
	return float64(v), ok
}

// Series is an ordered set of records with unique keys.
type Series struct {
	records []Record
}

func NewSeries(records []Record) (Series, error) {
	for i := 1; i < len(records); i++ {
		if records[i].Key <= records[i-1].Key {
			return Series{}, fmt.Errorf("record %d (%s): %w", i, records[i].Date.Format("2006-01-02"), ErrDuplicate)
		}
	}
	list := make([]Record, len(records))
	copy(list, records)
	return Series{records: list}, nil
}

func (s Series) Len() int {
	return len(s.records)
}

func (s Series) Records() []Record {
	return s.records
}

func (s Series) Keys() []int64 {
	keys := make([]int64, len(s.records))
	for i := range s.records {
		keys[i] = s.records[i].Key
	}
	return keys
}

func (s Series) Extent() (time.Time, time.Time, error) {
	if len(s.records) == 0 {
		return time.Time{}, time.Time{}, ErrEmpty
	}
	return slices.Fst(s.records).Date, slices.Lst(s.records).Date, nil
}

func (s Series) TempExtent() (float64, float64, error) {
	if len(s.records) == 0 {
		return 0, 0, ErrEmpty
	}
	var (
		min = math.Inf(1)
		max = math.Inf(-1)
	)
	for _, r := range s.records {
		min = math.Min(min, r.Temp)
		max = math.Max(max, r.Temp)
	}
	return min, max, nil
}

// MaxValue returns the largest reading of the named column. It
// fails if any record lacks the column.
func (s Series) MaxValue(name string) (float64, error) {
	if len(s.records) == 0 {
		return 0, ErrEmpty
	}
	var max float64
	for i, r := range s.records {
		v, ok := r.Value(name)
		if !ok {
			return 0, fmt.Errorf("%s at record %d: %w", name, i, ErrColumn)
		}
		if i == 0 || v > max {
			max = v
		}
	}
	return max, nil
}

type Holidays map[int64]struct{}

func NewHolidays(dates ...time.Time) Holidays {
	set := make(Holidays)
	for _, d := range dates {
		set.Add(d)
	}
	return set
}

func (h Holidays) Add(when time.Time) {
	h[when.UnixMilli()] = struct{}{}
}

func (h Holidays) Has(key int64) bool {
	_, ok := h[key]
	return ok
}
