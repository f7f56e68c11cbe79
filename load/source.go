package load

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/midbel/airchart"
)

type Source interface {
	Records(context.Context) (airchart.Series, error)
	Holidays(context.Context) (airchart.Holidays, error)
}

// FileSource reads records and holidays from two csv files. An empty
// holidays path gives an empty set.
type FileSource struct {
	RecordsPath  string
	HolidaysPath string
	Options
}

func (f FileSource) Records(ctx context.Context) (airchart.Series, error) {
	if err := ctx.Err(); err != nil {
		return airchart.Series{}, err
	}
	return ReadRecordsFile(f.RecordsPath, f.Options)
}

func (f FileSource) Holidays(ctx context.Context) (airchart.Holidays, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.HolidaysPath == "" {
		return airchart.NewHolidays(), nil
	}
	return ReadHolidaysFile(f.HolidaysPath, f.Options)
}

// Load reads both parts of src concurrently. Nothing is returned unless
// both succeed.
func Load(ctx context.Context, src Source) (airchart.Series, airchart.Holidays, error) {
	var (
		series   airchart.Series
		holidays airchart.Holidays
	)
	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		series, err = src.Records(ctx)
		return err
	})
	grp.Go(func() error {
		var err error
		holidays, err = src.Holidays(ctx)
		return err
	})
	if err := grp.Wait(); err != nil {
		return airchart.Series{}, nil, err
	}
	return series, holidays, nil
}
