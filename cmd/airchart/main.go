package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/midbel/airchart"
	"github.com/midbel/airchart/load"
	"github.com/midbel/airchart/paint"
)

func main() {
	var (
		config   = flag.String("config", "", "configuration file")
		records  = flag.String("records", "", "records file")
		holidays = flag.String("holidays", "", "holidays file")
		dbpath   = flag.String("db", "", "sqlite database to read records and holidays from")
		timefmt  = flag.String("time-format", load.DayFormat, "format of dates")
		holifmt  = flag.String("holiday-format", load.DayFormat, "format of holiday dates")
		result   = flag.String("file", "", "output file")
		format   = flag.String("format", "svg", "output format (svg, json)")
		width    = flag.Float64("width", 0, "chart width")
		height   = flag.Float64("height", 0, "chart height")
		level    = flag.String("log-level", "info", "log level")
		logfmt   = flag.String("log-format", "text", "log format (text, json)")
	)
	flag.Parse()

	logger, err := newLogger(*level, *logfmt)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, err := loadConfig(*config)
	if err != nil {
		logger.Error("load configuration", "file", *config, "error", err)
		os.Exit(1)
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}

	src, closeSource, err := getSource(*records, *holidays, *dbpath, *timefmt, *holifmt, cfg)
	if err != nil {
		logger.Error("open source", "error", err)
		os.Exit(1)
	}
	defer closeSource()

	now := time.Now()
	series, days, err := load.Load(context.Background(), src)
	if err != nil {
		logger.Error("load data", "error", err)
		os.Exit(2)
	}
	logger.Debug("data loaded", "records", series.Len(), "holidays", len(days), "elapsed", time.Since(now))

	scene, err := airchart.Build(series, days, cfg)
	if err != nil {
		if !errors.Is(err, airchart.ErrPartial) {
			logger.Error("build chart", "error", err)
			os.Exit(2)
		}
		logger.Warn("chart built with errors", "error", err)
	}
	logger.Info("chart built", "records", series.Len(), "bands", len(scene.Bands), "legend", scene.Legend.Month+" "+scene.Legend.Year)

	if err := renderChart(*result, *format, scene); err != nil {
		logger.Error("render chart", "file", *result, "error", err)
		os.Exit(2)
	}
}

func loadConfig(file string) (airchart.Config, error) {
	if file == "" {
		return airchart.DefaultConfig(), nil
	}
	r, err := os.Open(file)
	if err != nil {
		return airchart.Config{}, err
	}
	defer r.Close()
	return airchart.DecodeConfig(r)
}

func getSource(records, holidays, dbpath, timefmt, holifmt string, cfg airchart.Config) (load.Source, func(), error) {
	opts := load.DefaultOptions()
	opts.TimeFormat = timefmt
	opts.HolidayFormat = holifmt
	opts.Columns = nil
	for _, b := range cfg.Bands {
		opts.Columns = append(opts.Columns, b.ColumnName())
	}
	if dbpath != "" {
		db, err := load.OpenDB(dbpath)
		if err != nil {
			return nil, nil, err
		}
		return load.NewDBSource(db, opts), func() { db.Close() }, nil
	}
	if records == "" {
		return nil, nil, fmt.Errorf("records file or database required")
	}
	src := load.FileSource{
		RecordsPath:  records,
		HolidaysPath: holidays,
		Options:      opts,
	}
	return src, func() {}, nil
}

func renderChart(file, format string, scene airchart.Scene) error {
	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	switch format {
	case "svg", "":
		return paint.NewPainter().Render(w, scene, airchart.Idle())
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(scene)
	default:
		return fmt.Errorf("%s: unsupported output format", format)
	}
}
