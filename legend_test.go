package airchart

import (
	"testing"
	"time"
)

func TestFormatLegend(t *testing.T) {
	loc, err := ParseLocale("en-US")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		Start time.Time
		End   time.Time
		Want  Legend
	}{
		{
			Start: time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
			Want:  Legend{Month: "1 Jan", Year: "2018"},
		},
		{
			Start: time.Date(2018, 3, 5, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC),
			Want:  Legend{Month: "Mar - Jan", Year: "2018   2019"},
		},
		{
			Start: time.Date(2018, 3, 5, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2018, 11, 2, 0, 0, 0, 0, time.UTC),
			Want:  Legend{Month: "Mar - Nov", Year: "2018"},
		},
		{
			Start: time.Date(2018, 3, 5, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2018, 3, 5, 23, 0, 0, 0, time.UTC),
			Want:  Legend{Month: "5 Mar", Year: "2018"},
		},
	}
	for _, tt := range tests {
		got := FormatLegend(tt.Start, tt.End, loc)
		if got != tt.Want {
			t.Errorf("legend mismatched! want %+v, got %+v", tt.Want, got)
		}
	}
}

func TestParseLocale(t *testing.T) {
	loc, err := ParseLocale("fr-FR")
	if err != nil {
		t.Fatal(err)
	}
	when := time.Date(2018, 2, 1, 0, 0, 0, 0, time.UTC)
	if got := loc.Month(when); got == "" || got == "Feb" {
		t.Errorf("month should be translated, got %q", got)
	}
	if _, err := ParseLocale("not a locale"); !IsConfigError(err) {
		t.Errorf("invalid locale should fail with config error, got %v", err)
	}
}
