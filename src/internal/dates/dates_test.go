package dates

import (
	"errors"
	"testing"
	"time"
)

func mustYMD(t *testing.T, y int, m time.Month, d int) PublishDate {
	t.Helper()
	pd, err := YearMonthDay(y, m, d)
	if err != nil {
		t.Fatalf("YearMonthDay(%d, %s, %d): %v", y, m, d, err)
	}
	return pd
}

func TestPublishDateValidation(t *testing.T) {
	cases := []struct {
		y    int
		m    time.Month
		d    int
		want error
	}{
		{2023, time.January, 31, nil},
		{2023, time.December, 31, nil},
		{2024, time.February, 29, nil},
		{2000, time.February, 29, nil},
		{2023, time.February, 29, ErrInvalidDayForMonth},
		{1900, time.February, 29, ErrInvalidDayForMonth},
		{2023, time.April, 31, ErrInvalidDayForMonth},
		{2023, time.June, 0, ErrInvalidDayForMonth},
		{2023, time.Month(0), 1, ErrInvalidMonth},
		{2023, time.Month(13), 1, ErrInvalidMonth},
		{-1, time.January, 1, ErrOutOfRangeYear},
		{10000, time.January, 1, ErrOutOfRangeYear},
	}
	for _, c := range cases {
		_, err := YearMonthDay(c.y, c.m, c.d)
		if c.want == nil {
			if err != nil {
				t.Fatalf("YearMonthDay(%d, %d, %d): unexpected error %v", c.y, c.m, c.d, err)
			}
			continue
		}
		if !errors.Is(err, c.want) {
			t.Fatalf("YearMonthDay(%d, %d, %d): want %v, got %v", c.y, c.m, c.d, c.want, err)
		}
	}
	if _, err := Year(-44); !errors.Is(err, ErrOutOfRangeYear) {
		t.Fatalf("Year(-44): want ErrOutOfRangeYear, got %v", err)
	}
	if _, err := YearMonth(2023, time.Month(42)); !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("YearMonth bad month: want ErrInvalidMonth, got %v", err)
	}
}

func TestPublishDateRenders(t *testing.T) {
	yearOnly, err := Year(2023)
	if err != nil {
		t.Fatalf("Year: %v", err)
	}
	withMonth, err := YearMonth(2023, time.February)
	if err != nil {
		t.Fatalf("YearMonth: %v", err)
	}
	cases := []struct {
		d    PublishDate
		ieee string
		apa  string
	}{
		{yearOnly, "2023", "2023"},
		{withMonth, "Feb., 2023", "2023, February"},
		{mustYMD(t, 2023, time.February, 1), "Feb. 1, 2023", "2023, February 1"},
		// May takes no period in IEEE
		{mustYMD(t, 2021, time.May, 30), "May 30, 2021", "2021, May 30"},
		{mustYMD(t, 2019, time.September, 9), "Sep. 9, 2019", "2019, September 9"},
	}
	for _, c := range cases {
		if got := c.d.IEEE(); got != c.ieee {
			t.Fatalf("IEEE: want %q, got %q", c.ieee, got)
		}
		if got := c.d.APA(); got != c.apa {
			t.Fatalf("APA: want %q, got %q", c.apa, got)
		}
	}
}

func TestPublishDateCompare(t *testing.T) {
	y2022, _ := Year(2022)
	y2023, _ := Year(2023)
	feb, _ := YearMonth(2023, time.February)
	mar, _ := YearMonth(2023, time.March)
	feb1 := mustYMD(t, 2023, time.February, 1)
	feb2 := mustYMD(t, 2023, time.February, 2)

	// ascending chain; a missing component is older than any present one
	chain := []PublishDate{y2022, y2023, feb, feb1, feb2, mar}
	for i := 1; i < len(chain); i++ {
		if got := chain[i-1].Compare(chain[i]); got >= 0 {
			t.Fatalf("chain[%d] vs chain[%d]: want < 0, got %d", i-1, i, got)
		}
		if got := chain[i].Compare(chain[i-1]); got <= 0 {
			t.Fatalf("chain[%d] vs chain[%d]: want > 0, got %d", i, i-1, got)
		}
	}
	if got := feb1.Compare(mustYMD(t, 2023, time.February, 1)); got != 0 {
		t.Fatalf("equal dates: want 0, got %d", got)
	}
}

func TestAccessDate(t *testing.T) {
	a, err := AccessedOn(2014, time.April, 16)
	if err != nil {
		t.Fatalf("AccessedOn: %v", err)
	}
	if got := a.IEEE(); got != "Apr. 16, 2014" {
		t.Fatalf("IEEE: want %q, got %q", "Apr. 16, 2014", got)
	}
	if got := a.APA(); got != "April 16, 2014" {
		t.Fatalf("APA: want %q, got %q", "April 16, 2014", got)
	}
	if got := a.ISO(); got != "2014-04-16" {
		t.Fatalf("ISO: want %q, got %q", "2014-04-16", got)
	}
	if _, err := AccessedOn(2023, time.February, 29); !errors.Is(err, ErrInvalidDayForMonth) {
		t.Fatalf("AccessedOn Feb 29 2023: want ErrInvalidDayForMonth, got %v", err)
	}

	later := NewAccessDate(time.Date(2014, time.April, 17, 8, 0, 0, 0, time.UTC))
	if got := a.Compare(later); got >= 0 {
		t.Fatalf("Compare: want < 0, got %d", got)
	}
}

func TestParseISO(t *testing.T) {
	a, err := ParseISO("2025-10-01")
	if err != nil {
		t.Fatalf("ParseISO: %v", err)
	}
	if got := a.IEEE(); got != "Oct. 1, 2025" {
		t.Fatalf("ParseISO render: want %q, got %q", "Oct. 1, 2025", got)
	}
	if _, err := ParseISO("2025-02-30"); err == nil {
		t.Fatalf("ParseISO impossible day: want error")
	}
	if _, err := ParseISO("not a date"); err == nil {
		t.Fatalf("ParseISO garbage: want error")
	}
}
