package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGap(t *testing.T) {
	cases := []struct {
		year int
		want int
	}{
		{1582, 10},
		{1700, 11},
		{1899, 12},
		{1900, 13},
		{2000, 13},
		{2100, 14},
		{1, -2},
		{0, -2},
		{-43, -2},
		{-100, -2},
		{-101, -3},
	}
	for _, c := range cases {
		if got := Gap(c.year); got != c.want {
			t.Errorf("Gap(%d) = %d, want %d", c.year, got, c.want)
		}
	}
}

func TestGap_1900And2000Match(t *testing.T) {
	if Gap(1900) != Gap(2000) {
		t.Fatalf("Gap(1900) = %d, Gap(2000) = %d; a year divisible by 400 adds no day", Gap(1900), Gap(2000))
	}
}

func TestTransitionPhase(t *testing.T) {
	cases := []struct {
		in   time.Time
		want Phase
	}{
		{date(1901, time.January, 1), Steady},
		{date(2000, time.March, 14), Steady},
		{date(1900, time.January, 1), Before},
		{date(1900, time.March, 12), Before},
		{date(1900, time.March, 13), At},
		{date(1900, time.March, 13).Add(15 * time.Hour), At},
		{date(1900, time.March, 14), After},
		{date(1900, time.December, 31), After},
		{date(-100, time.February, 25), Before},
		{date(-100, time.February, 26), At},
		{date(-100, time.February, 27), After},
	}
	for _, c := range cases {
		if got := TransitionPhase(c.in); got != c.want {
			t.Errorf("TransitionPhase(%s) = %s, want %s", c.in.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestToJulian(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want Date
	}{
		{"gregorian reform", date(1582, time.October, 15), Date{1582, time.October, 5}},
		{"steady year after century", date(1901, time.January, 1), Date{1900, time.December, 19}},
		{"century before transition", date(1900, time.January, 1), Date{1899, time.December, 20}},
		{"day before transition", date(1900, time.March, 12), Date{1900, time.February, 28}},
		{"synthetic leap day", date(1900, time.March, 13), Date{1900, time.February, 29}},
		{"day after transition", date(1900, time.March, 14), Date{1900, time.March, 1}},
		{"divisible by 400", date(2000, time.January, 1), Date{1999, time.December, 19}},
		{"1700 leap day", date(1700, time.March, 11), Date{1700, time.February, 29}},
		{"ides of march", date(-43, time.March, 15), Date{-43, time.March, 17}},
		{"bce century leap day", date(-100, time.February, 26), Date{-100, time.February, 29}},
		{"bce century after", date(-100, time.February, 27), Date{-100, time.March, 1}},
		{"lower bound", date(MinYear, time.June, 1), FromTime(date(MinYear, time.June, 1).AddDate(0, 0, -Gap(MinYear)))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := ToJulian(c.in)
			if !ok {
				t.Fatalf("ToJulian(%s) unsupported", c.in.Format("2006-01-02"))
			}
			if got != c.want {
				t.Fatalf("ToJulian(%s) = %+v, want %+v", c.in.Format("2006-01-02"), got, c.want)
			}
		})
	}
}

func TestToJulian_1901IsThirteenDaysBehind(t *testing.T) {
	in := date(1901, time.January, 1)
	got, _ := ToJulian(in)
	back := date(got.Year, got.Month, got.Day)
	if diff := in.Sub(back); diff != 13*24*time.Hour {
		t.Fatalf("difference = %s, want 13 days", diff)
	}
}

func TestToJulian_Unsupported(t *testing.T) {
	for _, y := range []int{MinYear - 1, MaxYear, MaxYear + 500} {
		if _, ok := ToJulian(date(y, time.January, 1)); ok {
			t.Errorf("ToJulian(year %d) should be unsupported", y)
		}
	}
	if _, ok := ToJulian(date(MaxYear-1, time.January, 1)); !ok {
		t.Errorf("ToJulian(year %d) should be supported", MaxYear-1)
	}
}

func TestHistoricalYear(t *testing.T) {
	cases := []struct{ in, want int }{
		{2024, 2024},
		{1, 1},
		{0, -1},
		{-43, -44},
		{-4999, -5000},
	}
	for _, c := range cases {
		if got := HistoricalYear(c.in); got != c.want {
			t.Errorf("HistoricalYear(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestAstronomicalYear(t *testing.T) {
	cases := []struct{ in, want int }{
		{1, 0},
		{44, -43},
		{-5000, -4999},
		{5000, -4999},
	}
	for _, c := range cases {
		if got := AstronomicalYear(c.in); got != c.want {
			t.Errorf("AstronomicalYear(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestDisplayYear(t *testing.T) {
	if got := DisplayYear(-44); got != "44BCE" {
		t.Errorf("DisplayYear(-44) = %q", got)
	}
	if got := DisplayYear(1900); got != "1900" {
		t.Errorf("DisplayYear(1900) = %q", got)
	}
}

func TestDateString(t *testing.T) {
	cases := []struct {
		in   Date
		want string
	}{
		{Date{-43, time.March, 15}, "15/3/44BCE"},
		{Date{0, time.January, 1}, "1/1/1BCE"},
		{Date{1900, time.February, 29}, "29/2/1900"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("%+v.String() = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDaysIn(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2000, time.February, 29},
		{1900, time.February, 28},
		{0, time.February, 29},
		{-4, time.February, 29},
		{-100, time.February, 28},
		{2023, time.April, 30},
		{2023, time.December, 31},
	}
	for _, c := range cases {
		if got := DaysIn(c.year, c.month); got != c.want {
			t.Errorf("DaysIn(%d, %s) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}
