package model

import "testing"

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"9:00 AM", 540},
		{"2:30 PM", 870},
		{"12:00 AM", 0},
		{"12:00 PM", 720},
		{"14:30", 870},
		{"9", 540},
		{"9AM", 540},
		{"11:59 PM", 1439},
		{"", 0},
		{"noon", 0},
	}
	for _, c := range cases {
		if got := TimeToMinutes(c.in); got != c.want {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestMinutesToTime(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "12:00 AM"},
		{540, "9:00 AM"},
		{720, "12:00 PM"},
		{870, "2:30 PM"},
		{1439, "11:59 PM"},
	}
	for _, c := range cases {
		if got := MinutesToTime(c.in); got != c.want {
			t.Errorf("MinutesToTime(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTimesOverlap(t *testing.T) {
	if !TimesOverlap("9:00 AM", "10:00 AM", "9:30 AM", "10:30 AM") {
		t.Errorf("expected overlap")
	}
	// Back-to-back intervals share a boundary but do not overlap.
	if TimesOverlap("9:00 AM", "10:00 AM", "10:00 AM", "11:00 AM") {
		t.Errorf("back-to-back must not overlap")
	}
	if !TimesOverlap("9:00 AM", "10:00 AM", "9:59 AM", "11:00 AM") {
		t.Errorf("one-minute overlap must conflict")
	}
	if TimesOverlap("9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM") {
		t.Errorf("disjoint intervals must not overlap")
	}
}
