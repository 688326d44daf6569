package validation

import "testing"

func TestIsTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"00:00", true},
		{"09:30", true},
		{"23:59", true},
		{"24:00", false},
		{"9:30", false},
		{"09:60", false},
		{"09-30", false},
		{"morning", false},
		{"", false},
	}

	for _, c := range cases {
		if got := IsTimeOfDay(c.in); got != c.want {
			t.Errorf("IsTimeOfDay(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
