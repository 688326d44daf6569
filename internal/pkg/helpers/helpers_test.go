package helpers

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	in := time.Date(2026, time.March, 10, 14, 45, 30, 999, time.Local)
	got := StartOfDay(in)
	want := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("StartOfDay(%v) = %v, want %v", in, got, want)
	}
}

func TestCalendarDayKeepsTheStoredDate(t *testing.T) {
	west := time.FixedZone("UTC-5", -5*60*60)

	// A date column scans back as midnight UTC; its calendar day must
	// survive the move into any clock location.
	stored := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	got := CalendarDay(stored, west)
	want := time.Date(2026, time.March, 10, 0, 0, 0, 0, west)
	if !got.Equal(want) {
		t.Fatalf("CalendarDay(%v, UTC-5) = %v, want %v", stored, got, want)
	}

	if converted := stored.In(west); CalendarDay(stored, west).Day() == converted.Day() {
		t.Fatalf("expected the plain location conversion %v to land on another day", converted)
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	cases := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 20, 0, 20},
		{"third page", 3, 10, 20, 10},
		{"zero page clamps to first", 0, 10, 0, 10},
		{"zero size uses default", 2, 0, 20, 20},
		{"oversized size uses default", 1, 500, 0, 20},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(c.page, c.size)
			if offset != c.wantOffset || limit != c.wantLimit {
				t.Fatalf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
					c.page, c.size, offset, limit, c.wantOffset, c.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(93, 2, 20)
	if info.TotalPages != 5 {
		t.Errorf("expected 5 total pages, got %d", info.TotalPages)
	}
	if info.CurrentPage != 2 {
		t.Errorf("expected current page 2, got %d", info.CurrentPage)
	}

	empty := NewPaginationInfo(0, 1, 20)
	if empty.TotalPages != 1 {
		t.Errorf("expected 1 page for an empty list, got %d", empty.TotalPages)
	}

	past := NewPaginationInfo(10, 9, 20)
	if past.CurrentPage != 1 {
		t.Errorf("expected the current page clamped to 1, got %d", past.CurrentPage)
	}
}
