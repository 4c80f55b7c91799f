package billing

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func visitsOn(dates ...time.Time) []Visit {
	out := make([]Visit, 0, len(dates))
	for _, d := range dates {
		out = append(out, Visit{Date: d})
	}
	return out
}

func TestClassify_Priority(t *testing.T) {
	today := day(2025, 3, 10)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	if got := Classify(visitsOn(yesterday, today), today); got != BucketToday {
		t.Fatalf("past+today: got %s", got)
	}
	if got := Classify(visitsOn(tomorrow, today.AddDate(0, 0, 5)), today); got != BucketUpcoming {
		t.Fatalf("future only: got %s", got)
	}
	if got := Classify(visitsOn(yesterday, today.AddDate(0, 0, -7)), today); got != BucketCompleted {
		t.Fatalf("past only: got %s", got)
	}
	// pasado + futuro sin hoy => próxima
	if got := Classify(visitsOn(yesterday, tomorrow), today); got != BucketUpcoming {
		t.Fatalf("past+future: got %s", got)
	}
}

func TestClassify_NoVisits(t *testing.T) {
	if got := Classify(nil, day(2025, 3, 10)); got != BucketCompleted {
		t.Fatalf("no visits: got %s", got)
	}
	if got := FinancialStatusOf(nil, day(2025, 3, 10)); got != StatusTerminated {
		t.Fatalf("no visits financial: got %s", got)
	}
}

func TestClassify_IgnoresClockTime(t *testing.T) {
	today := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	v := []Visit{{Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)}}
	if got := Classify(v, today); got != BucketToday {
		t.Fatalf("got %s", got)
	}
}

func TestToday_UsesLocation(t *testing.T) {
	bogota := time.FixedZone("COT", -5*60*60)
	// 02:00 UTC del 11 es todavía el 10 en Bogotá.
	now := time.Date(2025, 3, 11, 2, 0, 0, 0, time.UTC)

	if got := Today(now, bogota); !got.Equal(day(2025, 3, 10)) {
		t.Fatalf("got %s", got)
	}
	if got := Today(now, time.UTC); !got.Equal(day(2025, 3, 11)) {
		t.Fatalf("got %s", got)
	}
}

func TestPartition_ExhaustiveAndDisjoint(t *testing.T) {
	today := day(2025, 3, 10)
	bookings := []Booking{
		{ID: "a", Visits: visitsOn(today)},
		{ID: "b", Visits: visitsOn(today.AddDate(0, 0, 2))},
		{ID: "c", Visits: visitsOn(today.AddDate(0, 0, -2))},
		{ID: "d"},
		{ID: "e", Visits: visitsOn(today.AddDate(0, 0, -1), today, today.AddDate(0, 0, 1))},
	}

	a := Partition(bookings, today)

	seen := map[string]int{}
	for _, group := range [][]Booking{a.Today, a.Upcoming, a.Completed} {
		for _, b := range group {
			seen[b.ID]++
		}
	}
	if len(seen) != len(bookings) {
		t.Fatalf("expected %d bookings, got %d", len(bookings), len(seen))
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("booking %s appears %d times", id, n)
		}
	}

	if len(a.Today) != 2 || len(a.Upcoming) != 1 || len(a.Completed) != 2 {
		t.Fatalf("unexpected sizes: today=%d upcoming=%d completed=%d", len(a.Today), len(a.Upcoming), len(a.Completed))
	}
}

func TestFinancialStatusOf(t *testing.T) {
	today := day(2025, 3, 10)

	cases := []struct {
		name   string
		visits []Visit
		want   FinancialStatus
	}{
		{"all past", visitsOn(today.AddDate(0, 0, -3), today.AddDate(0, 0, -1)), StatusTerminated},
		{"one today", visitsOn(today.AddDate(0, 0, -3), today), StatusPending},
		{"future", visitsOn(today.AddDate(0, 1, 0)), StatusPending},
	}

	for _, c := range cases {
		if got := FinancialStatusOf(c.visits, today); got != c.want {
			t.Fatalf("%s: got %s want %s", c.name, got, c.want)
		}
	}
}
