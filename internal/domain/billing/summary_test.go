package billing

import (
	"testing"
	"time"
)

func bookingWith(id string, cats int, visits ...time.Time) Booking {
	names := make([]string, 0, cats)
	for i := 0; i < cats; i++ {
		names = append(names, "gato")
	}
	return Booking{
		ID:       id,
		ClientID: "c-" + id,
		Client:   Client{ID: "c-" + id, Name: "Cliente " + id, CatNames: names},
		Visits:   visitsOn(visits...),
	}
}

func TestBuildSummary_PartialPayments(t *testing.T) {
	today := day(2025, 3, 10)
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	// 4 gatos, 1 visita => 80000
	b := bookingWith("g1", 4, today.AddDate(0, 0, 3))
	l := NewLedger([]Payment{
		{ID: "p1", BookingID: "g1", Amount: 30000, Method: MethodCash, PaidAt: at},
		{ID: "p2", BookingID: "g1", Amount: 20000, Method: MethodTransfer, PaidAt: at.Add(time.Hour)},
		{ID: "px", BookingID: "other", Amount: 70000, Method: MethodTransfer, PaidAt: at},
	})

	s := BuildSummary(b, l, today)
	if s.Total != 80000 || s.AmountPaid != 50000 || s.Balance != 30000 || s.Settled {
		t.Fatalf("unexpected summary: total=%d paid=%d balance=%d settled=%v", s.Total, s.AmountPaid, s.Balance, s.Settled)
	}
	if s.Status != StatusPending {
		t.Fatalf("expected pending, got %s", s.Status)
	}

	if _, err := l.Record("g1", 30000, MethodCash, at.Add(2*time.Hour)); err != nil {
		t.Fatalf("record: %v", err)
	}
	s = BuildSummary(b, l, today)
	if s.Balance != 0 || !s.Settled {
		t.Fatalf("expected settled, balance=%d settled=%v", s.Balance, s.Settled)
	}
	if len(s.Payments) != 3 {
		t.Fatalf("expected 3 payments, got %d", len(s.Payments))
	}
}

func TestBuildSummary_Overpaid(t *testing.T) {
	today := day(2025, 3, 10)
	b := bookingWith("g1", 1, today)
	l := NewLedger([]Payment{{ID: "p1", BookingID: "g1", Amount: 50000}})

	s := BuildSummary(b, l, today)
	if s.Balance != -10000 || s.Settled {
		t.Fatalf("overpaid must be negative and not settled: %+v", s)
	}
}

func TestBuildSummary_NoVisits(t *testing.T) {
	today := day(2025, 3, 10)
	s := BuildSummary(bookingWith("g1", 2), nil, today)

	if s.Total != 0 || s.Balance != 0 || !s.Settled {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.Status != StatusTerminated {
		t.Fatalf("expected terminated, got %s", s.Status)
	}
	if s.Payments == nil {
		t.Fatalf("payments must be empty, not nil")
	}
}

func TestBuildSummary_BalanceIdentity(t *testing.T) {
	today := day(2025, 3, 10)
	for cats := 0; cats <= 6; cats++ {
		b := bookingWith("g", cats, today, today.AddDate(0, 0, 1))
		l := NewLedger([]Payment{{ID: "p", BookingID: "g", Amount: 12345}})
		s := BuildSummary(b, l, today)

		if s.Balance+s.AmountPaid != s.Total {
			t.Fatalf("cats=%d: balance+paid != total (%d+%d != %d)", cats, s.Balance, s.AmountPaid, s.Total)
		}
		if s.Split.Sum() != s.Total {
			t.Fatalf("cats=%d: split does not sum to total", cats)
		}
	}
}

func TestBuildFinanceReport_GroupsAndOrders(t *testing.T) {
	today := day(2025, 3, 10)
	snap := Snapshot{
		Bookings: []Booking{
			bookingWith("late", 1, today.AddDate(0, 0, 9)),
			bookingWith("past", 1, today.AddDate(0, 0, -9)),
			bookingWith("soon", 1, today),
			bookingWith("empty", 1),
		},
	}

	rep := BuildFinanceReport(snap, today)
	if len(rep.Pending) != 2 || len(rep.Terminated) != 2 {
		t.Fatalf("pending=%d terminated=%d", len(rep.Pending), len(rep.Terminated))
	}
	if rep.Pending[0].BookingID != "soon" || rep.Pending[1].BookingID != "late" {
		t.Fatalf("pending not ordered by first visit: %s, %s", rep.Pending[0].BookingID, rep.Pending[1].BookingID)
	}
	// sin visitas va primero (fecha cero)
	if rep.Terminated[0].BookingID != "empty" {
		t.Fatalf("unexpected terminated order: %s", rep.Terminated[0].BookingID)
	}
}
