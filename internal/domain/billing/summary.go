package billing

import "time"

// Summary es la vista conciliada de una guardería: total, abonos, saldo, reparto y estado.
type Summary struct {
	BookingID     string
	ClientID      string
	ClientName    string
	CatNames      []string
	CatCount      int
	Visits        []Visit
	VisitCount    int
	PricePerVisit int64
	Total         int64
	AmountPaid    int64
	Balance       int64
	Settled       bool
	Split         Split
	Status        FinancialStatus
	Payments      []Payment
}

// FinanceReport separa los resúmenes en pendientes y terminadas.
type FinanceReport struct {
	Pending    []Summary
	Terminated []Summary
}

// BuildSummary compone precio, total, abonos, saldo, reparto y estado de una guardería.
// Settled usa igualdad exacta: los montos son enteros.
func BuildSummary(b Booking, ledger *Ledger, today time.Time) Summary {
	catCount := b.CatCount()
	visitCount := len(b.Visits)
	total := TotalDue(visitCount, catCount)

	var paid int64
	payments := []Payment{}
	if ledger != nil {
		paid = ledger.AmountPaid(b.ID)
		payments = ledger.Payments(b.ID)
	}
	balance := total - paid

	catNames := make([]string, len(b.Client.CatNames))
	copy(catNames, b.Client.CatNames)

	return Summary{
		BookingID:     b.ID,
		ClientID:      b.ClientID,
		ClientName:    b.Client.Name,
		CatNames:      catNames,
		CatCount:      catCount,
		Visits:        b.Visits,
		VisitCount:    visitCount,
		PricePerVisit: PricePerVisit(catCount),
		Total:         total,
		AmountPaid:    paid,
		Balance:       balance,
		Settled:       balance == 0,
		Split:         SplitRevenue(total),
		Status:        FinancialStatusOf(b.Visits, today),
		Payments:      payments,
	}
}

// BuildFinanceReport recalcula todos los resúmenes del snapshot.
func BuildFinanceReport(snap Snapshot, today time.Time) FinanceReport {
	ledger := NewLedger(snap.Payments)

	bookings := make([]Booking, len(snap.Bookings))
	copy(bookings, snap.Bookings)
	sortByFirstVisit(bookings)

	out := FinanceReport{
		Pending:    make([]Summary, 0),
		Terminated: make([]Summary, 0),
	}
	for _, b := range bookings {
		s := BuildSummary(b, ledger, today)
		if s.Status == StatusTerminated {
			out.Terminated = append(out.Terminated, s)
		} else {
			out.Pending = append(out.Pending, s)
		}
	}
	return out
}
