package billing

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxAmount es el tope de un abono individual (en pesos).
const MaxAmount int64 = 1_000_000_000_000

// Ledger es la vista en memoria de los pagos registrados. No persiste nada:
// después de escribir en el store, quien lo usa debe volver a leer los pagos
// y construir un Ledger nuevo.
type Ledger struct {
	payments []Payment
}

func NewLedger(payments []Payment) *Ledger {
	cp := make([]Payment, len(payments))
	copy(cp, payments)
	return &Ledger{payments: cp}
}

// AmountPaid suma los abonos de una guardería (0 si no hay).
func (l *Ledger) AmountPaid(bookingID string) int64 {
	var total int64
	for _, p := range l.payments {
		if p.BookingID == bookingID {
			total += p.Amount
		}
	}
	return total
}

// Payments devuelve los abonos de una guardería ordenados por fecha.
func (l *Ledger) Payments(bookingID string) []Payment {
	out := make([]Payment, 0)
	for _, p := range l.payments {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PaidAt.Before(out[j].PaidAt)
	})
	return out
}

// Record valida y agrega un abono a la vista.
func (l *Ledger) Record(bookingID string, amount float64, method PaymentMethod, at time.Time) (Payment, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return Payment{}, ErrNotFound
	}

	units, err := ValidateAmount(amount)
	if err != nil {
		return Payment{}, err
	}

	m, err := ParsePaymentMethod(string(method))
	if err != nil {
		return Payment{}, err
	}

	if paid := l.AmountPaid(bookingID); units > math.MaxInt64-paid {
		return Payment{}, ErrInvalidAmount
	}

	p := Payment{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Amount:    units,
		Method:    m,
		PaidAt:    at,
	}
	l.payments = append(l.payments, p)
	return p, nil
}

// Remove quita un abono por id.
func (l *Ledger) Remove(paymentID string) (Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	for i, p := range l.payments {
		if p.ID == paymentID {
			l.payments = append(l.payments[:i], l.payments[i+1:]...)
			return p, nil
		}
	}
	return Payment{}, ErrNotFound
}

// Find busca un abono por id.
func (l *Ledger) Find(paymentID string) (Payment, bool) {
	for _, p := range l.payments {
		if p.ID == paymentID {
			return p, true
		}
	}
	return Payment{}, false
}

// ValidateAmount exige un monto positivo, finito, en unidades enteras y no
// mayor que MaxAmount.
func ValidateAmount(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, ErrInvalidAmount
	}
	if amount != math.Trunc(amount) || amount > float64(MaxAmount) {
		return 0, ErrInvalidAmount
	}
	return int64(amount), nil
}
