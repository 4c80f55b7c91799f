package billing

import (
	"sort"
	"strings"
	"time"
)

// PaymentMethod es el medio con el que se registró un abono.
// @Enum cash, transfer
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodTransfer PaymentMethod = "transfer"
)

// ParsePaymentMethod acepta los valores canónicos y los alias en español
// que usan los formularios (efectivo / transferencia). Vacío => transfer.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(normalize(s)) {
	case "", MethodTransfer, "transferencia":
		return MethodTransfer, nil
	case MethodCash, "efectivo":
		return MethodCash, nil
	default:
		return "", ErrInvalidMethod
	}
}

// Client es la vista del cliente que necesita la facturación: solo identidad y gatos.
type Client struct {
	ID       string
	Name     string
	CatNames []string
}

type Visit struct {
	ID        string
	BookingID string
	Date      time.Time // fecha calendario (año/mes/día)
	Time      string    // HH:MM opcional
}

// Booking es una guardería con su cliente y sus visitas.
type Booking struct {
	ID       string
	ClientID string
	Client   Client
	Visits   []Visit
}

// CatCount se calcula al momento de leer: si el cliente agrega o quita gatos,
// el precio de sus guarderías cambia.
func (b Booking) CatCount() int {
	return len(b.Client.CatNames)
}

// FirstVisit devuelve la fecha más temprana (zero si no hay visitas).
func (b Booking) FirstVisit() time.Time {
	var first time.Time
	for i, v := range b.Visits {
		if i == 0 || v.Date.Before(first) {
			first = v.Date
		}
	}
	return first
}

type Payment struct {
	ID        string
	BookingID string
	Amount    int64
	Method    PaymentMethod
	PaidAt    time.Time
}

// Snapshot es todo lo que el motor necesita para recalcular: guarderías y pagos.
type Snapshot struct {
	Bookings []Booking
	Payments []Payment
}

// Find busca una guardería por id dentro del snapshot.
func (s Snapshot) Find(bookingID string) (Booking, bool) {
	for _, b := range s.Bookings {
		if b.ID == bookingID {
			return b, true
		}
	}
	return Booking{}, false
}

// sortVisits ordena las visitas por fecha (y hora como desempate).
func sortVisits(visits []Visit) {
	sort.SliceStable(visits, func(i, j int) bool {
		if visits[i].Date.Equal(visits[j].Date) {
			return visits[i].Time < visits[j].Time
		}
		return visits[i].Date.Before(visits[j].Date)
	})
}

// sortByFirstVisit ordena como la agenda: primera visita ascendente,
// las guarderías sin visitas al principio.
func sortByFirstVisit(bookings []Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].FirstVisit().Before(bookings[j].FirstVisit())
	})
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
