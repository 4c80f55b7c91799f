package billing

import "time"

// Bucket es la clasificación fina usada por la agenda.
type Bucket string

const (
	BucketToday     Bucket = "today"
	BucketUpcoming  Bucket = "upcoming"
	BucketCompleted Bucket = "completed"
)

// FinancialStatus es la clasificación gruesa usada por finanzas.
type FinancialStatus string

const (
	StatusPending    FinancialStatus = "pending"
	StatusTerminated FinancialStatus = "terminated"
)

// Agenda agrupa guarderías en hoy / próximas / terminadas.
type Agenda struct {
	Today     []Booking
	Upcoming  []Booking
	Completed []Booking
}

// Today trunca now a medianoche en loc y lo devuelve como fecha calendario.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc != nil {
		now = now.In(loc)
	}
	return civilDate(now)
}

// civilDate conserva solo año/mes/día. Las visitas se guardan como DATE y el
// driver puede devolverlas en UTC o en hora local; comparamos por calendario.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Classify aplica las reglas en orden: una visita hoy gana sobre cualquier otra,
// luego alguna visita futura, y si no queda nada es terminada (también sin visitas).
func Classify(visits []Visit, today time.Time) Bucket {
	today = civilDate(today)

	for _, v := range visits {
		if civilDate(v.Date).Equal(today) {
			return BucketToday
		}
	}
	for _, v := range visits {
		if civilDate(v.Date).After(today) {
			return BucketUpcoming
		}
	}
	return BucketCompleted
}

// Partition reparte todas las guarderías; cada una cae en exactamente un grupo.
func Partition(bookings []Booking, today time.Time) Agenda {
	out := Agenda{
		Today:     make([]Booking, 0),
		Upcoming:  make([]Booking, 0),
		Completed: make([]Booking, 0),
	}
	for _, b := range bookings {
		switch Classify(b.Visits, today) {
		case BucketToday:
			out.Today = append(out.Today, b)
		case BucketUpcoming:
			out.Upcoming = append(out.Upcoming, b)
		default:
			out.Completed = append(out.Completed, b)
		}
	}
	return out
}

// FinancialStatusOf: terminada si todas las visitas son anteriores a hoy
// (vacío cuenta como terminada), pendiente si alguna es hoy o después.
func FinancialStatusOf(visits []Visit, today time.Time) FinancialStatus {
	today = civilDate(today)
	for _, v := range visits {
		if !civilDate(v.Date).Before(today) {
			return StatusPending
		}
	}
	return StatusTerminated
}
