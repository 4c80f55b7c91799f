package billing

import "context"

// Store es el acceso al almacenamiento externo que consume el motor.
// Las implementaciones devuelven ErrNotFound cuando el id no existe.
type Store interface {
	// ListBookings trae todas las guarderías con cliente, gatos y visitas.
	ListBookings(ctx context.Context) ([]Booking, error)

	// ListPayments trae los pagos de una guardería, o todos si bookingID == "".
	ListPayments(ctx context.Context, bookingID string) ([]Payment, error)

	AppendPayment(ctx context.Context, p Payment) error
	DeletePayment(ctx context.Context, paymentID string) error

	// DeleteBooking borra la guardería; visitas y pagos caen en cascada en el store.
	DeleteBooking(ctx context.Context, bookingID string) error
}

// Notifier recibe los cambios ya confirmados en el store (métricas, cola de eventos).
// Los errores no revierten nada; el servicio solo los registra.
type Notifier interface {
	PaymentRecorded(ctx context.Context, p Payment, s Summary) error
	PaymentRemoved(ctx context.Context, p Payment, s Summary) error
	BookingDeleted(ctx context.Context, bookingID string) error
}

// Notifiers reparte cada aviso entre varios Notifier y devuelve el primer error.
type Notifiers []Notifier

func (ns Notifiers) PaymentRecorded(ctx context.Context, p Payment, s Summary) error {
	var first error
	for _, n := range ns {
		if err := n.PaymentRecorded(ctx, p, s); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (ns Notifiers) PaymentRemoved(ctx context.Context, p Payment, s Summary) error {
	var first error
	for _, n := range ns {
		if err := n.PaymentRemoved(ctx, p, s); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (ns Notifiers) BookingDeleted(ctx context.Context, bookingID string) error {
	var first error
	for _, n := range ns {
		if err := n.BookingDeleted(ctx, bookingID); err != nil && first == nil {
			first = err
		}
	}
	return first
}
