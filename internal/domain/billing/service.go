package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"guarderia-felina/internal/platform/logger"
)

// Options agrupa las dependencias opcionales del servicio.
type Options struct {
	Notifier Notifier
	Logger   logger.Logger

	// Location define qué es "hoy". Si es nil se usa time.Local.
	Location *time.Location
}

// Service lee un snapshot del store, recalcula con las funciones puras y
// escribe pagos. No guarda estado entre llamadas.
type Service struct {
	store    Store
	notifier Notifier
	log      logger.Logger
	loc      *time.Location
	now      func() time.Time
}

func NewService(store Store, opts Options) *Service {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}
	return &Service{
		store:    store,
		notifier: opts.Notifier,
		log:      log.With(map[string]any{"module": "billing"}),
		loc:      loc,
		now:      time.Now,
	}
}

// Today es la fecha calendario actual en la zona del negocio.
func (s *Service) Today() time.Time {
	return Today(s.now(), s.loc)
}

// Snapshot trae guarderías y pagos del store.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	bookings, err := s.store.ListBookings(ctx)
	if err != nil {
		return Snapshot{}, storeErr(err)
	}
	payments, err := s.store.ListPayments(ctx, "")
	if err != nil {
		return Snapshot{}, storeErr(err)
	}
	for i := range bookings {
		sortVisits(bookings[i].Visits)
	}
	return Snapshot{Bookings: bookings, Payments: payments}, nil
}

// Agenda clasifica todas las guarderías en hoy / próximas / terminadas.
func (s *Service) Agenda(ctx context.Context) (Agenda, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return Agenda{}, err
	}
	sortByFirstVisit(snap.Bookings)
	return Partition(snap.Bookings, s.Today()), nil
}

func (s *Service) FinanceReport(ctx context.Context) (FinanceReport, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return FinanceReport{}, err
	}
	return BuildFinanceReport(snap, s.Today()), nil
}

// Summary recalcula una sola guardería.
func (s *Service) Summary(ctx context.Context, bookingID string) (Summary, error) {
	b, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return Summary{}, err
	}
	return s.refresh(ctx, b)
}

// Payments lista los abonos de una guardería existente.
func (s *Service) Payments(ctx context.Context, bookingID string) ([]Payment, error) {
	b, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	items, err := s.store.ListPayments(ctx, b.ID)
	if err != nil {
		return nil, storeErr(err)
	}
	return NewLedger(items).Payments(b.ID), nil
}

// RecordPayment registra un abono y devuelve el resumen ya refrescado desde el store.
func (s *Service) RecordPayment(ctx context.Context, bookingID string, amount float64, method PaymentMethod) (Payment, Summary, error) {
	// Validar antes de tocar el store.
	if _, err := ValidateAmount(amount); err != nil {
		return Payment{}, Summary{}, err
	}
	if _, err := ParsePaymentMethod(string(method)); err != nil {
		return Payment{}, Summary{}, err
	}

	b, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return Payment{}, Summary{}, err
	}

	current, err := s.store.ListPayments(ctx, b.ID)
	if err != nil {
		return Payment{}, Summary{}, storeErr(err)
	}

	p, err := NewLedger(current).Record(b.ID, amount, method, s.now())
	if err != nil {
		return Payment{}, Summary{}, err
	}

	if err := s.store.AppendPayment(ctx, p); err != nil {
		return Payment{}, Summary{}, storeErr(err)
	}

	// La vista quedó vieja: se vuelve a leer del store.
	summary, err := s.refresh(ctx, b)
	if err != nil {
		return Payment{}, Summary{}, err
	}

	if s.notifier != nil {
		if err := s.notifier.PaymentRecorded(ctx, p, summary); err != nil {
			s.log.Warn("payment recorded notification failed", map[string]any{
				"booking_id": b.ID,
				"payment_id": p.ID,
				"error":      err.Error(),
			})
		}
	}

	return p, summary, nil
}

// RemovePayment borra un abono y devuelve el resumen refrescado de su guardería.
func (s *Service) RemovePayment(ctx context.Context, paymentID string) (Payment, Summary, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return Payment{}, Summary{}, ErrNotFound
	}

	all, err := s.store.ListPayments(ctx, "")
	if err != nil {
		return Payment{}, Summary{}, storeErr(err)
	}

	p, err := NewLedger(all).Remove(paymentID)
	if err != nil {
		return Payment{}, Summary{}, err
	}

	if err := s.store.DeletePayment(ctx, p.ID); err != nil {
		return Payment{}, Summary{}, storeErr(err)
	}

	summary := Summary{BookingID: p.BookingID}
	b, err := s.findBooking(ctx, p.BookingID)
	switch {
	case err == nil:
		summary, err = s.refresh(ctx, b)
		if err != nil {
			return Payment{}, Summary{}, err
		}
	case errors.Is(err, ErrNotFound):
		// La guardería se borró en paralelo; el pago ya no existe igual.
	default:
		return Payment{}, Summary{}, err
	}

	if s.notifier != nil {
		if err := s.notifier.PaymentRemoved(ctx, p, summary); err != nil {
			s.log.Warn("payment removed notification failed", map[string]any{
				"booking_id": p.BookingID,
				"payment_id": p.ID,
				"error":      err.Error(),
			})
		}
	}

	return p, summary, nil
}

// DeleteBooking borra una guardería presente en el snapshot.
func (s *Service) DeleteBooking(ctx context.Context, bookingID string) error {
	b, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if err := s.store.DeleteBooking(ctx, b.ID); err != nil {
		return storeErr(err)
	}

	if s.notifier != nil {
		if err := s.notifier.BookingDeleted(ctx, b.ID); err != nil {
			s.log.Warn("booking deleted notification failed", map[string]any{
				"booking_id": b.ID,
				"error":      err.Error(),
			})
		}
	}
	return nil
}

func (s *Service) findBooking(ctx context.Context, bookingID string) (Booking, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return Booking{}, ErrNotFound
	}
	bookings, err := s.store.ListBookings(ctx)
	if err != nil {
		return Booking{}, storeErr(err)
	}
	for _, b := range bookings {
		if b.ID == bookingID {
			sortVisits(b.Visits)
			return b, nil
		}
	}
	return Booking{}, ErrNotFound
}

func (s *Service) refresh(ctx context.Context, b Booking) (Summary, error) {
	payments, err := s.store.ListPayments(ctx, b.ID)
	if err != nil {
		return Summary{}, storeErr(err)
	}
	return BuildSummary(b, NewLedger(payments), s.Today()), nil
}

// storeErr deja pasar ErrNotFound y envuelve todo lo demás como ErrStoreUnavailable.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
