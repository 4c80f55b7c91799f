package rabbitmq

import (
	"time"

	"guarderia-felina/internal/domain/billing"
)

const (
	EventPaymentRecorded = "payment.recorded"
	EventPaymentRemoved  = "payment.removed"
	EventBookingDeleted  = "booking.deleted"
)

// Event es el mensaje publicado en la cola de pagos. Lleva el saldo ya
// recalculado para que los consumidores no tengan que leer la base.
type Event struct {
	Type        string `json:"type"`
	GuarderiaID string `json:"guarderia_id"`
	PagoID      string `json:"pago_id,omitempty"`
	Monto       int64  `json:"monto,omitempty"`
	FormaPago   string `json:"forma_pago,omitempty"`
	Total       int64  `json:"total"`
	TotalPagado int64  `json:"total_pagado"`
	Saldo       int64  `json:"saldo"`
	SinDeuda    bool   `json:"sin_deuda"`
	OccurredAt  string `json:"occurred_at"`
}

func paymentEvent(kind string, p billing.Payment, s billing.Summary, at time.Time) Event {
	return Event{
		Type:        kind,
		GuarderiaID: p.BookingID,
		PagoID:      p.ID,
		Monto:       p.Amount,
		FormaPago:   string(p.Method),
		Total:       s.Total,
		TotalPagado: s.AmountPaid,
		Saldo:       s.Balance,
		SinDeuda:    s.Settled,
		OccurredAt:  at.UTC().Format(time.RFC3339),
	}
}
