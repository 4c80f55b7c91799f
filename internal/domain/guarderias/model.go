package guarderias

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Guarderia es un servicio contratado por un cliente: una o más visitas.
type Guarderia struct {
	ID        string
	ClientID  string
	Visits    []Visit
	CreatedAt time.Time
}

type Visit struct {
	ID          string
	GuarderiaID string
	Date        time.Time // solo fecha, en UTC
	Time        string    // HH:MM opcional
}
