package memory

import (
	"sync"

	"guarderia-felina/internal/domain/billing"
	"guarderia-felina/internal/domain/clients"
	"guarderia-felina/internal/domain/guarderias"
)

// DB es el estado compartido por los repos en memoria. Clientes, guarderías y
// pagos viven juntos para poder armar el snapshot de facturación y borrar en cascada.
type DB struct {
	mu         sync.RWMutex
	clients    map[string]clients.Client
	guarderias map[string]guarderias.Guarderia
	payments   map[string]billing.Payment
}

func NewDB() *DB {
	return &DB{
		clients:    make(map[string]clients.Client),
		guarderias: make(map[string]guarderias.Guarderia),
		payments:   make(map[string]billing.Payment),
	}
}

// deleteGuarderiaLocked borra la guardería y sus pagos. Requiere mu tomado.
func (db *DB) deleteGuarderiaLocked(id string) {
	delete(db.guarderias, id)
	for pid, p := range db.payments {
		if p.BookingID == id {
			delete(db.payments, pid)
		}
	}
}
