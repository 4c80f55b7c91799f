package guarderias

import "context"

// Repository guarda la guardería y sus visitas juntas.
type Repository interface {
	Create(ctx context.Context, g Guarderia) error
	GetByID(ctx context.Context, id string) (Guarderia, error)
}

// ClientChecker confirma que el cliente existe (lo implementa clients.Service).
type ClientChecker interface {
	Exists(ctx context.Context, clientID string) (bool, error)
}
