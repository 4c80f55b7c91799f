package clients

import "context"

// Repository guarda clientes junto con sus gatos.
// Update reemplaza la lista completa de gatos; Delete borra primero los gatos.
type Repository interface {
	Create(ctx context.Context, c Client) error
	Update(ctx context.Context, c Client) error
	GetByID(ctx context.Context, id string) (Client, error)
	List(ctx context.Context) ([]Client, error)
	Delete(ctx context.Context, id string) error
}
