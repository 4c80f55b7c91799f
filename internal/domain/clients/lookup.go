package clients

import (
	"context"
	"errors"
)

// Exists lo usan otros módulos (guarderías) para validar el cliente sin
// importar este paquete completo.
func (s *Service) Exists(ctx context.Context, clientID string) (bool, error) {
	_, err := s.GetByID(ctx, clientID)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
