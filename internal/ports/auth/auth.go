package auth

import "context"

// RoleAdmin es el único rol que opera la guardería.
const RoleAdmin = "admin"

// Claims es lo que queda en el contexto del request tras autenticar.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// AuthVerifier valida un bearer token. Con nil el router queda en modo dev.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
