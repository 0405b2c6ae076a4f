package entity

import "time"

// Roles válidos para Operator.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// Operator representa un usuario del panel administrativo (pertenece a un parqueadero).
type Operator struct {
	ID           string
	LotID        string
	Email        string
	PasswordHash string // bcrypt hash
	Name         string
	Role         string // admin, operador
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
