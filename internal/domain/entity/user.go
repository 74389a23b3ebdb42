package entity

import "time"

// Papéis de usuário.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User representa um usuário da aplicação.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | operador
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
