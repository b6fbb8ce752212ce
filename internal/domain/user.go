package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso: admin gerencia usuários e reconstruções, operator
// dispara ingestão e verificações, reporter apenas consulta.
const (
	RoleAdmin    = 1
	RoleOperator = 2
	RoleReporter = 3
)

// User é um operador do painel de ingestão/consulta.
type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID      int     `json:"id"`
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Active  *bool   `json:"active"`
	RoleID  *int    `json:"role_id"`
	Deleted *bool   `json:"deleted"`
}

type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserActive bool
	UserRoleID int
	jwt.RegisteredClaims
}
