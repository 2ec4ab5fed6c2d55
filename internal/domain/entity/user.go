package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin   = "ADMIN"
	RoleUsuario = "USUARIO"
)

// User almacena credenciales de acceso. El sistema guarda usuarios y emite tokens
// en el login, pero ninguna ruta de la API exige autenticación (la autorización de
// peticiones queda fuera del núcleo).
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	Role         string
	Active       bool
	CreatedAt    time.Time
}
