package service

import "errors"

// Sentinel errors classified by the handler layer into HTTP statuses.
// The messages double as the user-facing business messages, so they keep the
// exact wording the frontend already relies on.
var (
	ErrPersonaNoEncontrada   = errors.New("Persona no encontrada")
	ErrDocumentoRegistrado   = errors.New("El número de documento ya está registrado")
	ErrEmailRegistrado       = errors.New("El email ya está registrado")
	ErrEmailInvalido         = errors.New("Formato de email inválido")
	ErrRolInvalido           = errors.New("Rol inválido")
	ErrCredencialesInvalidas = errors.New("Credenciales inválidas")
	ErrUsuarioNoEncontrado   = errors.New("Usuario no encontrado")
	ErrVehiculoNoEncontrado  = errors.New("Vehículo no encontrado")
	ErrPersonaNoValida       = errors.New("La persona asociada no existe o está inactiva")
	ErrTokenInvalido         = errors.New("Token inválido o expirado")
)
