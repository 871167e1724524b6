package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// CrearUsuarioRequest is the direct admin-facing creation endpoint.
// Role membership is checked in the service so the allowed subset stays a
// separately configurable rule from the self-registration one.
type CrearUsuarioRequest struct {
	Email           string  `json:"email"    validate:"required,email"`
	Password        string  `json:"password" validate:"required"`
	Rol             string  `json:"rol"      validate:"required"`
	Nombre          string  `json:"nombre"`
	Apellido        string  `json:"apellido"`
	NumeroDocumento *string `json:"numero_documento"`
	Telefono        *string `json:"telefono"`
}

// ActualizarUsuarioRequest overwrites every mutable field by id.
// No business validation at this layer, matching the original contract.
type ActualizarUsuarioRequest struct {
	Email           string  `json:"email"    validate:"required,email"`
	Rol             string  `json:"rol"      validate:"required"`
	Nombre          string  `json:"nombre"`
	Apellido        string  `json:"apellido"`
	NumeroDocumento *string `json:"numero_documento"`
	Telefono        *string `json:"telefono"`
}

type RegistroRequest struct {
	Nombre          string  `json:"nombre"           validate:"required"`
	Apellido        string  `json:"apellido"         validate:"required"`
	NumeroDocumento string  `json:"numero_documento" validate:"required"`
	Telefono        *string `json:"telefono"`
	Email           string  `json:"email"            validate:"required"`
	Rol             string  `json:"rol"              validate:"required"`
	Password        string  `json:"password"         validate:"required"`
}

// ResetPasswordRequest gates the no-login recovery path on an identity claim
// (documento + full-name substring), never on the old password.
type ResetPasswordRequest struct {
	Documento       string `json:"documento"       validate:"required"`
	Nombre          string `json:"nombre"          validate:"required"`
	NuevaContrasena string `json:"nuevaContrasena" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UsuarioResponse projects only non-sensitive columns; the hash never leaves
// the service layer.
type UsuarioResponse struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	Rol           string  `json:"rol"`
	FechaCreacion string  `json:"fecha_creacion"`
	UltimoAcceso  *string `json:"ultimo_acceso"`
}

type UsuarioPublico struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Rol   string `json:"rol"`
}

type LoginResponse struct {
	Success      bool           `json:"success"`
	Message      string         `json:"message"`
	Token        string         `json:"token"`
	RefreshToken string         `json:"refresh_token"`
	User         UsuarioPublico `json:"user"`
}

type CrearUsuarioResponse struct {
	Message string         `json:"message"`
	ID      string         `json:"id"`
	Usuario UsuarioPublico `json:"usuario"`
}

type RegistroResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
