package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearPersonaRequest struct {
	Nombre          string  `json:"nombre"           validate:"required,min=1,max=100"`
	Apellido        string  `json:"apellido"         validate:"required,min=1,max=100"`
	TipoDocumento   string  `json:"tipo_documento"   validate:"required,min=1,max=10"`
	NumeroDocumento string  `json:"numero_documento" validate:"required,min=1,max=30"`
	Telefono        *string `json:"telefono"`
	Correo          *string `json:"correo"           validate:"omitempty,email"`
	TipoRol         string  `json:"tipo_rol"         validate:"required,min=1,max=20"`
}

// ActualizarPersonaRequest overwrites every mutable field; numero_documento is
// the match key and comes from the URL, never from the body.
type ActualizarPersonaRequest struct {
	Nombre        string  `json:"nombre"         validate:"required,min=1,max=100"`
	Apellido      string  `json:"apellido"       validate:"required,min=1,max=100"`
	TipoDocumento string  `json:"tipo_documento" validate:"required,min=1,max=10"`
	Telefono      *string `json:"telefono"`
	Correo        *string `json:"correo"         validate:"omitempty,email"`
	TipoRol       string  `json:"tipo_rol"       validate:"required,min=1,max=20"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// PersonaResponse carries FechaRegistro pre-formatted for the es-CO frontend.
type PersonaResponse struct {
	ID              string  `json:"id"`
	Nombre          string  `json:"nombre"`
	Apellido        string  `json:"apellido"`
	TipoDocumento   string  `json:"tipo_documento"`
	NumeroDocumento string  `json:"numero_documento"`
	Telefono        *string `json:"telefono"`
	Correo          *string `json:"correo"`
	TipoRol         string  `json:"tipo_rol"`
	Activo          bool    `json:"activo"`
	FechaRegistro   string  `json:"fecha_registro"`
}

type ListarPersonasResponse struct {
	Success bool              `json:"success"`
	Data    []PersonaResponse `json:"data"`
	Total   int               `json:"total"`
}

type CrearPersonaResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

type BuscarPersonaResponse struct {
	Mensaje string           `json:"mensaje"`
	Existe  bool             `json:"existe"`
	Persona *PersonaResponse `json:"persona,omitempty"`
}

// MensajeResponse is the plain acknowledgement body used by update/delete.
type MensajeResponse struct {
	Mensaje string `json:"mensaje"`
}

// ConsultaAccesoResponse is the trimmed projection served to the gate kiosk.
type ConsultaAccesoResponse struct {
	NombreCompleto  string `json:"nombre_completo"`
	TipoDocumento   string `json:"tipo_documento"`
	NumeroDocumento string `json:"numero_documento"`
	TipoRol         string `json:"tipo_rol"`
	Activo          bool   `json:"activo"`
}
