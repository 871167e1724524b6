package model

import (
	"time"

	"github.com/google/uuid"
)

// Persona is a registered visitor or resident tracked by the gate.
// Rows are never physically removed: Activo=false marks a soft delete and the
// row stays reachable by id/documento lookups.
type Persona struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nombre          string    `gorm:"not null" json:"nombre"`
	Apellido        string    `gorm:"not null" json:"apellido"`
	TipoDocumento   string    `gorm:"column:tipo_documento;type:varchar(10);not null" json:"tipo_documento"`
	NumeroDocumento string    `gorm:"column:numero_documento;uniqueIndex;not null" json:"numero_documento"`
	Telefono        *string   `json:"telefono"`
	Correo          *string   `json:"correo"`
	TipoRol         string    `gorm:"column:tipo_rol;type:varchar(20);not null" json:"tipo_rol"`
	Activo          bool      `gorm:"not null;default:true" json:"activo"`
	FechaRegistro   time.Time `gorm:"column:fecha_registro;autoCreateTime" json:"fecha_registro"`

	Vehiculos []Vehiculo `gorm:"foreignKey:PersonaID" json:"-"`
}

func (Persona) TableName() string { return "personas" }
