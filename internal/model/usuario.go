package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario stores system accounts with role-based access.
// Rol: "admin" | "usuario" | "guarda"
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"` // stored lowercased
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Rol          string    `gorm:"type:varchar(20);not null"`
	Nombre       string
	Apellido     string
	// NumeroDocumento is nullable: the direct creation endpoint may omit it.
	// Postgres allows any number of NULLs under the unique index.
	NumeroDocumento *string    `gorm:"column:numero_documento;uniqueIndex"`
	Telefono        *string
	Activo          bool       `gorm:"not null;default:true"`
	FechaCreacion   time.Time  `gorm:"column:fecha_creacion;autoCreateTime"`
	UltimoAcceso    *time.Time `gorm:"column:ultimo_acceso"`
}

func (Usuario) TableName() string { return "usuarios" }
