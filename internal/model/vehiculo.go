package model

import (
	"time"

	"github.com/google/uuid"
)

// Vehiculo belongs to a Persona. Placa is stored truncated to 10 characters
// and TipoVehiculo lowercased (normalization happens in the service layer).
type Vehiculo struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Placa        string    `gorm:"type:varchar(10);not null" json:"placa"`
	TipoVehiculo string    `gorm:"column:tipo_vehiculo;type:varchar(20);not null" json:"tipo_vehiculo"`
	PersonaID    uuid.UUID `gorm:"column:persona_id;type:uuid;not null" json:"persona_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Vehiculo) TableName() string { return "vehiculos" }
