package dto

type CrearVehiculoRequest struct {
	Placa        string `json:"placa"         validate:"required,min=1,max=20"`
	TipoVehiculo string `json:"tipo_vehiculo" validate:"required,min=1,max=20"`
	PersonaID    string `json:"persona_id"    validate:"required,uuid"`
}

type VehiculoResponse struct {
	ID           string `json:"id"`
	Placa        string `json:"placa"`
	TipoVehiculo string `json:"tipo_vehiculo"`
	PersonaID    string `json:"persona_id"`
}

type CrearVehiculoResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}
