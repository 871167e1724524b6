package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Jhoansandoval1233/api-control-acceso/internal/dto"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/model"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plates are stored with at most this many characters; longer inputs are
// silently truncated, matching the table column.
const maxPlacaLen = 10

type VehiculoService interface {
	Crear(ctx context.Context, req dto.CrearVehiculoRequest) (*dto.CrearVehiculoResponse, error)
	Listar(ctx context.Context) ([]dto.VehiculoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.VehiculoResponse, error)
	ListarPorPersona(ctx context.Context, personaID uuid.UUID) ([]dto.VehiculoResponse, error)
}

type vehiculoService struct {
	repo        repository.VehiculoRepository
	personaRepo repository.PersonaRepository
}

func NewVehiculoService(repo repository.VehiculoRepository, personaRepo repository.PersonaRepository) VehiculoService {
	return &vehiculoService{repo: repo, personaRepo: personaRepo}
}

func mapVehiculo(v model.Vehiculo) dto.VehiculoResponse {
	return dto.VehiculoResponse{
		ID:           v.ID.String(),
		Placa:        v.Placa,
		TipoVehiculo: v.TipoVehiculo,
		PersonaID:    v.PersonaID.String(),
	}
}

// Crear normalizes the plate (≤10 chars) and the vehicle type (lowercase), and
// requires persona_id to reference an existing active persona.
func (s *vehiculoService) Crear(ctx context.Context, req dto.CrearVehiculoRequest) (*dto.CrearVehiculoResponse, error) {
	personaID, err := uuid.Parse(req.PersonaID)
	if err != nil {
		return nil, ErrPersonaNoValida
	}

	persona, err := s.personaRepo.FindByID(ctx, personaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonaNoValida
		}
		return nil, err
	}
	if !persona.Activo {
		return nil, ErrPersonaNoValida
	}

	placa := req.Placa
	if len(placa) > maxPlacaLen {
		placa = placa[:maxPlacaLen]
	}

	v := &model.Vehiculo{
		Placa:        placa,
		TipoVehiculo: strings.ToLower(req.TipoVehiculo),
		PersonaID:    personaID,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return &dto.CrearVehiculoResponse{
		Success: true,
		Message: "Vehículo registrado exitosamente",
		ID:      v.ID.String(),
	}, nil
}

func (s *vehiculoService) Listar(ctx context.Context) ([]dto.VehiculoResponse, error) {
	vehiculos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.VehiculoResponse, 0, len(vehiculos))
	for _, v := range vehiculos {
		result = append(result, mapVehiculo(v))
	}
	return result, nil
}

func (s *vehiculoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.VehiculoResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehiculoNoEncontrado
		}
		return nil, err
	}
	resp := mapVehiculo(*v)
	return &resp, nil
}

func (s *vehiculoService) ListarPorPersona(ctx context.Context, personaID uuid.UUID) ([]dto.VehiculoResponse, error) {
	vehiculos, err := s.repo.ListByPersona(ctx, personaID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.VehiculoResponse, 0, len(vehiculos))
	for _, v := range vehiculos {
		result = append(result, mapVehiculo(v))
	}
	return result, nil
}
