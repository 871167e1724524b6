package service

import (
	"context"
	"errors"
	"time"

	"github.com/Jhoansandoval1233/api-control-acceso/internal/dto"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/infra"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/model"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PersonaService interface {
	Crear(ctx context.Context, req dto.CrearPersonaRequest) (*dto.CrearPersonaResponse, error)
	Listar(ctx context.Context) (*dto.ListarPersonasResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.PersonaResponse, error)
	BuscarPorDocumento(ctx context.Context, numeroDocumento string) (*dto.BuscarPersonaResponse, error)
	Actualizar(ctx context.Context, numeroDocumento string, req dto.ActualizarPersonaRequest) error
	Eliminar(ctx context.Context, numeroDocumento string) error
	GenerarCarnet(ctx context.Context, numeroDocumento string) (string, error)
}

type personaService struct {
	repo        repository.PersonaRepository
	loc         *time.Location
	storagePath string
}

func NewPersonaService(repo repository.PersonaRepository, loc *time.Location, storagePath string) PersonaService {
	return &personaService{repo: repo, loc: loc, storagePath: storagePath}
}

// formatFecha renders fecha_registro the way the es-CO frontend expects it
// (the original backend used toLocaleString('es-CO')).
func (s *personaService) formatFecha(t time.Time) string {
	t = t.In(s.loc)
	suffix := "a. m."
	if t.Hour() >= 12 {
		suffix = "p. m."
	}
	return t.Format("2/01/2006, 3:04:05") + " " + suffix
}

func (s *personaService) mapPersona(p model.Persona) dto.PersonaResponse {
	return dto.PersonaResponse{
		ID:              p.ID.String(),
		Nombre:          p.Nombre,
		Apellido:        p.Apellido,
		TipoDocumento:   p.TipoDocumento,
		NumeroDocumento: p.NumeroDocumento,
		Telefono:        p.Telefono,
		Correo:          p.Correo,
		TipoRol:         p.TipoRol,
		Activo:          p.Activo,
		FechaRegistro:   s.formatFecha(p.FechaRegistro),
	}
}

// Crear registers a persona. The documento pre-check only exists to produce a
// friendly message on the common path; the unique index on numero_documento is
// the actual enforcement, so a concurrent duplicate surfaces as
// gorm.ErrDuplicatedKey and maps to the same business error.
func (s *personaService) Crear(ctx context.Context, req dto.CrearPersonaRequest) (*dto.CrearPersonaResponse, error) {
	existing, err := s.repo.FindByDocumento(ctx, req.NumeroDocumento)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil && existing != nil {
		return nil, ErrDocumentoRegistrado
	}

	p := &model.Persona{
		Nombre:          req.Nombre,
		Apellido:        req.Apellido,
		TipoDocumento:   req.TipoDocumento,
		NumeroDocumento: req.NumeroDocumento,
		Telefono:        req.Telefono,
		Correo:          req.Correo,
		TipoRol:         req.TipoRol,
		Activo:          true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDocumentoRegistrado
		}
		return nil, err
	}
	return &dto.CrearPersonaResponse{
		Success: true,
		Message: "Persona registrada exitosamente",
		ID:      p.ID.String(),
	}, nil
}

func (s *personaService) Listar(ctx context.Context) (*dto.ListarPersonasResponse, error) {
	personas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.PersonaResponse, 0, len(personas))
	for _, p := range personas {
		data = append(data, s.mapPersona(p))
	}
	return &dto.ListarPersonasResponse{Success: true, Data: data, Total: len(data)}, nil
}

func (s *personaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.PersonaResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonaNoEncontrada
		}
		return nil, err
	}
	resp := s.mapPersona(*p)
	return &resp, nil
}

func (s *personaService) BuscarPorDocumento(ctx context.Context, numeroDocumento string) (*dto.BuscarPersonaResponse, error) {
	p, err := s.repo.FindByDocumento(ctx, numeroDocumento)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonaNoEncontrada
		}
		return nil, err
	}
	resp := s.mapPersona(*p)
	return &dto.BuscarPersonaResponse{
		Mensaje: "Persona encontrada",
		Existe:  true,
		Persona: &resp,
	}, nil
}

// Actualizar overwrites the mutable fields of every row matching the documento.
// Matching zero rows is not distinguished from success, as in the original
// contract (no row-count check).
func (s *personaService) Actualizar(ctx context.Context, numeroDocumento string, req dto.ActualizarPersonaRequest) error {
	p := &model.Persona{
		Nombre:        req.Nombre,
		Apellido:      req.Apellido,
		TipoDocumento: req.TipoDocumento,
		Telefono:      req.Telefono,
		Correo:        req.Correo,
		TipoRol:       req.TipoRol,
	}
	return s.repo.UpdateByDocumento(ctx, numeroDocumento, p)
}

func (s *personaService) Eliminar(ctx context.Context, numeroDocumento string) error {
	return s.repo.SoftDeleteByDocumento(ctx, numeroDocumento)
}

// GenerarCarnet writes the credential PDF for an active persona and returns
// the file path.
func (s *personaService) GenerarCarnet(ctx context.Context, numeroDocumento string) (string, error) {
	p, err := s.repo.FindByDocumento(ctx, numeroDocumento)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrPersonaNoEncontrada
		}
		return "", err
	}
	if !p.Activo {
		return "", ErrPersonaNoEncontrada
	}
	return infra.GenerateCarnetPDF(p, s.storagePath)
}
