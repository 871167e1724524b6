package repository

import (
	"context"

	"github.com/Jhoansandoval1233/api-control-acceso/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PersonaRepository interface {
	Create(ctx context.Context, p *model.Persona) error
	List(ctx context.Context) ([]model.Persona, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Persona, error)
	FindByDocumento(ctx context.Context, numeroDocumento string) (*model.Persona, error)
	UpdateByDocumento(ctx context.Context, numeroDocumento string, p *model.Persona) error
	SoftDeleteByDocumento(ctx context.Context, numeroDocumento string) error
}

type personaRepo struct{ db *gorm.DB }

func NewPersonaRepository(db *gorm.DB) PersonaRepository { return &personaRepo{db: db} }

func (r *personaRepo) Create(ctx context.Context, p *model.Persona) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// List returns only active rows, newest registration first.
func (r *personaRepo) List(ctx context.Context) ([]model.Persona, error) {
	var personas []model.Persona
	err := r.db.WithContext(ctx).
		Where("activo = true").
		Order("fecha_registro DESC").
		Find(&personas).Error
	return personas, err
}

func (r *personaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Persona, error) {
	var p model.Persona
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

// FindByDocumento matches any activo state — soft-deleted rows still count as
// registered for duplicate checks.
func (r *personaRepo) FindByDocumento(ctx context.Context, numeroDocumento string) (*model.Persona, error) {
	var p model.Persona
	err := r.db.WithContext(ctx).First(&p, "numero_documento = ?", numeroDocumento).Error
	return &p, err
}

// UpdateByDocumento overwrites every mutable field; the document number itself
// is immutable. Nil pointers clear the optional columns.
func (r *personaRepo) UpdateByDocumento(ctx context.Context, numeroDocumento string, p *model.Persona) error {
	return r.db.WithContext(ctx).Model(&model.Persona{}).
		Where("numero_documento = ?", numeroDocumento).
		Updates(map[string]interface{}{
			"nombre":         p.Nombre,
			"apellido":       p.Apellido,
			"tipo_documento": p.TipoDocumento,
			"telefono":       p.Telefono,
			"correo":         p.Correo,
			"tipo_rol":       p.TipoRol,
		}).Error
}

func (r *personaRepo) SoftDeleteByDocumento(ctx context.Context, numeroDocumento string) error {
	return r.db.WithContext(ctx).Model(&model.Persona{}).
		Where("numero_documento = ?", numeroDocumento).
		Update("activo", false).Error
}
