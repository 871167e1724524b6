package repository

import (
	"context"

	"github.com/Jhoansandoval1233/api-control-acceso/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehiculoRepository interface {
	Create(ctx context.Context, v *model.Vehiculo) error
	List(ctx context.Context) ([]model.Vehiculo, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vehiculo, error)
	ListByPersona(ctx context.Context, personaID uuid.UUID) ([]model.Vehiculo, error)
}

type vehiculoRepo struct{ db *gorm.DB }

func NewVehiculoRepository(db *gorm.DB) VehiculoRepository { return &vehiculoRepo{db: db} }

func (r *vehiculoRepo) Create(ctx context.Context, v *model.Vehiculo) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vehiculoRepo) List(ctx context.Context) ([]model.Vehiculo, error) {
	var vehiculos []model.Vehiculo
	err := r.db.WithContext(ctx).Find(&vehiculos).Error
	return vehiculos, err
}

func (r *vehiculoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Vehiculo, error) {
	var v model.Vehiculo
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	return &v, err
}

func (r *vehiculoRepo) ListByPersona(ctx context.Context, personaID uuid.UUID) ([]model.Vehiculo, error) {
	var vehiculos []model.Vehiculo
	err := r.db.WithContext(ctx).Where("persona_id = ?", personaID).Find(&vehiculos).Error
	return vehiculos, err
}
