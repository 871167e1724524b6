package repository

import (
	"context"
	"strings"

	"github.com/Jhoansandoval1233/api-control-acceso/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	List(ctx context.Context) ([]model.Usuario, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	FindByDocumento(ctx context.Context, numeroDocumento string) (*model.Usuario, error)
	FindByDocumentoNombre(ctx context.Context, documento, nombre string) (*model.Usuario, error)
	Update(ctx context.Context, u *model.Usuario) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	TouchUltimoAcceso(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) List(ctx context.Context) ([]model.Usuario, error) {
	var users []model.Usuario
	err := r.db.WithContext(ctx).Order("fecha_creacion DESC").Find(&users).Error
	return users, err
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

// FindByEmail is case-insensitive: emails are stored lowercased and the input
// is lowercased before matching. Returns the full row, hash included — for
// internal auth use only.
func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		First(&u, "email = ?", strings.ToLower(email)).Error
	return &u, err
}

func (r *usuarioRepo) FindByDocumento(ctx context.Context, numeroDocumento string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		First(&u, "numero_documento = ?", numeroDocumento).Error
	return &u, err
}

// FindByDocumentoNombre backs the no-login password reset: exact document plus
// a substring match against the concatenated full name (case-sensitive, as the
// original flow defined it).
func (r *usuarioRepo) FindByDocumentoNombre(ctx context.Context, documento, nombre string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Where("numero_documento = ? AND (nombre || ' ' || apellido) LIKE ?", documento, "%"+nombre+"%").
		First(&u).Error
	return &u, err
}

// Update overwrites every mutable field by id. The hash is untouched:
// password changes go through UpdatePassword only.
func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{
			"email":            u.Email,
			"rol":              u.Rol,
			"nombre":           u.Nombre,
			"apellido":         u.Apellido,
			"numero_documento": u.NumeroDocumento,
			"telefono":         u.Telefono,
		}).Error
}

func (r *usuarioRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

func (r *usuarioRepo) TouchUltimoAcceso(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("id = ?", id).
		Update("ultimo_acceso", gorm.Expr("CURRENT_TIMESTAMP")).Error
}

// Delete is a hard delete — usuarios have no soft-delete lifecycle.
func (r *usuarioRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Usuario{}, "id = ?", id).Error
}
