package infra

import (
	"github.com/Jhoansandoval1233/api-control-acceso/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// for the three tables. TranslateError is enabled so unique-index violations
// surface as gorm.ErrDuplicatedKey — the storage-level constraints, not the
// pre-insert lookups, are what actually enforce uniqueness of
// personas.numero_documento, usuarios.email and usuarios.numero_documento.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Persona{},
		&model.Usuario{},
		&model.Vehiculo{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
