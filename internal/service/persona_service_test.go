package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Jhoansandoval1233/api-control-acceso/internal/dto"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePersonaRepo struct {
	mu   sync.Mutex
	rows []*model.Persona
	// createErr, when set, is returned by Create — simulates a unique-index
	// violation racing past the pre-check.
	createErr error
}

func (r *fakePersonaRepo) Create(_ context.Context, p *model.Persona) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.FechaRegistro = time.Now()
	cp := *p
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakePersonaRepo) List(_ context.Context) ([]model.Persona, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Persona{}
	for _, p := range r.rows {
		if p.Activo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePersonaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Persona, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.rows {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePersonaRepo) FindByDocumento(_ context.Context, doc string) (*model.Persona, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.rows {
		if p.NumeroDocumento == doc {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePersonaRepo) UpdateByDocumento(_ context.Context, doc string, p *model.Persona) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.NumeroDocumento == doc {
			row.Nombre = p.Nombre
			row.Apellido = p.Apellido
			row.TipoDocumento = p.TipoDocumento
			row.Telefono = p.Telefono
			row.Correo = p.Correo
			row.TipoRol = p.TipoRol
		}
	}
	return nil
}

func (r *fakePersonaRepo) SoftDeleteByDocumento(_ context.Context, doc string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.NumeroDocumento == doc {
			row.Activo = false
		}
	}
	return nil
}

var bogota = time.FixedZone("America/Bogota", -5*60*60)

func newPersonaFixture() (PersonaService, *fakePersonaRepo) {
	repo := &fakePersonaRepo{}
	return NewPersonaService(repo, bogota, "/tmp/carnets-test"), repo
}

func reqPersona(doc string) dto.CrearPersonaRequest {
	return dto.CrearPersonaRequest{
		Nombre:          "Carlos",
		Apellido:        "Rojas",
		TipoDocumento:   "CC",
		NumeroDocumento: doc,
		TipoRol:         "visitante",
	}
}

func TestCrearPersonaYBuscar(t *testing.T) {
	svc, _ := newPersonaFixture()

	resp, err := svc.Crear(context.Background(), reqPersona("100200300"))
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Persona registrada exitosamente", resp.Message)
	assert.NotEmpty(t, resp.ID)

	found, err := svc.BuscarPorDocumento(context.Background(), "100200300")
	require.NoError(t, err)
	assert.True(t, found.Existe)
	assert.Equal(t, "Carlos", found.Persona.Nombre)
	assert.True(t, found.Persona.Activo)
}

func TestCrearPersonaDuplicada(t *testing.T) {
	svc, repo := newPersonaFixture()

	_, err := svc.Crear(context.Background(), reqPersona("100200300"))
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), reqPersona("100200300"))
	assert.ErrorIs(t, err, ErrDocumentoRegistrado)
	assert.Len(t, repo.rows, 1)
}

// A concurrent duplicate can slip past the pre-check; the unique index then
// rejects the insert and the caller sees the same business error.
func TestCrearPersonaDuplicadaConcurrente(t *testing.T) {
	svc, repo := newPersonaFixture()
	repo.createErr = gorm.ErrDuplicatedKey

	_, err := svc.Crear(context.Background(), reqPersona("100200300"))
	assert.ErrorIs(t, err, ErrDocumentoRegistrado)
}

func TestEliminarOcultaDeListaPeroSigueRegistrada(t *testing.T) {
	svc, _ := newPersonaFixture()

	_, err := svc.Crear(context.Background(), reqPersona("100200300"))
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(context.Background(), "100200300"))

	lista, err := svc.Listar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, lista.Total)
	assert.Empty(t, lista.Data)

	// Still findable by documento — and still counts as duplicate.
	found, err := svc.BuscarPorDocumento(context.Background(), "100200300")
	require.NoError(t, err)
	assert.False(t, found.Persona.Activo)

	_, err = svc.Crear(context.Background(), reqPersona("100200300"))
	assert.ErrorIs(t, err, ErrDocumentoRegistrado)
}

func TestBuscarPersonaInexistente(t *testing.T) {
	svc, _ := newPersonaFixture()
	_, err := svc.BuscarPorDocumento(context.Background(), "999")
	assert.ErrorIs(t, err, ErrPersonaNoEncontrada)
}

func TestObtenerPorIDInexistente(t *testing.T) {
	svc, _ := newPersonaFixture()
	_, err := svc.ObtenerPorID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPersonaNoEncontrada)
}

// Updating a documento that matches no rows is indistinguishable from success.
func TestActualizarSinFilasNoFalla(t *testing.T) {
	svc, _ := newPersonaFixture()
	err := svc.Actualizar(context.Background(), "999", dto.ActualizarPersonaRequest{
		Nombre: "Otro", Apellido: "Nombre", TipoDocumento: "CC", TipoRol: "visitante",
	})
	assert.NoError(t, err)
}

func TestFormatFechaLocalizada(t *testing.T) {
	s := &personaService{loc: bogota}

	manana := time.Date(2026, 3, 5, 14, 4, 5, 0, time.UTC) // 9:04 a. m. in Bogotá
	assert.Equal(t, "5/03/2026, 9:04:05 a. m.", s.formatFecha(manana))

	tarde := time.Date(2026, 3, 5, 20, 30, 0, 0, time.UTC) // 3:30 p. m. in Bogotá
	assert.Equal(t, "5/03/2026, 3:30:00 p. m.", s.formatFecha(tarde))
}
