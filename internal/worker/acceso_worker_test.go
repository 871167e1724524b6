package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Jhoansandoval1233/api-control-acceso/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type touchRecorder struct {
	touched []uuid.UUID
}

func (r *touchRecorder) Create(context.Context, *model.Usuario) error   { return nil }
func (r *touchRecorder) List(context.Context) ([]model.Usuario, error) { return nil, nil }
func (r *touchRecorder) FindByID(context.Context, uuid.UUID) (*model.Usuario, error) {
	return nil, nil
}
func (r *touchRecorder) FindByEmail(context.Context, string) (*model.Usuario, error) {
	return nil, nil
}
func (r *touchRecorder) FindByDocumento(context.Context, string) (*model.Usuario, error) {
	return nil, nil
}
func (r *touchRecorder) FindByDocumentoNombre(context.Context, string, string) (*model.Usuario, error) {
	return nil, nil
}
func (r *touchRecorder) Update(context.Context, *model.Usuario) error { return nil }
func (r *touchRecorder) UpdatePassword(context.Context, uuid.UUID, string) error {
	return nil
}
func (r *touchRecorder) TouchUltimoAcceso(_ context.Context, id uuid.UUID) error {
	r.touched = append(r.touched, id)
	return nil
}
func (r *touchRecorder) Delete(context.Context, uuid.UUID) error { return nil }

func TestAccesoWorkerTocaUltimoAcceso(t *testing.T) {
	repo := &touchRecorder{}
	w := NewAccesoWorker(repo)
	id := uuid.New()

	raw, _ := json.Marshal(AccesoJobPayload{UserID: id.String()})
	w.Process(context.Background(), raw)

	assert.Equal(t, []uuid.UUID{id}, repo.touched)
}

func TestAccesoWorkerIgnoraPayloadInvalido(t *testing.T) {
	repo := &touchRecorder{}
	w := NewAccesoWorker(repo)

	w.Process(context.Background(), json.RawMessage(`{no es json`))
	w.Process(context.Background(), json.RawMessage(`{"user_id":"no-es-uuid"}`))

	assert.Empty(t, repo.touched)
}
