package worker

// acceso_worker.go
// Processes ultimo_acceso jobs from QueueAccesos. Login enqueues one of these
// after a successful credential check; a failure here is logged and never
// reaches the client, whose response was already sent.

import (
	"context"
	"encoding/json"

	"github.com/Jhoansandoval1233/api-control-acceso/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AccesoWorker stamps usuarios.ultimo_acceso.
type AccesoWorker struct {
	repo repository.UsuarioRepository
}

func NewAccesoWorker(repo repository.UsuarioRepository) *AccesoWorker {
	return &AccesoWorker{repo: repo}
}

func (w *AccesoWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload AccesoJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("acceso_worker: invalid payload")
		return
	}

	id, err := uuid.Parse(payload.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", payload.UserID).Msg("acceso_worker: invalid user id")
		return
	}

	if err := w.repo.TouchUltimoAcceso(ctx, id); err != nil {
		log.Error().Err(err).Str("user_id", payload.UserID).Msg("acceso_worker: failed to update ultimo_acceso")
		return
	}
	log.Debug().Str("user_id", payload.UserID).Msg("acceso_worker: ultimo_acceso updated")
}
