package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Jhoansandoval1233/api-control-acceso/internal/apierror"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/dto"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Short TTL: the kiosk tolerates a few minutes of staleness, registration and
// soft-delete always hit the DB directly.
const consultaCacheTTL = 5 * time.Minute

// ConsultaAccesoHandler serves the public gate-kiosk lookup.
// No authentication required — read-only, no side effects.
type ConsultaAccesoHandler struct {
	repo repository.PersonaRepository
	rdb  *redis.Client
}

func NewConsultaAccesoHandler(repo repository.PersonaRepository, rdb *redis.Client) *ConsultaAccesoHandler {
	return &ConsultaAccesoHandler{repo: repo, rdb: rdb}
}

// GetPorDocumento godoc
// @Summary Consulta rápida de persona por documento (sin autenticación)
// @Tags consulta
// @Produce json
// @Param numero_documento path string true "Número de documento"
// @Success 200 {object} dto.ConsultaAccesoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/consulta/{numero_documento} [get]
func (h *ConsultaAccesoHandler) GetPorDocumento(c *gin.Context) {
	numeroDocumento := c.Param("numero_documento")
	ctx := c.Request.Context()
	cacheKey := "consulta:" + numeroDocumento

	// 1. Try Redis cache
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.ConsultaAccesoResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	// 2. Cache miss — query DB
	persona, err := h.repo.FindByDocumento(ctx, numeroDocumento)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Persona no encontrada"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al buscar persona"))
		return
	}

	resp := dto.ConsultaAccesoResponse{
		NombreCompleto:  persona.Nombre + " " + persona.Apellido,
		TipoDocumento:   persona.TipoDocumento,
		NumeroDocumento: persona.NumeroDocumento,
		TipoRol:         persona.TipoRol,
		Activo:          persona.Activo,
	}

	// 3. Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, consultaCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
