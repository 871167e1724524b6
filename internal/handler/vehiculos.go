package handler

import (
	"errors"
	"net/http"

	"github.com/Jhoansandoval1233/api-control-acceso/internal/apierror"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/dto"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehiculosHandler struct{ svc service.VehiculoService }

func NewVehiculosHandler(svc service.VehiculoService) *VehiculosHandler {
	return &VehiculosHandler{svc: svc}
}

// Listar GET /v1/vehiculos
func (h *VehiculosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener los vehículos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /v1/vehiculos/:id
func (h *VehiculosHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, svcErr := h.svc.ObtenerPorID(c.Request.Context(), id)
	if svcErr != nil {
		if errors.Is(svcErr, service.ErrVehiculoNoEncontrado) {
			c.JSON(http.StatusNotFound, dto.MensajeResponse{Mensaje: "Vehículo no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener el vehículo"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary Registra un vehículo asociado a una persona activa
// @Tags vehiculos
// @Accept json
// @Produce json
// @Param body body dto.CrearVehiculoRequest true "Datos del vehículo"
// @Success 201 {object} dto.CrearVehiculoResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/vehiculos [post]
func (h *VehiculosHandler) Crear(c *gin.Context) {
	var req dto.CrearVehiculoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrPersonaNoValida) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al registrar el vehículo"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarPorPersona GET /v1/personas/:id/vehiculos
func (h *VehiculosHandler) ListarPorPersona(c *gin.Context) {
	personaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, svcErr := h.svc.ListarPorPersona(c.Request.Context(), personaID)
	if svcErr != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener los vehículos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
