package handler

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/Jhoansandoval1233/api-control-acceso/internal/apierror"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/dto"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PersonasHandler struct{ svc service.PersonaService }

func NewPersonasHandler(svc service.PersonaService) *PersonasHandler {
	return &PersonasHandler{svc: svc}
}

// Listar godoc
// @Summary Lista personas activas (fecha_registro descendente, fechas localizadas)
// @Tags personas
// @Produce json
// @Success 200 {object} dto.ListarPersonasResponse
// @Failure 500 {object} apierror.APIError
// @Router /v1/personas [get]
func (h *PersonasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener las personas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /v1/personas/:id
func (h *PersonasHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, svcErr := h.svc.ObtenerPorID(c.Request.Context(), id)
	if svcErr != nil {
		if errors.Is(svcErr, service.ErrPersonaNoEncontrada) {
			c.JSON(http.StatusNotFound, dto.MensajeResponse{Mensaje: "Persona no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener la persona"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuscarPorDocumento GET /v1/personas/documento/:numero_documento
func (h *PersonasHandler) BuscarPorDocumento(c *gin.Context) {
	numeroDocumento := c.Param("numero_documento")
	if numeroDocumento == "" {
		c.JSON(http.StatusBadRequest, dto.MensajeResponse{Mensaje: "El número de documento es requerido"})
		return
	}

	resp, err := h.svc.BuscarPorDocumento(c.Request.Context(), numeroDocumento)
	if err != nil {
		if errors.Is(err, service.ErrPersonaNoEncontrada) {
			c.JSON(http.StatusNotFound, dto.BuscarPersonaResponse{
				Mensaje: "Persona no encontrada",
				Existe:  false,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al buscar persona"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary Registra una persona
// @Tags personas
// @Accept json
// @Produce json
// @Param body body dto.CrearPersonaRequest true "Datos de la persona"
// @Success 201 {object} dto.CrearPersonaResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/personas [post]
func (h *PersonasHandler) Crear(c *gin.Context) {
	var req dto.CrearPersonaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrDocumentoRegistrado) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al registrar la persona"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar PUT /v1/personas/documento/:numero_documento
// Not-found is not distinguished from success — no row-count check, matching
// the original contract.
func (h *PersonasHandler) Actualizar(c *gin.Context) {
	numeroDocumento := c.Param("numero_documento")
	var req dto.ActualizarPersonaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), numeroDocumento, req); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al actualizar"))
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Mensaje: "Persona actualizada exitosamente"})
}

// Eliminar DELETE /v1/personas/documento/:numero_documento — soft delete.
func (h *PersonasHandler) Eliminar(c *gin.Context) {
	numeroDocumento := c.Param("numero_documento")
	if err := h.svc.Eliminar(c.Request.Context(), numeroDocumento); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar persona"))
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Mensaje: "Persona eliminada (inactivada)"})
}

// DescargarCarnet GET /v1/personas/documento/:numero_documento/carnet
func (h *PersonasHandler) DescargarCarnet(c *gin.Context) {
	numeroDocumento := c.Param("numero_documento")
	path, err := h.svc.GenerarCarnet(c.Request.Context(), numeroDocumento)
	if err != nil {
		if errors.Is(err, service.ErrPersonaNoEncontrada) {
			c.JSON(http.StatusNotFound, dto.MensajeResponse{Mensaje: "Persona no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el carné"))
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}
