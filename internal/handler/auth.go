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

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Login de usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		// Unknown email and wrong password answer identically: same status,
		// same body.
		if errors.Is(err, service.ErrCredencialesInvalidas) {
			c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Registro godoc
// @Summary Registro completo de usuario (roles admin|guarda)
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegistroRequest true "Datos del usuario"
// @Success 201 {object} dto.RegistroResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/auth/registro [post]
func (h *AuthHandler) Registro(c *gin.Context) {
	var req dto.RegistroRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registro(c.Request.Context(), req)
	if err != nil {
		if esErrorDeValidacion(err) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al crear el usuario"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RestablecerContrasena POST /v1/auth/restablecer — no-login recovery path.
func (h *AuthHandler) RestablecerContrasena(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.RestablecerContrasena(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrUsuarioNoEncontrado) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Usuario no encontrado con los datos proporcionados"})
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al actualizar la contraseña del usuario"))
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Contraseña restablecida correctamente"})
}

// esErrorDeValidacion reports whether err is a business-rule rejection that
// maps to 400 rather than 500.
func esErrorDeValidacion(err error) bool {
	return errors.Is(err, service.ErrEmailInvalido) ||
		errors.Is(err, service.ErrRolInvalido) ||
		errors.Is(err, service.ErrEmailRegistrado) ||
		errors.Is(err, service.ErrDocumentoRegistrado)
}

// ── Usuarios Handler ─────────────────────────────────────────────────────────

type UsuariosHandler struct{ svc service.AuthService }

func NewUsuariosHandler(svc service.AuthService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

// Crear POST /v1/usuarios — direct creation, wider role subset than registro.
func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearUsuario(c.Request.Context(), req)
	if err != nil {
		if esErrorDeValidacion(err) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al crear el usuario"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/usuarios — never includes the password hash.
func (h *UsuariosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarUsuarios(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar usuarios"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /v1/usuarios/:id
func (h *UsuariosHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, svcErr := h.svc.ObtenerUsuario(c.Request.Context(), id)
	if svcErr != nil {
		if errors.Is(svcErr, service.ErrUsuarioNoEncontrado) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Usuario no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener el usuario"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /v1/usuarios/:id — full overwrite.
func (h *UsuariosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if svcErr := h.svc.ActualizarUsuario(c.Request.Context(), id, req); svcErr != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al actualizar el usuario"))
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Usuario actualizado"})
}

// Eliminar DELETE /v1/usuarios/:id — hard delete.
func (h *UsuariosHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if svcErr := h.svc.EliminarUsuario(c.Request.Context(), id); svcErr != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar el usuario"))
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Usuario eliminado"})
}
